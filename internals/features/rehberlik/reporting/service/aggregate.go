package service

import (
	"strings"
	"time"

	helper "rehberlik_backend/internals/helpers"
)

/* =========================================================
 * AGGREGATOR — pencere + gruplama anahtarı → sayımlar
 * Saf in-memory map/reduce; hiçbir yerde suspend etmez.
 * ========================================================= */

type GroupBy string

// Gün bazlı kırılım bilerek burada yok: gün serisi sıfır kovalarıyla
// birlikte (dense) üretilmek zorundadır, o iş DailyTrend'indir.
const (
	GroupByReason  GroupBy = "reason"
	GroupByTeacher GroupBy = "teacher"
	GroupByClass   GroupBy = "class"
)

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AggregationResult: Categories ilk görülme sırasını korur.
// Top, Categories boşsa nil'dir. Gruplama anahtarı exhaustive ise
// sum(Categories) == Total.
type AggregationResult struct {
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories"`
	Top        *CategoryCount  `json:"top,omitempty"`
	Malformed  int             `json:"malformed,omitempty"` // zaman damgası çözülemeyen, pencereden düşen kayıt sayısı
}

// CountOf normalize edilmiş isimle kova arar (test/iç kullanım).
func (r AggregationResult) CountOf(name string) int {
	key := helper.NormalizeText(name)
	for _, c := range r.Categories {
		if helper.NormalizeText(c.Name) == key {
			return c.Count
		}
	}
	return 0
}

type AggregateOptions struct {
	// IncludeMalformed: yalnızca sınırsız ("tüm zamanlar") pencerede,
	// zaman damgası bozuk kayıtları da toplama dahil et.
	IncludeMalformed bool
}

func Aggregate(events []Event, w Window, groupBy GroupBy) AggregationResult {
	return AggregateWith(events, w, groupBy, AggregateOptions{})
}

// AggregateWith pencereye giren kayıtları normalize anahtarla gruplar.
//
// Top için beraberlik kuralı: eşit sayıdaki kategorilerden girdi
// sırasında İLK görülen kazanır. Alfabetik yeniden sıralama yapılmaz;
// aksi halde yalnızca eşit kovaların ekleme sırası değişen iki özdeş
// koşu farklı "en sık" sonucu üretirdi.
func AggregateWith(events []Event, w Window, groupBy GroupBy, opts AggregateOptions) AggregationResult {
	res := AggregationResult{}
	index := make(map[string]int) // normalize anahtar → Categories idx

	for _, e := range events {
		if !e.TimeValid {
			// Fail-open: bozuk kayıt pencereli görünümden düşer ama
			// aggregation'ı asla durdurmaz. Sınırsız pencerede istenirse sayılır.
			if !(opts.IncludeMalformed && w.Unbounded()) {
				res.Malformed++
				continue
			}
		} else if !w.Contains(e.OccurredAt) {
			continue
		}

		key, display := groupKey(e, groupBy)

		res.Total++
		if i, ok := index[key]; ok {
			res.Categories[i].Count++
		} else {
			index[key] = len(res.Categories)
			res.Categories = append(res.Categories, CategoryCount{Name: display, Count: 1})
		}
	}

	// İlk görülme sırasında gez; yalnızca kesin büyüklük öne geçer.
	for i := range res.Categories {
		if res.Top == nil || res.Categories[i].Count > res.Top.Count {
			res.Top = &res.Categories[i]
		}
	}

	return res
}

// groupKey: (normalize anahtar, görünen ad). Görünen ad ilk görülen
// ham değerdir; boş alanlar sentinel kovaya düşer.
func groupKey(e Event, groupBy GroupBy) (string, string) {
	switch groupBy {
	case GroupByTeacher:
		display := strings.TrimSpace(e.TeacherName)
		if display == "" {
			display = CategoryUnspecified
		}
		return helper.NormalizeText(display), display
	case GroupByClass:
		display := e.ClassLabel
		if display == "" {
			display = CategoryUnspecified
		}
		if e.ClassKey != "" {
			return e.ClassKey, display
		}
		return helper.NormalizeText(display), display
	default: // GroupByReason
		return helper.NormalizeText(e.Category), e.Category
	}
}

/* =========================================================
 * GÜNLÜK TREND — boşluksuz (dense) seri
 * ========================================================= */

type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD (lokal takvim günü)
	Count int    `json:"count"`
}

// DailyTrend start..end (gün bazında, iki uç dahil) aralığındaki her gün
// için bir kova üretir; sıfır günler de seride yer alır ki grafikler
// kesintisiz çizilsin.
func DailyTrend(events []Event, start, end time.Time) []DayCount {
	loc := start.Location()
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)
	if last.Before(first) {
		return nil
	}

	counts := make(map[string]int)
	for _, e := range events {
		if !e.TimeValid {
			continue
		}
		d := e.OccurredAt.In(loc)
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
		if day.Before(first) || day.After(last) {
			continue
		}
		counts[day.Format("2006-01-02")]++
	}

	var series []DayCount
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		series = append(series, DayCount{Date: key, Count: counts[key]})
	}
	return series
}
