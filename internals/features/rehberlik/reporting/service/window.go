package service

import (
	"fmt"
	"time"

	helper "rehberlik_backend/internals/helpers"
)

/* =========================================================
 * WINDOW — yarı açık [start, end) zaman aralığı
 * ========================================================= */

// Window: Start/End nil ise o uç sınırsızdır ("tüm zamanlar" = ikisi de nil).
// Aggregator nil ucu "filtre yok" olarak yorumlar.
type Window struct {
	Start *time.Time
	End   *time.Time
	Label string
}

func (w Window) Unbounded() bool { return w.Start == nil && w.End == nil }

// Contains: [start, end) — alt uç dahil, üst uç hariç.
func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && !t.Before(*w.End) {
		return false
	}
	return true
}

/* =========================================================
 * PERIOD SPEC → WINDOW
 * ========================================================= */

type PeriodType string

const (
	PeriodToday  PeriodType = "today"
	PeriodWeek   PeriodType = "week"
	PeriodMonth  PeriodType = "month"
	PeriodAll    PeriodType = "all"
	PeriodCustom PeriodType = "custom"
	PeriodTerm   PeriodType = "term"
)

// InvalidPeriodError: tanınmayan specifier programcı hatasıdır,
// hiçbir fetch yapılmadan 4xx olarak yüzeye çıkar.
type InvalidPeriodError struct {
	Value string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("geçersiz dönem belirteci: %q", e.Value)
}

// ParsePeriodType serbest metin period parametresini çözer.
func ParsePeriodType(raw string) (PeriodType, error) {
	switch helper.NormalizeText(raw) {
	case "today", "bugun":
		return PeriodToday, nil
	case "week", "hafta", "bu hafta":
		return PeriodWeek, nil
	case "month", "ay", "bu ay":
		return PeriodMonth, nil
	case "all", "tumu", "tum zamanlar":
		return PeriodAll, nil
	case "custom", "tarih":
		return PeriodCustom, nil
	case "term", "donem":
		return PeriodTerm, nil
	default:
		return "", &InvalidPeriodError{Value: raw}
	}
}

// PeriodSpec: istenen dönem. Term için AcademicYear dönemin BAŞLANGIÇ
// yılıdır; bitiş yılını resolver hesaplar (dönem yıl sınırını aşabilir).
type PeriodSpec struct {
	Type         PeriodType
	CustomDate   time.Time // PeriodCustom için zorunlu
	TermID       string    // "1", "2", "yillik" (esnek: "1. Dönem" vb.)
	AcademicYear int
}

// ResolveWindow spec'i somut pencereye çevirir. Takvim aritmetiği
// now'un lokasyonunda yapılır; hafta başı her zaman Pazartesi'dir.
func ResolveWindow(spec PeriodSpec, now time.Time) (Window, error) {
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch spec.Type {
	case PeriodToday:
		end := midnight.AddDate(0, 0, 1)
		return Window{Start: &midnight, End: &end, Label: "Bugün"}, nil

	case PeriodWeek:
		// Pazartesi 00:00'dan şu ana kadar; ileri tarihli planlı kayıtlar
		// (etkinlik, veli görüşmesi) bu haftanın sayımına girmez
		offset := (int(now.Weekday()) + 6) % 7
		start := midnight.AddDate(0, 0, -offset)
		end := now
		return Window{Start: &start, End: &end, Label: "Bu Hafta"}, nil

	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end := now
		return Window{Start: &start, End: &end, Label: "Bu Ay"}, nil

	case PeriodAll:
		return Window{Label: "Tüm Zamanlar"}, nil

	case PeriodCustom:
		if spec.CustomDate.IsZero() {
			return Window{}, &InvalidPeriodError{Value: "custom (tarih yok)"}
		}
		d := spec.CustomDate.In(loc)
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
		end := start.AddDate(0, 0, 1)
		return Window{Start: &start, End: &end, Label: start.Format("02.01.2006")}, nil

	case PeriodTerm:
		return resolveTerm(spec, loc)

	default:
		return Window{}, &InvalidPeriodError{Value: string(spec.Type)}
	}
}

// resolveTerm: akademik dönem pencereleri. Yıl sınırını meşru olarak
// aşan tek yer burasıdır.
//   - 1. Dönem : 1 Eylül Y      → 31 Ocak Y+1 (dahil)
//   - 2. Dönem : 1 Şubat Y+1    → 30 Haziran Y+1 (dahil)
//   - Yıllık   : 1 Eylül Y      → 30 Haziran Y+1 (dahil)
// Pencere yarı açık olduğundan üst uç, kapsanan son günün ertesi
// gece yarısıdır.
func resolveTerm(spec PeriodSpec, loc *time.Location) (Window, error) {
	if spec.AcademicYear < 1900 {
		return Window{}, &InvalidPeriodError{Value: fmt.Sprintf("term yıl=%d", spec.AcademicYear)}
	}
	y := spec.AcademicYear

	var start, end time.Time
	var name string
	switch helper.NormalizeText(spec.TermID) {
	case "1", "1. donem", "1.donem", "birinci donem":
		start = time.Date(y, time.September, 1, 0, 0, 0, 0, loc)
		end = time.Date(y+1, time.February, 1, 0, 0, 0, 0, loc)
		name = "1. Dönem"
	case "2", "2. donem", "2.donem", "ikinci donem":
		start = time.Date(y+1, time.February, 1, 0, 0, 0, 0, loc)
		end = time.Date(y+1, time.July, 1, 0, 0, 0, 0, loc)
		name = "2. Dönem"
	case "yillik", "yil", "tam yil":
		start = time.Date(y, time.September, 1, 0, 0, 0, 0, loc)
		end = time.Date(y+1, time.July, 1, 0, 0, 0, 0, loc)
		name = "Yıllık"
	default:
		return Window{}, &InvalidPeriodError{Value: spec.TermID}
	}

	return Window{
		Start: &start,
		End:   &end,
		Label: fmt.Sprintf("%s %d-%d", name, y, y+1),
	}, nil
}
