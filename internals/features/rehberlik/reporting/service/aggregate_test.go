package service

import (
	"testing"
	"time"
)

func referralAt(student, reason string, at time.Time) Event {
	return NewEvent(KindReferral, student, "5-A", reason, at)
}

func marchWindow(t *testing.T) Window {
	t.Helper()
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, testLoc)
	w, err := ResolveWindow(PeriodSpec{Type: PeriodMonth}, now)
	if err != nil {
		t.Fatalf("pencere çözülemedi: %v", err)
	}
	return w
}

// Spektr tarzı senaryo: 3 yönlendirme, Mart 2025 ay penceresi.
func TestAggregateMonthScenario(t *testing.T) {
	events := []Event{
		referralAt("Ali Kaya", "Devamsızlık", time.Date(2025, 3, 3, 9, 0, 0, 0, testLoc)),
		referralAt("Ayşe Demir", "Devamsızlık", time.Date(2025, 3, 4, 9, 0, 0, 0, testLoc)),
		referralAt("Ali Kaya", "Ders Başarısızlığı", time.Date(2025, 3, 4, 11, 0, 0, 0, testLoc)),
	}

	res := Aggregate(events, marchWindow(t), GroupByReason)

	if res.Total != 3 {
		t.Fatalf("total = %d, beklenen 3", res.Total)
	}
	if got := res.CountOf("Devamsızlık"); got != 2 {
		t.Errorf("Devamsızlık = %d, beklenen 2", got)
	}
	if got := res.CountOf("Ders Başarısızlığı"); got != 1 {
		t.Errorf("Ders Başarısızlığı = %d, beklenen 1", got)
	}
	if res.Top == nil || res.Top.Name != "Devamsızlık" || res.Top.Count != 2 {
		t.Errorf("top = %+v, beklenen Devamsızlık/2", res.Top)
	}
}

// Exhaustive gruplama: sum(kategoriler) == pencereye giren kayıt sayısı.
func TestAggregateExhaustive(t *testing.T) {
	w := marchWindow(t)
	events := []Event{
		referralAt("A", "Devamsızlık", time.Date(2025, 3, 3, 9, 0, 0, 0, testLoc)),
		referralAt("B", "", time.Date(2025, 3, 4, 9, 0, 0, 0, testLoc)), // sentinel kovaya düşer
		referralAt("C", "Uyum Sorunu", time.Date(2025, 2, 28, 9, 0, 0, 0, testLoc)), // pencere dışı
	}

	res := Aggregate(events, w, GroupByReason)

	sum := 0
	for _, c := range res.Categories {
		sum += c.Count
	}
	if sum != res.Total {
		t.Errorf("sum(categories)=%d != total=%d", sum, res.Total)
	}
	if res.Total != 2 {
		t.Errorf("total = %d, beklenen 2 (pencere dışı düşer)", res.Total)
	}
	if got := res.CountOf(CategoryUnspecified); got != 1 {
		t.Errorf("boş kategori sentinel'e düşmeli, %d", got)
	}
}

// Beraberlikte ilk görülen kazanır; eşit olmayan kayıtların sırası
// sonucu değiştiremez. Alfabetik çözüm YOK.
func TestAggregateTieBreakFirstSeen(t *testing.T) {
	w := marchWindow(t)
	d1 := time.Date(2025, 3, 3, 9, 0, 0, 0, testLoc)
	d2 := time.Date(2025, 3, 4, 9, 0, 0, 0, testLoc)

	events := []Event{
		referralAt("A", "Uyum Sorunu", d1),  // ilk görülen
		referralAt("B", "Devamsızlık", d1),  // alfabetik olarak önce ama sonra görüldü
		referralAt("C", "Uyum Sorunu", d2),
		referralAt("D", "Devamsızlık", d2),
		referralAt("E", "Aile Görüşmesi", d2), // eşit olmayan tekil kayıt
	}

	res := Aggregate(events, w, GroupByReason)
	if res.Top == nil || res.Top.Name != "Uyum Sorunu" {
		t.Fatalf("top = %+v, ilk görülen 'Uyum Sorunu' kazanmalı", res.Top)
	}

	// Aynı girdi sırası → aynı sonuç (determinizm)
	again := Aggregate(events, w, GroupByReason)
	if again.Top.Name != res.Top.Name {
		t.Error("aynı girdiyle top değişti")
	}

	// Eşit olmayan kaydı başa al: beraberlik sırası bozulmadıkça sonuç aynı
	reordered := []Event{events[4], events[0], events[1], events[2], events[3]}
	res2 := Aggregate(reordered, w, GroupByReason)
	if res2.Top == nil || res2.Top.Name != "Uyum Sorunu" {
		t.Errorf("eşit olmayan kaydın yeri sonucu değiştirdi: %+v", res2.Top)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	res := Aggregate(nil, marchWindow(t), GroupByReason)
	if res.Total != 0 {
		t.Errorf("total = %d, beklenen 0", res.Total)
	}
	if res.Top != nil {
		t.Errorf("boş girdi için top nil olmalı, %+v", res.Top)
	}
	if len(res.Categories) != 0 {
		t.Errorf("kategori listesi boş olmalı")
	}
}

// Fail-open: bozuk zaman damgası pencereli görünümden düşer ama
// aggregation devam eder; sınırsız pencerede istenirse sayılır.
func TestAggregateMalformedTimestamps(t *testing.T) {
	broken := NewEvent(KindReferral, "X", "5-A", "Devamsızlık", time.Time{})
	ok := referralAt("Y", "Devamsızlık", time.Date(2025, 3, 3, 9, 0, 0, 0, testLoc))

	res := Aggregate([]Event{broken, ok}, marchWindow(t), GroupByReason)
	if res.Total != 1 {
		t.Errorf("pencereli total = %d, beklenen 1", res.Total)
	}
	if res.Malformed != 1 {
		t.Errorf("malformed = %d, beklenen 1", res.Malformed)
	}

	all := Window{Label: "Tüm Zamanlar"}
	resAll := AggregateWith([]Event{broken, ok}, all, GroupByReason, AggregateOptions{IncludeMalformed: true})
	if resAll.Total != 2 {
		t.Errorf("tüm zamanlar + IncludeMalformed total = %d, beklenen 2", resAll.Total)
	}
}

// Gruplama anahtarı Türkçe katlamadan geçer: "DEVAMSIZLIK" ile
// "Devamsızlık" aynı kovada toplanır, görünen ad ilk görülendir.
func TestAggregateNormalizedGroupKeys(t *testing.T) {
	w := marchWindow(t)
	d := time.Date(2025, 3, 3, 9, 0, 0, 0, testLoc)
	events := []Event{
		referralAt("A", "Devamsızlık", d),
		referralAt("B", "DEVAMSIZLIK", d),
		referralAt("C", " devamsızlık ", d),
	}

	res := Aggregate(events, w, GroupByReason)
	if len(res.Categories) != 1 {
		t.Fatalf("kategori sayısı %d, beklenen 1", len(res.Categories))
	}
	if res.Categories[0].Name != "Devamsızlık" || res.Categories[0].Count != 3 {
		t.Errorf("kova %+v, beklenen Devamsızlık/3", res.Categories[0])
	}
}

func TestDailyTrendDenseSeries(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, testLoc)
	end := time.Date(2025, 3, 5, 0, 0, 0, 0, testLoc)
	events := []Event{
		referralAt("A", "Devamsızlık", time.Date(2025, 3, 3, 9, 0, 0, 0, testLoc)),
		referralAt("B", "Devamsızlık", time.Date(2025, 3, 5, 9, 0, 0, 0, testLoc)),
		referralAt("C", "Devamsızlık", time.Date(2025, 3, 5, 15, 0, 0, 0, testLoc)),
	}

	series := DailyTrend(events, start, end)
	if len(series) != 3 {
		t.Fatalf("seri uzunluğu %d, beklenen 3 (sıfır günler dahil)", len(series))
	}
	want := []DayCount{
		{Date: "2025-03-03", Count: 1},
		{Date: "2025-03-04", Count: 0},
		{Date: "2025-03-05", Count: 2},
	}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("seri[%d] = %+v, beklenen %+v", i, series[i], want[i])
		}
	}
}
