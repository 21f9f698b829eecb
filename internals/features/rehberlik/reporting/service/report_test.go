package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

/* =========================================================
 * Sahte kaynaklar — DB'siz builder testleri
 * ========================================================= */

type fakeSource struct {
	kind   EventKind
	events []Event
	err    error
}

func (s *fakeSource) Kind() EventKind { return s.kind }

func (s *fakeSource) Fetch(_ context.Context, _ Window) ([]Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

func aprilWindow(t *testing.T) Window {
	t.Helper()
	now := time.Date(2025, 4, 15, 10, 0, 0, 0, testLoc)
	w, err := ResolveWindow(PeriodSpec{Type: PeriodMonth}, now)
	if err != nil {
		t.Fatalf("pencere çözülemedi: %v", err)
	}
	return w
}

func april(day, hour int) time.Time {
	return time.Date(2025, 4, day, hour, 0, 0, 0, testLoc)
}

func TestBuildNoSources(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Build(context.Background(), aprilWindow(t)); !errors.Is(err, ErrNoSources) {
		t.Fatalf("err = %v, beklenen ErrNoSources", err)
	}
}

// Vazgeçilen istek rapor üretmez: kısmi rapor diye bir değer yok.
func TestBuildCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{kind: KindReferral, events: []Event{
		referralAt("Ali Kaya", "Devamsızlık", april(3, 9)),
	}}
	rep, err := NewBuilder(src).Build(ctx, aprilWindow(t))
	if err == nil {
		t.Fatal("iptal edilen istek hata dönmeli")
	}
	if rep != nil {
		t.Error("iptal sonrası rapor dönmemeli")
	}
}

// Bir kaynak düşse bile rapor üretilir: düşen kaynak boş sayılır ve
// FailedSources'ta işaretlenir, kalan kaynaklar aggregate edilir.
func TestBuildPartialSourceFailure(t *testing.T) {
	referrals := &fakeSource{kind: KindReferral, events: []Event{
		referralAt("Ali Kaya", "Devamsızlık", april(3, 9)),
		referralAt("Ayşe Demir", "Devamsızlık", april(4, 9)),
	}}
	discipline := &fakeSource{kind: KindDiscipline, err: errors.New("connection refused")}

	rep, err := NewBuilder(referrals, discipline).Build(context.Background(), aprilWindow(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !rep.HasFailures() {
		t.Error("düşen kaynak işaretlenmeliydi")
	}
	if len(rep.FailedSources) != 1 || rep.FailedSources[0] != KindDiscipline {
		t.Errorf("failed_sources = %v, beklenen [discipline]", rep.FailedSources)
	}
	if rep.ReferralsByReason.Total != 2 {
		t.Errorf("referral total = %d, düşen kaynak kalanları etkilememeli", rep.ReferralsByReason.Total)
	}
	if rep.DisciplineByType.Total != 0 {
		t.Errorf("düşen kaynak boş sayılmalı, total = %d", rep.DisciplineByType.Total)
	}
}

func TestBuildAllSourcesFail(t *testing.T) {
	down := errors.New("db down")
	rep, err := NewBuilder(
		&fakeSource{kind: KindReferral, err: down},
		&fakeSource{kind: KindDiscipline, err: down},
	).Build(context.Background(), aprilWindow(t))
	if err != nil {
		t.Fatalf("tüm kaynaklar düşse de rapor dönmeli: %v", err)
	}
	if len(rep.FailedSources) != 2 {
		t.Errorf("failed_sources = %v", rep.FailedSources)
	}
	if rep.RecordCount != 0 || rep.ReferralsByReason.Total != 0 {
		t.Error("boş rapor beklenirdi")
	}
}

// Tüm-zamanlar raporunda RecordCount ile bölüm toplamları aynı kuralı
// uygular: zaman damgası bozuk kayıt ikisine de girmez, yalnızca
// Malformed sayacında görünür.
func TestBuildAllTimeMalformedConsistency(t *testing.T) {
	broken := NewEvent(KindReferral, "Ali Kaya", "5-A", "Devamsızlık", time.Time{})
	ok := referralAt("Ayşe Demir", "Uyum Sorunu", april(3, 9))
	src := &fakeSource{kind: KindReferral, events: []Event{broken, ok}}

	rep, err := NewBuilder(src).Build(context.Background(), Window{Label: "Tüm Zamanlar"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rep.RecordCount != rep.ReferralsByReason.Total {
		t.Errorf("record_count=%d, referrals_by_reason.total=%d — tutarsız",
			rep.RecordCount, rep.ReferralsByReason.Total)
	}
	if rep.RecordCount != 1 {
		t.Errorf("record_count=%d, beklenen 1 (yalnızca geçerli kayıt)", rep.RecordCount)
	}
	if rep.ReferralsByReason.Malformed != 1 {
		t.Errorf("malformed=%d, beklenen 1", rep.ReferralsByReason.Malformed)
	}
}

// Aynı öğrencinin farklı yazımları tek kişiye çözülür:
// yönlendirme ∪ disiplin kümesi normalize anahtar üzerinden birleşir.
func TestBuildDistinctStudentsUnion(t *testing.T) {
	referrals := &fakeSource{kind: KindReferral, events: []Event{
		referralAt("Mehmet ÖZTÜRK", "Devamsızlık", april(3, 9)),
		referralAt("Zeynep Arslan", "Uyum Sorunu", april(4, 9)),
	}}
	discipline := &fakeSource{kind: KindDiscipline, events: []Event{
		NewEvent(KindDiscipline, "mehmet öztürk", "5-A", "Kavga", april(5, 9)),
	}}

	rep, err := NewBuilder(referrals, discipline).Build(context.Background(), aprilWindow(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rep.DistinctStudents != 2 {
		t.Errorf("distinct_students = %d, beklenen 2 (ÖZTÜRK == öztürk)", rep.DistinctStudents)
	}
}

func TestBuildRAMSummaryBuckets(t *testing.T) {
	mk := func(status string, day int) Event {
		e := NewEvent(KindRAMReferral, "Ali Kaya", "5-A", "Öğrenme Güçlüğü", april(day, 9))
		e.Status = status
		return e
	}
	ram := &fakeSource{kind: KindRAMReferral, events: []Event{
		mk("Sonuçlandı", 1),
		mk("iptal", 2),
		mk("sürecte", 3),
		mk("garip-durum", 4), // bilinmeyen → beklemede
	}}

	rep, err := NewBuilder(ram).Build(context.Background(), aprilWindow(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := RAMSummary{Total: 4, Completed: 1, Pending: 2, Cancelled: 1}
	if rep.RAM != want {
		t.Errorf("ram = %+v, beklenen %+v", rep.RAM, want)
	}
}

// Risk sayımı yalnızca aktif kayıtları görür; çözülmüş/bilinmeyen
// durumlar rapora karışmaz.
func TestBuildRiskActiveOnly(t *testing.T) {
	mk := func(severity, status string, day int) Event {
		e := NewEvent(KindRiskFlag, "Ali Kaya", "5-A", severity, april(day, 9))
		e.Status = status
		return e
	}
	risk := &fakeSource{kind: KindRiskFlag, events: []Event{
		mk("yüksek", "active", 1),
		mk("orta", "Aktif", 2),
		mk("yüksek", "resolved", 3),
		mk("düşük", "", 4),
	}}

	rep, err := NewBuilder(risk).Build(context.Background(), aprilWindow(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rep.RiskBySeverity.Total != 2 {
		t.Errorf("aktif risk = %d, beklenen 2", rep.RiskBySeverity.Total)
	}
}

func TestBuildRecordsNewestFirst(t *testing.T) {
	referrals := &fakeSource{kind: KindReferral, events: []Event{
		referralAt("A", "Devamsızlık", april(3, 9)),
		referralAt("B", "Uyum Sorunu", april(10, 9)),
	}}
	contacts := &fakeSource{kind: KindParentContact, events: []Event{
		NewEvent(KindParentContact, "C", "5-B", "Veli Görüşmesi", april(7, 14)),
	}}

	rep, err := NewBuilder(referrals, contacts).Build(context.Background(), aprilWindow(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rep.RecordCount != 3 {
		t.Fatalf("record_count = %d, beklenen 3", rep.RecordCount)
	}
	for i := 1; i < len(rep.Records); i++ {
		if rep.Records[i].Date.After(rep.Records[i-1].Date) {
			t.Fatalf("kayıtlar en yeniden eskiye sıralı değil: %d < %d", i-1, i)
		}
	}
	if rep.Records[0].Student != "B" {
		t.Errorf("ilk kayıt = %q, en yeni kayıt B olmalı", rep.Records[0].Student)
	}
}

func TestBuildForStudentFiltersOthers(t *testing.T) {
	referrals := &fakeSource{kind: KindReferral, events: []Event{
		referralAt("Mehmet Öztürk", "Devamsızlık", april(3, 9)),
		referralAt("Zeynep Arslan", "Devamsızlık", april(4, 9)),
	}}
	discipline := &fakeSource{kind: KindDiscipline, events: []Event{
		NewEvent(KindDiscipline, "MEHMET ÖZTÜRK", "5-A", "Kavga", april(5, 9)),
	}}

	rep, err := NewBuilder(referrals, discipline).
		BuildForStudent(context.Background(), aprilWindow(t), "mehmet öztürk")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rep.ReferralsByReason.Total != 1 {
		t.Errorf("öğrenci filtresi sonrası referral = %d, beklenen 1", rep.ReferralsByReason.Total)
	}
	if rep.DisciplineByType.Total != 1 {
		t.Errorf("disiplin = %d, beklenen 1", rep.DisciplineByType.Total)
	}
	if rep.DistinctStudents != 1 {
		t.Errorf("distinct = %d, beklenen 1", rep.DistinctStudents)
	}
	if rep.StudentName != "mehmet öztürk" {
		t.Errorf("başlıkta ham isim korunmalı: %q", rep.StudentName)
	}
}

// Alttan sınırlı pencerede trend üretilir ve sıfır günler de seride olur.
func TestBuildTrendDense(t *testing.T) {
	w := Window{Label: "test"}
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, testLoc)
	end := time.Date(2025, 4, 4, 0, 0, 0, 0, testLoc)
	w.Start, w.End = &start, &end

	referrals := &fakeSource{kind: KindReferral, events: []Event{
		referralAt("A", "Devamsızlık", april(1, 9)),
		referralAt("B", "Devamsızlık", april(3, 9)),
	}}

	rep, err := NewBuilder(referrals).Build(context.Background(), w)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// [1 Nis, 4 Nis) → kapsanan günler 1..3
	if len(rep.Trend) != 3 {
		t.Fatalf("trend uzunluğu %d, beklenen 3", len(rep.Trend))
	}
	if rep.Trend[1].Count != 0 {
		t.Errorf("2 Nisan sıfır kova olmalı, %d", rep.Trend[1].Count)
	}

	// Sınırsız pencerede trend yok
	all, err := NewBuilder(referrals).Build(context.Background(), Window{Label: "Tüm Zamanlar"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if all.Trend != nil {
		t.Error("sınırsız pencerede trend üretilmemeli")
	}
}
