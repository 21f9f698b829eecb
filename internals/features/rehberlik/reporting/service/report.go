package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	helper "rehberlik_backend/internals/helpers"
)

/* =========================================================
 * CROSS-SOURCE REPORT BUILDER
 * Altı bağımsız kaynağı eşzamanlı çeker, öğrenci kimliğini
 * normalize isimle birleştirir, tek yapısal rapor üretir.
 * ========================================================= */

// EventSource: tür başına bir kayıt kaynağı. hint sunucu tarafı kaba
// ön filtre olabilir (yalnızca tarih, saat yok); Aggregator pencere
// semantiğini her halükârda yeniden uygular.
type EventSource interface {
	Kind() EventKind
	Fetch(ctx context.Context, hint Window) ([]Event, error)
}

// ReportFilter: pencere dışı daraltmalar (hepsi normalize anahtar).
// Boş alan = filtre yok.
type ReportFilter struct {
	StudentKey string
	TeacherKey string
	ClassKey   string

	// Görüntü amaçlı ham değerler (rapor başlığında kullanılır)
	StudentName string
	ClassLabel  string
}

func (f ReportFilter) matches(e Event) bool {
	if f.StudentKey != "" && e.StudentKey != f.StudentKey {
		return false
	}
	if f.TeacherKey != "" {
		// öğretmen alanı olmayan türler öğretmen filtresinde elenir
		if helper.NormalizeText(e.TeacherName) != f.TeacherKey {
			return false
		}
	}
	if f.ClassKey != "" && e.ClassKey != f.ClassKey {
		return false
	}
	return true
}

type RAMSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
}

// ReportRecord: anlatı/tablo çıktılarında satır başına temel alanlar.
type ReportRecord struct {
	Kind      EventKind `json:"kind"`
	Date      time.Time `json:"date"`
	DateValid bool      `json:"date_valid"`
	Student   string    `json:"student,omitempty"`
	Actor     string    `json:"actor,omitempty"` // yönlendiren öğretmen vb.
	Category  string    `json:"category"`
	Note      string    `json:"note,omitempty"`
}

// Report: tek pencere için tüm kaynakların birleşik sonucu.
// SourceUnavailable yerel olarak telafi edilir: kaynak boş sayılır ve
// FailedSources'ta işaretlenir — rapor asla bütün halinde düşmez.
type Report struct {
	Window      Window    `json:"window"`
	GeneratedAt time.Time `json:"generated_at"`

	StudentName string `json:"student_name,omitempty"`
	ClassLabel  string `json:"class_label,omitempty"`

	ReferralsByReason  AggregationResult `json:"referrals_by_reason"`
	ReferralsByTeacher AggregationResult `json:"referrals_by_teacher"`
	ReferralsByClass   AggregationResult `json:"referrals_by_class"`
	DisciplineByType   AggregationResult `json:"discipline_by_type"`
	DisciplineByClass  AggregationResult `json:"discipline_by_class"`
	ActivitiesByType   AggregationResult `json:"activities_by_type"`
	ContactsByType     AggregationResult `json:"contacts_by_type"`
	RiskBySeverity     AggregationResult `json:"risk_by_severity"` // yalnızca aktif kayıtlar
	RAM                RAMSummary        `json:"ram"`

	// Normalize isimle yönlendirme ∪ disiplin kümesi. Kaynak veride
	// kalıcı öğrenci id'si yok; aynı anahtara düşen iki farklı öğrenci
	// ayrıştırılamaz — bilinen hassasiyet sınırı, bug değil.
	DistinctStudents int `json:"distinct_students"`

	RecordCount   int            `json:"record_count"`
	Records       []ReportRecord `json:"records"`
	FailedSources []EventKind    `json:"failed_sources,omitempty"`

	// Pencere alttan sınırlıysa gün bazlı yoğun seri (grafikler için)
	Trend []DayCount `json:"trend,omitempty"`
}

// HasFailures: dashboard "veri yok" göstersin, hata ekranı değil.
func (r *Report) HasFailures() bool { return len(r.FailedSources) > 0 }

var ErrNoSources = errors.New("hiçbir veri kaynağı tanımlı değil")

type Builder struct {
	sources []EventSource
}

func NewBuilder(sources ...EventSource) *Builder {
	return &Builder{sources: sources}
}

func (b *Builder) Build(ctx context.Context, w Window) (*Report, error) {
	return b.BuildFiltered(ctx, w, ReportFilter{})
}

// BuildFiltered: N kaynak eşzamanlı çekilir, HEPSİ sonuçlanana kadar
// beklenir (başarı ya da kaynak bazlı hata) — yarım veriyle asla
// aggregate edilmez. Kısmi rapor diye bir değer yoktur; caller vazgeçerse
// ctx üzerinden fetch'ler iptal olur ve hiçbir şey dönmez.
func (b *Builder) BuildFiltered(ctx context.Context, w Window, f ReportFilter) (*Report, error) {
	if len(b.sources) == 0 {
		return nil, ErrNoSources
	}

	fetched := make([][]Event, len(b.sources))
	failed := make([]bool, len(b.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range b.sources {
		i, src := i, src
		g.Go(func() error {
			events, err := src.Fetch(gctx, w)
			if err != nil {
				// SourceUnavailable: boş sonuçla devam, bayrak bırak
				failed[i] = true
				return nil
			}
			fetched[i] = events
			return nil
		})
	}
	// goroutine'ler hata döndürmez; Wait burada saf bariyer
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Caller vazgeçtiyse "hepsi düştü" görünümlü sahte rapor üretme
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	byKind := make(map[EventKind][]Event, len(b.sources))
	rep := &Report{
		Window:      w,
		GeneratedAt: time.Now(),
		StudentName: f.StudentName,
		ClassLabel:  f.ClassLabel,
	}
	for i, src := range b.sources {
		if failed[i] {
			rep.FailedSources = append(rep.FailedSources, src.Kind())
			continue
		}
		events := fetched[i]
		if f != (ReportFilter{}) {
			events = filterEvents(events, f)
		}
		byKind[src.Kind()] = append(byKind[src.Kind()], events...)
	}

	referrals := byKind[KindReferral]
	discipline := byKind[KindDiscipline]

	rep.ReferralsByReason = Aggregate(referrals, w, GroupByReason)
	rep.ReferralsByTeacher = Aggregate(referrals, w, GroupByTeacher)
	rep.ReferralsByClass = Aggregate(referrals, w, GroupByClass)
	rep.DisciplineByType = Aggregate(discipline, w, GroupByReason)
	rep.DisciplineByClass = Aggregate(discipline, w, GroupByClass)
	rep.ActivitiesByType = Aggregate(byKind[KindClassActivity], w, GroupByReason)
	rep.ContactsByType = Aggregate(byKind[KindParentContact], w, GroupByReason)

	activeRisk := make([]Event, 0)
	for _, e := range byKind[KindRiskFlag] {
		if IsActiveRiskStatus(e.Status) {
			activeRisk = append(activeRisk, e)
		}
	}
	rep.RiskBySeverity = Aggregate(activeRisk, w, GroupByReason)

	rep.RAM = summarizeRAM(byKind[KindRAMReferral], w)
	rep.DistinctStudents = distinctStudents(w, referrals, discipline)

	rep.Records = collectRecords(w, byKind)
	rep.RecordCount = len(rep.Records)

	// Günlük trend: yalnızca alttan sınırlı pencerede anlamlı
	if w.Start != nil {
		var all []Event
		for _, events := range byKind {
			all = append(all, events...)
		}
		endDay := rep.GeneratedAt.In(w.Start.Location())
		if w.End != nil {
			// üst uç hariç olduğundan kapsanan son gün = end - 1sn'nin günü
			endDay = w.End.Add(-time.Second)
		}
		rep.Trend = DailyTrend(all, *w.Start, endDay)
	}

	return rep, nil
}

// BuildForStudent: aynı builder, tek öğrencinin normalize anahtarına
// daraltılmış hali (öğrenci geçmişi / risk profili görünümü).
func (b *Builder) BuildForStudent(ctx context.Context, w Window, studentName string) (*Report, error) {
	return b.BuildFiltered(ctx, w, ReportFilter{
		StudentKey:  helper.NormalizeText(studentName),
		StudentName: studentName,
	})
}

func filterEvents(events []Event, f ReportFilter) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func summarizeRAM(events []Event, w Window) RAMSummary {
	var s RAMSummary
	for _, e := range events {
		if !e.TimeValid || !w.Contains(e.OccurredAt) {
			continue
		}
		s.Total++
		switch RAMBucketOf(e.Status) {
		case RAMCompleted:
			s.Completed++
		case RAMCancelled:
			s.Cancelled++
		default:
			s.Pending++
		}
	}
	return s
}

// distinctStudents: pencere içindeki yönlendirme ∪ disiplin kayıtlarında
// görülen normalize öğrenci anahtarlarının kümesi.
func distinctStudents(w Window, sources ...[]Event) int {
	seen := make(map[string]struct{})
	for _, events := range sources {
		for _, e := range events {
			if !e.TimeValid || !w.Contains(e.OccurredAt) {
				continue
			}
			if e.StudentKey == "" {
				continue
			}
			seen[e.StudentKey] = struct{}{}
		}
	}
	return len(seen)
}

// collectRecords pencere içindeki kayıtları satıra indirger ve en
// yeniden eskiye sıralar. Zaman damgası bozuk kayıtlar bölüm
// toplamlarıyla aynı kuralla dışarıda kalır (Malformed sayaçları
// onları ayrıca raporlar); aksi halde RecordCount ile kırılım
// toplamları birbirini tutmazdı.
func collectRecords(w Window, byKind map[EventKind][]Event) []ReportRecord {
	var records []ReportRecord
	for _, kind := range []EventKind{
		KindReferral, KindDiscipline, KindRAMReferral,
		KindRiskFlag, KindClassActivity, KindParentContact,
	} {
		for _, e := range byKind[kind] {
			if !e.TimeValid || !w.Contains(e.OccurredAt) {
				continue
			}
			records = append(records, ReportRecord{
				Kind:      e.Kind,
				Date:      e.OccurredAt,
				DateValid: e.TimeValid,
				Student:   e.StudentName,
				Actor:     e.TeacherName,
				Category:  e.Category,
				Note:      e.Note,
			})
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records
}
