package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rehberlik_backend/internals/features/rehberlik/records/model"
)

/* =========================================================
 * DB EVENT SOURCES — kayıt tabloları → Event
 * Pencere ipucu sorguya pushdown edilir (kaba ön filtre);
 * kesin [start, end) semantiğini Aggregator yeniden uygular.
 * ========================================================= */

type dbEventSource struct {
	db   *gorm.DB
	kind EventKind
	loc  *time.Location
}

func (s *dbEventSource) Kind() EventKind { return s.kind }

// NewDBSources altı tablonun tamamı için kaynak seti döner.
func NewDBSources(db *gorm.DB, loc *time.Location) []EventSource {
	kinds := []EventKind{
		KindReferral, KindDiscipline, KindRAMReferral,
		KindRiskFlag, KindClassActivity, KindParentContact,
	}
	sources := make([]EventSource, 0, len(kinds))
	for _, k := range kinds {
		sources = append(sources, &dbEventSource{db: db, kind: k, loc: loc})
	}
	return sources
}

// pushdown: hint sınırlıysa tarih sütununa kaba aralık koşulu ekle.
func pushdown(q *gorm.DB, col string, hint Window) *gorm.DB {
	if hint.Start != nil {
		q = q.Where(col+" >= ?", *hint.Start)
	}
	if hint.End != nil {
		q = q.Where(col+" < ?", *hint.End)
	}
	return q
}

func (s *dbEventSource) Fetch(ctx context.Context, hint Window) ([]Event, error) {
	switch s.kind {
	case KindReferral:
		var rows []model.GuidanceReferralModel
		q := pushdown(s.db.WithContext(ctx), "guidance_referral_created_at", hint)
		if err := q.Order("guidance_referral_created_at ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		events := make([]Event, 0, len(rows))
		for _, r := range rows {
			events = append(events, eventFromReferral(r, s.loc))
		}
		return events, nil

	case KindDiscipline:
		var rows []model.DisciplineEventModel
		q := pushdown(s.db.WithContext(ctx), "discipline_event_created_at", hint)
		if err := q.Order("discipline_event_created_at ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		events := make([]Event, 0, len(rows))
		for _, r := range rows {
			events = append(events, eventFromDiscipline(r, s.loc))
		}
		return events, nil

	case KindRAMReferral:
		var rows []model.RAMReferralModel
		q := pushdown(s.db.WithContext(ctx), "ram_referral_created_at", hint)
		if err := q.Order("ram_referral_created_at ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		events := make([]Event, 0, len(rows))
		for _, r := range rows {
			events = append(events, eventFromRAM(r, s.loc))
		}
		return events, nil

	case KindRiskFlag:
		var rows []model.RiskStudentModel
		q := pushdown(s.db.WithContext(ctx), "risk_student_created_at", hint)
		if err := q.Order("risk_student_created_at ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		events := make([]Event, 0, len(rows))
		for _, r := range rows {
			events = append(events, eventFromRisk(r, s.loc))
		}
		return events, nil

	case KindClassActivity:
		var rows []model.ClassActivityModel
		q := pushdown(s.db.WithContext(ctx), "class_activity_date", hint)
		if err := q.Order("class_activity_date ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		events := make([]Event, 0, len(rows))
		for _, r := range rows {
			events = append(events, eventFromActivity(r, s.loc))
		}
		return events, nil

	default: // KindParentContact
		var rows []model.ParentContactModel
		q := pushdown(s.db.WithContext(ctx), "parent_contact_date", hint)
		if err := q.Order("parent_contact_date ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		events := make([]Event, 0, len(rows))
		for _, r := range rows {
			events = append(events, eventFromContact(r, s.loc))
		}
		return events, nil
	}
}

/* =========================================================
 * Satır → Event dönüşümleri (sınır katmanı; fallible parse burada)
 * ========================================================= */

func localTime(t time.Time, loc *time.Location) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(loc)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func eventFromReferral(m model.GuidanceReferralModel, loc *time.Location) Event {
	e := NewEvent(KindReferral, m.GuidanceReferralStudentName, m.GuidanceReferralClassLabel,
		m.GuidanceReferralReason, localTime(m.GuidanceReferralCreatedAt, loc))
	e.TeacherName = deref(m.GuidanceReferralTeacherName)
	e.Status = m.GuidanceReferralStatus
	e.Note = deref(m.GuidanceReferralNote)
	return e
}

func eventFromDiscipline(m model.DisciplineEventModel, loc *time.Location) Event {
	e := NewEvent(KindDiscipline, m.DisciplineEventStudentName, m.DisciplineEventClassLabel,
		m.DisciplineEventPenaltyType, localTime(m.DisciplineEventCreatedAt, loc))
	e.Status = m.DisciplineEventStatus
	e.Note = deref(m.DisciplineEventDescription)
	return e
}

func eventFromRAM(m model.RAMReferralModel, loc *time.Location) Event {
	e := NewEvent(KindRAMReferral, m.RAMReferralStudentName, m.RAMReferralClassLabel,
		m.RAMReferralReason, localTime(m.RAMReferralCreatedAt, loc))
	e.Status = m.RAMReferralStatus
	e.Note = deref(m.RAMReferralNote)
	return e
}

func eventFromRisk(m model.RiskStudentModel, loc *time.Location) Event {
	e := NewEvent(KindRiskFlag, m.RiskStudentStudentName, m.RiskStudentClassLabel,
		m.RiskStudentSeverity, localTime(m.RiskStudentCreatedAt, loc))
	e.Status = m.RiskStudentStatus
	e.Note = deref(m.RiskStudentNote)
	return e
}

func eventFromActivity(m model.ClassActivityModel, loc *time.Location) Event {
	e := NewEvent(KindClassActivity, "", m.ClassActivityClassLabel,
		m.ClassActivityActivityType, localTime(m.ClassActivityDate, loc))
	e.Note = deref(m.ClassActivityNote)
	return e
}

func eventFromContact(m model.ParentContactModel, loc *time.Location) Event {
	e := NewEvent(KindParentContact, m.ParentContactStudentName, m.ParentContactClassLabel,
		m.ParentContactContactType, localTime(m.ParentContactDate, loc))
	e.Note = deref(m.ParentContactNote)
	return e
}
