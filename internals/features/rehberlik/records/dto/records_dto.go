package dto

import (
	"time"

	m "rehberlik_backend/internals/features/rehberlik/records/model"
)

/* =========================================================
 * DİSİPLİN
 * ========================================================= */

type CreateDisciplineEventRequest struct {
	DisciplineEventStudentName string  `json:"discipline_event_student_name" validate:"required,max=150"`
	DisciplineEventClassLabel  string  `json:"discipline_event_class_label"  validate:"omitempty,max=100"`
	DisciplineEventPenaltyType string  `json:"discipline_event_penalty_type" validate:"omitempty,max=200"`
	DisciplineEventDescription *string `json:"discipline_event_description"  validate:"omitempty,max=2000"`
}

func (r CreateDisciplineEventRequest) ToModel() m.DisciplineEventModel {
	return m.DisciplineEventModel{
		DisciplineEventStudentName: r.DisciplineEventStudentName,
		DisciplineEventClassLabel:  r.DisciplineEventClassLabel,
		DisciplineEventPenaltyType: r.DisciplineEventPenaltyType,
		DisciplineEventDescription: r.DisciplineEventDescription,
		DisciplineEventStatus:      "aktif",
	}
}

/* =========================================================
 * RAM SEVK
 * ========================================================= */

type CreateRAMReferralRequest struct {
	RAMReferralStudentName string  `json:"ram_referral_student_name" validate:"required,max=150"`
	RAMReferralClassLabel  string  `json:"ram_referral_class_label"  validate:"omitempty,max=100"`
	RAMReferralReason      string  `json:"ram_referral_reason"       validate:"omitempty,max=200"`
	RAMReferralStatus      string  `json:"ram_referral_status"       validate:"omitempty,max=50"`
	RAMReferralNote        *string `json:"ram_referral_note"         validate:"omitempty,max=2000"`
}

func (r CreateRAMReferralRequest) ToModel() m.RAMReferralModel {
	status := r.RAMReferralStatus
	if status == "" {
		status = "surecte"
	}
	return m.RAMReferralModel{
		RAMReferralStudentName: r.RAMReferralStudentName,
		RAMReferralClassLabel:  r.RAMReferralClassLabel,
		RAMReferralReason:      r.RAMReferralReason,
		RAMReferralStatus:      status,
		RAMReferralNote:        r.RAMReferralNote,
	}
}

/* =========================================================
 * RİSKLİ ÖĞRENCİ
 * ========================================================= */

type CreateRiskStudentRequest struct {
	RiskStudentStudentName string  `json:"risk_student_student_name" validate:"required,max=150"`
	RiskStudentClassLabel  string  `json:"risk_student_class_label"  validate:"omitempty,max=100"`
	RiskStudentSeverity    string  `json:"risk_student_severity"     validate:"omitempty,oneof=dusuk orta yuksek kritik"`
	RiskStudentReason      string  `json:"risk_student_reason"       validate:"omitempty,max=200"`
	RiskStudentNote        *string `json:"risk_student_note"         validate:"omitempty,max=2000"`
}

func (r CreateRiskStudentRequest) ToModel() m.RiskStudentModel {
	severity := r.RiskStudentSeverity
	if severity == "" {
		severity = "orta"
	}
	return m.RiskStudentModel{
		RiskStudentStudentName: r.RiskStudentStudentName,
		RiskStudentClassLabel:  r.RiskStudentClassLabel,
		RiskStudentSeverity:    severity,
		RiskStudentReason:      r.RiskStudentReason,
		RiskStudentNote:        r.RiskStudentNote,
		RiskStudentStatus:      "active",
	}
}

/* =========================================================
 * SINIF ETKİNLİĞİ
 * ========================================================= */

type CreateClassActivityRequest struct {
	ClassActivityClassLabel   string  `json:"class_activity_class_label"   validate:"required,max=100"`
	ClassActivityActivityType string  `json:"class_activity_activity_type" validate:"omitempty,max=200"`
	ClassActivityTopic        *string `json:"class_activity_topic"         validate:"omitempty,max=300"`
	ClassActivityNote         *string `json:"class_activity_note"          validate:"omitempty,max=2000"`
	// Etkinlik tarihi (YYYY-MM-DD); olay anı bu tarihtir
	ClassActivityDate string `json:"class_activity_date" validate:"required,datetime=2006-01-02"`
}

func (r CreateClassActivityRequest) ToModel(loc *time.Location) m.ClassActivityModel {
	d, _ := time.ParseInLocation("2006-01-02", r.ClassActivityDate, loc)
	return m.ClassActivityModel{
		ClassActivityClassLabel:   r.ClassActivityClassLabel,
		ClassActivityActivityType: r.ClassActivityActivityType,
		ClassActivityTopic:        r.ClassActivityTopic,
		ClassActivityNote:         r.ClassActivityNote,
		ClassActivityDate:         d,
	}
}

/* =========================================================
 * VELİ GÖRÜŞMESİ
 * ========================================================= */

type CreateParentContactRequest struct {
	ParentContactStudentName string  `json:"parent_contact_student_name" validate:"required,max=150"`
	ParentContactClassLabel  string  `json:"parent_contact_class_label"  validate:"omitempty,max=100"`
	ParentContactContactType string  `json:"parent_contact_contact_type" validate:"omitempty,max=100"`
	ParentContactNote        *string `json:"parent_contact_note"         validate:"omitempty,max=2000"`
	ParentContactDate        string  `json:"parent_contact_date"         validate:"required,datetime=2006-01-02"`
}

func (r CreateParentContactRequest) ToModel(loc *time.Location) m.ParentContactModel {
	d, _ := time.ParseInLocation("2006-01-02", r.ParentContactDate, loc)
	return m.ParentContactModel{
		ParentContactStudentName: r.ParentContactStudentName,
		ParentContactClassLabel:  r.ParentContactClassLabel,
		ParentContactContactType: r.ParentContactContactType,
		ParentContactNote:        r.ParentContactNote,
		ParentContactDate:        d,
	}
}

/* =========================================================
 * ÖĞRETMEN KADROSU
 * ========================================================= */

type CreateTeacherRosterRequest struct {
	TeacherRosterName   string  `json:"teacher_roster_name"   validate:"required,max=150"`
	TeacherRosterBranch *string `json:"teacher_roster_branch" validate:"omitempty,max=100"`
}

func (r CreateTeacherRosterRequest) ToModel() m.TeacherRosterModel {
	return m.TeacherRosterModel{
		TeacherRosterName:   r.TeacherRosterName,
		TeacherRosterBranch: r.TeacherRosterBranch,
	}
}
