package dto

import (
	"time"

	"github.com/google/uuid"

	m "rehberlik_backend/internals/features/rehberlik/records/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateGuidanceReferralRequest struct {
	// Zorunlu: öğrenci adı
	GuidanceReferralStudentName string `json:"guidance_referral_student_name" validate:"required,max=150"`

	GuidanceReferralClassLabel  string  `json:"guidance_referral_class_label"  validate:"omitempty,max=100"`
	GuidanceReferralReason      string  `json:"guidance_referral_reason"       validate:"omitempty,max=200"`
	GuidanceReferralTeacherName *string `json:"guidance_referral_teacher_name" validate:"omitempty,max=150"`
	GuidanceReferralNote        *string `json:"guidance_referral_note"         validate:"omitempty,max=2000"`
}

type UpdateGuidanceReferralStatusRequest struct {
	GuidanceReferralStatus string `json:"guidance_referral_status" validate:"required,max=50"`
}

// Filter / List (query)
type FilterGuidanceReferralRequest struct {
	Student *string `query:"student" validate:"omitempty,max=150"`
	Class   *string `query:"class"   validate:"omitempty,max=100"`
	From    *string `query:"from"    validate:"omitempty,datetime=2006-01-02"`
	To      *string `query:"to"      validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type GuidanceReferralResponse struct {
	GuidanceReferralId          uuid.UUID  `json:"guidance_referral_id"`
	GuidanceReferralStudentName string     `json:"guidance_referral_student_name"`
	GuidanceReferralClassLabel  string     `json:"guidance_referral_class_label"`
	GuidanceReferralReason      string     `json:"guidance_referral_reason"`
	GuidanceReferralTeacherName *string    `json:"guidance_referral_teacher_name,omitempty"`
	GuidanceReferralNote        *string    `json:"guidance_referral_note,omitempty"`
	GuidanceReferralStatus      string     `json:"guidance_referral_status"`
	GuidanceReferralCreatedAt   time.Time  `json:"guidance_referral_created_at"`
	GuidanceReferralUpdatedAt   *time.Time `json:"guidance_referral_updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateGuidanceReferralRequest) ToModel() m.GuidanceReferralModel {
	return m.GuidanceReferralModel{
		GuidanceReferralStudentName: r.GuidanceReferralStudentName,
		GuidanceReferralClassLabel:  r.GuidanceReferralClassLabel,
		GuidanceReferralReason:      r.GuidanceReferralReason,
		GuidanceReferralTeacherName: r.GuidanceReferralTeacherName,
		GuidanceReferralNote:        r.GuidanceReferralNote,
		GuidanceReferralStatus:      "beklemede",
	}
}

func NewGuidanceReferralResponse(mdl m.GuidanceReferralModel) GuidanceReferralResponse {
	return GuidanceReferralResponse{
		GuidanceReferralId:          mdl.GuidanceReferralId,
		GuidanceReferralStudentName: mdl.GuidanceReferralStudentName,
		GuidanceReferralClassLabel:  mdl.GuidanceReferralClassLabel,
		GuidanceReferralReason:      mdl.GuidanceReferralReason,
		GuidanceReferralTeacherName: mdl.GuidanceReferralTeacherName,
		GuidanceReferralNote:        mdl.GuidanceReferralNote,
		GuidanceReferralStatus:      mdl.GuidanceReferralStatus,
		GuidanceReferralCreatedAt:   mdl.GuidanceReferralCreatedAt,
		GuidanceReferralUpdatedAt:   mdl.GuidanceReferralUpdatedAt,
	}
}
