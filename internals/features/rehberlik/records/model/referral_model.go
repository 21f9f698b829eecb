package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuidanceReferralModel: öğretmenin rehberlik servisine yönlendirme kaydı.
// Yönlendirmede olay anı = oluşturulma anı.
type GuidanceReferralModel struct {
	GuidanceReferralId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:guidance_referral_id" json:"guidance_referral_id"`

	GuidanceReferralStudentName string  `gorm:"not null;column:guidance_referral_student_name" json:"guidance_referral_student_name"`
	GuidanceReferralClassLabel  string  `gorm:"column:guidance_referral_class_label"           json:"guidance_referral_class_label"`
	GuidanceReferralReason      string  `gorm:"column:guidance_referral_reason"                json:"guidance_referral_reason"`
	GuidanceReferralTeacherName *string `gorm:"column:guidance_referral_teacher_name"          json:"guidance_referral_teacher_name,omitempty"`
	GuidanceReferralNote        *string `gorm:"column:guidance_referral_note"                  json:"guidance_referral_note,omitempty"`
	GuidanceReferralStatus      string  `gorm:"not null;default:'beklemede';column:guidance_referral_status" json:"guidance_referral_status"`

	GuidanceReferralCreatedAt time.Time      `gorm:"column:guidance_referral_created_at;autoCreateTime" json:"guidance_referral_created_at"`
	GuidanceReferralUpdatedAt *time.Time     `gorm:"column:guidance_referral_updated_at;autoUpdateTime" json:"guidance_referral_updated_at,omitempty"`
	GuidanceReferralDeletedAt gorm.DeletedAt `gorm:"column:guidance_referral_deleted_at;index"          json:"guidance_referral_deleted_at,omitempty"`
}

func (GuidanceReferralModel) TableName() string { return "guidance_referrals" }
