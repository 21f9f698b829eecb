package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RAMReferralModel: Rehberlik Araştırma Merkezi sevk kaydı.
// Status serbest metin gelir; raporlamada kapalı enum'a indirgenir
// (sonuclandi / iptal / diğer her şey = beklemede).
type RAMReferralModel struct {
	RAMReferralId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ram_referral_id" json:"ram_referral_id"`

	RAMReferralStudentName string  `gorm:"not null;column:ram_referral_student_name" json:"ram_referral_student_name"`
	RAMReferralClassLabel  string  `gorm:"column:ram_referral_class_label"           json:"ram_referral_class_label"`
	RAMReferralReason      string  `gorm:"column:ram_referral_reason"                json:"ram_referral_reason"`
	RAMReferralStatus      string  `gorm:"not null;default:'surecte';column:ram_referral_status" json:"ram_referral_status"`
	RAMReferralNote        *string `gorm:"column:ram_referral_note"                  json:"ram_referral_note,omitempty"`

	RAMReferralCreatedAt time.Time      `gorm:"column:ram_referral_created_at;autoCreateTime" json:"ram_referral_created_at"`
	RAMReferralUpdatedAt *time.Time     `gorm:"column:ram_referral_updated_at;autoUpdateTime" json:"ram_referral_updated_at,omitempty"`
	RAMReferralDeletedAt gorm.DeletedAt `gorm:"column:ram_referral_deleted_at;index"          json:"ram_referral_deleted_at,omitempty"`
}

func (RAMReferralModel) TableName() string { return "ram_referrals" }
