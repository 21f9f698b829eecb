package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParentContactModel: veli görüşme kaydı.
// Olay anı = görüşme tarihi.
type ParentContactModel struct {
	ParentContactId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_contact_id" json:"parent_contact_id"`

	ParentContactStudentName string    `gorm:"not null;column:parent_contact_student_name" json:"parent_contact_student_name"`
	ParentContactClassLabel  string    `gorm:"column:parent_contact_class_label"           json:"parent_contact_class_label"`
	ParentContactContactType string    `gorm:"column:parent_contact_contact_type"          json:"parent_contact_contact_type"`
	ParentContactNote        *string   `gorm:"column:parent_contact_note"                  json:"parent_contact_note,omitempty"`
	ParentContactDate        time.Time `gorm:"type:date;not null;column:parent_contact_date" json:"parent_contact_date"`

	ParentContactCreatedAt time.Time      `gorm:"column:parent_contact_created_at;autoCreateTime" json:"parent_contact_created_at"`
	ParentContactUpdatedAt *time.Time     `gorm:"column:parent_contact_updated_at;autoUpdateTime" json:"parent_contact_updated_at,omitempty"`
	ParentContactDeletedAt gorm.DeletedAt `gorm:"column:parent_contact_deleted_at;index"          json:"parent_contact_deleted_at,omitempty"`
}

func (ParentContactModel) TableName() string { return "parent_contacts" }
