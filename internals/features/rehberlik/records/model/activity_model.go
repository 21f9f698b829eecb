package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassActivityModel: sınıfta yapılan rehberlik etkinliği.
// Olay anı = etkinlik tarihi (oluşturulma anı değil).
type ClassActivityModel struct {
	ClassActivityId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_activity_id" json:"class_activity_id"`

	ClassActivityClassLabel   string    `gorm:"not null;column:class_activity_class_label"  json:"class_activity_class_label"`
	ClassActivityActivityType string    `gorm:"column:class_activity_activity_type"         json:"class_activity_activity_type"`
	ClassActivityTopic        *string   `gorm:"column:class_activity_topic"                 json:"class_activity_topic,omitempty"`
	ClassActivityNote         *string   `gorm:"column:class_activity_note"                  json:"class_activity_note,omitempty"`
	ClassActivityDate         time.Time `gorm:"type:date;not null;column:class_activity_date" json:"class_activity_date"`

	ClassActivityCreatedAt time.Time      `gorm:"column:class_activity_created_at;autoCreateTime" json:"class_activity_created_at"`
	ClassActivityUpdatedAt *time.Time     `gorm:"column:class_activity_updated_at;autoUpdateTime" json:"class_activity_updated_at,omitempty"`
	ClassActivityDeletedAt gorm.DeletedAt `gorm:"column:class_activity_deleted_at;index"          json:"class_activity_deleted_at,omitempty"`
}

func (ClassActivityModel) TableName() string { return "class_activities" }
