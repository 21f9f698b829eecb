package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DisciplineEventModel: disiplin olayı (ceza türüyle birlikte).
type DisciplineEventModel struct {
	DisciplineEventId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:discipline_event_id" json:"discipline_event_id"`

	DisciplineEventStudentName string  `gorm:"not null;column:discipline_event_student_name" json:"discipline_event_student_name"`
	DisciplineEventClassLabel  string  `gorm:"column:discipline_event_class_label"           json:"discipline_event_class_label"`
	DisciplineEventPenaltyType string  `gorm:"column:discipline_event_penalty_type"          json:"discipline_event_penalty_type"`
	DisciplineEventDescription *string `gorm:"column:discipline_event_description"           json:"discipline_event_description,omitempty"`
	DisciplineEventStatus      string  `gorm:"not null;default:'aktif';column:discipline_event_status" json:"discipline_event_status"`

	DisciplineEventCreatedAt time.Time      `gorm:"column:discipline_event_created_at;autoCreateTime" json:"discipline_event_created_at"`
	DisciplineEventUpdatedAt *time.Time     `gorm:"column:discipline_event_updated_at;autoUpdateTime" json:"discipline_event_updated_at,omitempty"`
	DisciplineEventDeletedAt gorm.DeletedAt `gorm:"column:discipline_event_deleted_at;index"          json:"discipline_event_deleted_at,omitempty"`
}

func (DisciplineEventModel) TableName() string { return "discipline_events" }
