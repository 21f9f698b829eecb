package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RiskStudentModel: riskli öğrenci takip kaydı.
// Raporlamaya yalnızca status = 'active' olanlar girer.
type RiskStudentModel struct {
	RiskStudentId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:risk_student_id" json:"risk_student_id"`

	RiskStudentStudentName string  `gorm:"not null;column:risk_student_student_name" json:"risk_student_student_name"`
	RiskStudentClassLabel  string  `gorm:"column:risk_student_class_label"           json:"risk_student_class_label"`
	RiskStudentSeverity    string  `gorm:"not null;default:'orta';column:risk_student_severity" json:"risk_student_severity"`
	RiskStudentReason      string  `gorm:"column:risk_student_reason"                json:"risk_student_reason"`
	RiskStudentStatus      string  `gorm:"not null;default:'active';column:risk_student_status" json:"risk_student_status"`
	RiskStudentNote        *string `gorm:"column:risk_student_note"                  json:"risk_student_note,omitempty"`

	RiskStudentCreatedAt time.Time      `gorm:"column:risk_student_created_at;autoCreateTime" json:"risk_student_created_at"`
	RiskStudentUpdatedAt *time.Time     `gorm:"column:risk_student_updated_at;autoUpdateTime" json:"risk_student_updated_at,omitempty"`
	RiskStudentDeletedAt gorm.DeletedAt `gorm:"column:risk_student_deleted_at;index"          json:"risk_student_deleted_at,omitempty"`
}

func (RiskStudentModel) TableName() string { return "risk_students" }
