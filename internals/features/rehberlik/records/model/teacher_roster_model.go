package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherRosterModel: öğretmen kadrosu.
// Yalnızca görüntüleme zenginleştirmesi için kullanılır (branş vb.);
// aggregation doğruluğu bu tabloya bağlı değildir.
type TeacherRosterModel struct {
	TeacherRosterId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_roster_id" json:"teacher_roster_id"`

	TeacherRosterName   string  `gorm:"not null;column:teacher_roster_name"   json:"teacher_roster_name"`
	TeacherRosterBranch *string `gorm:"column:teacher_roster_branch"          json:"teacher_roster_branch,omitempty"`

	TeacherRosterCreatedAt time.Time      `gorm:"column:teacher_roster_created_at;autoCreateTime" json:"teacher_roster_created_at"`
	TeacherRosterDeletedAt gorm.DeletedAt `gorm:"column:teacher_roster_deleted_at;index"          json:"teacher_roster_deleted_at,omitempty"`
}

func (TeacherRosterModel) TableName() string { return "teacher_roster" }
