package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReportSnapshotModel: üretilip (gönderimi denenmiş) raporun değişmez
// denetim kaydı. Oluşturulduktan sonra asla güncellenmez; soft delete
// bile yok — saklama süresi dolunca PruneOlderThan kalıcı siler.
type ReportSnapshotModel struct {
	ReportSnapshotId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:report_snapshot_id" json:"report_snapshot_id"`

	ReportSnapshotPeriodType  string     `gorm:"not null;column:report_snapshot_period_type"  json:"report_snapshot_period_type"`
	ReportSnapshotPeriodLabel string     `gorm:"not null;column:report_snapshot_period_label" json:"report_snapshot_period_label"`
	ReportSnapshotWindowStart *time.Time `gorm:"column:report_snapshot_window_start"          json:"report_snapshot_window_start,omitempty"`
	ReportSnapshotWindowEnd   *time.Time `gorm:"column:report_snapshot_window_end"            json:"report_snapshot_window_end,omitempty"`

	ReportSnapshotRecordCount  int            `gorm:"not null;column:report_snapshot_record_count"  json:"report_snapshot_record_count"`
	ReportSnapshotCounts       datatypes.JSON `gorm:"column:report_snapshot_counts"                 json:"report_snapshot_counts,omitempty"` // kategori kırılımları (JSONB)
	ReportSnapshotRenderedText string         `gorm:"not null;column:report_snapshot_rendered_text" json:"report_snapshot_rendered_text"`
	ReportSnapshotDelivered    bool           `gorm:"not null;default:false;column:report_snapshot_delivered" json:"report_snapshot_delivered"`

	ReportSnapshotSentAt time.Time `gorm:"column:report_snapshot_sent_at;autoCreateTime" json:"report_snapshot_sent_at"`
}

func (ReportSnapshotModel) TableName() string { return "report_snapshots" }
