package dto

import (
	"time"

	"github.com/google/uuid"

	snapModel "rehberlik_backend/internals/features/rehberlik/snapshots/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// POST /reports — dönem raporu üret (+ opsiyonel Telegram gönderimi)
type GenerateReportRequest struct {
	// today | week | month | all | custom | term (Türkçe alias'lar da geçer)
	Period string `json:"period" validate:"required,max=30"`

	// period=custom için zorunlu tek gün
	CustomDate string `json:"custom_date" validate:"omitempty,datetime=2006-01-02"`

	// period=term için: "1", "2", "yillik" ve dönem BAŞLANGIÇ yılı
	TermID       string `json:"term_id"       validate:"omitempty,max=30"`
	AcademicYear int    `json:"academic_year" validate:"omitempty,min=1900,max=2100"`

	// nil/true → gönder; false → yalnızca üret + sakla ("gönderimsiz üretim")
	Deliver *bool `json:"deliver"`
}

func (r GenerateReportRequest) ShouldDeliver() bool {
	return r.Deliver == nil || *r.Deliver
}

// GET /stats — serbest aralık + filtreler (hepsi opsiyonel; boş = tüm zamanlar)
type StatsQueryRequest struct {
	From    string `query:"from"    validate:"omitempty,datetime=2006-01-02"`
	To      string `query:"to"      validate:"omitempty,datetime=2006-01-02"`
	Teacher string `query:"teacher" validate:"omitempty,max=150"`
	Class   string `query:"class"   validate:"omitempty,max=100"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ReportSnapshotResponse struct {
	ReportSnapshotId          uuid.UUID  `json:"report_snapshot_id"`
	ReportSnapshotPeriodType  string     `json:"report_snapshot_period_type"`
	ReportSnapshotPeriodLabel string     `json:"report_snapshot_period_label"`
	ReportSnapshotWindowStart *time.Time `json:"report_snapshot_window_start,omitempty"`
	ReportSnapshotWindowEnd   *time.Time `json:"report_snapshot_window_end,omitempty"`
	ReportSnapshotRecordCount int        `json:"report_snapshot_record_count"`
	ReportSnapshotDelivered   bool       `json:"report_snapshot_delivered"`
	ReportSnapshotSentAt      time.Time  `json:"report_snapshot_sent_at"`
}

func NewReportSnapshotResponse(mdl snapModel.ReportSnapshotModel) ReportSnapshotResponse {
	return ReportSnapshotResponse{
		ReportSnapshotId:          mdl.ReportSnapshotId,
		ReportSnapshotPeriodType:  mdl.ReportSnapshotPeriodType,
		ReportSnapshotPeriodLabel: mdl.ReportSnapshotPeriodLabel,
		ReportSnapshotWindowStart: mdl.ReportSnapshotWindowStart,
		ReportSnapshotWindowEnd:   mdl.ReportSnapshotWindowEnd,
		ReportSnapshotRecordCount: mdl.ReportSnapshotRecordCount,
		ReportSnapshotDelivered:   mdl.ReportSnapshotDelivered,
		ReportSnapshotSentAt:      mdl.ReportSnapshotSentAt,
	}
}
