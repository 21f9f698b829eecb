package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	reporting "rehberlik_backend/internals/features/rehberlik/reporting/service"
	"rehberlik_backend/internals/features/rehberlik/snapshots/model"

	"github.com/bytedance/sonic"
)

/* =========================================================
 * SNAPSHOT STORE ADAPTER
 * Tek atomik append; motor deduplicate ETMEZ — her açık
 * "üret/gönder" aksiyonu yeni bir denetim kaydıdır.
 * ========================================================= */

// ErrNotFound: istenen snapshot yok.
var ErrNotFound = errors.New("snapshot bulunamadı")

type SnapshotService struct {
	DB *gorm.DB
}

func NewSnapshotService(db *gorm.DB) *SnapshotService {
	return &SnapshotService{DB: db}
}

// Save raporu + render edilmiş metni değişmez kayıt olarak ekler.
// Aynı içerik iki kez gönderilirse iki ayrı id üretilir.
func (s *SnapshotService) Save(ctx context.Context, rep *reporting.Report, periodType, renderedText string, delivered bool) (uuid.UUID, error) {
	counts, err := sonic.Marshal(map[string]reporting.AggregationResult{
		"referrals_by_reason": rep.ReferralsByReason,
		"discipline_by_type":  rep.DisciplineByType,
		"activities_by_type":  rep.ActivitiesByType,
		"risk_by_severity":    rep.RiskBySeverity,
	})
	if err != nil {
		return uuid.Nil, err
	}

	row := model.ReportSnapshotModel{
		ReportSnapshotPeriodType:   periodType,
		ReportSnapshotPeriodLabel:  rep.Window.Label,
		ReportSnapshotWindowStart:  rep.Window.Start,
		ReportSnapshotWindowEnd:    rep.Window.End,
		ReportSnapshotRecordCount:  rep.RecordCount,
		ReportSnapshotCounts:       datatypes.JSON(counts),
		ReportSnapshotRenderedText: renderedText,
		ReportSnapshotDelivered:    delivered,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return uuid.Nil, err
	}
	return row.ReportSnapshotId, nil
}

// List en yeniden eskiye sıralı döner. Tablo henüz yoksa bu ölümcül
// değildir: boş liste + needsProvisioning=true döner ki panel
// "depolama kurulmamış" ipucunu boş listeden ayırt edebilsin.
func (s *SnapshotService) List(ctx context.Context, limit, offset int) (rows []model.ReportSnapshotModel, total int64, needsProvisioning bool, err error) {
	q := s.DB.WithContext(ctx).Model(&model.ReportSnapshotModel{})
	if err = q.Count(&total).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, 0, true, nil
		}
		return nil, 0, false, err
	}

	q = s.DB.WithContext(ctx).Order("report_snapshot_sent_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err = q.Find(&rows).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, 0, true, nil
		}
		return nil, 0, false, err
	}
	return rows, total, false, nil
}

func (s *SnapshotService) Get(ctx context.Context, id uuid.UUID) (*model.ReportSnapshotModel, error) {
	var row model.ReportSnapshotModel
	err := s.DB.WithContext(ctx).
		Where("report_snapshot_id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || isUndefinedTable(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// PruneOlderThan saklama süresi dolan kayıtları kalıcı siler.
// retentionDays <= 0 → hiçbir şey silinmez (süresiz saklama).
// Asla otomatik çağrılmaz; saklama politikası açık bir konfigürasyondur.
func (s *SnapshotService) PruneOlderThan(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := s.DB.WithContext(ctx).
		Where("report_snapshot_sent_at < ?", cutoff).
		Delete(&model.ReportSnapshotModel{})
	return res.RowsAffected, res.Error
}

// isUndefinedTable: Postgres 42P01 (undefined_table) → StorageNotProvisioned.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}
