package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rehberlik_backend/internals/configs"
	"rehberlik_backend/internals/features/rehberlik/reporting/dto"
	snapService "rehberlik_backend/internals/features/rehberlik/snapshots/service"
	helper "rehberlik_backend/internals/helpers"
)

type SnapshotController struct {
	Snapshots *snapService.SnapshotService
}

func NewSnapshotController(db *gorm.DB) *SnapshotController {
	return &SnapshotController{Snapshots: snapService.NewSnapshotService(db)}
}

/* ===================== LIST ===================== */
// GET /reports/snapshots
// needs_provisioning, "tablo yok" ile "henüz snapshot yok"u ayırır;
// panel hata ekranı yerine kurulum ipucu gösterir.
func (ctrl *SnapshotController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, needsProvisioning, err := ctrl.Snapshots.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ReportSnapshotResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewReportSnapshotResponse(r))
	}

	return helper.Success(c, "Snapshot listesi", fiber.Map{
		"items":              resp,
		"needs_provisioning": needsProvisioning,
		"pagination":         helper.BuildPagination(p.Page, p.PerPage, len(resp), total),
	})
}

/* ===================== PRUNE ===================== */
// DELETE /reports/snapshots/prune
// Saklama süresi dolan kayıtları siler. Asla zamanlanmış/otomatik
// çalışmaz; panelden açıkça tetiklenir. SNAPSHOT_RETENTION_DAYS=0
// iken hiçbir şey silinmez.
func (ctrl *SnapshotController) Prune(c *fiber.Ctx) error {
	retention := configs.SnapshotRetentionDays
	deleted, err := ctrl.Snapshots.PruneOlderThan(c.UserContext(), retention)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Snapshot temizliği tamamlandı", fiber.Map{
		"retention_days": retention,
		"deleted":        deleted,
	})
}

/* ===================== DETAIL ===================== */
// GET /reports/snapshots/:id — tam metin dahil (yeniden gösterim)
func (ctrl *SnapshotController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID geçersiz")
	}

	row, err := ctrl.Snapshots.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, snapService.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Snapshot bulunamadı")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Snapshot detayı", row)
}
