package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rehberlik_backend/internals/configs"
	"rehberlik_backend/internals/features/rehberlik/reporting/dto"
	service "rehberlik_backend/internals/features/rehberlik/reporting/service"
	snapService "rehberlik_backend/internals/features/rehberlik/snapshots/service"
	tgService "rehberlik_backend/internals/features/rehberlik/telegram/service"
	helper "rehberlik_backend/internals/helpers"
)

type ReportController struct {
	Builder   *service.Builder
	Snapshots *snapService.SnapshotService
	Telegram  *tgService.TelegramService
	Validate  *validator.Validate
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		Builder:   service.NewBuilder(service.NewDBSources(db, configs.AppLocation)...),
		Snapshots: snapService.NewSnapshotService(db),
		Telegram:  tgService.NewTelegramService(),
		Validate:  validator.New(),
	}
}

/* ===================== GENERATE ===================== */
// POST /reports
// Akış: pencere çöz → rapor kur → anlatı render et → (opsiyonel) gönder
// → snapshot yaz. Gönderim hatası render edilmiş metni kaybettirmez:
// 502 ile birlikte metin ve rapor caller'a döner ki yeniden hesaplamadan
// gönderim tekrar denenebilsin.
func (ctrl *ReportController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// 1) Dönem belirteci — fetch'ten ÖNCE reddedilir
	pt, err := service.ParsePeriodType(req.Period)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	spec := service.PeriodSpec{Type: pt, TermID: req.TermID, AcademicYear: req.AcademicYear}
	if pt == service.PeriodCustom {
		if req.CustomDate == "" {
			return fiber.NewError(fiber.StatusBadRequest, "custom_date zorunlu (period=custom)")
		}
		d, perr := time.ParseInLocation("2006-01-02", req.CustomDate, configs.AppLocation)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "custom_date geçersiz")
		}
		spec.CustomDate = d
	}

	w, err := service.ResolveWindow(spec, time.Now().In(configs.AppLocation))
	if err != nil {
		var ip *service.InvalidPeriodError
		if errors.As(err, &ip) {
			return fiber.NewError(fiber.StatusBadRequest, ip.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// 2) Rapor + anlatı
	rep, err := ctrl.Builder.Build(c.UserContext(), w)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
	}
	text := service.RenderNarrative(rep)

	// 3) Gönderim (istenmişse)
	delivered := false
	if req.ShouldDeliver() {
		if err := ctrl.Telegram.Send(text); err != nil {
			// DeliveryFailed: aggregation hatalarından ayrı yüzer;
			// hesaplanan rapor ve metin kaybolmaz
			return helper.ErrorWithDetails(c, fiber.StatusBadGateway, "Telegram gönderimi başarısız", fiber.Map{
				"rendered_text": text,
				"record_count":  rep.RecordCount,
				"report":        rep,
			})
		}
		delivered = true
	}

	// 4) Snapshot — tek atomik append, içerik aynı olsa bile yeni kayıt
	snapshotID, err := ctrl.Snapshots.Save(c.UserContext(), rep, string(pt), text, delivered)
	if err != nil {
		// Rapor üretildi ama denetim kaydı yazılamadı; metni yine de dön
		log.Printf("⚠️ snapshot yazılamadı: %v", err)
		return helper.ErrorWithDetails(c, fiber.StatusInternalServerError, "Snapshot kaydedilemedi", fiber.Map{
			"rendered_text": text,
			"record_count":  rep.RecordCount,
			"delivered":     delivered,
		})
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Rapor üretildi", fiber.Map{
		"snapshot_id":    snapshotID,
		"record_count":   rep.RecordCount,
		"delivered":      delivered,
		"period_label":   w.Label,
		"failed_sources": rep.FailedSources,
		"rendered_text":  text,
	})
}
