package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rehberlik_backend/internals/configs"
	"rehberlik_backend/internals/features/rehberlik/reporting/dto"
	service "rehberlik_backend/internals/features/rehberlik/reporting/service"
	helper "rehberlik_backend/internals/helpers"
)

type StatsController struct {
	DB       *gorm.DB
	Builder  *service.Builder
	Validate *validator.Validate
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{
		DB:       db,
		Builder:  service.NewBuilder(service.NewDBSources(db, configs.AppLocation)...),
		Validate: validator.New(),
	}
}

/* ===================== STATS ===================== */
// GET /stats?from=&to=&teacher=&class=
// Sınır verilmezse "tüm zamanlar".
func (ctrl *StatsController) GetStats(c *fiber.Ctx) error {
	var req dto.StatsQueryRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	loc := configs.AppLocation
	w := service.Window{Label: "Tüm Zamanlar"}
	if req.From != "" {
		d, err := time.ParseInLocation("2006-01-02", req.From, loc)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from geçersiz (YYYY-MM-DD)")
		}
		w.Start = &d
		w.Label = req.From
	}
	if req.To != "" {
		d, err := time.ParseInLocation("2006-01-02", req.To, loc)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "to geçersiz (YYYY-MM-DD)")
		}
		end := d.AddDate(0, 0, 1) // to günü dahil, yarı açık uca çevir
		w.End = &end
		if req.From != "" {
			w.Label = req.From + " / " + req.To
		} else {
			w.Label = "... / " + req.To
		}
	}
	// Ters aralık sessizce boş rapor üretmesin
	if w.Start != nil && w.End != nil && !w.Start.Before(*w.End) {
		return fiber.NewError(fiber.StatusBadRequest, "from, to'dan sonra olamaz")
	}

	filter := service.ReportFilter{
		TeacherKey: helper.NormalizeText(req.Teacher),
		ClassKey:   helper.NormalizeText(req.Class),
		ClassLabel: req.Class,
	}

	rep, err := ctrl.Builder.BuildFiltered(c.UserContext(), w, filter)
	if err != nil {
		if errors.Is(err, service.ErrNoSources) {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
	}

	return helper.Success(c, "İstatistikler hazırlandı", rep)
}

/* ===================== TREND ===================== */
// GET /stats/trend?period=week|month
// Boşluksuz gün serisi (grafikler kesintisiz çizilsin diye sıfır günler dahil).
func (ctrl *StatsController) GetTrend(c *fiber.Ctx) error {
	periodRaw := c.Query("period", "week")
	pt, err := service.ParsePeriodType(periodRaw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if pt != service.PeriodWeek && pt != service.PeriodMonth {
		return fiber.NewError(fiber.StatusBadRequest, "Trend yalnızca week|month destekler")
	}

	w, err := service.ResolveWindow(service.PeriodSpec{Type: pt}, time.Now().In(configs.AppLocation))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rep, err := ctrl.Builder.Build(c.UserContext(), w)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Trend hesaplanamadı")
	}

	return helper.Success(c, "Trend hazırlandı", fiber.Map{
		"window":         rep.Window,
		"trend":          rep.Trend,
		"record_count":   rep.RecordCount,
		"failed_sources": rep.FailedSources,
	})
}

/* ===================== ÖĞRENCİ RAPORU ===================== */
// GET /students/:name/report?period=&format=json|text|csv|html
// Aynı builder, tek öğrencinin normalize anahtarına daraltılır.
func (ctrl *StatsController) GetStudentReport(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Öğrenci adı zorunlu")
	}

	pt := service.PeriodAll
	if raw := c.Query("period"); raw != "" {
		parsed, err := service.ParsePeriodType(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		pt = parsed
	}
	w, err := service.ResolveWindow(service.PeriodSpec{Type: pt}, time.Now().In(configs.AppLocation))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rep, err := ctrl.Builder.BuildForStudent(c.UserContext(), w, name)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Öğrenci raporu oluşturulamadı")
	}

	// Görüntü zenginleştirmesi: en sık yönlendiren öğretmeni kadroda ara.
	// Bulunamaması raporu etkilemez.
	if top := rep.ReferralsByTeacher.Top; top != nil {
		if t, err := service.MatchTeacher(c.UserContext(), ctrl.DB, helper.NormalizeText(top.Name)); err == nil && t != nil && t.TeacherRosterBranch != nil {
			top.Name = top.Name + " (" + *t.TeacherRosterBranch + ")"
		}
	}

	switch c.Query("format", "json") {
	case "text":
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(service.RenderNarrative(rep))
	case "csv":
		out, err := service.RenderCSV(rep)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "CSV üretilemedi")
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="ogrenci-raporu.csv"`)
		return c.SendString(out)
	case "html":
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(service.RenderPrintHTML(rep))
	default:
		return helper.Success(c, "Öğrenci raporu hazırlandı", rep)
	}
}
