package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	repCtrl "rehberlik_backend/internals/features/rehberlik/reporting/controller"
	"rehberlik_backend/internals/middlewares"
)

// ReportingRoutes: dashboard istatistikleri, dönem raporu üretimi
// ve snapshot arşivi.
func ReportingRoutes(r fiber.Router, db *gorm.DB) {
	stats := repCtrl.NewStatsController(db)
	reports := repCtrl.NewReportController(db)
	snapshots := repCtrl.NewSnapshotController(db)

	// =====================
	// İstatistikler
	// =====================
	sGroup := r.Group("/stats")
	sGroup.Get("/", stats.GetStats)      // ?from=&to=&teacher=&class=
	sGroup.Get("/trend", stats.GetTrend) // ?period=week|month

	// =====================
	// Öğrenci geçmişi / risk profili
	// =====================
	r.Get("/students/:name/report", stats.GetStudentReport)

	// =====================
	// Dönem raporu + snapshot arşivi
	// =====================
	rGroup := r.Group("/reports")
	rGroup.Post("/", middlewares.ReportRateLimiter(), reports.Generate)
	rGroup.Get("/snapshots", snapshots.List)
	rGroup.Delete("/snapshots/prune", snapshots.Prune)
	rGroup.Get("/snapshots/:id", snapshots.GetByID)
}
