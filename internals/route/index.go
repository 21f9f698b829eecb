package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordsRoute "rehberlik_backend/internals/features/rehberlik/records/route"
	reportingRoute "rehberlik_backend/internals/features/rehberlik/reporting/route"
)

// SetupRoutes tüm endpoint'leri bağlar.
//   /api/a/... → kayıt yazma yüzeyi (panel formları)
//   /api/u/... → okuma/raporlama yüzeyi
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api")

	admin := api.Group("/a/rehberlik")
	recordsRoute.RecordsRoutes(admin, db)

	user := api.Group("/u/rehberlik")
	reportingRoute.ReportingRoutes(user, db)
}
