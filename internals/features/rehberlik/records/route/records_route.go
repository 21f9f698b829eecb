package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recCtrl "rehberlik_backend/internals/features/rehberlik/records/controller"
)

// RecordsRoutes kayıt tablolarının ince CRUD yüzeyi.
func RecordsRoutes(r fiber.Router, db *gorm.DB) {
	// =====================
	// Yönlendirmeler
	// =====================
	refCtl := recCtrl.NewGuidanceReferralController(db)
	refGroup := r.Group("/guidance-referrals")
	refGroup.Post("/", refCtl.Create)
	refGroup.Get("/", refCtl.List)
	refGroup.Get("/:id", refCtl.GetByID)
	refGroup.Patch("/:id/status", refCtl.UpdateStatus)
	refGroup.Delete("/:id", refCtl.Delete) // soft delete

	// =====================
	// Diğer kayıt tabloları
	// =====================
	ctl := recCtrl.NewRecordsController(db)

	dGroup := r.Group("/discipline-events")
	dGroup.Post("/", ctl.CreateDiscipline)
	dGroup.Get("/", ctl.ListDiscipline)
	dGroup.Delete("/:id", ctl.DeleteDiscipline)

	ramGroup := r.Group("/ram-referrals")
	ramGroup.Post("/", ctl.CreateRAMReferral)
	ramGroup.Get("/", ctl.ListRAMReferrals)
	ramGroup.Delete("/:id", ctl.DeleteRAMReferral)

	riskGroup := r.Group("/risk-students")
	riskGroup.Post("/", ctl.CreateRiskStudent)
	riskGroup.Get("/", ctl.ListRiskStudents)
	riskGroup.Delete("/:id", ctl.DeleteRiskStudent)

	actGroup := r.Group("/class-activities")
	actGroup.Post("/", ctl.CreateClassActivity)
	actGroup.Get("/", ctl.ListClassActivities)
	actGroup.Delete("/:id", ctl.DeleteClassActivity)

	pcGroup := r.Group("/parent-contacts")
	pcGroup.Post("/", ctl.CreateParentContact)
	pcGroup.Get("/", ctl.ListParentContacts)
	pcGroup.Delete("/:id", ctl.DeleteParentContact)

	rosterGroup := r.Group("/teacher-roster")
	rosterGroup.Post("/", ctl.CreateTeacherRoster)
	rosterGroup.Get("/", ctl.ListTeacherRoster)
}
