package controller

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rehberlik_backend/internals/configs"
	"rehberlik_backend/internals/features/rehberlik/records/dto"
	"rehberlik_backend/internals/features/rehberlik/records/model"
	helper "rehberlik_backend/internals/helpers"
)

// RecordsController: disiplin, RAM sevk, risk, etkinlik, veli görüşmesi
// ve kadro tabloları için ince CRUD. Motorun veri yüzeyi; iş mantığı yok.
type RecordsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRecordsController(db *gorm.DB) *RecordsController {
	return &RecordsController{DB: db, Validate: validator.New()}
}

func (ctrl *RecordsController) list(c *fiber.Ctx, mdl interface{}, rows interface{}, orderCol, msg string) error {
	p := helper.ResolvePaging(c, 20, 200)

	var total int64
	if err := ctrl.DB.Model(mdl).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Order(orderCol + " DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	count := 0
	if v := reflect.ValueOf(rows); v.Kind() == reflect.Ptr && v.Elem().Kind() == reflect.Slice {
		count = v.Elem().Len()
	}

	return helper.Success(c, msg, fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPagination(p.Page, p.PerPage, count, total),
	})
}

func (ctrl *RecordsController) softDelete(c *fiber.Ctx, mdl interface{}, idCol, msg string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID geçersiz")
	}
	res := ctrl.DB.Delete(mdl, idCol+" = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kayıt bulunamadı")
	}
	return helper.Success(c, msg, fiber.Map{"id": id})
}

/* ===================== DİSİPLİN ===================== */

func (ctrl *RecordsController) CreateDiscipline(c *fiber.Ctx) error {
	var req dto.CreateDisciplineEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Kayıt oluşturulamadı")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Disiplin olayı oluşturuldu", mdl)
}

func (ctrl *RecordsController) ListDiscipline(c *fiber.Ctx) error {
	var rows []model.DisciplineEventModel
	return ctrl.list(c, &model.DisciplineEventModel{}, &rows, "discipline_event_created_at", "Disiplin olayları listelendi")
}

func (ctrl *RecordsController) DeleteDiscipline(c *fiber.Ctx) error {
	return ctrl.softDelete(c, &model.DisciplineEventModel{}, "discipline_event_id", "Disiplin olayı silindi")
}

/* ===================== RAM SEVK ===================== */

func (ctrl *RecordsController) CreateRAMReferral(c *fiber.Ctx) error {
	var req dto.CreateRAMReferralRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Kayıt oluşturulamadı")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "RAM sevki oluşturuldu", mdl)
}

func (ctrl *RecordsController) ListRAMReferrals(c *fiber.Ctx) error {
	var rows []model.RAMReferralModel
	return ctrl.list(c, &model.RAMReferralModel{}, &rows, "ram_referral_created_at", "RAM sevkleri listelendi")
}

func (ctrl *RecordsController) DeleteRAMReferral(c *fiber.Ctx) error {
	return ctrl.softDelete(c, &model.RAMReferralModel{}, "ram_referral_id", "RAM sevki silindi")
}

/* ===================== RİSKLİ ÖĞRENCİ ===================== */

func (ctrl *RecordsController) CreateRiskStudent(c *fiber.Ctx) error {
	var req dto.CreateRiskStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Kayıt oluşturulamadı")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Risk kaydı oluşturuldu", mdl)
}

func (ctrl *RecordsController) ListRiskStudents(c *fiber.Ctx) error {
	var rows []model.RiskStudentModel
	return ctrl.list(c, &model.RiskStudentModel{}, &rows, "risk_student_created_at", "Risk kayıtları listelendi")
}

func (ctrl *RecordsController) DeleteRiskStudent(c *fiber.Ctx) error {
	return ctrl.softDelete(c, &model.RiskStudentModel{}, "risk_student_id", "Risk kaydı silindi")
}

/* ===================== SINIF ETKİNLİĞİ ===================== */

func (ctrl *RecordsController) CreateClassActivity(c *fiber.Ctx) error {
	var req dto.CreateClassActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	mdl := req.ToModel(configs.AppLocation)
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Kayıt oluşturulamadı")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Etkinlik oluşturuldu", mdl)
}

func (ctrl *RecordsController) ListClassActivities(c *fiber.Ctx) error {
	var rows []model.ClassActivityModel
	return ctrl.list(c, &model.ClassActivityModel{}, &rows, "class_activity_date", "Etkinlikler listelendi")
}

func (ctrl *RecordsController) DeleteClassActivity(c *fiber.Ctx) error {
	return ctrl.softDelete(c, &model.ClassActivityModel{}, "class_activity_id", "Etkinlik silindi")
}

/* ===================== VELİ GÖRÜŞMESİ ===================== */

func (ctrl *RecordsController) CreateParentContact(c *fiber.Ctx) error {
	var req dto.CreateParentContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	mdl := req.ToModel(configs.AppLocation)
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Kayıt oluşturulamadı")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Veli görüşmesi oluşturuldu", mdl)
}

func (ctrl *RecordsController) ListParentContacts(c *fiber.Ctx) error {
	var rows []model.ParentContactModel
	return ctrl.list(c, &model.ParentContactModel{}, &rows, "parent_contact_date", "Veli görüşmeleri listelendi")
}

func (ctrl *RecordsController) DeleteParentContact(c *fiber.Ctx) error {
	return ctrl.softDelete(c, &model.ParentContactModel{}, "parent_contact_id", "Veli görüşmesi silindi")
}

/* ===================== ÖĞRETMEN KADROSU ===================== */

func (ctrl *RecordsController) CreateTeacherRoster(c *fiber.Ctx) error {
	var req dto.CreateTeacherRosterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Kayıt oluşturulamadı")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Öğretmen eklendi", mdl)
}

func (ctrl *RecordsController) ListTeacherRoster(c *fiber.Ctx) error {
	var rows []model.TeacherRosterModel
	return ctrl.list(c, &model.TeacherRosterModel{}, &rows, "teacher_roster_created_at", "Kadro listelendi")
}
