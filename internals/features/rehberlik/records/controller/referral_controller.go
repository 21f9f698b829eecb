package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rehberlik_backend/internals/configs"
	"rehberlik_backend/internals/features/rehberlik/records/dto"
	"rehberlik_backend/internals/features/rehberlik/records/model"
	helper "rehberlik_backend/internals/helpers"
)

type GuidanceReferralController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGuidanceReferralController(db *gorm.DB) *GuidanceReferralController {
	return &GuidanceReferralController{DB: db, Validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /guidance-referrals
func (ctrl *GuidanceReferralController) Create(c *fiber.Ctx) error {
	var req dto.CreateGuidanceReferralRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Yönlendirme kaydedilemedi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Yönlendirme oluşturuldu", dto.NewGuidanceReferralResponse(mdl))
}

/* ===================== LIST ===================== */
// GET /guidance-referrals?student=&class=&from=&to=&page=&per_page=
func (ctrl *GuidanceReferralController) List(c *fiber.Ctx) error {
	var req dto.FilterGuidanceReferralRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 200)
	q := ctrl.DB.Model(&model.GuidanceReferralModel{})

	if req.Student != nil && *req.Student != "" {
		q = q.Where("guidance_referral_student_name ILIKE ?", "%"+*req.Student+"%")
	}
	if req.Class != nil && *req.Class != "" {
		q = q.Where("guidance_referral_class_label ILIKE ?", "%"+*req.Class+"%")
	}
	loc := configs.AppLocation
	if req.From != nil {
		if d, err := time.ParseInLocation("2006-01-02", *req.From, loc); err == nil {
			q = q.Where("guidance_referral_created_at >= ?", d)
		}
	}
	if req.To != nil {
		if d, err := time.ParseInLocation("2006-01-02", *req.To, loc); err == nil {
			// üst uç hariç: ertesi gece yarısına kadar
			q = q.Where("guidance_referral_created_at < ?", d.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.GuidanceReferralModel
	if err := q.Order("guidance_referral_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.GuidanceReferralResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.NewGuidanceReferralResponse(r))
	}

	return helper.Success(c, "Yönlendirmeler listelendi", fiber.Map{
		"items":      resp,
		"pagination": helper.BuildPagination(p.Page, p.PerPage, len(resp), total),
	})
}

/* ===================== DETAIL ===================== */
// GET /guidance-referrals/:id
func (ctrl *GuidanceReferralController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID geçersiz")
	}

	var mdl model.GuidanceReferralModel
	if err := ctrl.DB.First(&mdl, "guidance_referral_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Yönlendirme bulunamadı")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.NewGuidanceReferralResponse(mdl))
}

/* ===================== UPDATE STATUS ===================== */
// PATCH /guidance-referrals/:id/status
func (ctrl *GuidanceReferralController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID geçersiz")
	}

	var req dto.UpdateGuidanceReferralStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload geçersiz")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.GuidanceReferralModel{}).
		Where("guidance_referral_id = ?", id).
		Update("guidance_referral_status", req.GuidanceReferralStatus)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Yönlendirme bulunamadı")
	}

	return helper.Success(c, "Durum güncellendi", fiber.Map{"guidance_referral_id": id})
}

/* ===================== DELETE (soft) ===================== */
// DELETE /guidance-referrals/:id
func (ctrl *GuidanceReferralController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID geçersiz")
	}

	res := ctrl.DB.Delete(&model.GuidanceReferralModel{}, "guidance_referral_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Yönlendirme bulunamadı")
	}

	return helper.Success(c, "Yönlendirme silindi", fiber.Map{"guidance_referral_id": id})
}
