package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fieldDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/fields/dto"
	fieldModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/fields/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type FieldsController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/v1/fields
func (h *FieldsController) CreateField(c *fiber.Ctx) error {
	var req fieldDTO.CreateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	var created fieldModel.FieldModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &fieldModel.FieldModel{},
			"This field name already exists",
			"field_school_id = ? AND lower(field_name) = lower(?)", schoolID, *req.Name); err != nil {
			return err
		}
		if _, err := guards.FindSchool(tx, schoolID); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create the field")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("field", "create")
	return helper.JsonCreated(c, "Field created successfully", fieldDTO.FromFieldModel(created))
}

// LIST
// GET /api/v1/fields
func (h *FieldsController) ListFields(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []fieldModel.FieldModel
	if err := h.DB.
		Where("field_school_id = ?", req.SchoolUUID()).
		Order("field_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the fields")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No fields were found")
	}
	return helper.JsonOK(c, "Fields found", fieldDTO.FromFieldModels(rows))
}

// GET BY ID
// GET /api/v1/fields/:id
func (h *FieldsController) GetField(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "field id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var m fieldModel.FieldModel
	if err := h.DB.
		Where("field_id = ? AND field_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Field not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the field")
	}
	return helper.JsonOK(c, "Field found", fieldDTO.FromFieldModel(m))
}

// UPDATE
// PUT /api/v1/fields/:id
func (h *FieldsController) UpdateField(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "field id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req fieldDTO.UpdateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &fieldModel.FieldModel{},
			"This field name already exists",
			"field_school_id = ? AND lower(field_name) = lower(?) AND field_id <> ?",
			schoolID, *req.Name, id); err != nil {
			return err
		}
		res := tx.Model(&fieldModel.FieldModel{}).
			Where("field_id = ? AND field_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"field_name": *req.Name,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the field")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Field not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("field", "update")
	return helper.JsonMsg(c, "Field updated")
}

// DELETE
// DELETE /api/v1/fields/:id
func (h *FieldsController) DeleteField(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "field id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	res := h.DB.
		Where("field_id = ? AND field_school_id = ?", id, req.SchoolUUID()).
		Delete(&fieldModel.FieldModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the field")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Field not deleted")
	}

	metrics.ObserveMutation("field", "delete")
	return helper.JsonMsg(c, "Field deleted")
}
