package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fieldModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/fields/model"
	teacherFieldDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teacher_fields/dto"
	teacherFieldModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teacher_fields/model"
	teacherModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teachers/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type TeacherFieldsController struct {
	DB *gorm.DB
}

// runChecks is the cross-reference chain shared by create and update.
func (h *TeacherFieldsController) runChecks(tx *gorm.DB, req teacherFieldDTO.CreateTeacherFieldRequest) error {
	schoolID := req.SchoolUUID()
	if _, err := guards.FindOwned[teacherModel.TeacherModel](
		tx, "teacher", "teacher_id", req.TeacherUUID(), schoolID); err != nil {
		return err
	}
	if _, err := guards.FindOwned[fieldModel.FieldModel](
		tx, "field", "field_id", req.FieldUUID(), schoolID); err != nil {
		return err
	}
	return nil
}

// CREATE
// POST /api/v1/teacher_fields
func (h *TeacherFieldsController) CreateTeacherField(c *fiber.Ctx) error {
	var req teacherFieldDTO.CreateTeacherFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	var created teacherFieldModel.TeacherFieldModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &teacherFieldModel.TeacherFieldModel{},
			"This teacher has already been assigned this field",
			"teacher_field_school_id = ? AND teacher_field_teacher_id = ? AND teacher_field_field_id = ?",
			schoolID, req.TeacherUUID(), req.FieldUUID()); err != nil {
			return err
		}
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign the field to the teacher")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("teacher_field", "create")
	return helper.JsonCreated(c, "Field has been successfully assigned to the teacher",
		teacherFieldDTO.FromTeacherFieldModel(created))
}

// LIST
// GET /api/v1/teacher_fields
func (h *TeacherFieldsController) ListTeacherFields(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []teacherFieldModel.TeacherFieldModel
	if err := h.DB.
		Where("teacher_field_school_id = ?", req.SchoolUUID()).
		Order("teacher_field_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the teacher fields")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No teacher fields were found")
	}
	return helper.JsonOK(c, "Teacher fields found", teacherFieldDTO.FromTeacherFieldModels(rows))
}

// GET BY ID
// GET /api/v1/teacher_fields/:id
func (h *TeacherFieldsController) GetTeacherField(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "teacher field id")
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

	var m teacherFieldModel.TeacherFieldModel
	if err := h.DB.
		Where("teacher_field_id = ? AND teacher_field_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Teacher field not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the teacher field")
	}
	return helper.JsonOK(c, "Teacher field found", teacherFieldDTO.FromTeacherFieldModel(m))
}

// UPDATE
// PUT /api/v1/teacher_fields/:id
func (h *TeacherFieldsController) UpdateTeacherField(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "teacher field id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req teacherFieldDTO.UpdateTeacherFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &teacherFieldModel.TeacherFieldModel{},
			"This teacher has already been assigned this field",
			"teacher_field_school_id = ? AND teacher_field_teacher_id = ? AND teacher_field_field_id = ? AND teacher_field_id <> ?",
			schoolID, req.TeacherUUID(), req.FieldUUID(), id); err != nil {
			return err
		}
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		res := tx.Model(&teacherFieldModel.TeacherFieldModel{}).
			Where("teacher_field_id = ? AND teacher_field_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"teacher_field_teacher_id": req.TeacherUUID(),
				"teacher_field_field_id":   req.FieldUUID(),
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the teacher field")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Teacher field not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("teacher_field", "update")
	return helper.JsonMsg(c, "Teacher field updated")
}

// DELETE
// DELETE /api/v1/teacher_fields/:id
func (h *TeacherFieldsController) DeleteTeacherField(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "teacher field id")
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
		Where("teacher_field_id = ? AND teacher_field_school_id = ?", id, req.SchoolUUID()).
		Delete(&teacherFieldModel.TeacherFieldModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the teacher field")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Teacher field not deleted")
	}

	metrics.ObserveMutation("teacher_field", "delete")
	return helper.JsonMsg(c, "Teacher field deleted")
}
