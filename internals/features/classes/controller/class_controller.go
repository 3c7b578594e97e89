package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/classes/dto"
	classModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/classes/model"
	subjectModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/subjects/model"
	teacherFieldModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teacher_fields/model"
	teacherModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teachers/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type ClassesController struct {
	DB *gorm.DB
}

// runChecks gates a class write. The subject, coordinator, teacher-field
// assignment and teacher must all exist in the school and agree with each
// other: the class coordinator matches the subject's and the teacher's, and
// the teacher's assigned field matches the subject's field.
func (h *ClassesController) runChecks(tx *gorm.DB, req classDTO.CreateClassRequest) error {
	schoolID := req.SchoolUUID()

	subject, err := guards.FindOwned[subjectModel.SubjectModel](
		tx, "subject", "subject_id", req.SubjectUUID(), schoolID)
	if err != nil {
		return err
	}
	if subject.SubjectCoordinatorID != req.CoordinatorUUID() {
		return fiber.NewError(fiber.StatusBadRequest,
			"Please make sure the coordinator is the same in the subject and in the class")
	}
	if _, err := guards.EnsureCoordinator(tx, req.CoordinatorUUID(), schoolID); err != nil {
		return err
	}

	teacherField, err := guards.FindOwned[teacherFieldModel.TeacherFieldModel](
		tx, "teacher_field", "teacher_field_id", req.TeacherFieldUUID(), schoolID)
	if err != nil {
		return err
	}
	if teacherField.TeacherFieldFieldID != subject.SubjectFieldID {
		return fiber.NewError(fiber.StatusBadRequest,
			"Please make sure the field assigned to the teacher is the same in the subject")
	}

	teacher, err := guards.FindOwned[teacherModel.TeacherModel](
		tx, "teacher", "teacher_id", teacherField.TeacherFieldTeacherID, schoolID)
	if err != nil {
		return err
	}
	if teacher.TeacherCoordinatorID != req.CoordinatorUUID() {
		return fiber.NewError(fiber.StatusBadRequest,
			"Please make sure the teacher has been assigned to the coordinator being passed")
	}
	return nil
}

// CREATE
// POST /api/v1/classes
func (h *ClassesController) CreateClass(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var created classModel.ClassModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create the class")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("class", "create")
	return helper.JsonCreated(c, "Class created successfully", classDTO.FromClassModel(created))
}

// LIST
// GET /api/v1/classes
func (h *ClassesController) ListClasses(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []classModel.ClassModel
	if err := h.DB.
		Where("class_school_id = ?", req.SchoolUUID()).
		Order("class_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the classes")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No classes were found")
	}
	return helper.JsonOK(c, "Classes found", classDTO.FromClassModels(rows))
}

// GET BY ID
// GET /api/v1/classes/:id
func (h *ClassesController) GetClass(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "class id")
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

	var m classModel.ClassModel
	if err := h.DB.
		Where("class_id = ? AND class_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the class")
	}
	return helper.JsonOK(c, "Class found", classDTO.FromClassModel(m))
}

// UPDATE
// PUT /api/v1/classes/:id
func (h *ClassesController) UpdateClass(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "class id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		res := tx.Model(&classModel.ClassModel{}).
			Where("class_id = ? AND class_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"class_coordinator_id":        req.CoordinatorUUID(),
				"class_subject_id":            req.SubjectUUID(),
				"class_teacher_field_id":      req.TeacherFieldUUID(),
				"class_start_time":            *req.StartTime,
				"class_group_schedule_slot":   *req.GroupScheduleSlot,
				"class_teacher_schedule_slot": *req.TeacherScheduleSlot,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the class")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Class not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("class", "update")
	return helper.JsonMsg(c, "Class updated")
}

// DELETE
// DELETE /api/v1/classes/:id
func (h *ClassesController) DeleteClass(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "class id")
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
		Where("class_id = ? AND class_school_id = ?", id, req.SchoolUUID()).
		Delete(&classModel.ClassModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the class")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Class not deleted")
	}

	metrics.ObserveMutation("class", "delete")
	return helper.JsonMsg(c, "Class deleted")
}
