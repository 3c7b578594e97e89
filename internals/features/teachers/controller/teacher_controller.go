package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JeromeVargas/schedule-maker-sub004/internals/constants"
	teacherDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teachers/dto"
	teacherModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teachers/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type TeachersController struct {
	DB *gorm.DB
}

// checkHours enforces the assignable/assigned invariants that only involve the
// request body itself.
func checkHours(req teacherDTO.CreateTeacherRequest) error {
	if *req.TeachingHoursAssigned > *req.TeachingHoursAssignable {
		return fiber.NewError(fiber.StatusBadRequest,
			"The number of teaching hours assigned must not exceed the teaching hours assignable")
	}
	if *req.AdminHoursAssigned > *req.AdminHoursAssignable {
		return fiber.NewError(fiber.StatusBadRequest,
			"The number of admin hours assigned must not exceed the admin hours assignable")
	}
	if *req.TeachingHoursAssignable+*req.AdminHoursAssignable > constants.MaxAssignableHours {
		return fiber.NewError(fiber.StatusBadRequest,
			"total hours assignable must not exceed 70 hours")
	}
	return nil
}

// CREATE
// POST /api/v1/teachers
func (h *TeachersController) CreateTeacher(c *fiber.Ctx) error {
	var req teacherDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	if err := checkHours(req); err != nil {
		return err
	}
	schoolID := req.SchoolUUID()

	var created teacherModel.TeacherModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// one teacher record per (school, user)
		if err := guards.EnsureUnique(tx, &teacherModel.TeacherModel{},
			"User is already a teacher",
			"teacher_school_id = ? AND teacher_user_id = ?", schoolID, req.UserUUID()); err != nil {
			return err
		}
		if _, err := guards.EnsureTeachingUser(tx, req.UserUUID(), schoolID); err != nil {
			return err
		}
		if _, err := guards.EnsureCoordinator(tx, req.CoordinatorUUID(), schoolID); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create the teacher")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("teacher", "create")
	return helper.JsonCreated(c, "Teacher created successfully", teacherDTO.FromTeacherModel(created))
}

// LIST
// GET /api/v1/teachers
func (h *TeachersController) ListTeachers(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []teacherModel.TeacherModel
	if err := h.DB.
		Where("teacher_school_id = ?", req.SchoolUUID()).
		Order("teacher_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the teachers")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No teachers were found")
	}
	return helper.JsonOK(c, "Teachers found", teacherDTO.FromTeacherModels(rows))
}

// GET BY ID
// GET /api/v1/teachers/:id
func (h *TeachersController) GetTeacher(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "teacher id")
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

	var m teacherModel.TeacherModel
	if err := h.DB.
		Where("teacher_id = ? AND teacher_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the teacher")
	}
	return helper.JsonOK(c, "Teacher found", teacherDTO.FromTeacherModel(m))
}

// UPDATE
// PUT /api/v1/teachers/:id
func (h *TeachersController) UpdateTeacher(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "teacher id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req teacherDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	if err := checkHours(req); err != nil {
		return err
	}
	schoolID := req.SchoolUUID()

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &teacherModel.TeacherModel{},
			"User is already a teacher",
			"teacher_school_id = ? AND teacher_user_id = ? AND teacher_id <> ?",
			schoolID, req.UserUUID(), id); err != nil {
			return err
		}
		if _, err := guards.EnsureTeachingUser(tx, req.UserUUID(), schoolID); err != nil {
			return err
		}
		if _, err := guards.EnsureCoordinator(tx, req.CoordinatorUUID(), schoolID); err != nil {
			return err
		}
		res := tx.Model(&teacherModel.TeacherModel{}).
			Where("teacher_id = ? AND teacher_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"teacher_coordinator_id":             req.CoordinatorUUID(),
				"teacher_user_id":                    req.UserUUID(),
				"teacher_contract_type":              *req.ContractType,
				"teacher_teaching_hours_assignable":  *req.TeachingHoursAssignable,
				"teacher_teaching_hours_assigned":    *req.TeachingHoursAssigned,
				"teacher_admin_hours_assignable":     *req.AdminHoursAssignable,
				"teacher_admin_hours_assigned":       *req.AdminHoursAssigned,
				"teacher_monday":                     *req.Monday,
				"teacher_tuesday":                    *req.Tuesday,
				"teacher_wednesday":                  *req.Wednesday,
				"teacher_thursday":                   *req.Thursday,
				"teacher_friday":                     *req.Friday,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the teacher")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Teacher not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("teacher", "update")
	return helper.JsonMsg(c, "Teacher updated")
}

// DELETE
// DELETE /api/v1/teachers/:id
func (h *TeachersController) DeleteTeacher(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "teacher id")
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
		Where("teacher_id = ? AND teacher_school_id = ?", id, req.SchoolUUID()).
		Delete(&teacherModel.TeacherModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the teacher")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Teacher not deleted")
	}

	metrics.ObserveMutation("teacher", "delete")
	return helper.JsonMsg(c, "Teacher deleted")
}
