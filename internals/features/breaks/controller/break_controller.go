package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JeromeVargas/schedule-maker-sub004/internals/constants"
	breakDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/breaks/dto"
	breakModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/breaks/model"
	scheduleModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schedules/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type BreaksController struct {
	DB *gorm.DB
}

// runChecks gates a break against its schedule: the break has to start inside
// the day and not before the shift does.
func (h *BreaksController) runChecks(tx *gorm.DB, req breakDTO.CreateBreakRequest) error {
	if *req.BreakStart >= constants.MinutesInDay {
		return fiber.NewError(fiber.StatusBadRequest, "The school shift start must exceed 11:59 p.m.")
	}
	schedule, err := guards.FindOwned[scheduleModel.ScheduleModel](
		tx, "schedule", "schedule_id", req.ScheduleUUID(), req.SchoolUUID())
	if err != nil {
		return err
	}
	if *req.BreakStart < schedule.ScheduleDayStart {
		return fiber.NewError(fiber.StatusBadRequest,
			"Please take into account that the break start time cannot be earlier than the schedule start time")
	}
	return nil
}

// CREATE
// POST /api/v1/breaks
func (h *BreaksController) CreateBreak(c *fiber.Ctx) error {
	var req breakDTO.CreateBreakRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var created breakModel.BreakModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create the break")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("break", "create")
	return helper.JsonCreated(c, "Break created successfully", breakDTO.FromBreakModel(created))
}

// LIST
// GET /api/v1/breaks
func (h *BreaksController) ListBreaks(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []breakModel.BreakModel
	if err := h.DB.
		Where("break_school_id = ?", req.SchoolUUID()).
		Order("break_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the breaks")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No breaks were found")
	}
	return helper.JsonOK(c, "Breaks found", breakDTO.FromBreakModels(rows))
}

// GET BY ID
// GET /api/v1/breaks/:id
func (h *BreaksController) GetBreak(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "break id")
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

	var m breakModel.BreakModel
	if err := h.DB.
		Where("break_id = ? AND break_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Break not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the break")
	}
	return helper.JsonOK(c, "Break found", breakDTO.FromBreakModel(m))
}

// UPDATE
// PUT /api/v1/breaks/:id
func (h *BreaksController) UpdateBreak(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "break id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req breakDTO.UpdateBreakRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		res := tx.Model(&breakModel.BreakModel{}).
			Where("break_id = ? AND break_school_id = ?", id, req.SchoolUUID()).
			Updates(map[string]interface{}{
				"break_schedule_id":    req.ScheduleUUID(),
				"break_start":          *req.BreakStart,
				"break_number_minutes": *req.NumberMinutes,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the break")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Break not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("break", "update")
	return helper.JsonMsg(c, "Break updated")
}

// DELETE
// DELETE /api/v1/breaks/:id
func (h *BreaksController) DeleteBreak(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "break id")
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
		Where("break_id = ? AND break_school_id = ?", id, req.SchoolUUID()).
		Delete(&breakModel.BreakModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the break")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Break not deleted")
	}

	metrics.ObserveMutation("break", "delete")
	return helper.JsonMsg(c, "Break deleted")
}
