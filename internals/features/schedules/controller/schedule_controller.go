package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JeromeVargas/schedule-maker-sub004/internals/constants"
	scheduleDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schedules/dto"
	scheduleModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schedules/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type SchedulesController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/v1/schedules
func (h *SchedulesController) CreateSchedule(c *fiber.Ctx) error {
	var req scheduleDTO.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	if *req.DayStart >= constants.MinutesInDay {
		return fiber.NewError(fiber.StatusBadRequest, "The school shift start must exceed 11:59 p.m.")
	}
	schoolID := req.SchoolUUID()

	var created scheduleModel.ScheduleModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &scheduleModel.ScheduleModel{},
			"This schedule name already exists",
			"schedule_school_id = ? AND lower(schedule_name) = lower(?)", schoolID, *req.Name); err != nil {
			return err
		}
		if _, err := guards.FindSchool(tx, schoolID); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create the schedule")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("schedule", "create")
	return helper.JsonCreated(c, "Schedule created successfully", scheduleDTO.FromScheduleModel(created))
}

// LIST
// GET /api/v1/schedules
func (h *SchedulesController) ListSchedules(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []scheduleModel.ScheduleModel
	if err := h.DB.
		Where("schedule_school_id = ?", req.SchoolUUID()).
		Order("schedule_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the schedules")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No schedules were found")
	}
	return helper.JsonOK(c, "Schedules found", scheduleDTO.FromScheduleModels(rows))
}

// GET BY ID
// GET /api/v1/schedules/:id
func (h *SchedulesController) GetSchedule(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "schedule id")
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

	var m scheduleModel.ScheduleModel
	if err := h.DB.
		Where("schedule_id = ? AND schedule_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Schedule not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the schedule")
	}
	return helper.JsonOK(c, "Schedule found", scheduleDTO.FromScheduleModel(m))
}

// UPDATE
// PUT /api/v1/schedules/:id
func (h *SchedulesController) UpdateSchedule(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "schedule id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req scheduleDTO.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	if *req.DayStart >= constants.MinutesInDay {
		return fiber.NewError(fiber.StatusBadRequest, "The school shift start must exceed 11:59 p.m.")
	}
	schoolID := req.SchoolUUID()

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &scheduleModel.ScheduleModel{},
			"This schedule name already exists",
			"schedule_school_id = ? AND lower(schedule_name) = lower(?) AND schedule_id <> ?",
			schoolID, *req.Name, id); err != nil {
			return err
		}
		res := tx.Model(&scheduleModel.ScheduleModel{}).
			Where("schedule_id = ? AND schedule_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"schedule_name":                 *req.Name,
				"schedule_day_start":            *req.DayStart,
				"schedule_shift_number_minutes": *req.ShiftNumberMinutes,
				"schedule_class_unit_minutes":   *req.ClassUnitMinutes,
				"schedule_monday":               *req.Monday,
				"schedule_tuesday":              *req.Tuesday,
				"schedule_wednesday":            *req.Wednesday,
				"schedule_thursday":             *req.Thursday,
				"schedule_friday":               *req.Friday,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the schedule")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Schedule not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("schedule", "update")
	return helper.JsonMsg(c, "Schedule updated")
}

// DELETE
// DELETE /api/v1/schedules/:id
func (h *SchedulesController) DeleteSchedule(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "schedule id")
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
		Where("schedule_id = ? AND schedule_school_id = ?", id, req.SchoolUUID()).
		Delete(&scheduleModel.ScheduleModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the schedule")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Schedule not deleted")
	}

	metrics.ObserveMutation("schedule", "delete")
	return helper.JsonMsg(c, "Schedule deleted")
}
