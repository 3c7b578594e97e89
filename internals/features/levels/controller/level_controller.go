package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	levelDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/levels/dto"
	levelModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/levels/model"
	scheduleModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schedules/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type LevelsController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/v1/levels
func (h *LevelsController) CreateLevel(c *fiber.Ctx) error {
	var req levelDTO.CreateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	var created levelModel.LevelModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &levelModel.LevelModel{},
			"This level name already exists",
			"level_school_id = ? AND lower(level_name) = lower(?)", schoolID, *req.Name); err != nil {
			return err
		}
		if _, err := guards.FindOwned[scheduleModel.ScheduleModel](
			tx, "schedule", "schedule_id", req.ScheduleUUID(), schoolID); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create the level")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("level", "create")
	return helper.JsonCreated(c, "Level created successfully", levelDTO.FromLevelModel(created))
}

// LIST
// GET /api/v1/levels
func (h *LevelsController) ListLevels(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []levelModel.LevelModel
	if err := h.DB.
		Where("level_school_id = ?", req.SchoolUUID()).
		Order("level_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the levels")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No levels were found")
	}
	return helper.JsonOK(c, "Levels found", levelDTO.FromLevelModels(rows))
}

// GET BY ID
// GET /api/v1/levels/:id
func (h *LevelsController) GetLevel(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "level id")
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

	var m levelModel.LevelModel
	if err := h.DB.
		Where("level_id = ? AND level_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Level not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the level")
	}
	return helper.JsonOK(c, "Level found", levelDTO.FromLevelModel(m))
}

// UPDATE
// PUT /api/v1/levels/:id
func (h *LevelsController) UpdateLevel(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "level id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req levelDTO.UpdateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &levelModel.LevelModel{},
			"This level name already exists",
			"level_school_id = ? AND lower(level_name) = lower(?) AND level_id <> ?",
			schoolID, *req.Name, id); err != nil {
			return err
		}
		if _, err := guards.FindOwned[scheduleModel.ScheduleModel](
			tx, "schedule", "schedule_id", req.ScheduleUUID(), schoolID); err != nil {
			return err
		}
		res := tx.Model(&levelModel.LevelModel{}).
			Where("level_id = ? AND level_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"level_schedule_id": req.ScheduleUUID(),
				"level_name":        *req.Name,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the level")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Level not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("level", "update")
	return helper.JsonMsg(c, "Level updated")
}

// DELETE
// DELETE /api/v1/levels/:id
func (h *LevelsController) DeleteLevel(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "level id")
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
		Where("level_id = ? AND level_school_id = ?", id, req.SchoolUUID()).
		Delete(&levelModel.LevelModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the level")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Level not deleted")
	}

	metrics.ObserveMutation("level", "delete")
	return helper.JsonMsg(c, "Level deleted")
}
