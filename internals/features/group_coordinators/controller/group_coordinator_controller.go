package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupCoordinatorDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/group_coordinators/dto"
	groupCoordinatorModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/group_coordinators/model"
	groupModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/groups/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type GroupCoordinatorsController struct {
	DB *gorm.DB
}

func (h *GroupCoordinatorsController) runChecks(tx *gorm.DB, req groupCoordinatorDTO.CreateGroupCoordinatorRequest) error {
	schoolID := req.SchoolUUID()
	if _, err := guards.FindOwned[groupModel.GroupModel](
		tx, "group", "group_id", req.GroupUUID(), schoolID); err != nil {
		return err
	}
	if _, err := guards.EnsureCoordinator(tx, req.CoordinatorUUID(), schoolID); err != nil {
		return err
	}
	return nil
}

// CREATE
// POST /api/v1/group_coordinators
func (h *GroupCoordinatorsController) CreateGroupCoordinator(c *fiber.Ctx) error {
	var req groupCoordinatorDTO.CreateGroupCoordinatorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	var created groupCoordinatorModel.GroupCoordinatorModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &groupCoordinatorModel.GroupCoordinatorModel{},
			"This coordinator has already been assigned to this group",
			"group_coordinator_school_id = ? AND group_coordinator_group_id = ? AND group_coordinator_coordinator_id = ?",
			schoolID, req.GroupUUID(), req.CoordinatorUUID()); err != nil {
			return err
		}
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign the coordinator to the group")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("group_coordinator", "create")
	return helper.JsonCreated(c, "Coordinator has been successfully assigned the to group",
		groupCoordinatorDTO.FromGroupCoordinatorModel(created))
}

// LIST
// GET /api/v1/group_coordinators
func (h *GroupCoordinatorsController) ListGroupCoordinators(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []groupCoordinatorModel.GroupCoordinatorModel
	if err := h.DB.
		Where("group_coordinator_school_id = ?", req.SchoolUUID()).
		Order("group_coordinator_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the group coordinators")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No group coordinators were found")
	}
	return helper.JsonOK(c, "Group coordinators found",
		groupCoordinatorDTO.FromGroupCoordinatorModels(rows))
}

// GET BY ID
// GET /api/v1/group_coordinators/:id
func (h *GroupCoordinatorsController) GetGroupCoordinator(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "group coordinator id")
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

	var m groupCoordinatorModel.GroupCoordinatorModel
	if err := h.DB.
		Where("group_coordinator_id = ? AND group_coordinator_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Group coordinator not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the group coordinator")
	}
	return helper.JsonOK(c, "Group coordinator found",
		groupCoordinatorDTO.FromGroupCoordinatorModel(m))
}

// UPDATE
// PUT /api/v1/group_coordinators/:id
func (h *GroupCoordinatorsController) UpdateGroupCoordinator(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "group coordinator id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req groupCoordinatorDTO.UpdateGroupCoordinatorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &groupCoordinatorModel.GroupCoordinatorModel{},
			"This coordinator has already been assigned to this group",
			"group_coordinator_school_id = ? AND group_coordinator_group_id = ? AND group_coordinator_coordinator_id = ? AND group_coordinator_id <> ?",
			schoolID, req.GroupUUID(), req.CoordinatorUUID(), id); err != nil {
			return err
		}
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		res := tx.Model(&groupCoordinatorModel.GroupCoordinatorModel{}).
			Where("group_coordinator_id = ? AND group_coordinator_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"group_coordinator_group_id":       req.GroupUUID(),
				"group_coordinator_coordinator_id": req.CoordinatorUUID(),
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the group coordinator")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Group coordinator not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("group_coordinator", "update")
	return helper.JsonMsg(c, "Group coordinator updated")
}

// DELETE
// DELETE /api/v1/group_coordinators/:id
func (h *GroupCoordinatorsController) DeleteGroupCoordinator(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "group coordinator id")
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
		Where("group_coordinator_id = ? AND group_coordinator_school_id = ?", id, req.SchoolUUID()).
		Delete(&groupCoordinatorModel.GroupCoordinatorModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the group coordinator")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Group coordinator not deleted")
	}

	metrics.ObserveMutation("group_coordinator", "delete")
	return helper.JsonMsg(c, "Group coordinator deleted")
}
