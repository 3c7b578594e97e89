package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/groups/dto"
	groupModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/groups/model"
	levelModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/levels/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type GroupsController struct {
	DB *gorm.DB
}

// runChecks gates a group write: level exists in the school, the group size
// respects the school cap, the coordinator can coordinate.
func (h *GroupsController) runChecks(tx *gorm.DB, req groupDTO.CreateGroupRequest) error {
	schoolID := req.SchoolUUID()
	if _, err := guards.FindOwned[levelModel.LevelModel](
		tx, "level", "level_id", req.LevelUUID(), schoolID); err != nil {
		return err
	}
	school, err := guards.FindSchool(tx, schoolID)
	if err != nil {
		return err
	}
	if *req.NumberStudents > school.SchoolGroupMaxNumStudents {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Please take into account that the maximum number of students per group is %d",
				school.SchoolGroupMaxNumStudents))
	}
	if _, err := guards.EnsureCoordinator(tx, req.CoordinatorUUID(), schoolID); err != nil {
		return err
	}
	return nil
}

// CREATE
// POST /api/v1/groups
func (h *GroupsController) CreateGroup(c *fiber.Ctx) error {
	var req groupDTO.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	var created groupModel.GroupModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &groupModel.GroupModel{},
			"This group name already exists",
			"group_school_id = ? AND lower(group_name) = lower(?)", schoolID, *req.Name); err != nil {
			return err
		}
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create the group")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("group", "create")
	return helper.JsonCreated(c, "Group created successfully", groupDTO.FromGroupModel(created))
}

// LIST
// GET /api/v1/groups
func (h *GroupsController) ListGroups(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []groupModel.GroupModel
	if err := h.DB.
		Where("group_school_id = ?", req.SchoolUUID()).
		Order("group_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the groups")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No groups were found")
	}
	return helper.JsonOK(c, "Groups found", groupDTO.FromGroupModels(rows))
}

// GET BY ID
// GET /api/v1/groups/:id
func (h *GroupsController) GetGroup(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "group id")
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

	var m groupModel.GroupModel
	if err := h.DB.
		Where("group_id = ? AND group_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the group")
	}
	return helper.JsonOK(c, "Group found", groupDTO.FromGroupModel(m))
}

// UPDATE
// PUT /api/v1/groups/:id
func (h *GroupsController) UpdateGroup(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "group id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req groupDTO.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &groupModel.GroupModel{},
			"This group name already exists",
			"group_school_id = ? AND lower(group_name) = lower(?) AND group_id <> ?",
			schoolID, *req.Name, id); err != nil {
			return err
		}
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		res := tx.Model(&groupModel.GroupModel{}).
			Where("group_id = ? AND group_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"group_level_id":        req.LevelUUID(),
				"group_coordinator_id":  req.CoordinatorUUID(),
				"group_name":            *req.Name,
				"group_number_students": *req.NumberStudents,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the group")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Group not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("group", "update")
	return helper.JsonMsg(c, "Group updated")
}

// DELETE
// DELETE /api/v1/groups/:id
func (h *GroupsController) DeleteGroup(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "group id")
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
		Where("group_id = ? AND group_school_id = ?", id, req.SchoolUUID()).
		Delete(&groupModel.GroupModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the group")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Group not deleted")
	}

	metrics.ObserveMutation("group", "delete")
	return helper.JsonMsg(c, "Group deleted")
}
