package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/dto"
	schoolModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type SchoolsController struct {
	DB *gorm.DB
}

// CREATE
// POST /api/v1/schools
func (h *SchoolsController) CreateSchool(c *fiber.Ctx) error {
	var req schoolDTO.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var created schoolModel.SchoolModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// school name is unique globally, case-insensitive
		if err := guards.EnsureUnique(tx, &schoolModel.SchoolModel{},
			"This school name already exists",
			"lower(school_name) = lower(?)", *req.Name); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create the school")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("school", "create")
	return helper.JsonCreated(c, "School created successfully", schoolDTO.FromSchoolModel(created))
}

// LIST
// GET /api/v1/schools
func (h *SchoolsController) ListSchools(c *fiber.Ctx) error {
	var rows []schoolModel.SchoolModel
	if err := h.DB.Order("school_created_at").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the schools")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No schools were found")
	}
	return helper.JsonOK(c, "Schools found", schoolDTO.FromSchoolModels(rows))
}

// GET BY ID
// GET /api/v1/schools/:id
func (h *SchoolsController) GetSchool(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "school id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var m schoolModel.SchoolModel
	if err := h.DB.Where("school_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "School not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the school")
	}
	return helper.JsonOK(c, "School found", schoolDTO.FromSchoolModel(m))
}

// UPDATE
// PUT /api/v1/schools/:id
func (h *SchoolsController) UpdateSchool(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "school id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req schoolDTO.UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// uniqueness re-run with self excluded by id
		if err := guards.EnsureUnique(tx, &schoolModel.SchoolModel{},
			"This school name already exists",
			"lower(school_name) = lower(?) AND school_id <> ?", *req.Name, id); err != nil {
			return err
		}
		res := tx.Model(&schoolModel.SchoolModel{}).
			Where("school_id = ?", id).
			Updates(map[string]interface{}{
				"school_name":                   *req.Name,
				"school_group_max_num_students": *req.GroupMaxNumStudents,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the school")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "School not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("school", "update")
	return helper.JsonMsg(c, "School updated")
}

// DELETE
// DELETE /api/v1/schools/:id
func (h *SchoolsController) DeleteSchool(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "school id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	res := h.DB.Where("school_id = ?", id).Delete(&schoolModel.SchoolModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the school")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "School not deleted")
	}

	metrics.ObserveMutation("school", "delete")
	return helper.JsonMsg(c, "School deleted")
}
