package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fieldModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/fields/model"
	groupModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/groups/model"
	subjectDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/subjects/dto"
	subjectModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/subjects/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type SubjectsController struct {
	DB *gorm.DB
}

// runChecks gates a subject write: group and field exist in the school, the
// coordinator can coordinate.
func (h *SubjectsController) runChecks(tx *gorm.DB, req subjectDTO.CreateSubjectRequest) error {
	schoolID := req.SchoolUUID()
	if _, err := guards.FindOwned[groupModel.GroupModel](
		tx, "group", "group_id", req.GroupUUID(), schoolID); err != nil {
		return err
	}
	if _, err := guards.FindOwned[fieldModel.FieldModel](
		tx, "field", "field_id", req.FieldUUID(), schoolID); err != nil {
		return err
	}
	if _, err := guards.EnsureCoordinator(tx, req.CoordinatorUUID(), schoolID); err != nil {
		return err
	}
	return nil
}

// CREATE
// POST /api/v1/subjects
func (h *SubjectsController) CreateSubject(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	var created subjectModel.SubjectModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &subjectModel.SubjectModel{},
			"This subject name already exists",
			"subject_school_id = ? AND lower(subject_name) = lower(?)", schoolID, *req.Name); err != nil {
			return err
		}
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create the subject")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("subject", "create")
	return helper.JsonCreated(c, "Subject created successfully", subjectDTO.FromSubjectModel(created))
}

// LIST
// GET /api/v1/subjects
func (h *SubjectsController) ListSubjects(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []subjectModel.SubjectModel
	if err := h.DB.
		Where("subject_school_id = ?", req.SchoolUUID()).
		Order("subject_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the subjects")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No subjects were found")
	}
	return helper.JsonOK(c, "Subjects found", subjectDTO.FromSubjectModels(rows))
}

// GET BY ID
// GET /api/v1/subjects/:id
func (h *SubjectsController) GetSubject(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "subject id")
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

	var m subjectModel.SubjectModel
	if err := h.DB.
		Where("subject_id = ? AND subject_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the subject")
	}
	return helper.JsonOK(c, "Subject found", subjectDTO.FromSubjectModel(m))
}

// UPDATE
// PUT /api/v1/subjects/:id
func (h *SubjectsController) UpdateSubject(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "subject id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &subjectModel.SubjectModel{},
			"This subject name already exists",
			"subject_school_id = ? AND lower(subject_name) = lower(?) AND subject_id <> ?",
			schoolID, *req.Name, id); err != nil {
			return err
		}
		if err := h.runChecks(tx, req); err != nil {
			return err
		}
		res := tx.Model(&subjectModel.SubjectModel{}).
			Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"subject_coordinator_id": req.CoordinatorUUID(),
				"subject_group_id":       req.GroupUUID(),
				"subject_field_id":       req.FieldUUID(),
				"subject_name":           *req.Name,
				"subject_session_units":  *req.SessionUnits,
				"subject_frequency":      *req.Frequency,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the subject")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Subject not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("subject", "update")
	return helper.JsonMsg(c, "Subject updated")
}

// DELETE
// DELETE /api/v1/subjects/:id
func (h *SubjectsController) DeleteSubject(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "subject id")
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
		Where("subject_id = ? AND subject_school_id = ?", id, req.SchoolUUID()).
		Delete(&subjectModel.SubjectModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the subject")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subject not deleted")
	}

	metrics.ObserveMutation("subject", "delete")
	return helper.JsonMsg(c, "Subject deleted")
}
