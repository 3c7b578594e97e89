package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDTO "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/dto"
	userModel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/model"
	helper "github.com/JeromeVargas/schedule-maker-sub004/internals/helpers"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/helpers/guards"
	"github.com/JeromeVargas/schedule-maker-sub004/internals/metrics"
)

type UsersController struct {
	DB *gorm.DB
}

func hashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to process the password")
	}
	return string(b), nil
}

// CREATE
// POST /api/v1/users
func (h *UsersController) CreateUser(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	var created userModel.UserModel
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &userModel.UserModel{},
			"Please try a different email address",
			"user_school_id = ? AND lower(user_email) = lower(?)", schoolID, *req.Email); err != nil {
			return err
		}
		if _, err := guards.FindSchool(tx, schoolID); err != nil {
			return err
		}
		created = req.ToModel()
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return err
		}
		created.UserPassword = hash
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create the user")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("user", "create")
	return helper.JsonCreated(c, "User created successfully", userDTO.FromUserModel(created))
}

// LIST
// GET /api/v1/users
func (h *UsersController) ListUsers(c *fiber.Ctx) error {
	var req helper.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}

	var rows []userModel.UserModel
	if err := h.DB.
		Where("user_school_id = ?", req.SchoolUUID()).
		Order("user_created_at").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the users")
	}
	if len(rows) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No users were found")
	}
	return helper.JsonOK(c, "Users found", userDTO.FromUserModels(rows))
}

// GET BY ID
// GET /api/v1/users/:id
func (h *UsersController) GetUser(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "user id")
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

	var m userModel.UserModel
	if err := h.DB.
		Where("user_id = ? AND user_school_id = ?", id, req.SchoolUUID()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the user")
	}
	return helper.JsonOK(c, "User found", userDTO.FromUserModel(m))
}

// UPDATE
// PUT /api/v1/users/:id
func (h *UsersController) UpdateUser(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "user id")
	if ferr != nil {
		return helper.JsonFieldErrors(c, []helper.FieldError{*ferr})
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs)
	}
	schoolID := req.SchoolUUID()

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := guards.EnsureUnique(tx, &userModel.UserModel{},
			"Please try a different email address",
			"user_school_id = ? AND lower(user_email) = lower(?) AND user_id <> ?",
			schoolID, *req.Email, id); err != nil {
			return err
		}
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return err
		}
		res := tx.Model(&userModel.UserModel{}).
			Where("user_id = ? AND user_school_id = ?", id, schoolID).
			Updates(map[string]interface{}{
				"user_first_name":        *req.FirstName,
				"user_last_name":         *req.LastName,
				"user_email":             *req.Email,
				"user_password":          hash,
				"user_role":              *req.Role,
				"user_status":            *req.Status,
				"user_has_teaching_func": *req.HasTeachingFunc,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update the user")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "User not updated")
		}
		return nil
	}); err != nil {
		return err
	}

	metrics.ObserveMutation("user", "update")
	return helper.JsonMsg(c, "User updated")
}

// DELETE
// DELETE /api/v1/users/:id
func (h *UsersController) DeleteUser(c *fiber.Ctx) error {
	id, ferr := helper.ParseIDParam(c, "user id")
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
		Where("user_id = ? AND user_school_id = ?", id, req.SchoolUUID()).
		Delete(&userModel.UserModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete the user")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User not deleted")
	}

	metrics.ObserveMutation("user", "delete")
	return helper.JsonMsg(c, "User deleted")
}
