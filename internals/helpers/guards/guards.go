// Package guards holds the cross-reference checks every mutating request runs
// through before persistence: fetch a related row, assert it exists, assert it
// belongs to the requesting school, assert its domain state. Checks are meant
// to be sequenced by the caller; the first failing gate aborts the request.
package guards

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JeromeVargas/schedule-maker-sub004/internals/constants"
	schoolmodel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
	usermodel "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/model"
)

// TenantOwned is implemented by every school-scoped model.
type TenantOwned interface {
	TenantID() uuid.UUID
}

// FindOwned looks up a related row by id and asserts tenant ownership.
// Missing row -> 404 "Please make sure the <resource> exists".
// Wrong tenant -> 400 "Please make sure the <resource> belongs to the school".
func FindOwned[T any, PT interface {
	*T
	TenantOwned
}](tx *gorm.DB, resource, idCol string, id, schoolID uuid.UUID) (*T, error) {
	var m T
	if err := tx.Where(idCol+" = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("Please make sure the %s exists", resource))
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError,
			fmt.Sprintf("Failed to fetch the %s", resource))
	}
	if PT(&m).TenantID() != schoolID {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Please make sure the %s belongs to the school", resource))
	}
	return &m, nil
}

// FindSchool is the tenant-root lookup; ownership does not apply here.
func FindSchool(tx *gorm.DB, id uuid.UUID) (*schoolmodel.SchoolModel, error) {
	var m schoolmodel.SchoolModel
	if err := tx.Where("school_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Please make sure the school exists")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch the school")
	}
	return &m, nil
}

// EnsureUnique runs a duplicate check against the given uniqueness key. A hit
// terminates the request with 409 and the persist call never happens.
func EnsureUnique(tx *gorm.DB, mdl any, conflictMsg string, query string, args ...any) error {
	var cnt int64
	if err := tx.Model(mdl).Where(query, args...).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to run the duplicate check")
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, conflictMsg)
	}
	return nil
}

// EnsureCoordinator fetches a user and asserts it can coordinate: same school,
// coordinator role, active status.
func EnsureCoordinator(tx *gorm.DB, id, schoolID uuid.UUID) (*usermodel.UserModel, error) {
	u, err := FindOwned[usermodel.UserModel](tx, "coordinator", "user_id", id, schoolID)
	if err != nil {
		return nil, err
	}
	if u.UserRole != constants.RoleCoordinator {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Please pass a user with a coordinator role")
	}
	if u.UserStatus != constants.StatusActive {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Please pass an active coordinator")
	}
	return u, nil
}

// EnsureTeachingUser fetches a user and asserts it can be registered as a
// teacher: same school, active, teaching function assigned.
func EnsureTeachingUser(tx *gorm.DB, id, schoolID uuid.UUID) (*usermodel.UserModel, error) {
	u, err := FindOwned[usermodel.UserModel](tx, "user", "user_id", id, schoolID)
	if err != nil {
		return nil, err
	}
	if u.UserStatus != constants.StatusActive {
		return nil, fiber.NewError(fiber.StatusBadRequest, "The user is not active")
	}
	if !u.UserHasTeachingFunc {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Please pass a user with teaching functions assigned")
	}
	return u, nil
}
