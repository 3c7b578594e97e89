package dto

import (
	"strings"

	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/users/model"
)

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateUserRequest struct {
	SchoolID        *string `json:"school_id" validate:"required,min=1,uuid4"`
	FirstName       *string `json:"firstName" validate:"required,min=1,max=100"`
	LastName        *string `json:"lastName" validate:"required,min=1,max=100"`
	Email           *string `json:"email" validate:"required,min=1,email,max=100"`
	Password        *string `json:"password" validate:"required,min=8,max=100"`
	Role            *string `json:"role" validate:"required,min=1,oneof=headmaster coordinator teacher"`
	Status          *string `json:"status" validate:"required,min=1,oneof=active inactive suspended"`
	HasTeachingFunc *bool   `json:"hasTeachingFunc" validate:"required"`
}

type UpdateUserRequest = CreateUserRequest

func (r *CreateUserRequest) Normalize() {
	trim := func(pp **string) {
		if *pp == nil {
			return
		}
		v := strings.TrimSpace(**pp)
		*pp = &v
	}
	trim(&r.FirstName)
	trim(&r.LastName)
	trim(&r.Email)
	trim(&r.Role)
	trim(&r.Status)
}

func (r CreateUserRequest) SchoolUUID() uuid.UUID { return uuid.MustParse(*r.SchoolID) }

// ToModel leaves the password empty; the controller sets the hash.
func (r CreateUserRequest) ToModel() m.UserModel {
	return m.UserModel{
		UserSchoolID:        r.SchoolUUID(),
		UserFirstName:       *r.FirstName,
		UserLastName:        *r.LastName,
		UserEmail:           *r.Email,
		UserRole:            *r.Role,
		UserStatus:          *r.Status,
		UserHasTeachingFunc: *r.HasTeachingFunc,
	}
}

/* =========================================================
   RESPONSE — password never leaves the service
   ========================================================= */

type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	SchoolID        uuid.UUID `json:"school_id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	HasTeachingFunc bool      `json:"hasTeachingFunc"`
}

func FromUserModel(mm m.UserModel) UserResponse {
	return UserResponse{
		ID:              mm.UserID,
		SchoolID:        mm.UserSchoolID,
		FirstName:       mm.UserFirstName,
		LastName:        mm.UserLastName,
		Email:           mm.UserEmail,
		Role:            mm.UserRole,
		Status:          mm.UserStatus,
		HasTeachingFunc: mm.UserHasTeachingFunc,
	}
}

func FromUserModels(rows []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromUserModel(r))
	}
	return out
}
