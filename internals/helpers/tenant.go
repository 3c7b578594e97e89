package helper

import (
	"github.com/google/uuid"
)

// TenantRequest is the body every school-scoped read/delete carries: the
// tenant key alone. Mutating requests embed the same field in their DTOs.
type TenantRequest struct {
	SchoolID *string `json:"school_id" validate:"required,min=1,uuid4"`
}

// SchoolUUID must only be called after validation has passed.
func (r TenantRequest) SchoolUUID() uuid.UUID {
	return uuid.MustParse(*r.SchoolID)
}
