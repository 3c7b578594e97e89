package dto

import (
	"strings"

	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schools/model"
)

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateSchoolRequest struct {
	Name                *string `json:"name" validate:"required,min=1,max=100"`
	GroupMaxNumStudents *int    `json:"groupMaxNumStudents" validate:"required,gte=0,lte=999999999"`
}

// UpdateSchoolRequest: PUT is a full replace, same field set.
type UpdateSchoolRequest = CreateSchoolRequest

func (r *CreateSchoolRequest) Normalize() {
	if r.Name != nil {
		s := strings.TrimSpace(*r.Name)
		r.Name = &s
	}
}

func (r CreateSchoolRequest) ToModel() m.SchoolModel {
	return m.SchoolModel{
		SchoolName:                *r.Name,
		SchoolGroupMaxNumStudents: *r.GroupMaxNumStudents,
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SchoolResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	GroupMaxNumStudents int       `json:"groupMaxNumStudents"`
}

func FromSchoolModel(mm m.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:                  mm.SchoolID,
		Name:                mm.SchoolName,
		GroupMaxNumStudents: mm.SchoolGroupMaxNumStudents,
	}
}

func FromSchoolModels(rows []m.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromSchoolModel(r))
	}
	return out
}
