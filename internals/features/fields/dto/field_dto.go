package dto

import (
	"strings"

	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/fields/model"
)

type CreateFieldRequest struct {
	SchoolID *string `json:"school_id" validate:"required,min=1,uuid4"`
	Name     *string `json:"name" validate:"required,min=1,max=100"`
}

type UpdateFieldRequest = CreateFieldRequest

func (r *CreateFieldRequest) Normalize() {
	if r.Name != nil {
		s := strings.TrimSpace(*r.Name)
		r.Name = &s
	}
}

func (r CreateFieldRequest) SchoolUUID() uuid.UUID { return uuid.MustParse(*r.SchoolID) }

func (r CreateFieldRequest) ToModel() m.FieldModel {
	return m.FieldModel{
		FieldSchoolID: r.SchoolUUID(),
		FieldName:     *r.Name,
	}
}

type FieldResponse struct {
	ID       uuid.UUID `json:"id"`
	SchoolID uuid.UUID `json:"school_id"`
	Name     string    `json:"name"`
}

func FromFieldModel(mm m.FieldModel) FieldResponse {
	return FieldResponse{
		ID:       mm.FieldID,
		SchoolID: mm.FieldSchoolID,
		Name:     mm.FieldName,
	}
}

func FromFieldModels(rows []m.FieldModel) []FieldResponse {
	out := make([]FieldResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromFieldModel(r))
	}
	return out
}
