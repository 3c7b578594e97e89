package dto

import (
	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teacher_fields/model"
)

type CreateTeacherFieldRequest struct {
	SchoolID  *string `json:"school_id" validate:"required,min=1,uuid4"`
	TeacherID *string `json:"teacher_id" validate:"required,min=1,uuid4"`
	FieldID   *string `json:"field_id" validate:"required,min=1,uuid4"`
}

type UpdateTeacherFieldRequest = CreateTeacherFieldRequest

func (r CreateTeacherFieldRequest) SchoolUUID() uuid.UUID  { return uuid.MustParse(*r.SchoolID) }
func (r CreateTeacherFieldRequest) TeacherUUID() uuid.UUID { return uuid.MustParse(*r.TeacherID) }
func (r CreateTeacherFieldRequest) FieldUUID() uuid.UUID   { return uuid.MustParse(*r.FieldID) }

func (r CreateTeacherFieldRequest) ToModel() m.TeacherFieldModel {
	return m.TeacherFieldModel{
		TeacherFieldSchoolID:  r.SchoolUUID(),
		TeacherFieldTeacherID: r.TeacherUUID(),
		TeacherFieldFieldID:   r.FieldUUID(),
	}
}

type TeacherFieldResponse struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	TeacherID uuid.UUID `json:"teacher_id"`
	FieldID   uuid.UUID `json:"field_id"`
}

func FromTeacherFieldModel(mm m.TeacherFieldModel) TeacherFieldResponse {
	return TeacherFieldResponse{
		ID:        mm.TeacherFieldID,
		SchoolID:  mm.TeacherFieldSchoolID,
		TeacherID: mm.TeacherFieldTeacherID,
		FieldID:   mm.TeacherFieldFieldID,
	}
}

func FromTeacherFieldModels(rows []m.TeacherFieldModel) []TeacherFieldResponse {
	out := make([]TeacherFieldResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromTeacherFieldModel(r))
	}
	return out
}
