package dto

import (
	"strings"

	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/subjects/model"
)

type CreateSubjectRequest struct {
	SchoolID      *string `json:"school_id" validate:"required,min=1,uuid4"`
	CoordinatorID *string `json:"coordinator_id" validate:"required,min=1,uuid4"`
	GroupID       *string `json:"group_id" validate:"required,min=1,uuid4"`
	FieldID       *string `json:"field_id" validate:"required,min=1,uuid4"`
	Name          *string `json:"name" validate:"required,min=1,max=100"`
	SessionUnits  *int    `json:"sessionUnits" validate:"required,gte=0,lte=999999999"`
	Frequency     *int    `json:"frequency" validate:"required,gte=0,lte=999999999"`
}

type UpdateSubjectRequest = CreateSubjectRequest

func (r *CreateSubjectRequest) Normalize() {
	if r.Name != nil {
		s := strings.TrimSpace(*r.Name)
		r.Name = &s
	}
}

func (r CreateSubjectRequest) SchoolUUID() uuid.UUID      { return uuid.MustParse(*r.SchoolID) }
func (r CreateSubjectRequest) CoordinatorUUID() uuid.UUID { return uuid.MustParse(*r.CoordinatorID) }
func (r CreateSubjectRequest) GroupUUID() uuid.UUID       { return uuid.MustParse(*r.GroupID) }
func (r CreateSubjectRequest) FieldUUID() uuid.UUID       { return uuid.MustParse(*r.FieldID) }

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	return m.SubjectModel{
		SubjectSchoolID:      r.SchoolUUID(),
		SubjectCoordinatorID: r.CoordinatorUUID(),
		SubjectGroupID:       r.GroupUUID(),
		SubjectFieldID:       r.FieldUUID(),
		SubjectName:          *r.Name,
		SubjectSessionUnits:  *r.SessionUnits,
		SubjectFrequency:     *r.Frequency,
	}
}

type SubjectResponse struct {
	ID            uuid.UUID `json:"id"`
	SchoolID      uuid.UUID `json:"school_id"`
	CoordinatorID uuid.UUID `json:"coordinator_id"`
	GroupID       uuid.UUID `json:"group_id"`
	FieldID       uuid.UUID `json:"field_id"`
	Name          string    `json:"name"`
	SessionUnits  int       `json:"sessionUnits"`
	Frequency     int       `json:"frequency"`
}

func FromSubjectModel(mm m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		ID:            mm.SubjectID,
		SchoolID:      mm.SubjectSchoolID,
		CoordinatorID: mm.SubjectCoordinatorID,
		GroupID:       mm.SubjectGroupID,
		FieldID:       mm.SubjectFieldID,
		Name:          mm.SubjectName,
		SessionUnits:  mm.SubjectSessionUnits,
		Frequency:     mm.SubjectFrequency,
	}
}

func FromSubjectModels(rows []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromSubjectModel(r))
	}
	return out
}
