package dto

import (
	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/group_coordinators/model"
)

type CreateGroupCoordinatorRequest struct {
	SchoolID      *string `json:"school_id" validate:"required,min=1,uuid4"`
	GroupID       *string `json:"group_id" validate:"required,min=1,uuid4"`
	CoordinatorID *string `json:"coordinator_id" validate:"required,min=1,uuid4"`
}

type UpdateGroupCoordinatorRequest = CreateGroupCoordinatorRequest

func (r CreateGroupCoordinatorRequest) SchoolUUID() uuid.UUID { return uuid.MustParse(*r.SchoolID) }
func (r CreateGroupCoordinatorRequest) GroupUUID() uuid.UUID  { return uuid.MustParse(*r.GroupID) }
func (r CreateGroupCoordinatorRequest) CoordinatorUUID() uuid.UUID {
	return uuid.MustParse(*r.CoordinatorID)
}

func (r CreateGroupCoordinatorRequest) ToModel() m.GroupCoordinatorModel {
	return m.GroupCoordinatorModel{
		GroupCoordinatorSchoolID:      r.SchoolUUID(),
		GroupCoordinatorGroupID:       r.GroupUUID(),
		GroupCoordinatorCoordinatorID: r.CoordinatorUUID(),
	}
}

type GroupCoordinatorResponse struct {
	ID            uuid.UUID `json:"id"`
	SchoolID      uuid.UUID `json:"school_id"`
	GroupID       uuid.UUID `json:"group_id"`
	CoordinatorID uuid.UUID `json:"coordinator_id"`
}

func FromGroupCoordinatorModel(mm m.GroupCoordinatorModel) GroupCoordinatorResponse {
	return GroupCoordinatorResponse{
		ID:            mm.GroupCoordinatorID,
		SchoolID:      mm.GroupCoordinatorSchoolID,
		GroupID:       mm.GroupCoordinatorGroupID,
		CoordinatorID: mm.GroupCoordinatorCoordinatorID,
	}
}

func FromGroupCoordinatorModels(rows []m.GroupCoordinatorModel) []GroupCoordinatorResponse {
	out := make([]GroupCoordinatorResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromGroupCoordinatorModel(r))
	}
	return out
}
