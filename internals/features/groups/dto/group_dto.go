package dto

import (
	"strings"

	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/groups/model"
)

type CreateGroupRequest struct {
	SchoolID       *string `json:"school_id" validate:"required,min=1,uuid4"`
	LevelID        *string `json:"level_id" validate:"required,min=1,uuid4"`
	CoordinatorID  *string `json:"coordinator_id" validate:"required,min=1,uuid4"`
	Name           *string `json:"name" validate:"required,min=1,max=100"`
	NumberStudents *int    `json:"numberStudents" validate:"required,gte=0,lte=999999999"`
}

type UpdateGroupRequest = CreateGroupRequest

func (r *CreateGroupRequest) Normalize() {
	if r.Name != nil {
		s := strings.TrimSpace(*r.Name)
		r.Name = &s
	}
}

func (r CreateGroupRequest) SchoolUUID() uuid.UUID      { return uuid.MustParse(*r.SchoolID) }
func (r CreateGroupRequest) LevelUUID() uuid.UUID       { return uuid.MustParse(*r.LevelID) }
func (r CreateGroupRequest) CoordinatorUUID() uuid.UUID { return uuid.MustParse(*r.CoordinatorID) }

func (r CreateGroupRequest) ToModel() m.GroupModel {
	return m.GroupModel{
		GroupSchoolID:       r.SchoolUUID(),
		GroupLevelID:        r.LevelUUID(),
		GroupCoordinatorID:  r.CoordinatorUUID(),
		GroupName:           *r.Name,
		GroupNumberStudents: *r.NumberStudents,
	}
}

type GroupResponse struct {
	ID             uuid.UUID `json:"id"`
	SchoolID       uuid.UUID `json:"school_id"`
	LevelID        uuid.UUID `json:"level_id"`
	CoordinatorID  uuid.UUID `json:"coordinator_id"`
	Name           string    `json:"name"`
	NumberStudents int       `json:"numberStudents"`
}

func FromGroupModel(mm m.GroupModel) GroupResponse {
	return GroupResponse{
		ID:             mm.GroupID,
		SchoolID:       mm.GroupSchoolID,
		LevelID:        mm.GroupLevelID,
		CoordinatorID:  mm.GroupCoordinatorID,
		Name:           mm.GroupName,
		NumberStudents: mm.GroupNumberStudents,
	}
}

func FromGroupModels(rows []m.GroupModel) []GroupResponse {
	out := make([]GroupResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromGroupModel(r))
	}
	return out
}
