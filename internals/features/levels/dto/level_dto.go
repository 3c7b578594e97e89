package dto

import (
	"strings"

	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/levels/model"
)

type CreateLevelRequest struct {
	SchoolID   *string `json:"school_id" validate:"required,min=1,uuid4"`
	ScheduleID *string `json:"schedule_id" validate:"required,min=1,uuid4"`
	Name       *string `json:"name" validate:"required,min=1,max=100"`
}

type UpdateLevelRequest = CreateLevelRequest

func (r *CreateLevelRequest) Normalize() {
	if r.Name != nil {
		s := strings.TrimSpace(*r.Name)
		r.Name = &s
	}
}

func (r CreateLevelRequest) SchoolUUID() uuid.UUID   { return uuid.MustParse(*r.SchoolID) }
func (r CreateLevelRequest) ScheduleUUID() uuid.UUID { return uuid.MustParse(*r.ScheduleID) }

func (r CreateLevelRequest) ToModel() m.LevelModel {
	return m.LevelModel{
		LevelSchoolID:   r.SchoolUUID(),
		LevelScheduleID: r.ScheduleUUID(),
		LevelName:       *r.Name,
	}
}

type LevelResponse struct {
	ID         uuid.UUID `json:"id"`
	SchoolID   uuid.UUID `json:"school_id"`
	ScheduleID uuid.UUID `json:"schedule_id"`
	Name       string    `json:"name"`
}

func FromLevelModel(mm m.LevelModel) LevelResponse {
	return LevelResponse{
		ID:         mm.LevelID,
		SchoolID:   mm.LevelSchoolID,
		ScheduleID: mm.LevelScheduleID,
		Name:       mm.LevelName,
	}
}

func FromLevelModels(rows []m.LevelModel) []LevelResponse {
	out := make([]LevelResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromLevelModel(r))
	}
	return out
}
