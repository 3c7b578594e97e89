package dto

import (
	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/breaks/model"
)

type CreateBreakRequest struct {
	SchoolID      *string `json:"school_id" validate:"required,min=1,uuid4"`
	ScheduleID    *string `json:"schedule_id" validate:"required,min=1,uuid4"`
	BreakStart    *int    `json:"breakStart" validate:"required,gte=0,lte=999999999"`
	NumberMinutes *int    `json:"numberMinutes" validate:"required,gte=0,lte=999999999"`
}

type UpdateBreakRequest = CreateBreakRequest

func (r CreateBreakRequest) SchoolUUID() uuid.UUID   { return uuid.MustParse(*r.SchoolID) }
func (r CreateBreakRequest) ScheduleUUID() uuid.UUID { return uuid.MustParse(*r.ScheduleID) }

func (r CreateBreakRequest) ToModel() m.BreakModel {
	return m.BreakModel{
		BreakSchoolID:      r.SchoolUUID(),
		BreakScheduleID:    r.ScheduleUUID(),
		BreakStart:         *r.BreakStart,
		BreakNumberMinutes: *r.NumberMinutes,
	}
}

type BreakResponse struct {
	ID            uuid.UUID `json:"id"`
	SchoolID      uuid.UUID `json:"school_id"`
	ScheduleID    uuid.UUID `json:"schedule_id"`
	BreakStart    int       `json:"breakStart"`
	NumberMinutes int       `json:"numberMinutes"`
}

func FromBreakModel(mm m.BreakModel) BreakResponse {
	return BreakResponse{
		ID:            mm.BreakID,
		SchoolID:      mm.BreakSchoolID,
		ScheduleID:    mm.BreakScheduleID,
		BreakStart:    mm.BreakStart,
		NumberMinutes: mm.BreakNumberMinutes,
	}
}

func FromBreakModels(rows []m.BreakModel) []BreakResponse {
	out := make([]BreakResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromBreakModel(r))
	}
	return out
}
