package dto

import (
	"strings"

	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/schedules/model"
)

type CreateScheduleRequest struct {
	SchoolID           *string `json:"school_id" validate:"required,min=1,uuid4"`
	Name               *string `json:"name" validate:"required,min=1,max=100"`
	DayStart           *int    `json:"dayStart" validate:"required,gte=0,lte=999999999"`
	ShiftNumberMinutes *int    `json:"shiftNumberMinutes" validate:"required,gte=0,lte=999999999"`
	ClassUnitMinutes   *int    `json:"classUnitMinutes" validate:"required,gte=0,lte=999999999"`
	Monday             *bool   `json:"monday" validate:"required"`
	Tuesday            *bool   `json:"tuesday" validate:"required"`
	Wednesday          *bool   `json:"wednesday" validate:"required"`
	Thursday           *bool   `json:"thursday" validate:"required"`
	Friday             *bool   `json:"friday" validate:"required"`
}

type UpdateScheduleRequest = CreateScheduleRequest

func (r *CreateScheduleRequest) Normalize() {
	if r.Name != nil {
		s := strings.TrimSpace(*r.Name)
		r.Name = &s
	}
}

func (r CreateScheduleRequest) SchoolUUID() uuid.UUID { return uuid.MustParse(*r.SchoolID) }

func (r CreateScheduleRequest) ToModel() m.ScheduleModel {
	return m.ScheduleModel{
		ScheduleSchoolID:           r.SchoolUUID(),
		ScheduleName:               *r.Name,
		ScheduleDayStart:           *r.DayStart,
		ScheduleShiftNumberMinutes: *r.ShiftNumberMinutes,
		ScheduleClassUnitMinutes:   *r.ClassUnitMinutes,
		ScheduleMonday:             *r.Monday,
		ScheduleTuesday:            *r.Tuesday,
		ScheduleWednesday:          *r.Wednesday,
		ScheduleThursday:           *r.Thursday,
		ScheduleFriday:             *r.Friday,
	}
}

type ScheduleResponse struct {
	ID                 uuid.UUID `json:"id"`
	SchoolID           uuid.UUID `json:"school_id"`
	Name               string    `json:"name"`
	DayStart           int       `json:"dayStart"`
	ShiftNumberMinutes int       `json:"shiftNumberMinutes"`
	ClassUnitMinutes   int       `json:"classUnitMinutes"`
	Monday             bool      `json:"monday"`
	Tuesday            bool      `json:"tuesday"`
	Wednesday          bool      `json:"wednesday"`
	Thursday           bool      `json:"thursday"`
	Friday             bool      `json:"friday"`
}

func FromScheduleModel(mm m.ScheduleModel) ScheduleResponse {
	return ScheduleResponse{
		ID:                 mm.ScheduleID,
		SchoolID:           mm.ScheduleSchoolID,
		Name:               mm.ScheduleName,
		DayStart:           mm.ScheduleDayStart,
		ShiftNumberMinutes: mm.ScheduleShiftNumberMinutes,
		ClassUnitMinutes:   mm.ScheduleClassUnitMinutes,
		Monday:             mm.ScheduleMonday,
		Tuesday:            mm.ScheduleTuesday,
		Wednesday:          mm.ScheduleWednesday,
		Thursday:           mm.ScheduleThursday,
		Friday:             mm.ScheduleFriday,
	}
}

func FromScheduleModels(rows []m.ScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromScheduleModel(r))
	}
	return out
}
