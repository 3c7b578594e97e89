package dto

import (
	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/classes/model"
)

type CreateClassRequest struct {
	SchoolID            *string `json:"school_id" validate:"required,min=1,uuid4"`
	CoordinatorID       *string `json:"coordinator_id" validate:"required,min=1,uuid4"`
	SubjectID           *string `json:"subject_id" validate:"required,min=1,uuid4"`
	TeacherFieldID      *string `json:"teacherField_id" validate:"required,min=1,uuid4"`
	StartTime           *int    `json:"startTime" validate:"required,gte=0,lte=999999999"`
	GroupScheduleSlot   *int    `json:"groupScheduleSlot" validate:"required,gte=0,lte=999999999"`
	TeacherScheduleSlot *int    `json:"teacherScheduleSlot" validate:"required,gte=0,lte=999999999"`
}

type UpdateClassRequest = CreateClassRequest

func (r CreateClassRequest) SchoolUUID() uuid.UUID      { return uuid.MustParse(*r.SchoolID) }
func (r CreateClassRequest) CoordinatorUUID() uuid.UUID { return uuid.MustParse(*r.CoordinatorID) }
func (r CreateClassRequest) SubjectUUID() uuid.UUID     { return uuid.MustParse(*r.SubjectID) }
func (r CreateClassRequest) TeacherFieldUUID() uuid.UUID {
	return uuid.MustParse(*r.TeacherFieldID)
}

func (r CreateClassRequest) ToModel() m.ClassModel {
	return m.ClassModel{
		ClassSchoolID:            r.SchoolUUID(),
		ClassCoordinatorID:       r.CoordinatorUUID(),
		ClassSubjectID:           r.SubjectUUID(),
		ClassTeacherFieldID:      r.TeacherFieldUUID(),
		ClassStartTime:           *r.StartTime,
		ClassGroupScheduleSlot:   *r.GroupScheduleSlot,
		ClassTeacherScheduleSlot: *r.TeacherScheduleSlot,
	}
}

type ClassResponse struct {
	ID                  uuid.UUID `json:"id"`
	SchoolID            uuid.UUID `json:"school_id"`
	CoordinatorID       uuid.UUID `json:"coordinator_id"`
	SubjectID           uuid.UUID `json:"subject_id"`
	TeacherFieldID      uuid.UUID `json:"teacherField_id"`
	StartTime           int       `json:"startTime"`
	GroupScheduleSlot   int       `json:"groupScheduleSlot"`
	TeacherScheduleSlot int       `json:"teacherScheduleSlot"`
}

func FromClassModel(mm m.ClassModel) ClassResponse {
	return ClassResponse{
		ID:                  mm.ClassID,
		SchoolID:            mm.ClassSchoolID,
		CoordinatorID:       mm.ClassCoordinatorID,
		SubjectID:           mm.ClassSubjectID,
		TeacherFieldID:      mm.ClassTeacherFieldID,
		StartTime:           mm.ClassStartTime,
		GroupScheduleSlot:   mm.ClassGroupScheduleSlot,
		TeacherScheduleSlot: mm.ClassTeacherScheduleSlot,
	}
}

func FromClassModels(rows []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromClassModel(r))
	}
	return out
}
