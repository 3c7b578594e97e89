package dto

import (
	"strings"

	"github.com/google/uuid"

	m "github.com/JeromeVargas/schedule-maker-sub004/internals/features/teachers/model"
)

/* =========================================================
   CREATE / UPDATE
   ========================================================= */

type CreateTeacherRequest struct {
	SchoolID                *string `json:"school_id" validate:"required,min=1,uuid4"`
	CoordinatorID           *string `json:"coordinator_id" validate:"required,min=1,uuid4"`
	UserID                  *string `json:"user_id" validate:"required,min=1,uuid4"`
	ContractType            *string `json:"contractType" validate:"required,min=1,oneof=full-time part-time substitute"`
	TeachingHoursAssignable *int    `json:"teachingHoursAssignable" validate:"required,gte=0,lte=999999999"`
	TeachingHoursAssigned   *int    `json:"teachingHoursAssigned" validate:"required,gte=0,lte=999999999"`
	AdminHoursAssignable    *int    `json:"adminHoursAssignable" validate:"required,gte=0,lte=999999999"`
	AdminHoursAssigned      *int    `json:"adminHoursAssigned" validate:"required,gte=0,lte=999999999"`
	Monday                  *bool   `json:"monday" validate:"required"`
	Tuesday                 *bool   `json:"tuesday" validate:"required"`
	Wednesday               *bool   `json:"wednesday" validate:"required"`
	Thursday                *bool   `json:"thursday" validate:"required"`
	Friday                  *bool   `json:"friday" validate:"required"`
}

type UpdateTeacherRequest = CreateTeacherRequest

func (r *CreateTeacherRequest) Normalize() {
	if r.ContractType != nil {
		s := strings.TrimSpace(*r.ContractType)
		r.ContractType = &s
	}
}

func (r CreateTeacherRequest) SchoolUUID() uuid.UUID      { return uuid.MustParse(*r.SchoolID) }
func (r CreateTeacherRequest) CoordinatorUUID() uuid.UUID { return uuid.MustParse(*r.CoordinatorID) }
func (r CreateTeacherRequest) UserUUID() uuid.UUID        { return uuid.MustParse(*r.UserID) }

func (r CreateTeacherRequest) ToModel() m.TeacherModel {
	return m.TeacherModel{
		TeacherSchoolID:                r.SchoolUUID(),
		TeacherCoordinatorID:           r.CoordinatorUUID(),
		TeacherUserID:                  r.UserUUID(),
		TeacherContractType:            *r.ContractType,
		TeacherTeachingHoursAssignable: *r.TeachingHoursAssignable,
		TeacherTeachingHoursAssigned:   *r.TeachingHoursAssigned,
		TeacherAdminHoursAssignable:    *r.AdminHoursAssignable,
		TeacherAdminHoursAssigned:      *r.AdminHoursAssigned,
		TeacherMonday:                  *r.Monday,
		TeacherTuesday:                 *r.Tuesday,
		TeacherWednesday:               *r.Wednesday,
		TeacherThursday:                *r.Thursday,
		TeacherFriday:                  *r.Friday,
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type TeacherResponse struct {
	ID                      uuid.UUID `json:"id"`
	SchoolID                uuid.UUID `json:"school_id"`
	CoordinatorID           uuid.UUID `json:"coordinator_id"`
	UserID                  uuid.UUID `json:"user_id"`
	ContractType            string    `json:"contractType"`
	TeachingHoursAssignable int       `json:"teachingHoursAssignable"`
	TeachingHoursAssigned   int       `json:"teachingHoursAssigned"`
	AdminHoursAssignable    int       `json:"adminHoursAssignable"`
	AdminHoursAssigned      int       `json:"adminHoursAssigned"`
	Monday                  bool      `json:"monday"`
	Tuesday                 bool      `json:"tuesday"`
	Wednesday               bool      `json:"wednesday"`
	Thursday                bool      `json:"thursday"`
	Friday                  bool      `json:"friday"`
}

func FromTeacherModel(mm m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		ID:                      mm.TeacherID,
		SchoolID:                mm.TeacherSchoolID,
		CoordinatorID:           mm.TeacherCoordinatorID,
		UserID:                  mm.TeacherUserID,
		ContractType:            mm.TeacherContractType,
		TeachingHoursAssignable: mm.TeacherTeachingHoursAssignable,
		TeachingHoursAssigned:   mm.TeacherTeachingHoursAssigned,
		AdminHoursAssignable:    mm.TeacherAdminHoursAssignable,
		AdminHoursAssigned:      mm.TeacherAdminHoursAssigned,
		Monday:                  mm.TeacherMonday,
		Tuesday:                 mm.TeacherTuesday,
		Wednesday:               mm.TeacherWednesday,
		Thursday:                mm.TeacherThursday,
		Friday:                  mm.TeacherFriday,
	}
}

func FromTeacherModels(rows []m.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromTeacherModel(r))
	}
	return out
}
