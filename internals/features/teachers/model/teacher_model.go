package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID                       uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey" json:"id"`
	TeacherSchoolID                 uuid.UUID `gorm:"column:teacher_school_id;type:uuid;not null;index" json:"school_id"`
	TeacherCoordinatorID            uuid.UUID `gorm:"column:teacher_coordinator_id;type:uuid;not null" json:"coordinator_id"`
	TeacherUserID                   uuid.UUID `gorm:"column:teacher_user_id;type:uuid;not null" json:"user_id"`
	TeacherContractType             string    `gorm:"column:teacher_contract_type;type:varchar(20);not null" json:"contractType"`
	TeacherTeachingHoursAssignable  int       `gorm:"column:teacher_teaching_hours_assignable;not null" json:"teachingHoursAssignable"`
	TeacherTeachingHoursAssigned    int       `gorm:"column:teacher_teaching_hours_assigned;not null" json:"teachingHoursAssigned"`
	TeacherAdminHoursAssignable     int       `gorm:"column:teacher_admin_hours_assignable;not null" json:"adminHoursAssignable"`
	TeacherAdminHoursAssigned       int       `gorm:"column:teacher_admin_hours_assigned;not null" json:"adminHoursAssigned"`
	TeacherMonday                   bool      `gorm:"column:teacher_monday;not null" json:"monday"`
	TeacherTuesday                  bool      `gorm:"column:teacher_tuesday;not null" json:"tuesday"`
	TeacherWednesday                bool      `gorm:"column:teacher_wednesday;not null" json:"wednesday"`
	TeacherThursday                 bool      `gorm:"column:teacher_thursday;not null" json:"thursday"`
	TeacherFriday                   bool      `gorm:"column:teacher_friday;not null" json:"friday"`
	TeacherCreatedAt                time.Time `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"-"`
	TeacherUpdatedAt                time.Time `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"-"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) TenantID() uuid.UUID { return m.TeacherSchoolID }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}
