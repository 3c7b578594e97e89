package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel places a subject/teacher pair into the weekly grid. Slots are
// minute offsets inside the group and teacher schedules.
type ClassModel struct {
	ClassID                  uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey" json:"id"`
	ClassSchoolID            uuid.UUID `gorm:"column:class_school_id;type:uuid;not null;index" json:"school_id"`
	ClassCoordinatorID       uuid.UUID `gorm:"column:class_coordinator_id;type:uuid;not null" json:"coordinator_id"`
	ClassSubjectID           uuid.UUID `gorm:"column:class_subject_id;type:uuid;not null" json:"subject_id"`
	ClassTeacherFieldID      uuid.UUID `gorm:"column:class_teacher_field_id;type:uuid;not null" json:"teacherField_id"`
	ClassStartTime           int       `gorm:"column:class_start_time;not null" json:"startTime"`
	ClassGroupScheduleSlot   int       `gorm:"column:class_group_schedule_slot;not null" json:"groupScheduleSlot"`
	ClassTeacherScheduleSlot int       `gorm:"column:class_teacher_schedule_slot;not null" json:"teacherScheduleSlot"`
	ClassCreatedAt           time.Time `gorm:"column:class_created_at;not null;autoCreateTime" json:"-"`
	ClassUpdatedAt           time.Time `gorm:"column:class_updated_at;not null;autoUpdateTime" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) TenantID() uuid.UUID { return m.ClassSchoolID }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}
