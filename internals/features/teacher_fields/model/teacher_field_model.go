package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherFieldModel links a teacher to a field they can teach.
type TeacherFieldModel struct {
	TeacherFieldID        uuid.UUID `gorm:"column:teacher_field_id;type:uuid;primaryKey" json:"id"`
	TeacherFieldSchoolID  uuid.UUID `gorm:"column:teacher_field_school_id;type:uuid;not null;index" json:"school_id"`
	TeacherFieldTeacherID uuid.UUID `gorm:"column:teacher_field_teacher_id;type:uuid;not null" json:"teacher_id"`
	TeacherFieldFieldID   uuid.UUID `gorm:"column:teacher_field_field_id;type:uuid;not null" json:"field_id"`
	TeacherFieldCreatedAt time.Time `gorm:"column:teacher_field_created_at;not null;autoCreateTime" json:"-"`
	TeacherFieldUpdatedAt time.Time `gorm:"column:teacher_field_updated_at;not null;autoUpdateTime" json:"-"`
}

func (TeacherFieldModel) TableName() string { return "teacher_fields" }

func (m *TeacherFieldModel) TenantID() uuid.UUID { return m.TeacherFieldSchoolID }

func (m *TeacherFieldModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherFieldID == uuid.Nil {
		m.TeacherFieldID = uuid.New()
	}
	return nil
}
