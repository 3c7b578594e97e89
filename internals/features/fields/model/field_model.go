package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldModel is a knowledge area (maths, chemistry, ...) teachers get assigned to.
type FieldModel struct {
	FieldID        uuid.UUID `gorm:"column:field_id;type:uuid;primaryKey" json:"id"`
	FieldSchoolID  uuid.UUID `gorm:"column:field_school_id;type:uuid;not null;index" json:"school_id"`
	FieldName      string    `gorm:"column:field_name;type:varchar(100);not null" json:"name"`
	FieldCreatedAt time.Time `gorm:"column:field_created_at;not null;autoCreateTime" json:"-"`
	FieldUpdatedAt time.Time `gorm:"column:field_updated_at;not null;autoUpdateTime" json:"-"`
}

func (FieldModel) TableName() string { return "fields" }

func (m *FieldModel) TenantID() uuid.UUID { return m.FieldSchoolID }

func (m *FieldModel) BeforeCreate(tx *gorm.DB) error {
	if m.FieldID == uuid.Nil {
		m.FieldID = uuid.New()
	}
	return nil
}
