package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID            uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey" json:"id"`
	SubjectSchoolID      uuid.UUID `gorm:"column:subject_school_id;type:uuid;not null;index" json:"school_id"`
	SubjectCoordinatorID uuid.UUID `gorm:"column:subject_coordinator_id;type:uuid;not null" json:"coordinator_id"`
	SubjectGroupID       uuid.UUID `gorm:"column:subject_group_id;type:uuid;not null" json:"group_id"`
	SubjectFieldID       uuid.UUID `gorm:"column:subject_field_id;type:uuid;not null" json:"field_id"`
	SubjectName          string    `gorm:"column:subject_name;type:varchar(100);not null" json:"name"`
	SubjectSessionUnits  int       `gorm:"column:subject_session_units;not null" json:"sessionUnits"`
	SubjectFrequency     int       `gorm:"column:subject_frequency;not null" json:"frequency"`
	SubjectCreatedAt     time.Time `gorm:"column:subject_created_at;not null;autoCreateTime" json:"-"`
	SubjectUpdatedAt     time.Time `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) TenantID() uuid.UUID { return m.SubjectSchoolID }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}
