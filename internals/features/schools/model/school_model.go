package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel is the tenant root: every other entity hangs off school_id.
type SchoolModel struct {
	SchoolID                  uuid.UUID `gorm:"column:school_id;type:uuid;primaryKey" json:"id"`
	SchoolName                string    `gorm:"column:school_name;type:varchar(100);not null;uniqueIndex" json:"name"`
	SchoolGroupMaxNumStudents int       `gorm:"column:school_group_max_num_students;not null" json:"groupMaxNumStudents"`
	SchoolCreatedAt           time.Time `gorm:"column:school_created_at;not null;autoCreateTime" json:"-"`
	SchoolUpdatedAt           time.Time `gorm:"column:school_updated_at;not null;autoUpdateTime" json:"-"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	return nil
}
