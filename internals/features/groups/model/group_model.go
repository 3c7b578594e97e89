package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupModel struct {
	GroupID             uuid.UUID `gorm:"column:group_id;type:uuid;primaryKey" json:"id"`
	GroupSchoolID       uuid.UUID `gorm:"column:group_school_id;type:uuid;not null;index" json:"school_id"`
	GroupLevelID        uuid.UUID `gorm:"column:group_level_id;type:uuid;not null" json:"level_id"`
	GroupCoordinatorID  uuid.UUID `gorm:"column:group_coordinator_id;type:uuid;not null" json:"coordinator_id"`
	GroupName           string    `gorm:"column:group_name;type:varchar(100);not null" json:"name"`
	GroupNumberStudents int       `gorm:"column:group_number_students;not null" json:"numberStudents"`
	GroupCreatedAt      time.Time `gorm:"column:group_created_at;not null;autoCreateTime" json:"-"`
	GroupUpdatedAt      time.Time `gorm:"column:group_updated_at;not null;autoUpdateTime" json:"-"`
}

func (GroupModel) TableName() string { return "groups" }

func (m *GroupModel) TenantID() uuid.UUID { return m.GroupSchoolID }

func (m *GroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.GroupID == uuid.Nil {
		m.GroupID = uuid.New()
	}
	return nil
}
