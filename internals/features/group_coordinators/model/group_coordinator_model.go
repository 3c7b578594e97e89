package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupCoordinatorModel assigns a coordinator to a group. One row per
// (school, group, coordinator).
type GroupCoordinatorModel struct {
	GroupCoordinatorID            uuid.UUID `gorm:"column:group_coordinator_id;type:uuid;primaryKey" json:"id"`
	GroupCoordinatorSchoolID      uuid.UUID `gorm:"column:group_coordinator_school_id;type:uuid;not null;index" json:"school_id"`
	GroupCoordinatorGroupID       uuid.UUID `gorm:"column:group_coordinator_group_id;type:uuid;not null" json:"group_id"`
	GroupCoordinatorCoordinatorID uuid.UUID `gorm:"column:group_coordinator_coordinator_id;type:uuid;not null" json:"coordinator_id"`
	GroupCoordinatorCreatedAt     time.Time `gorm:"column:group_coordinator_created_at;not null;autoCreateTime" json:"-"`
	GroupCoordinatorUpdatedAt     time.Time `gorm:"column:group_coordinator_updated_at;not null;autoUpdateTime" json:"-"`
}

func (GroupCoordinatorModel) TableName() string { return "group_coordinators" }

func (m *GroupCoordinatorModel) TenantID() uuid.UUID { return m.GroupCoordinatorSchoolID }

func (m *GroupCoordinatorModel) BeforeCreate(tx *gorm.DB) error {
	if m.GroupCoordinatorID == uuid.Nil {
		m.GroupCoordinatorID = uuid.New()
	}
	return nil
}
