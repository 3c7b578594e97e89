package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LevelModel struct {
	LevelID         uuid.UUID `gorm:"column:level_id;type:uuid;primaryKey" json:"id"`
	LevelSchoolID   uuid.UUID `gorm:"column:level_school_id;type:uuid;not null;index" json:"school_id"`
	LevelScheduleID uuid.UUID `gorm:"column:level_schedule_id;type:uuid;not null" json:"schedule_id"`
	LevelName       string    `gorm:"column:level_name;type:varchar(100);not null" json:"name"`
	LevelCreatedAt  time.Time `gorm:"column:level_created_at;not null;autoCreateTime" json:"-"`
	LevelUpdatedAt  time.Time `gorm:"column:level_updated_at;not null;autoUpdateTime" json:"-"`
}

func (LevelModel) TableName() string { return "levels" }

func (m *LevelModel) TenantID() uuid.UUID { return m.LevelSchoolID }

func (m *LevelModel) BeforeCreate(tx *gorm.DB) error {
	if m.LevelID == uuid.Nil {
		m.LevelID = uuid.New()
	}
	return nil
}
