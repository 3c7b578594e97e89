package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BreakModel struct {
	BreakID            uuid.UUID `gorm:"column:break_id;type:uuid;primaryKey" json:"id"`
	BreakSchoolID      uuid.UUID `gorm:"column:break_school_id;type:uuid;not null;index" json:"school_id"`
	BreakScheduleID    uuid.UUID `gorm:"column:break_schedule_id;type:uuid;not null" json:"schedule_id"`
	BreakStart         int       `gorm:"column:break_start;not null" json:"breakStart"`
	BreakNumberMinutes int       `gorm:"column:break_number_minutes;not null" json:"numberMinutes"`
	BreakCreatedAt     time.Time `gorm:"column:break_created_at;not null;autoCreateTime" json:"-"`
	BreakUpdatedAt     time.Time `gorm:"column:break_updated_at;not null;autoUpdateTime" json:"-"`
}

func (BreakModel) TableName() string { return "breaks" }

func (m *BreakModel) TenantID() uuid.UUID { return m.BreakSchoolID }

func (m *BreakModel) BeforeCreate(tx *gorm.DB) error {
	if m.BreakID == uuid.Nil {
		m.BreakID = uuid.New()
	}
	return nil
}
