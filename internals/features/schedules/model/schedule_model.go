package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleModel holds a school shift: when the day starts (minutes from
// midnight), how long the shift is and the class unit length.
type ScheduleModel struct {
	ScheduleID                 uuid.UUID `gorm:"column:schedule_id;type:uuid;primaryKey" json:"id"`
	ScheduleSchoolID           uuid.UUID `gorm:"column:schedule_school_id;type:uuid;not null;index" json:"school_id"`
	ScheduleName               string    `gorm:"column:schedule_name;type:varchar(100);not null" json:"name"`
	ScheduleDayStart           int       `gorm:"column:schedule_day_start;not null" json:"dayStart"`
	ScheduleShiftNumberMinutes int       `gorm:"column:schedule_shift_number_minutes;not null" json:"shiftNumberMinutes"`
	ScheduleClassUnitMinutes   int       `gorm:"column:schedule_class_unit_minutes;not null" json:"classUnitMinutes"`
	ScheduleMonday             bool      `gorm:"column:schedule_monday;not null" json:"monday"`
	ScheduleTuesday            bool      `gorm:"column:schedule_tuesday;not null" json:"tuesday"`
	ScheduleWednesday          bool      `gorm:"column:schedule_wednesday;not null" json:"wednesday"`
	ScheduleThursday           bool      `gorm:"column:schedule_thursday;not null" json:"thursday"`
	ScheduleFriday             bool      `gorm:"column:schedule_friday;not null" json:"friday"`
	ScheduleCreatedAt          time.Time `gorm:"column:schedule_created_at;not null;autoCreateTime" json:"-"`
	ScheduleUpdatedAt          time.Time `gorm:"column:schedule_updated_at;not null;autoUpdateTime" json:"-"`
}

func (ScheduleModel) TableName() string { return "schedules" }

func (m *ScheduleModel) TenantID() uuid.UUID { return m.ScheduleSchoolID }

func (m *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduleID == uuid.Nil {
		m.ScheduleID = uuid.New()
	}
	return nil
}
