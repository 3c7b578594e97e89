package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID              uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"id"`
	UserSchoolID        uuid.UUID `gorm:"column:user_school_id;type:uuid;not null;index" json:"school_id"`
	UserFirstName       string    `gorm:"column:user_first_name;type:varchar(100);not null" json:"firstName"`
	UserLastName        string    `gorm:"column:user_last_name;type:varchar(100);not null" json:"lastName"`
	UserEmail           string    `gorm:"column:user_email;type:varchar(100);not null" json:"email"`
	UserPassword        string    `gorm:"column:user_password;type:varchar(100);not null" json:"-"`
	UserRole            string    `gorm:"column:user_role;type:varchar(20);not null" json:"role"`
	UserStatus          string    `gorm:"column:user_status;type:varchar(20);not null" json:"status"`
	UserHasTeachingFunc bool      `gorm:"column:user_has_teaching_func;not null" json:"hasTeachingFunc"`
	UserCreatedAt       time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"-"`
	UserUpdatedAt       time.Time `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) TenantID() uuid.UUID { return m.UserSchoolID }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
