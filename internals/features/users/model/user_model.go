// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserSchoolID *uuid.UUID `gorm:"column:user_school_id;type:uuid;index" json:"user_school_id,omitempty"`

	UserEmail    string `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserName     string `gorm:"column:user_name;type:varchar(120);not null" json:"user_name"`
	UserPassword string `gorm:"column:user_password;type:varchar(100);not null" json:"-"` // bcrypt hash
	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'teacher'" json:"user_role"`
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
