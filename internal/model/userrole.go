package model

import (
	"time"
)

// UserRole maps an external identity-provider user to an access role.
// Absence of a row means viewer.
type UserRole struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:text;not null;uniqueIndex" validate:"required"`
	Email     string    `json:"email" gorm:"type:text;not null" validate:"required,email"`
	Role      string    `json:"role" gorm:"type:text;not null" validate:"required,oneof=admin editor dispatcher viewer"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the UserRole model.
func (UserRole) TableName() string {
	return "user_roles"
}
