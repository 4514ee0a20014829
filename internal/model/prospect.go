package model

import (
	"time"
)

// Prospect is a potential client account ("opportunity") being pursued.
type Prospect struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:text;not null" validate:"required"`
	ContactName *string   `json:"contact_name,omitempty" gorm:"type:text"`
	Address     *string   `json:"address,omitempty" gorm:"type:text"`
	City        *string   `json:"city,omitempty" gorm:"type:text"`
	State       *string   `json:"state,omitempty" gorm:"type:text"`
	ZipCode     *string   `json:"zip_code,omitempty" gorm:"type:text"`
	PhoneNumber *string   `json:"phone_number,omitempty" gorm:"type:text"`
	Email       *string   `json:"email,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the Prospect model.
func (Prospect) TableName() string {
	return "prospects"
}

// ProspectUpdateColumns lists the columns a prospect edit may change.
func ProspectUpdateColumns() []string {
	return []string{
		"name",
		"contact_name",
		"address",
		"city",
		"state",
		"zip_code",
		"phone_number",
		"email",
	}
}
