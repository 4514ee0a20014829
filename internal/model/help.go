package model

import (
	"time"
)

// HelpContent stores rich-text (HTML) help copy per page/tab identifier.
// Content is trusted: only admins can write it and it is served verbatim.
type HelpContent struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PageID    string    `json:"page_id" gorm:"type:text;not null;uniqueIndex" validate:"required"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the HelpContent model.
func (HelpContent) TableName() string {
	return "help_content"
}
