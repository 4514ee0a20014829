package model

import (
	"time"
)

// Document links an uploaded file blob to a prospect. The blob itself lives
// in the object store under StoragePath; FileName preserves the original
// upload name for display.
type Document struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProspectID     int64     `json:"prospect_id" gorm:"index;not null" validate:"required"`
	DocumentTypeID int64     `json:"document_type_id" gorm:"not null" validate:"required"`
	Description    string    `json:"description,omitempty" gorm:"type:text"`
	Notes          string    `json:"notes,omitempty" gorm:"type:text"`
	FileName       string    `json:"file_name" gorm:"type:text;not null"`
	StoragePath    string    `json:"storage_path" gorm:"type:text;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the Document model.
func (Document) TableName() string {
	return "documents"
}

// DocumentUpdateColumns lists the columns a document edit may change. The
// file columns are included only when a replacement file was uploaded.
func DocumentUpdateColumns(withFile bool) []string {
	cols := []string{
		"prospect_id",
		"document_type_id",
		"description",
		"notes",
	}
	if withFile {
		cols = append(cols, "file_name", "storage_path")
	}
	return cols
}
