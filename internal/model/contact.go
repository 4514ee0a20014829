package model

import (
	"time"
)

// Contact is a dated interaction/negotiation snapshot for a prospect.
// Several per prospect form a timeline; the most recent by contact_date is
// the prospect's current state for dashboards.
//
// Forecast and Actual are stored as text: historical rows carry loosely
// formatted currency strings ("$1,200.50") and the derivation layer is the
// only place that parses them.
type Contact struct {
	ID                 int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProspectID         int64     `json:"prospect_id" gorm:"index;not null" validate:"required"`
	ContactName        string    `json:"contact_name" gorm:"type:text" validate:"required"`
	ContactDate        *string   `json:"contact_date,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	Source             string    `json:"source,omitempty" gorm:"type:text"`
	ContactVia         string    `json:"contact_via,omitempty" gorm:"type:text"`
	Status             string    `json:"status" gorm:"type:text;not null" validate:"required"`
	Forecast           string    `json:"forecast,omitempty" gorm:"type:text"`
	Actual             *string   `json:"actual,omitempty" gorm:"type:text"`
	Probability        float64   `json:"probability" gorm:"type:numeric" validate:"gte=0,lte=100"`
	GrossMargin        float64   `json:"gross_margin" gorm:"type:numeric" validate:"gte=0,lte=100"`
	FinalGrossMargin   *float64  `json:"final_gross_margin,omitempty" gorm:"type:numeric"`
	ExpectedClosing    *string   `json:"expected_closing,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	ActualCloseDate    *string   `json:"actual_close_date,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	QuoteDueDate       *string   `json:"quote_due_date,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	DateQuoteSubmitted *string   `json:"date_quote_submitted,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	StartDate          *string   `json:"start_date,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	ActualStartDate    *string   `json:"actual_start_date,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	Completed          bool      `json:"completed" gorm:"not null;default:false"`
	Notes              string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the Contact model.
func (Contact) TableName() string {
	return "contacts"
}

// ContactUpdateColumns lists the columns a contact edit may change.
func ContactUpdateColumns() []string {
	return []string{
		"contact_name",
		"contact_date",
		"source",
		"contact_via",
		"status",
		"forecast",
		"actual",
		"probability",
		"gross_margin",
		"final_gross_margin",
		"expected_closing",
		"actual_close_date",
		"quote_due_date",
		"date_quote_submitted",
		"start_date",
		"actual_start_date",
		"completed",
		"notes",
	}
}

// ContactChange is an append-only audit row recording one field transition on
// a contact. Rows are written once and never mutated.
type ContactChange struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProspectID int64     `json:"prospect_id" gorm:"index;not null"`
	ContactID  int64     `json:"contact_id" gorm:"index;not null"`
	FieldName  string    `json:"field_name" gorm:"type:text;not null"`
	OldValue   *string   `json:"old_value,omitempty" gorm:"type:text"`
	NewValue   *string   `json:"new_value,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the ContactChange model.
func (ContactChange) TableName() string {
	return "contact_changes"
}
