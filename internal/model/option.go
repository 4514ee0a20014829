package model

import (
	"fmt"
)

// Taxonomy identifies one of the admin-managed dropdown option tables. All
// share the same row shape; driver_status_options additionally carries the
// is_slot_filler flag.
type Taxonomy string

const (
	TaxonomyStatus           Taxonomy = "status_options"
	TaxonomyContactVia       Taxonomy = "contact_via_options"
	TaxonomyDocumentType     Taxonomy = "document_types"
	TaxonomySource           Taxonomy = "source_options"
	TaxonomyDriverSource     Taxonomy = "driver_source_options"
	TaxonomyDriverStatus     Taxonomy = "driver_status_options"
	TaxonomyRecruiter        Taxonomy = "recruiter_options"
	TaxonomyReasonTerminated Taxonomy = "reason_terminated_options"
	TaxonomyReasonRejected   Taxonomy = "reason_rejected_options"
	TaxonomyVehicleType      Taxonomy = "vehicle_type_options"
	TaxonomyEmailRecipient   Taxonomy = "route_email_recipients"
)

// Taxonomies lists every option table in presentation order.
func Taxonomies() []Taxonomy {
	return []Taxonomy{
		TaxonomyStatus,
		TaxonomyContactVia,
		TaxonomyDocumentType,
		TaxonomySource,
		TaxonomyDriverSource,
		TaxonomyDriverStatus,
		TaxonomyRecruiter,
		TaxonomyReasonTerminated,
		TaxonomyReasonRejected,
		TaxonomyVehicleType,
		TaxonomyEmailRecipient,
	}
}

// ParseTaxonomy validates a taxonomy name from the API surface.
func ParseTaxonomy(name string) (Taxonomy, error) {
	for _, t := range Taxonomies() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown option taxonomy %q", name)
}

// HasSlotFiller reports whether the taxonomy carries the is_slot_filler flag.
func (t Taxonomy) HasSlotFiller() bool {
	return t == TaxonomyDriverStatus
}

// Option is one row of any taxonomy table. SortOrder is a contiguous 1..N
// ranking within the table; IsSlotFiller is persisted only for
// driver_status_options.
type Option struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"type:text;not null;uniqueIndex" validate:"required"`
	SortOrder    int    `json:"sort_order" gorm:"not null" validate:"gte=1"`
	IsSlotFiller *bool  `json:"is_slot_filler,omitempty" gorm:"default:false"`
}
