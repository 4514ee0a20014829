package model

import (
	"time"
)

// ProspectRoute is a staffing slot associated with a prospect: how many
// drivers it needs, pricing/commission, and its schedule window. Each data
// set carries one sentinel route named "Unassigned" (see UnassignedRouteName)
// that buckets drivers without a real assignment.
type ProspectRoute struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProspectID    int64     `json:"prospect_id" gorm:"index;not null" validate:"required"`
	RouteIDName   string    `json:"route_id_name" gorm:"type:text;not null" validate:"required"`
	DriversNeeded int       `json:"drivers_needed" gorm:"not null;default:0" validate:"gte=0"`
	DateAssigned  *string   `json:"date_assigned,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	DateFilled    *string   `json:"date_filled,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	City          *string   `json:"city,omitempty" gorm:"type:text"`
	State         *string   `json:"state,omitempty" gorm:"type:text"`
	Distance      *float64  `json:"distance,omitempty" gorm:"type:numeric"`
	Price         *float64  `json:"price,omitempty" gorm:"type:numeric"`
	Commission    *float64  `json:"commission,omitempty" gorm:"type:numeric"`
	VehicleType   *string   `json:"vehicle_type,omitempty" gorm:"type:text"`
	StartTime     *string   `json:"start_time,omitempty" gorm:"type:text"`
	EndTime       *string   `json:"end_time,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the ProspectRoute model.
func (ProspectRoute) TableName() string {
	return "prospect_routes"
}

// IsUnassignedSentinel reports whether this route is the data set's
// unassigned-drivers bucket.
func (r ProspectRoute) IsUnassignedSentinel() bool {
	return r.RouteIDName == UnassignedRouteName
}

// RouteUpdateColumns lists the columns a route edit may change.
func RouteUpdateColumns() []string {
	return []string{
		"route_id_name",
		"drivers_needed",
		"date_assigned",
		"date_filled",
		"city",
		"state",
		"distance",
		"price",
		"commission",
		"vehicle_type",
		"start_time",
		"end_time",
	}
}
