package model

import (
	"time"
)

// RouteDriver is a recruiting candidate or active driver, optionally linked
// to one route. DaysToFill and Retention are derived columns recomputed on
// every save (see the metrics package); StatusChangedFrom/To/Date is the
// audit triple for the most recent status transition.
type RouteDriver struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProspectRouteID  *int64    `json:"prospect_route_id,omitempty" gorm:"index"`
	DriverName       *string   `json:"driver_name,omitempty" gorm:"type:text"`
	DriverNumber     *string   `json:"driver_number,omitempty" gorm:"type:text"`
	Address          *string   `json:"address,omitempty" gorm:"type:text"`
	City             *string   `json:"city,omitempty" gorm:"type:text"`
	State            *string   `json:"state,omitempty" gorm:"type:text"`
	Zipcode          *string   `json:"zipcode,omitempty" gorm:"type:text"`
	PhoneNumber      *string   `json:"phone_number,omitempty" gorm:"type:text"`
	Email            *string   `json:"email,omitempty" gorm:"type:text" validate:"omitempty,email"`
	Source           *string   `json:"source,omitempty" gorm:"type:text"`
	Status           string    `json:"status" gorm:"type:text;not null" validate:"required"`
	RecruitedBy      *string   `json:"recruited_by,omitempty" gorm:"type:text"`
	DateHired        *string   `json:"date_hired,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	DateOnboarded    *string   `json:"date_onboarded,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	DateTerminated   *string   `json:"date_terminated,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	DateAdded        *string   `json:"date_added,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	DaysToFill       *int      `json:"days_to_fill,omitempty" gorm:"type:integer"`
	Retention        *int      `json:"retention,omitempty" gorm:"type:integer"`
	Notes            *string   `json:"notes,omitempty" gorm:"type:text"`
	ReasonTerminated *string   `json:"reason_terminated,omitempty" gorm:"type:text"`
	ReasonRejected   *string   `json:"reason_rejected,omitempty" gorm:"type:text"`
	VehicleType      *string   `json:"vehicle_type,omitempty" gorm:"type:text"`
	PaperworkIn      *string   `json:"paperwork_in,omitempty" gorm:"type:text"`
	DrugBgCheck      *string   `json:"drug_bg_check,omitempty" gorm:"type:text"`
	StatusChangedFrom *string  `json:"status_changed_from,omitempty" gorm:"type:text"`
	StatusChangedTo  *string   `json:"status_changed_to,omitempty" gorm:"type:text"`
	StatusChangeDate *string   `json:"status_change_date,omitempty" gorm:"type:date" validate:"omitempty,dateonly"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for the RouteDriver model.
func (RouteDriver) TableName() string {
	return "prospect_route_drivers"
}

// PaperworkComplete reports whether both compliance flags are set to Yes.
func (d RouteDriver) PaperworkComplete() bool {
	return deref(d.PaperworkIn, FlagNo) == FlagYes && deref(d.DrugBgCheck, FlagNo) == FlagYes
}

// DriverUpdateColumns lists the columns a driver edit may change.
func DriverUpdateColumns() []string {
	return []string{
		"prospect_route_id",
		"driver_name",
		"driver_number",
		"address",
		"city",
		"state",
		"zipcode",
		"phone_number",
		"email",
		"source",
		"status",
		"recruited_by",
		"date_hired",
		"date_onboarded",
		"date_terminated",
		"date_added",
		"days_to_fill",
		"retention",
		"notes",
		"reason_terminated",
		"reason_rejected",
		"vehicle_type",
		"paperwork_in",
		"drug_bg_check",
		"status_changed_from",
		"status_changed_to",
		"status_change_date",
	}
}

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
