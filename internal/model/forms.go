package model

import (
	"strconv"
	"strings"
)

// Form types are the wire shape of edit submissions. Every field arrives as
// a string (the store treats empty string and NULL as distinct, and several
// numeric and foreign-key columns reject empty string), so each form owns a
// pure ToRecord mapping that nulls empty optionals and coerces foreign keys
// to integers before anything is transmitted.

// NullableString converts an empty form value to NULL.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// CoerceID converts a form foreign-key value to an integer or NULL, never
// an unparsed string.
func CoerceID(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// CoerceNumber converts a form numeric value to a float or NULL.
func CoerceNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &num
}

// ProspectForm is the edit-form payload for a prospect.
type ProspectForm struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contact_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// ToRecord maps the form to a persistence record.
func (f ProspectForm) ToRecord() Prospect {
	return Prospect{
		ID:          f.ID,
		Name:        strings.TrimSpace(f.Name),
		ContactName: NullableString(f.ContactName),
		Address:     NullableString(f.Address),
		City:        NullableString(f.City),
		State:       NullableString(f.State),
		ZipCode:     NullableString(f.ZipCode),
		PhoneNumber: NullableString(f.PhoneNumber),
		Email:       NullableString(f.Email),
	}
}

// ContactForm is the edit-form payload for a contact (interaction).
type ContactForm struct {
	ID               int64   `json:"id,omitempty"`
	ProspectID       int64   `json:"prospect_id" validate:"required"`
	ContactName      string  `json:"contact_name" validate:"required"`
	ContactDate      string  `json:"contact_date" validate:"omitempty,dateonly"`
	Source           string  `json:"source"`
	ContactVia       string  `json:"contact_via"`
	Status           string  `json:"status" validate:"required"`
	Forecast         string  `json:"forecast"`
	Actual           string  `json:"actual"`
	Probability      float64 `json:"probability" validate:"gte=0,lte=100"`
	GrossMargin      float64 `json:"gross_margin" validate:"gte=0,lte=100"`
	FinalGrossMargin string  `json:"final_gross_margin"`
	ExpectedClosing  string  `json:"expected_closing" validate:"omitempty,dateonly"`
	ActualCloseDate  string  `json:"actual_close_date" validate:"omitempty,dateonly"`
	QuoteDueDate     string  `json:"quote_due_date" validate:"omitempty,dateonly"`
	DateQuoteSubmit  string  `json:"date_quote_submitted" validate:"omitempty,dateonly"`
	StartDate        string  `json:"start_date" validate:"omitempty,dateonly"`
	ActualStartDate  string  `json:"actual_start_date" validate:"omitempty,dateonly"`
	Notes            string  `json:"notes"`
}

// ToRecord maps the form to a persistence record. The completed flag is
// derived from status, never taken from the form.
func (f ContactForm) ToRecord() Contact {
	return Contact{
		ID:                 f.ID,
		ProspectID:         f.ProspectID,
		ContactName:        strings.TrimSpace(f.ContactName),
		ContactDate:        NullableString(f.ContactDate),
		Source:             f.Source,
		ContactVia:         f.ContactVia,
		Status:             f.Status,
		Forecast:           strings.TrimSpace(f.Forecast),
		Actual:             NullableString(f.Actual),
		Probability:        f.Probability,
		GrossMargin:        f.GrossMargin,
		FinalGrossMargin:   CoerceNumber(f.FinalGrossMargin),
		ExpectedClosing:    NullableString(f.ExpectedClosing),
		ActualCloseDate:    NullableString(f.ActualCloseDate),
		QuoteDueDate:       NullableString(f.QuoteDueDate),
		DateQuoteSubmitted: NullableString(f.DateQuoteSubmit),
		StartDate:          NullableString(f.StartDate),
		ActualStartDate:    NullableString(f.ActualStartDate),
		Completed:          IsClosedStatus(f.Status),
		Notes:              f.Notes,
	}
}

// DocumentForm is the edit-form payload for a document record. The file
// itself travels separately as a multipart part.
type DocumentForm struct {
	ProspectID     string `json:"prospect_id" validate:"required"`
	DocumentTypeID string `json:"document_type_id" validate:"required"`
	Description    string `json:"description"`
	Notes          string `json:"notes"`
}

// ToRecord maps the form to a persistence record. Foreign keys arrive as
// strings from select inputs and must be coerced.
func (f DocumentForm) ToRecord() (Document, bool) {
	prospectID := CoerceID(f.ProspectID)
	documentTypeID := CoerceID(f.DocumentTypeID)
	if prospectID == nil || documentTypeID == nil {
		return Document{}, false
	}
	return Document{
		ProspectID:     *prospectID,
		DocumentTypeID: *documentTypeID,
		Description:    f.Description,
		Notes:          f.Notes,
	}, true
}

// RouteForm is one route inside a batch save. IDs that are zero or negative
// mark locally created routes that do not exist in the store yet.
type RouteForm struct {
	ID            int64  `json:"id"`
	ProspectID    int64  `json:"prospect_id" validate:"required"`
	RouteIDName   string `json:"route_id_name" validate:"required"`
	DriversNeeded string `json:"drivers_needed"`
	DateAssigned  string `json:"date_assigned" validate:"omitempty,dateonly"`
	DateFilled    string `json:"date_filled" validate:"omitempty,dateonly"`
	City          string `json:"city"`
	State         string `json:"state"`
	Distance      string `json:"distance"`
	Price         string `json:"price"`
	Commission    string `json:"commission"`
	VehicleType   string `json:"vehicle_type"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

// ToRecord maps the form to a persistence record.
func (f RouteForm) ToRecord() ProspectRoute {
	needed := 0
	if n := CoerceNumber(f.DriversNeeded); n != nil && *n > 0 {
		needed = int(*n)
	}
	return ProspectRoute{
		ID:            f.ID,
		ProspectID:    f.ProspectID,
		RouteIDName:   strings.TrimSpace(f.RouteIDName),
		DriversNeeded: needed,
		DateAssigned:  NullableString(f.DateAssigned),
		DateFilled:    NullableString(f.DateFilled),
		City:          NullableString(f.City),
		State:         NullableString(f.State),
		Distance:      CoerceNumber(f.Distance),
		Price:         CoerceNumber(f.Price),
		Commission:    CoerceNumber(f.Commission),
		VehicleType:   NullableString(f.VehicleType),
		StartTime:     NullableString(f.StartTime),
		EndTime:       NullableString(f.EndTime),
	}
}

// DriverForm is the edit-form payload for a route driver.
type DriverForm struct {
	ID               int64  `json:"id,omitempty"`
	ProspectRouteID  string `json:"prospect_route_id"`
	DriverName       string `json:"driver_name"`
	DriverNumber     string `json:"driver_number"`
	Address          string `json:"address"`
	City             string `json:"city"`
	State            string `json:"state"`
	Zipcode          string `json:"zipcode"`
	PhoneNumber      string `json:"phone_number"`
	Email            string `json:"email" validate:"omitempty,email"`
	Source           string `json:"source"`
	Status           string `json:"status" validate:"required"`
	RecruitedBy      string `json:"recruited_by"`
	DateHired        string `json:"date_hired" validate:"omitempty,dateonly"`
	DateOnboarded    string `json:"date_onboarded" validate:"omitempty,dateonly"`
	DateTerminated   string `json:"date_terminated" validate:"omitempty,dateonly"`
	DateAdded        string `json:"date_added" validate:"omitempty,dateonly"`
	Notes            string `json:"notes"`
	ReasonTerminated string `json:"reason_terminated"`
	ReasonRejected   string `json:"reason_rejected"`
	VehicleType      string `json:"vehicle_type"`
	PaperworkIn      string `json:"paperwork_in" validate:"omitempty,oneof=Yes No"`
	DrugBgCheck      string `json:"drug_bg_check" validate:"omitempty,oneof=Yes No"`
}

// ToRecord maps the form to a persistence record. Route linkage is coerced
// to an integer or NULL; the audit triple and derived day counts are filled
// in by the driver service, not the form.
func (f DriverForm) ToRecord() RouteDriver {
	return RouteDriver{
		ID:               f.ID,
		ProspectRouteID:  CoerceID(f.ProspectRouteID),
		DriverName:       NullableString(f.DriverName),
		DriverNumber:     NullableString(f.DriverNumber),
		Address:          NullableString(f.Address),
		City:             NullableString(f.City),
		State:            NullableString(f.State),
		Zipcode:          NullableString(f.Zipcode),
		PhoneNumber:      NullableString(f.PhoneNumber),
		Email:            NullableString(f.Email),
		Source:           NullableString(f.Source),
		Status:           f.Status,
		RecruitedBy:      NullableString(f.RecruitedBy),
		DateHired:        NullableString(f.DateHired),
		DateOnboarded:    NullableString(f.DateOnboarded),
		DateTerminated:   NullableString(f.DateTerminated),
		DateAdded:        NullableString(f.DateAdded),
		Notes:            NullableString(f.Notes),
		ReasonTerminated: NullableString(f.ReasonTerminated),
		ReasonRejected:   NullableString(f.ReasonRejected),
		VehicleType:      NullableString(f.VehicleType),
		PaperworkIn:      NullableString(f.PaperworkIn),
		DrugBgCheck:      NullableString(f.DrugBgCheck),
	}
}
