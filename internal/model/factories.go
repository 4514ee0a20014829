package model

import (
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// init ensures gofakeit is seeded.
func init() {
	gofakeit.Seed(time.Now().UnixNano())
}

func fakeDate(daysAgoMax int) *string {
	d := utils.FormatDate(utils.Now().AddDate(0, 0, -gofakeit.Number(0, daysAgoMax)))
	return &d
}

func fakeStrPtr(s string) *string { return &s }

// NewProspect creates a Prospect with default fake data.
func NewProspect(overrideDefaults ...*Prospect) *Prospect {
	base := &Prospect{
		ID:          int64(gofakeit.Number(1, 100000)),
		Name:        gofakeit.Company(),
		ContactName: fakeStrPtr(gofakeit.Name()),
		Address:     fakeStrPtr(gofakeit.Street()),
		City:        fakeStrPtr(gofakeit.City()),
		State:       fakeStrPtr(gofakeit.StateAbr()),
		ZipCode:     fakeStrPtr(gofakeit.Zip()),
		PhoneNumber: fakeStrPtr(gofakeit.Phone()),
		Email:       fakeStrPtr(gofakeit.Email()),
		CreatedAt:   utils.Now().Add(-time.Duration(gofakeit.Number(1, 2000)) * time.Hour),
	}

	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != 0 {
			base.ID = ovr.ID
		}
		if ovr.Name != "" {
			base.Name = ovr.Name
		}
		if ovr.ContactName != nil {
			base.ContactName = ovr.ContactName
		}
		if ovr.Email != nil {
			base.Email = ovr.Email
		}
		if !ovr.CreatedAt.IsZero() {
			base.CreatedAt = ovr.CreatedAt
		}
	}
	return base
}

// NewContact creates a Contact with default fake data. The generated contact
// is open (not Won or Lost) unless overridden.
func NewContact(overrideDefaults ...*Contact) *Contact {
	base := &Contact{
		ID:          int64(gofakeit.Number(1, 100000)),
		ProspectID:  int64(gofakeit.Number(1, 100000)),
		ContactName: gofakeit.Name(),
		ContactDate: fakeDate(180),
		Source:      gofakeit.RandomString([]string{"Referral", "Cold Call", "Website"}),
		ContactVia:  gofakeit.RandomString([]string{"Phone", "Email", "In Person"}),
		Status:      gofakeit.RandomString([]string{"New", "Qualified", "Negotiation"}),
		Forecast:    strconv.FormatFloat(gofakeit.Price(1000, 100000), 'f', 2, 64),
		Probability: float64(gofakeit.Number(0, 100)),
		GrossMargin: float64(gofakeit.Number(10, 60)),
		CreatedAt:   utils.Now().Add(-time.Duration(gofakeit.Number(1, 1000)) * time.Hour),
	}

	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != 0 {
			base.ID = ovr.ID
		}
		if ovr.ProspectID != 0 {
			base.ProspectID = ovr.ProspectID
		}
		if ovr.Status != "" {
			base.Status = ovr.Status
			base.Completed = IsClosedStatus(ovr.Status)
		}
		if ovr.Forecast != "" {
			base.Forecast = ovr.Forecast
		}
		if ovr.Actual != nil {
			base.Actual = ovr.Actual
		}
		if ovr.ContactDate != nil {
			base.ContactDate = ovr.ContactDate
		}
		if ovr.ActualCloseDate != nil {
			base.ActualCloseDate = ovr.ActualCloseDate
		}
		if ovr.ExpectedClosing != nil {
			base.ExpectedClosing = ovr.ExpectedClosing
		}
		if ovr.FinalGrossMargin != nil {
			base.FinalGrossMargin = ovr.FinalGrossMargin
		}
		if !ovr.CreatedAt.IsZero() {
			base.CreatedAt = ovr.CreatedAt
		}
	}
	return base
}

// NewRoute creates a ProspectRoute with default fake data.
func NewRoute(overrideDefaults ...*ProspectRoute) *ProspectRoute {
	needed := gofakeit.Number(1, 8)
	distance := gofakeit.Float64Range(5, 400)
	price := gofakeit.Float64Range(100, 2000)
	base := &ProspectRoute{
		ID:            int64(gofakeit.Number(1, 100000)),
		ProspectID:    int64(gofakeit.Number(1, 100000)),
		RouteIDName:   "RT-" + gofakeit.DigitN(4),
		DriversNeeded: needed,
		DateAssigned:  fakeDate(90),
		City:          fakeStrPtr(gofakeit.City()),
		State:         fakeStrPtr(gofakeit.StateAbr()),
		Distance:      &distance,
		Price:         &price,
		VehicleType:   fakeStrPtr(gofakeit.RandomString([]string{"Cargo Van", "Box Truck", "Sprinter"})),
		CreatedAt:     utils.Now().Add(-time.Duration(gofakeit.Number(1, 1000)) * time.Hour),
	}

	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != 0 {
			base.ID = ovr.ID
		}
		if ovr.ProspectID != 0 {
			base.ProspectID = ovr.ProspectID
		}
		if ovr.RouteIDName != "" {
			base.RouteIDName = ovr.RouteIDName
		}
		if ovr.DriversNeeded != 0 {
			base.DriversNeeded = ovr.DriversNeeded
		}
		if ovr.DateAssigned != nil {
			base.DateAssigned = ovr.DateAssigned
		}
		if ovr.DateFilled != nil {
			base.DateFilled = ovr.DateFilled
		}
	}
	return base
}

// NewRouteDriver creates a RouteDriver with default fake data. The generated
// driver is mid-pipeline unless overridden.
func NewRouteDriver(overrideDefaults ...*RouteDriver) *RouteDriver {
	routeID := int64(gofakeit.Number(1, 100000))
	base := &RouteDriver{
		ID:              int64(gofakeit.Number(1, 100000)),
		ProspectRouteID: &routeID,
		DriverName:      fakeStrPtr(gofakeit.Name()),
		DriverNumber:    fakeStrPtr(gofakeit.DigitN(6)),
		PhoneNumber:     fakeStrPtr(gofakeit.Phone()),
		Email:           fakeStrPtr(gofakeit.Email()),
		Source:          fakeStrPtr(gofakeit.RandomString([]string{"Indeed", "Referral", "Facebook"})),
		Status:          gofakeit.RandomString([]string{DriverStatusRecruiting, DriverStatusVerifications}),
		DateAdded:       fakeDate(60),
		CreatedAt:       utils.Now().Add(-time.Duration(gofakeit.Number(1, 1000)) * time.Hour),
	}

	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != 0 {
			base.ID = ovr.ID
		}
		if ovr.ProspectRouteID != nil {
			base.ProspectRouteID = ovr.ProspectRouteID
		}
		if ovr.Status != "" {
			base.Status = ovr.Status
		}
		if ovr.Source != nil {
			base.Source = ovr.Source
		}
		if ovr.DateAdded != nil {
			base.DateAdded = ovr.DateAdded
		}
		if ovr.DateOnboarded != nil {
			base.DateOnboarded = ovr.DateOnboarded
		}
		if ovr.DateTerminated != nil {
			base.DateTerminated = ovr.DateTerminated
		}
		if ovr.PaperworkIn != nil {
			base.PaperworkIn = ovr.PaperworkIn
		}
		if ovr.DrugBgCheck != nil {
			base.DrugBgCheck = ovr.DrugBgCheck
		}
	}
	return base
}

// NewDocument creates a Document with default fake data.
func NewDocument(overrideDefaults ...*Document) *Document {
	base := &Document{
		ID:             int64(gofakeit.Number(1, 100000)),
		ProspectID:     int64(gofakeit.Number(1, 100000)),
		DocumentTypeID: int64(gofakeit.Number(1, 20)),
		Description:    gofakeit.Sentence(4),
		FileName:       gofakeit.Word() + ".pdf",
		StoragePath:    gofakeit.UUID() + ".pdf",
		CreatedAt:      utils.Now().Add(-time.Duration(gofakeit.Number(1, 1000)) * time.Hour),
	}

	if len(overrideDefaults) > 0 && overrideDefaults[0] != nil {
		ovr := overrideDefaults[0]
		if ovr.ID != 0 {
			base.ID = ovr.ID
		}
		if ovr.ProspectID != 0 {
			base.ProspectID = ovr.ProspectID
		}
		if ovr.DocumentTypeID != 0 {
			base.DocumentTypeID = ovr.DocumentTypeID
		}
		if ovr.FileName != "" {
			base.FileName = ovr.FileName
		}
		if ovr.StoragePath != "" {
			base.StoragePath = ovr.StoragePath
		}
	}
	return base
}
