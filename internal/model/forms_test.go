package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableString(t *testing.T) {
	assert.Nil(t, NullableString(""))
	assert.Nil(t, NullableString("   "))

	got := NullableString("  Chicago ")
	require.NotNil(t, got)
	assert.Equal(t, "Chicago", *got)
}

func TestCoerceID(t *testing.T) {
	got := CoerceID("42")
	require.NotNil(t, got)
	assert.Equal(t, int64(42), *got)

	// Foreign keys are never sent through as unparsed strings.
	assert.Nil(t, CoerceID(""))
	assert.Nil(t, CoerceID("abc"))
	assert.Nil(t, CoerceID("12.5"))
}

func TestCoerceNumber(t *testing.T) {
	got := CoerceNumber(" 12.5 ")
	require.NotNil(t, got)
	assert.Equal(t, 12.5, *got)

	assert.Nil(t, CoerceNumber(""))
	assert.Nil(t, CoerceNumber("n/a"))
}

func TestProspectFormToRecordNullsEmptyOptionals(t *testing.T) {
	form := ProspectForm{
		ID:    7,
		Name:  "  Acme Logistics ",
		City:  "Dallas",
		Email: "",
	}

	rec := form.ToRecord()

	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, "Acme Logistics", rec.Name)
	require.NotNil(t, rec.City)
	assert.Equal(t, "Dallas", *rec.City)
	assert.Nil(t, rec.Email)
	assert.Nil(t, rec.ContactName)
	assert.Nil(t, rec.PhoneNumber)
}

func TestContactFormToRecordDerivesCompleted(t *testing.T) {
	form := ContactForm{
		ProspectID:  3,
		ContactName: "Jane Ops",
		Status:      "Negotiation",
		Forecast:    "1,200.50",
	}

	rec := form.ToRecord()
	assert.False(t, rec.Completed)
	assert.Equal(t, "1,200.50", rec.Forecast, "loose currency text stored as entered")
	assert.Nil(t, rec.Actual)
	assert.Nil(t, rec.FinalGrossMargin)

	form.Status = ContactStatusWon
	form.Actual = "$1,100"
	form.FinalGrossMargin = "45"
	rec = form.ToRecord()
	assert.True(t, rec.Completed)
	require.NotNil(t, rec.Actual)
	assert.Equal(t, "$1,100", *rec.Actual)
	require.NotNil(t, rec.FinalGrossMargin)
	assert.Equal(t, 45.0, *rec.FinalGrossMargin)

	form.Status = ContactStatusLost
	assert.True(t, form.ToRecord().Completed)
}

func TestDocumentFormToRecordRequiresCoercibleKeys(t *testing.T) {
	form := DocumentForm{ProspectID: "5", DocumentTypeID: "2", Description: "W-9"}

	rec, ok := form.ToRecord()
	require.True(t, ok)
	assert.Equal(t, int64(5), rec.ProspectID)
	assert.Equal(t, int64(2), rec.DocumentTypeID)

	_, ok = DocumentForm{ProspectID: "", DocumentTypeID: "2"}.ToRecord()
	assert.False(t, ok)

	_, ok = DocumentForm{ProspectID: "5", DocumentTypeID: "garbage"}.ToRecord()
	assert.False(t, ok)
}

func TestRouteFormToRecordCoercions(t *testing.T) {
	form := RouteForm{
		ID:            -2,
		ProspectID:    4,
		RouteIDName:   " RT-900 ",
		DriversNeeded: "3",
		Distance:      "120.5",
		Price:         "",
		DateAssigned:  "2024-04-01",
	}

	rec := form.ToRecord()
	assert.Equal(t, int64(-2), rec.ID, "local create keeps its placeholder id")
	assert.Equal(t, "RT-900", rec.RouteIDName)
	assert.Equal(t, 3, rec.DriversNeeded)
	require.NotNil(t, rec.Distance)
	assert.Equal(t, 120.5, *rec.Distance)
	assert.Nil(t, rec.Price)
	require.NotNil(t, rec.DateAssigned)

	// Blank or malformed needed-count falls back to zero.
	rec = RouteForm{ProspectID: 4, RouteIDName: "RT-1", DriversNeeded: "none"}.ToRecord()
	assert.Zero(t, rec.DriversNeeded)
}

func TestDriverFormToRecordRouteLinkage(t *testing.T) {
	form := DriverForm{
		ProspectRouteID: "17",
		DriverName:      "Sam Trucker",
		Status:          DriverStatusRecruiting,
		PaperworkIn:     "Yes",
		DrugBgCheck:     "",
	}

	rec := form.ToRecord()
	require.NotNil(t, rec.ProspectRouteID)
	assert.Equal(t, int64(17), *rec.ProspectRouteID)
	require.NotNil(t, rec.PaperworkIn)
	assert.Equal(t, FlagYes, *rec.PaperworkIn)
	assert.Nil(t, rec.DrugBgCheck)

	form.ProspectRouteID = ""
	assert.Nil(t, form.ToRecord().ProspectRouteID)
}

func TestPaperworkComplete(t *testing.T) {
	yes := FlagYes
	no := FlagNo

	assert.True(t, RouteDriver{PaperworkIn: &yes, DrugBgCheck: &yes}.PaperworkComplete())
	assert.False(t, RouteDriver{PaperworkIn: &yes, DrugBgCheck: &no}.PaperworkComplete())
	assert.False(t, RouteDriver{PaperworkIn: &yes}.PaperworkComplete())
	assert.False(t, RouteDriver{}.PaperworkComplete())
}
