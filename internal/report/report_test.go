package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func floatPtr(f float64) *float64 { return &f }

func statusOptions(names ...string) []model.Option {
	opts := make([]model.Option, 0, len(names))
	for i, n := range names {
		opts = append(opts, model.Option{ID: int64(i + 1), Name: n, SortOrder: i + 1})
	}
	return opts
}

func TestSalesDashboardKPIsAndFunnel(t *testing.T) {
	today := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	prospects := []model.Prospect{
		{ID: 1, Name: "Acme"},
		{ID: 2, Name: "Globex"},
		{ID: 3, Name: "Initech"},
	}
	contacts := []model.Contact{
		// Won inside the trailing 12 months, actual beats forecast.
		{ID: 10, ProspectID: 1, ContactDate: strPtr("2024-02-01"), Status: "Won",
			Forecast: "1,000", Actual: strPtr("$1,200"), GrossMargin: 20, FinalGrossMargin: floatPtr(50),
			ActualCloseDate: strPtr("2024-02-01")},
		// Won but closed before the window opened.
		{ID: 11, ProspectID: 2, ContactDate: strPtr("2022-01-01"), Status: "Won",
			Forecast: "9,999", ActualCloseDate: strPtr("2022-01-01")},
		// Open deal feeding the funnel.
		{ID: 12, ProspectID: 3, ContactDate: strPtr("2024-06-01"), Status: "Negotiation",
			Forecast: "500", GrossMargin: 40, QuoteDueDate: strPtr("2024-07-01")},
	}
	opts := statusOptions("New", "Negotiation", "Won", "Lost")

	dash := BuildSalesDashboard(prospects, contacts, opts, today)

	assert.InDelta(t, 1000.0, dash.WonForecast12Mo, 0.0001)
	assert.InDelta(t, 500.0, dash.WonForecastMargin12Mo, 0.0001)
	assert.InDelta(t, 50.0, dash.WonForecastMarginPct, 0.0001)
	assert.InDelta(t, 1200.0, dash.WonValue12Mo, 0.0001)
	assert.InDelta(t, 600.0, dash.WonValueMargin12Mo, 0.0001)

	// Funnel excludes closed statuses and keeps taxonomy order.
	require.Len(t, dash.Funnel, 2)
	assert.Equal(t, "New", dash.Funnel[0].Name)
	assert.Zero(t, dash.Funnel[0].Count)
	assert.Equal(t, "Negotiation", dash.Funnel[1].Name)
	assert.Equal(t, 1, dash.Funnel[1].Count)
	assert.InDelta(t, 500.0, dash.Funnel[1].TotalForecast, 0.0001)
	assert.InDelta(t, 200.0, dash.Funnel[1].TotalMargin, 0.0001)

	require.Len(t, dash.UpcomingDeadlines, 1)
	assert.Equal(t, "Quote Due", dash.UpcomingDeadlines[0].Type)
	assert.Equal(t, "Initech", dash.UpcomingDeadlines[0].ProspectName)

	require.Len(t, dash.TopOpportunities, 1)
	assert.Equal(t, "Initech", dash.TopOpportunities[0].Name)
}

func TestSalesDashboardDeadlinesSkipPastDates(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	prospects := []model.Prospect{{ID: 1, Name: "Acme"}}
	contacts := []model.Contact{
		{ID: 1, ProspectID: 1, ContactDate: strPtr("2024-05-01"), Status: "New",
			QuoteDueDate: strPtr("2024-06-01"), ExpectedClosing: strPtr("2024-08-01")},
	}

	dash := BuildSalesDashboard(prospects, contacts, statusOptions("New"), today)

	require.Len(t, dash.UpcomingDeadlines, 1)
	assert.Equal(t, "Exp. Closing", dash.UpcomingDeadlines[0].Type)
}

func TestManagementReportActiveTotalsAndRankings(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	prospects := []model.Prospect{
		{ID: 1, Name: "Acme"},
		{ID: 2, Name: "Globex"},
		{ID: 3, Name: "Initech"},
	}
	contacts := []model.Contact{
		{ID: 10, ProspectID: 1, ContactDate: strPtr("2024-05-01"), Status: "Negotiation",
			Forecast: "1,000", GrossMargin: 30, ExpectedClosing: strPtr("2023-12-01")},
		{ID: 11, ProspectID: 2, ContactDate: strPtr("2024-04-01"), Status: "Won",
			Forecast: "800", Actual: strPtr("900"), Source: "Referral",
			ActualCloseDate: strPtr("2024-04-01")},
		{ID: 12, ProspectID: 3, ContactDate: strPtr("2024-03-01"), Status: "Won",
			Forecast: "300", Source: "Referral", ActualCloseDate: strPtr("2024-03-01")},
	}

	rpt := BuildManagementReport(prospects, contacts, today)

	assert.InDelta(t, 1000.0, rpt.ActiveForecast, 0.0001)
	assert.InDelta(t, 300.0, rpt.ActiveMargin, 0.0001)
	assert.InDelta(t, 30.0, rpt.ActiveMarginPct, 0.0001)
	// Expected closing sits in a prior calendar year, so nothing pro-rates.
	assert.Zero(t, rpt.ForecastBalanceOfYear)
	assert.Zero(t, rpt.MarginBalanceOfYear)

	require.Len(t, rpt.PerformanceBySource, 1)
	assert.Equal(t, "Referral", rpt.PerformanceBySource[0].Name)
	assert.Equal(t, 2, rpt.PerformanceBySource[0].Count)
	assert.InDelta(t, 1200.0, rpt.PerformanceBySource[0].Value, 0.0001)

	require.Len(t, rpt.TopDealsWon, 2)
	assert.Equal(t, "Globex", rpt.TopDealsWon[0].Name)
	assert.InDelta(t, 900.0, rpt.TopDealsWon[0].Value, 0.0001)
}

func TestMonthlyPerformanceBucketsAndTotals(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	prospects := []model.Prospect{
		{ID: 1, Name: "Acme", CreatedAt: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Globex", CreatedAt: time.Date(2023, time.January, 5, 9, 0, 0, 0, time.UTC)},
		{ID: 3, Name: "Initech", CreatedAt: time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)},
	}
	contacts := []model.Contact{
		{ID: 10, ProspectID: 1, ContactDate: strPtr("2024-03-10"), Status: "Won",
			Forecast: "1,000", GrossMargin: 50, ActualCloseDate: strPtr("2024-03-10")},
		{ID: 11, ProspectID: 2, ContactDate: strPtr("2024-02-10"), Status: "Lost",
			ActualCloseDate: strPtr("2024-02-10")},
		{ID: 12, ProspectID: 3, ContactDate: strPtr("2024-05-01"), Status: "Negotiation",
			Forecast: "400", GrossMargin: 25, ExpectedClosing: strPtr("2024-05-20")},
	}

	perf := BuildMonthlyPerformance(prospects, contacts, today)
	require.Len(t, perf.Months, 12)

	// Window anchors to the latest date (2024-05-20), so it spans Jun 23..May 24.
	assert.Equal(t, "Jun 23", perf.Months[0].Month)
	assert.Equal(t, "May 24", perf.Months[11].Month)

	byMonth := make(map[string]MonthRow, len(perf.Months))
	for _, row := range perf.Months {
		byMonth[row.Month] = row
	}

	mar := byMonth["Mar 24"]
	assert.Equal(t, 1, mar.WonCount)
	assert.Equal(t, 1, mar.NewCount)
	assert.InDelta(t, 1000.0, mar.WonRevenue, 0.0001)
	assert.InDelta(t, 500.0, mar.WonMarginAmount, 0.0001)
	assert.InDelta(t, 50.0, mar.WonMarginPct, 0.0001)

	feb := byMonth["Feb 24"]
	assert.Equal(t, 1, feb.LostCount)

	may := byMonth["May 24"]
	assert.InDelta(t, 400.0, may.ActiveRevenue, 0.0001)
	assert.InDelta(t, 100.0, may.ActiveMarginAmount, 0.0001)

	assert.Equal(t, 1, perf.Totals.WonCount)
	assert.Equal(t, 1, perf.Totals.LostCount)
	assert.Equal(t, 2, perf.Totals.NewCount)
	assert.InDelta(t, 1000.0, perf.Totals.WonRevenue, 0.0001)
	assert.InDelta(t, 400.0, perf.Totals.ActiveRevenue, 0.0001)
	assert.InDelta(t, 50.0, perf.Totals.WonMarginPct, 0.0001)
	assert.InDelta(t, 25.0, perf.Totals.ActiveMarginPct, 0.0001)
}

func TestRecruitingDashboardCountsAndTrend(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	drivers := []model.RouteDriver{
		{ID: 1, Status: model.DriverStatusRecruiting, Source: strPtr("Indeed")},
		{ID: 2, Status: model.DriverStatusVerifications, Source: strPtr("Indeed")},
		{ID: 3, Status: model.DriverStatusCompliant, Source: strPtr("Referral")},
		{ID: 4, Status: model.DriverStatusAssigned, DateOnboarded: strPtr("2024-05-10")},
		{ID: 5, Status: model.DriverStatusTerminated, DateOnboarded: strPtr("2024-01-01"),
			DateTerminated: strPtr("2024-06-01"), Source: strPtr("Indeed")},
		{ID: 6, Status: model.DriverStatusRejected},
	}
	opts := statusOptions(
		model.DriverStatusRecruiting,
		model.DriverStatusVerifications,
		model.DriverStatusCompliant,
		model.DriverStatusOnboarded,
		model.DriverStatusAssigned,
		model.DriverStatusTerminated,
		model.DriverStatusRejected,
	)

	dash := BuildRecruitingDashboard(drivers, opts, today)

	assert.Equal(t, 4, dash.ActiveDrivers)
	assert.Equal(t, 2, dash.InPipeline)
	assert.Equal(t, 1, dash.Compliant)
	assert.Equal(t, 1, dash.Assigned)

	// Funnel drops Terminated and Rejected.
	require.Len(t, dash.Funnel, 5)
	assert.Equal(t, model.DriverStatusRecruiting, dash.Funnel[0].Name)
	assert.Equal(t, 1, dash.Funnel[0].Count)
	assert.Zero(t, dash.Funnel[3].Count, "nobody currently Onboarded")

	require.Len(t, dash.MonthlyTrend, 6)
	assert.Equal(t, "Jan", dash.MonthlyTrend[0].Month)
	assert.Equal(t, "Jun", dash.MonthlyTrend[5].Month)
	assert.Equal(t, 1, dash.MonthlyTrend[4].Onboarded, "May onboarding")
	assert.Equal(t, 1, dash.MonthlyTrend[5].Terminated, "June termination")

	require.NotEmpty(t, dash.TopSources)
	assert.Equal(t, "Indeed", dash.TopSources[0].Name)
	assert.Equal(t, 3, dash.TopSources[0].Count)
}

func TestRouteCardsFillAndSentinelExclusion(t *testing.T) {
	prospects := []model.Prospect{{ID: 1, Name: "Acme"}}
	contacts := []model.Contact{
		{ID: 10, ProspectID: 1, ContactDate: strPtr("2024-05-01"), Status: "Negotiation"},
	}
	routes := []model.ProspectRoute{
		{ID: 1, ProspectID: 1, RouteIDName: "RT-100", DriversNeeded: 3,
			DateAssigned: strPtr("2024-04-01")},
		{ID: 2, ProspectID: 1, RouteIDName: model.UnassignedRouteName},
	}
	drivers := []model.RouteDriver{
		{ID: 1, ProspectRouteID: int64Ptr(1), Status: model.DriverStatusAssigned},
		{ID: 2, ProspectRouteID: int64Ptr(1), Status: model.DriverStatusTerminated},
		{ID: 3, ProspectRouteID: int64Ptr(1), Status: model.DriverStatusOnboarded},
		{ID: 4, ProspectRouteID: nil, Status: model.DriverStatusRecruiting},
	}

	cards := BuildRouteCards(routes, drivers, prospects, contacts)
	require.Len(t, cards, 1, "sentinel route excluded")

	card := cards[0]
	assert.Equal(t, "Acme", card.ProspectName)
	assert.Equal(t, "Negotiation", card.ProspectState)
	assert.Equal(t, 2, card.Filled, "terminated driver does not staff the route")
	assert.Equal(t, 1, card.Open)
	assert.Equal(t, "Expected Start Date", card.DateLabel)
	assert.Equal(t, "2024-04-01", card.DateValue)
}

func TestRouteCardsOpenNeverNegative(t *testing.T) {
	routes := []model.ProspectRoute{
		{ID: 1, ProspectID: 9, RouteIDName: "RT-1", DriversNeeded: 1,
			DateFilled: strPtr("2024-02-01")},
	}
	drivers := []model.RouteDriver{
		{ID: 1, ProspectRouteID: int64Ptr(1), Status: model.DriverStatusAssigned},
		{ID: 2, ProspectRouteID: int64Ptr(1), Status: model.DriverStatusAssigned},
	}

	cards := BuildRouteCards(routes, drivers, nil, nil)
	require.Len(t, cards, 1)
	assert.Equal(t, 2, cards[0].Filled)
	assert.Zero(t, cards[0].Open)
	assert.Equal(t, "Start Date", cards[0].DateLabel)
	assert.Equal(t, "Unknown Opportunity", cards[0].ProspectName)
}
