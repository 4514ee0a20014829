// Package report builds the dashboard aggregates. Everything here is pure
// computation over rows the caller already fetched; reports are recomputed
// from scratch on every request rather than cached.
package report

import (
	"sort"
	"time"

	"gitlab.com/fleetops/api/pipeline-admin/internal/metrics"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// SalesDashboard is the sales-overview tab: trailing-12-month win KPIs, the
// open-pipeline funnel, upcoming deadlines, and the largest open deals.
type SalesDashboard struct {
	WonForecast12Mo       float64        `json:"won_forecast_12mo"`
	WonForecastMargin12Mo float64        `json:"won_forecast_margin_12mo"`
	WonForecastMarginPct  float64        `json:"won_forecast_margin_pct"`
	WonValue12Mo          float64        `json:"won_value_12mo"`
	WonValueMargin12Mo    float64        `json:"won_value_margin_12mo"`
	WonValueMarginPct     float64        `json:"won_value_margin_pct"`
	Funnel                []FunnelStage  `json:"funnel"`
	UpcomingDeadlines     []Deadline     `json:"upcoming_deadlines"`
	TopOpportunities      []Opportunity  `json:"top_opportunities"`
}

// FunnelStage aggregates the open pipeline for one status.
type FunnelStage struct {
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	TotalForecast float64 `json:"total_forecast"`
	TotalMargin   float64 `json:"total_margin"`
}

// Deadline is one upcoming quote-due or expected-closing event.
type Deadline struct {
	Type         string `json:"type"`
	Date         string `json:"date"`
	ProspectName string `json:"prospect_name"`
}

// Opportunity is one row of the top-open-deals ranking.
type Opportunity struct {
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	Forecast     float64 `json:"forecast"`
	MarginAmount float64 `json:"margin_amount"`
}

// BuildSalesDashboard computes the sales dashboard from a full data snapshot.
func BuildSalesDashboard(prospects []model.Prospect, contacts []model.Contact, statusOptions []model.Option, today time.Time) SalesDashboard {
	states := metrics.ProspectStates(prospects, contacts)
	window := metrics.CurrentMonthWindow(today)

	var dash SalesDashboard

	for _, s := range states {
		if s.Latest == nil || s.Latest.Status != model.ContactStatusWon {
			continue
		}
		if !window.ContainsDate(s.Latest.ActualCloseDate) {
			continue
		}
		c := *s.Latest
		forecast, _ := utils.ParseLooseNumber(c.Forecast)
		value := metrics.DealValue(c)
		marginPct := metrics.MarginPercent(c) / 100

		dash.WonForecast12Mo += forecast
		dash.WonForecastMargin12Mo += forecast * marginPct
		dash.WonValue12Mo += value
		dash.WonValueMargin12Mo += value * marginPct
	}
	if dash.WonForecast12Mo > 0 {
		dash.WonForecastMarginPct = dash.WonForecastMargin12Mo / dash.WonForecast12Mo * 100
	}
	if dash.WonValue12Mo > 0 {
		dash.WonValueMarginPct = dash.WonValueMargin12Mo / dash.WonValue12Mo * 100
	}

	dash.Funnel = buildFunnel(states, statusOptions)
	dash.UpcomingDeadlines = upcomingDeadlines(states, today)
	dash.TopOpportunities = topOpportunities(states)

	return dash
}

func buildFunnel(states []metrics.ProspectState, statusOptions []model.Option) []FunnelStage {
	byStatus := make(map[string]*FunnelStage)
	for _, s := range states {
		if !s.Active() {
			continue
		}
		c := *s.Latest
		stage, ok := byStatus[c.Status]
		if !ok {
			stage = &FunnelStage{Name: c.Status}
			byStatus[c.Status] = stage
		}
		forecast, _ := utils.ParseLooseNumber(c.Forecast)
		stage.Count++
		stage.TotalForecast += forecast
		stage.TotalMargin += forecast * c.GrossMargin / 100
	}

	// Present stages in the configured taxonomy order, closed ones excluded.
	stages := make([]FunnelStage, 0, len(statusOptions))
	for _, opt := range statusOptions {
		if model.IsClosedStatus(opt.Name) {
			continue
		}
		if stage, ok := byStatus[opt.Name]; ok {
			stages = append(stages, *stage)
		} else {
			stages = append(stages, FunnelStage{Name: opt.Name})
		}
	}
	return stages
}

func upcomingDeadlines(states []metrics.ProspectState, today time.Time) []Deadline {
	day := utils.Midnight(today)
	var deadlines []Deadline
	for _, s := range states {
		if !s.Active() {
			continue
		}
		c := *s.Latest
		if d, ok := utils.ParseDatePtr(c.QuoteDueDate); ok && !d.Before(day) {
			deadlines = append(deadlines, Deadline{Type: "Quote Due", Date: *c.QuoteDueDate, ProspectName: s.Prospect.Name})
		}
		if d, ok := utils.ParseDatePtr(c.ExpectedClosing); ok && !d.Before(day) {
			deadlines = append(deadlines, Deadline{Type: "Exp. Closing", Date: *c.ExpectedClosing, ProspectName: s.Prospect.Name})
		}
	}
	sort.SliceStable(deadlines, func(i, j int) bool {
		return deadlines[i].Date < deadlines[j].Date
	})
	if len(deadlines) > 5 {
		deadlines = deadlines[:5]
	}
	return deadlines
}

func topOpportunities(states []metrics.ProspectState) []Opportunity {
	var open []Opportunity
	for _, s := range states {
		if !s.Active() {
			continue
		}
		c := *s.Latest
		forecast, _ := utils.ParseLooseNumber(c.Forecast)
		open = append(open, Opportunity{
			Name:         s.Prospect.Name,
			Status:       c.Status,
			Forecast:     forecast,
			MarginAmount: forecast * c.GrossMargin / 100,
		})
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Forecast > open[j].Forecast
	})
	if len(open) > 5 {
		open = open[:5]
	}
	return open
}
