package report

import (
	"sort"
	"time"

	"gitlab.com/fleetops/api/pipeline-admin/internal/metrics"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// ManagementReport is the management tab: active-pipeline forecast and
// balance-of-year totals plus win rankings over the rolling window.
type ManagementReport struct {
	ActiveForecast         float64           `json:"active_forecast"`
	ActiveMargin           float64           `json:"active_margin"`
	ActiveMarginPct        float64           `json:"active_margin_pct"`
	ForecastBalanceOfYear  float64           `json:"forecast_balance_of_year"`
	MarginBalanceOfYear    float64           `json:"margin_balance_of_year"`
	BalanceOfYearMarginPct float64           `json:"balance_of_year_margin_pct"`
	PerformanceBySource    []SourcePerf      `json:"performance_by_source"`
	TopDealsWon            []WonDeal         `json:"top_deals_won"`
	Window                 metrics.Window    `json:"-"`
}

// SourcePerf aggregates won deals by contact source.
type SourcePerf struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// WonDeal is one row of the top-deals-won ranking.
type WonDeal struct {
	Name      string  `json:"name"`
	CloseDate string  `json:"close_date"`
	Value     float64 `json:"value"`
}

// BuildManagementReport computes the management report. The win window rolls
// with the data (latest close date anchors it); the balance-of-year figures
// are anchored to today's calendar year.
func BuildManagementReport(prospects []model.Prospect, contacts []model.Contact, today time.Time) ManagementReport {
	states := metrics.ProspectStates(prospects, contacts)
	window := metrics.RollingWindow(contacts, today)

	rpt := ManagementReport{Window: window}

	var won []metrics.ProspectState
	for _, s := range states {
		if s.Latest != nil && s.Latest.Status == model.ContactStatusWon && window.ContainsDate(s.Latest.ActualCloseDate) {
			won = append(won, s)
		}
		if !s.Active() {
			continue
		}
		c := *s.Latest
		forecast, _ := utils.ParseLooseNumber(c.Forecast)
		rpt.ActiveForecast += forecast
		rpt.ActiveMargin += forecast * c.GrossMargin / 100

		value := metrics.DealValue(c)
		balance := metrics.BalanceOfYear(value, c.ExpectedClosing, today)
		rpt.ForecastBalanceOfYear += balance
		rpt.MarginBalanceOfYear += balance * metrics.MarginPercent(c) / 100
	}
	if rpt.ActiveForecast > 0 {
		rpt.ActiveMarginPct = rpt.ActiveMargin / rpt.ActiveForecast * 100
	}
	if rpt.ForecastBalanceOfYear > 0 {
		rpt.BalanceOfYearMarginPct = rpt.MarginBalanceOfYear / rpt.ForecastBalanceOfYear * 100
	}

	rpt.PerformanceBySource = performanceBySource(won)
	rpt.TopDealsWon = topDealsWon(won)

	return rpt
}

func performanceBySource(won []metrics.ProspectState) []SourcePerf {
	bySource := make(map[string]*SourcePerf)
	var order []string
	for _, s := range won {
		c := *s.Latest
		if c.Source == "" {
			continue
		}
		perf, ok := bySource[c.Source]
		if !ok {
			perf = &SourcePerf{Name: c.Source}
			bySource[c.Source] = perf
			order = append(order, c.Source)
		}
		perf.Count++
		perf.Value += metrics.DealValue(c)
	}

	perfs := make([]SourcePerf, 0, len(order))
	for _, name := range order {
		perfs = append(perfs, *bySource[name])
	}
	sort.SliceStable(perfs, func(i, j int) bool {
		return perfs[i].Value > perfs[j].Value
	})
	return perfs
}

func topDealsWon(won []metrics.ProspectState) []WonDeal {
	deals := make([]WonDeal, 0, len(won))
	for _, s := range won {
		c := *s.Latest
		closeDate := ""
		if c.ActualCloseDate != nil {
			closeDate = *c.ActualCloseDate
		}
		deals = append(deals, WonDeal{
			Name:      s.Prospect.Name,
			CloseDate: closeDate,
			Value:     metrics.DealValue(c),
		})
	}
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].Value > deals[j].Value
	})
	if len(deals) > 5 {
		deals = deals[:5]
	}
	return deals
}
