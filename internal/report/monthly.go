package report

import (
	"time"

	"gitlab.com/fleetops/api/pipeline-admin/internal/metrics"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// MonthlyPerformance is the twelve-row performance grid plus its totals row.
type MonthlyPerformance struct {
	Months []MonthRow   `json:"months"`
	Totals MonthTotals  `json:"totals"`
}

// MonthRow holds one month of the rolling window.
type MonthRow struct {
	Month               string  `json:"month"`
	WonCount            int     `json:"won_count"`
	LostCount           int     `json:"lost_count"`
	NewCount            int     `json:"new_count"`
	WonRevenue          float64 `json:"won_revenue"`
	ActiveRevenue       float64 `json:"active_revenue"`
	WonMarginAmount     float64 `json:"won_margin_amount"`
	ActiveMarginAmount  float64 `json:"active_margin_amount"`
	WonBalanceOfYear    float64 `json:"won_balance_of_year"`
	ActiveBalanceOfYear float64 `json:"active_balance_of_year"`
	WonMarginPct        float64 `json:"won_margin_pct"`
	ActiveMarginPct     float64 `json:"active_margin_pct"`
}

// MonthTotals sums the grid; the margin percentages are recomputed from the
// totals rather than averaged across rows.
type MonthTotals struct {
	WonCount            int     `json:"won_count"`
	LostCount           int     `json:"lost_count"`
	NewCount            int     `json:"new_count"`
	WonRevenue          float64 `json:"won_revenue"`
	ActiveRevenue       float64 `json:"active_revenue"`
	WonMarginAmount     float64 `json:"won_margin_amount"`
	ActiveMarginAmount  float64 `json:"active_margin_amount"`
	WonBalanceOfYear    float64 `json:"won_balance_of_year"`
	ActiveBalanceOfYear float64 `json:"active_balance_of_year"`
	WonMarginPct        float64 `json:"won_margin_pct"`
	ActiveMarginPct     float64 `json:"active_margin_pct"`
}

// BuildMonthlyPerformance computes the rolling 12-month grid. Closed deals
// bucket by actual close date, open ones by expected closing, new prospects
// by creation time.
func BuildMonthlyPerformance(prospects []model.Prospect, contacts []model.Contact, today time.Time) MonthlyPerformance {
	states := metrics.ProspectStates(prospects, contacts)
	window := metrics.RollingWindow(contacts, today)

	var won, lost, active []metrics.ProspectState
	for _, s := range states {
		if s.Active() {
			active = append(active, s)
			continue
		}
		if s.Latest == nil || !window.ContainsDate(s.Latest.ActualCloseDate) {
			continue
		}
		switch s.Latest.Status {
		case model.ContactStatusWon:
			won = append(won, s)
		case model.ContactStatusLost:
			lost = append(lost, s)
		}
	}

	var perf MonthlyPerformance
	perf.Months = make([]MonthRow, 0, 12)

	for i := 0; i < 12; i++ {
		monthStart := window.Start.AddDate(0, i, 0)
		month := metrics.Window{Start: monthStart, End: utils.MonthEnd(monthStart)}
		row := MonthRow{Month: monthStart.Format("Jan 06")}

		for _, p := range prospects {
			if month.Contains(utils.Midnight(p.CreatedAt)) {
				row.NewCount++
			}
		}
		for _, s := range won {
			c := *s.Latest
			if !month.ContainsDate(c.ActualCloseDate) {
				continue
			}
			value := metrics.DealValue(c)
			row.WonCount++
			row.WonRevenue += value
			row.WonMarginAmount += value * metrics.MarginPercent(c) / 100
			row.WonBalanceOfYear += metrics.BalanceOfYear(value, c.ActualCloseDate, today)
		}
		for _, s := range lost {
			if month.ContainsDate(s.Latest.ActualCloseDate) {
				row.LostCount++
			}
		}
		for _, s := range active {
			c := *s.Latest
			if !month.ContainsDate(c.ExpectedClosing) {
				continue
			}
			value := metrics.DealValue(c)
			row.ActiveRevenue += value
			row.ActiveMarginAmount += value * metrics.MarginPercent(c) / 100
			row.ActiveBalanceOfYear += metrics.BalanceOfYear(value, c.ExpectedClosing, today)
		}

		if row.WonRevenue > 0 {
			row.WonMarginPct = row.WonMarginAmount / row.WonRevenue * 100
		}
		if row.ActiveRevenue > 0 {
			row.ActiveMarginPct = row.ActiveMarginAmount / row.ActiveRevenue * 100
		}

		perf.Months = append(perf.Months, row)

		perf.Totals.WonCount += row.WonCount
		perf.Totals.LostCount += row.LostCount
		perf.Totals.NewCount += row.NewCount
		perf.Totals.WonRevenue += row.WonRevenue
		perf.Totals.ActiveRevenue += row.ActiveRevenue
		perf.Totals.WonMarginAmount += row.WonMarginAmount
		perf.Totals.ActiveMarginAmount += row.ActiveMarginAmount
		perf.Totals.WonBalanceOfYear += row.WonBalanceOfYear
		perf.Totals.ActiveBalanceOfYear += row.ActiveBalanceOfYear
	}

	if perf.Totals.WonRevenue > 0 {
		perf.Totals.WonMarginPct = perf.Totals.WonMarginAmount / perf.Totals.WonRevenue * 100
	}
	if perf.Totals.ActiveRevenue > 0 {
		perf.Totals.ActiveMarginPct = perf.Totals.ActiveMarginAmount / perf.Totals.ActiveRevenue * 100
	}

	return perf
}
