// Package export renders the opportunity list as downloadable files. The
// row shape mirrors the pipeline grid: one row per prospect carrying its
// latest contact's figures, with the margin dollars and balance-of-year
// columns derived at render time.
package export

import (
	"math"
	"sort"
	"strconv"
	"time"

	"gitlab.com/fleetops/api/pipeline-admin/internal/metrics"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// OpportunityHeader returns the export column titles in order.
func OpportunityHeader() []string {
	return []string{
		"Opportunity Name", "Status", "Contact Name", "Contact Date",
		"Forecast", "Final Forecast", "Exp. Closing", "Actual Close Date",
		"Quote Due Date", "Est. Start", "Actual Start", "Probability",
		"GM%", "Final GM%", "GM$", "Bal of Year", "Notes",
	}
}

// BuildOpportunityRows builds one export row per prospect, sorted by name.
// A prospect without any contact exports as a bare name row. Monetary
// figures keep their stored text form; the derived columns round to whole
// dollars.
func BuildOpportunityRows(prospects []model.Prospect, contacts []model.Contact, today time.Time) [][]string {
	states := metrics.ProspectStates(prospects, contacts)
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].Prospect.Name < states[j].Prospect.Name
	})

	width := len(OpportunityHeader())
	rows := make([][]string, 0, len(states))
	for _, s := range states {
		if s.Latest == nil {
			row := make([]string, width)
			row[0] = s.Prospect.Name
			rows = append(rows, row)
			continue
		}

		c := *s.Latest
		rows = append(rows, []string{
			s.Prospect.Name,
			c.Status,
			c.ContactName,
			strOrEmpty(c.ContactDate),
			c.Forecast,
			strOrEmpty(c.Actual),
			strOrEmpty(c.ExpectedClosing),
			strOrEmpty(c.ActualCloseDate),
			strOrEmpty(c.QuoteDueDate),
			strOrEmpty(c.StartDate),
			strOrEmpty(c.ActualStartDate),
			formatFloat(c.Probability),
			formatFloat(c.GrossMargin),
			formatFloatPtr(c.FinalGrossMargin),
			grossMarginDollars(c),
			balanceOfYearCell(c, today),
			c.Notes,
		})
	}
	return rows
}

// grossMarginDollars is forecast times forecast margin, rounded to whole
// dollars. It deliberately ignores the actual figure and final margin; the
// column reports the forecasted margin, not the realized one.
func grossMarginDollars(c model.Contact) string {
	forecast, ok := utils.ParseLooseNumber(c.Forecast)
	if !ok {
		forecast = 0
	}
	return strconv.Itoa(int(math.Round(forecast * c.GrossMargin / 100)))
}

// balanceOfYearCell pro-rates the deal value over the rest of the year, or
// "N/A" when the expected closing is missing or outside the current year.
func balanceOfYearCell(c model.Contact, today time.Time) string {
	ref, ok := utils.ParseDatePtr(c.ExpectedClosing)
	if !ok || ref.Year() != today.Year() {
		return "N/A"
	}
	value := metrics.BalanceOfYear(metrics.DealValue(c), c.ExpectedClosing, today)
	return strconv.Itoa(int(math.Round(value)))
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
