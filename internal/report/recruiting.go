package report

import (
	"sort"
	"time"

	"gitlab.com/fleetops/api/pipeline-admin/internal/metrics"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// RecruitingDashboard is the recruiting tab: headcounts, the status funnel,
// the onboarded-vs-terminated trend, and the top candidate sources.
type RecruitingDashboard struct {
	ActiveDrivers   int            `json:"active_drivers"`
	InPipeline      int            `json:"in_pipeline"`
	Compliant       int            `json:"compliant"`
	Assigned        int            `json:"assigned"`
	Funnel          []DriverStage  `json:"funnel"`
	MonthlyTrend    []TrendMonth   `json:"monthly_trend"`
	TopSources      []SourceCount  `json:"top_sources"`
}

// DriverStage counts drivers in one recruiting status.
type DriverStage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TrendMonth is one month of the onboarded-vs-terminated trend.
type TrendMonth struct {
	Month      string `json:"month"`
	Onboarded  int    `json:"onboarded"`
	Terminated int    `json:"terminated"`
}

// SourceCount counts drivers recruited through one source.
type SourceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// BuildRecruitingDashboard computes the recruiting dashboard over all route
// drivers. The six-month trend is anchored to the clock.
func BuildRecruitingDashboard(drivers []model.RouteDriver, statusOptions []model.Option, today time.Time) RecruitingDashboard {
	var dash RecruitingDashboard

	byStatus := make(map[string]int)
	bySource := make(map[string]int)
	for _, d := range drivers {
		status := d.Status
		if status == "" {
			status = "Unknown"
		}
		byStatus[status]++

		source := "Unknown"
		if d.Source != nil && *d.Source != "" {
			source = *d.Source
		}
		bySource[source]++

		if !model.IsInactiveDriverStatus(d.Status) {
			dash.ActiveDrivers++
		}
		switch d.Status {
		case model.DriverStatusRecruiting, model.DriverStatusVerifications:
			dash.InPipeline++
		case model.DriverStatusCompliant:
			dash.Compliant++
		case model.DriverStatusAssigned:
			dash.Assigned++
		}
	}

	for _, opt := range statusOptions {
		if model.IsInactiveDriverStatus(opt.Name) {
			continue
		}
		dash.Funnel = append(dash.Funnel, DriverStage{Name: opt.Name, Count: byStatus[opt.Name]})
	}

	dash.MonthlyTrend = recruitingTrend(drivers, today)
	dash.TopSources = topSources(bySource)

	return dash
}

func recruitingTrend(drivers []model.RouteDriver, today time.Time) []TrendMonth {
	trend := make([]TrendMonth, 0, 6)
	for i := 5; i >= 0; i-- {
		monthStart := utils.MonthStart(today.AddDate(0, -i, 0))
		month := metrics.Window{Start: monthStart, End: utils.MonthEnd(monthStart)}
		row := TrendMonth{Month: monthStart.Format("Jan")}
		for _, d := range drivers {
			if month.ContainsDate(d.DateOnboarded) {
				row.Onboarded++
			}
			if month.ContainsDate(d.DateTerminated) {
				row.Terminated++
			}
		}
		trend = append(trend, row)
	}
	return trend
}

func topSources(bySource map[string]int) []SourceCount {
	sources := make([]SourceCount, 0, len(bySource))
	for name, count := range bySource {
		sources = append(sources, SourceCount{Name: name, Count: count})
	}
	sort.SliceStable(sources, func(i, j int) bool {
		if sources[i].Count != sources[j].Count {
			return sources[i].Count > sources[j].Count
		}
		return sources[i].Name < sources[j].Name
	})
	if len(sources) > 5 {
		sources = sources[:5]
	}
	return sources
}
