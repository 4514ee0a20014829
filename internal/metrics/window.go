package metrics

import (
	"sort"
	"time"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// Window is an inclusive date range used for trailing-period aggregation.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the calendar date d falls inside the window.
func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// ContainsDate parses an optional YYYY-MM-DD date and reports whether it
// falls inside the window.
func (w Window) ContainsDate(s *string) bool {
	d, ok := utils.ParseDatePtr(s)
	if !ok {
		return false
	}
	return w.Contains(d)
}

// RollingWindow returns the trailing-12-month reporting window: it ends on
// the last day of the month containing the latest observed close or
// expected-closing date across all contacts (today when none exist), and
// starts on the first day of the month 11 months prior. Anchoring to the
// data rather than the clock keeps historical data sets producing a
// populated report.
func RollingWindow(contacts []model.Contact, today time.Time) Window {
	latest := today
	found := false
	for _, c := range contacts {
		for _, field := range []*string{c.ActualCloseDate, c.ExpectedClosing} {
			if d, ok := utils.ParseDatePtr(field); ok {
				if !found || d.After(latest) {
					latest = d
					found = true
				}
			}
		}
	}

	end := utils.MonthEnd(latest)
	start := utils.MonthStart(latest.AddDate(0, -11, 0))
	return Window{Start: start, End: end}
}

// CurrentMonthWindow returns the trailing-12-month window anchored to the
// clock: ending on the last day of the current month. The sales dashboard
// uses this one; the management and monthly reports use RollingWindow.
func CurrentMonthWindow(today time.Time) Window {
	return Window{
		Start: utils.MonthStart(today.AddDate(0, -11, 0)),
		End:   utils.MonthEnd(today),
	}
}

// ProspectState pairs a prospect with its latest contact, the "current
// state" used by every dashboard.
type ProspectState struct {
	Prospect model.Prospect
	Latest   *model.Contact
}

// Active reports whether the prospect's deal is still open.
func (s ProspectState) Active() bool {
	return s.Latest != nil && !model.IsClosedStatus(s.Latest.Status)
}

// LatestContact returns the most recent contact by contact_date, ties broken
// by created_at. Nil for an empty slice.
func LatestContact(contacts []model.Contact) *model.Contact {
	if len(contacts) == 0 {
		return nil
	}
	sorted := make([]model.Contact, len(contacts))
	copy(sorted, contacts)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, _ := utils.ParseDatePtr(sorted[i].ContactDate)
		dj, _ := utils.ParseDatePtr(sorted[j].ContactDate)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return &sorted[0]
}

// ProspectStates joins prospects with their latest contacts client-side, the
// way every dashboard view consumes them.
func ProspectStates(prospects []model.Prospect, contacts []model.Contact) []ProspectState {
	byProspect := make(map[int64][]model.Contact, len(prospects))
	for _, c := range contacts {
		byProspect[c.ProspectID] = append(byProspect[c.ProspectID], c)
	}

	states := make([]ProspectState, 0, len(prospects))
	for _, p := range prospects {
		states = append(states, ProspectState{
			Prospect: p,
			Latest:   LatestContact(byProspect[p.ID]),
		})
	}
	return states
}
