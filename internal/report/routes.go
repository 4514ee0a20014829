package report

import (
	"sort"

	"gitlab.com/fleetops/api/pipeline-admin/internal/metrics"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
)

// RouteCard summarizes one route's staffing for the routes overview. Filled
// counts only drivers still in play; Terminated and Rejected drivers stay
// linked for history but no longer staff the route.
type RouteCard struct {
	RouteID       int64  `json:"route_id"`
	ProspectName  string `json:"prospect_name"`
	RouteName     string `json:"route_name"`
	ProspectState string `json:"prospect_state"`
	DriversNeeded int    `json:"drivers_needed"`
	Filled        int    `json:"filled"`
	Open          int    `json:"open"`
	DateLabel     string `json:"date_label"`
	DateValue     string `json:"date_value"`
}

// BuildRouteCards computes the fill summary for every real route. The
// Unassigned sentinel route is a holding pen, not a staffing target, and is
// excluded.
func BuildRouteCards(routes []model.ProspectRoute, drivers []model.RouteDriver, prospects []model.Prospect, contacts []model.Contact) []RouteCard {
	states := metrics.ProspectStates(prospects, contacts)
	stateByProspect := make(map[int64]metrics.ProspectState, len(states))
	for _, s := range states {
		stateByProspect[s.Prospect.ID] = s
	}

	filledByRoute := make(map[int64]int)
	for _, d := range drivers {
		if d.ProspectRouteID == nil || model.IsInactiveDriverStatus(d.Status) {
			continue
		}
		filledByRoute[*d.ProspectRouteID]++
	}

	cards := make([]RouteCard, 0, len(routes))
	for _, r := range routes {
		if r.IsUnassignedSentinel() {
			continue
		}

		card := RouteCard{
			RouteID:       r.ID,
			ProspectName:  "Unknown Opportunity",
			RouteName:     r.RouteIDName,
			ProspectState: "Unknown",
			DriversNeeded: r.DriversNeeded,
			Filled:        filledByRoute[r.ID],
		}
		if s, ok := stateByProspect[r.ProspectID]; ok {
			card.ProspectName = s.Prospect.Name
			if s.Latest != nil {
				card.ProspectState = s.Latest.Status
			} else {
				card.ProspectState = "New"
			}
		}
		if open := r.DriversNeeded - card.Filled; open > 0 {
			card.Open = open
		}

		// date_filled acts as the actual start once set.
		card.DateLabel = "Expected Start Date"
		card.DateValue = "N/A"
		switch {
		case r.DateFilled != nil && *r.DateFilled != "":
			card.DateLabel = "Start Date"
			card.DateValue = *r.DateFilled
		case r.DateAssigned != nil && *r.DateAssigned != "":
			card.DateValue = *r.DateAssigned
		}

		cards = append(cards, card)
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].ProspectName < cards[j].ProspectName
	})
	return cards
}
