package httpapi

import (
	"context"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/session"
)

// Viewers see the pipeline but not its money: forecast, margin, and
// commission figures are blanked before the response leaves the server
// rather than trusting a client to hide them.

func isViewer(ctx context.Context) bool {
	user, err := session.FromContext(ctx)
	return err == nil && user.Role == session.RoleViewer
}

func redactContacts(ctx context.Context, contacts []model.Contact) []model.Contact {
	if !isViewer(ctx) {
		return contacts
	}
	redacted := make([]model.Contact, len(contacts))
	for i, c := range contacts {
		c.Forecast = ""
		c.Actual = nil
		c.Probability = 0
		c.GrossMargin = 0
		c.FinalGrossMargin = nil
		redacted[i] = c
	}
	return redacted
}

func redactRoutes(ctx context.Context, routes []model.ProspectRoute) []model.ProspectRoute {
	if !isViewer(ctx) {
		return routes
	}
	redacted := make([]model.ProspectRoute, len(routes))
	for i, r := range routes {
		r.Price = nil
		r.Commission = nil
		redacted[i] = r
	}
	return redacted
}
