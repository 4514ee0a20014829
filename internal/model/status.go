package model

// Contact (interaction) statuses with business meaning. Status values are
// free text from the status_options taxonomy; only Won and Lost carry
// hard-coded semantics (they close a deal).
const (
	ContactStatusWon  = "Won"
	ContactStatusLost = "Lost"
)

// IsClosedStatus reports whether a contact status ends the deal. The
// completed flag on a contact must equal this at all times.
func IsClosedStatus(status string) bool {
	return status == ContactStatusWon || status == ContactStatusLost
}

// Driver statuses with business meaning. The driver_status_options taxonomy
// is admin-editable, but these values drive transitions and fill counts.
const (
	DriverStatusRecruiting    = "Recruiting"
	DriverStatusVerifications = "Verifications"
	DriverStatusCompliant     = "Compliant"
	DriverStatusOnboarded     = "Onboarded"
	DriverStatusAssigned      = "Assigned"
	DriverStatusTerminated    = "Terminated"
	DriverStatusRejected      = "Rejected"
)

// IsInactiveDriverStatus reports whether a driver no longer counts toward a
// route's filled slots.
func IsInactiveDriverStatus(status string) bool {
	return status == DriverStatusTerminated || status == DriverStatusRejected
}

// Compliance flag values. Stored as text, not booleans, matching the schema.
const (
	FlagYes = "Yes"
	FlagNo  = "No"
)

// UnassignedRouteName is the well-known sentinel route per data set that
// buckets drivers not assigned to a real route.
const UnassignedRouteName = "Unassigned"
