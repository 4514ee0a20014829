// Package metrics implements the derived-metric rules for deals and
// recruiting. Every function is pure: inputs are already-fetched rows plus
// an explicit reference time, outputs are numbers. Getting these exactly
// right matters more than anywhere else in the service; arithmetic drift
// here produces wrong financial numbers without any error being raised.
package metrics

import (
	"time"

	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// DealValue returns the monetary value of a contact: the actual-close figure
// when it parses to a valid number (zero included, since a closed deal worth
// nothing supersedes its forecast), otherwise the forecast, otherwise 0.
// Both fields may carry loosely formatted currency strings.
func DealValue(c model.Contact) float64 {
	if c.Actual != nil {
		if v, ok := utils.ParseLooseNumber(*c.Actual); ok {
			return v
		}
	}
	if v, ok := utils.ParseLooseNumber(c.Forecast); ok {
		return v
	}
	return 0
}

// MarginPercent returns the applicable gross-margin percentage: the final
// figure when present, else the forecast margin.
func MarginPercent(c model.Contact) float64 {
	if c.FinalGrossMargin != nil {
		return *c.FinalGrossMargin
	}
	return c.GrossMargin
}

// MarginAmount is the margin dollars implied by the deal value.
func MarginAmount(c model.Contact) float64 {
	return DealValue(c) * MarginPercent(c) / 100
}

// BalanceOfYear pro-rates an annualized value over the remainder of the
// current calendar year: value/365 times the days from today through Dec 31
// inclusive. Zero when the reference date is missing, unparseable, or not in
// today's calendar year.
func BalanceOfYear(value float64, refDate *string, today time.Time) float64 {
	ref, ok := utils.ParseDatePtr(refDate)
	if !ok || ref.Year() != today.Year() {
		return 0
	}

	day := utils.Midnight(today)
	endOfYear := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())
	if day.After(endOfYear) {
		return 0
	}

	daysRemaining := utils.DiffDays(day, endOfYear) + 1
	return value / 365 * float64(daysRemaining)
}

// RouteDaysToFill returns the whole days between a route's assignment and
// fill dates, or nil when either date is missing or the span is negative.
func RouteDaysToFill(dateAssigned, dateFilled *string) *int {
	assigned, okA := utils.ParseDatePtr(dateAssigned)
	filled, okF := utils.ParseDatePtr(dateFilled)
	if !okA || !okF {
		return nil
	}
	days := utils.DiffDays(assigned, filled)
	if days < 0 {
		return nil
	}
	return &days
}

// DriverDaysToFill returns the whole days between a driver being added and
// onboarded. Negative spans clamp to zero (treated as zero fill time, not an
// error); nil when either date is missing or unparseable.
func DriverDaysToFill(dateAdded, dateOnboarded *string) *int {
	added, okA := utils.ParseDatePtr(dateAdded)
	onboarded, okO := utils.ParseDatePtr(dateOnboarded)
	if !okA || !okO {
		return nil
	}
	days := utils.DiffDays(added, onboarded)
	if days < 0 {
		days = 0
	}
	return &days
}

// Retention returns the whole days a driver has been (or was) onboard: from
// date_onboarded to date_terminated when set, otherwise to now. Clamped at
// zero; nil when date_onboarded is absent or either date fails to parse.
func Retention(dateOnboarded, dateTerminated *string, now time.Time) *int {
	onboarded, ok := utils.ParseDatePtr(dateOnboarded)
	if !ok {
		return nil
	}

	end := now
	if dateTerminated != nil && *dateTerminated != "" {
		terminated, okT := utils.ParseDate(*dateTerminated)
		if !okT {
			return nil
		}
		end = terminated
	}

	days := utils.DiffDays(onboarded, end)
	if days < 0 {
		days = 0
	}
	return &days
}
