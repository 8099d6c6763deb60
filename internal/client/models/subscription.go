package models

import "time"

// Duration is a plan's billing period.
type Duration string

const (
	DurationDaily   Duration = "daily"
	DurationWeekly  Duration = "weekly"
	DurationMonthly Duration = "monthly"
)

// EndDate returns start shifted by one period. Unknown durations return start.
func (d Duration) EndDate(start time.Time) time.Time {
	switch d {
	case DurationDaily:
		return start.AddDate(0, 0, 1)
	case DurationWeekly:
		return start.AddDate(0, 0, 7)
	case DurationMonthly:
		return start.AddDate(0, 1, 0)
	default:
		return start
	}
}

// MealsIncluded is the meals-remaining counter a new subscription starts with.
// Anything that is not daily or weekly counts as monthly.
func (d Duration) MealsIncluded() int {
	switch d {
	case DurationDaily:
		return 3
	case DurationWeekly:
		return 21
	default:
		return 90
	}
}

// Plan is an entry of the static plan catalog.
type Plan struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Duration  Duration `json:"duration"`
	Price     float64  `json:"price"`
	GymAccess bool     `json:"gymAccess"`
}

// SubscriptionStatus is the display form of the user's subscription.
// When Active is false, Plan and both dates are nil and MealsRemaining is 0.
type SubscriptionStatus struct {
	Active         bool    `json:"active"`
	Plan           *Plan   `json:"plan"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	GymAccess      bool    `json:"gymAccess"`
	MealsRemaining int     `json:"mealsRemaining"`
}

// InactiveSubscription is the explicit "no subscription" shape.
func InactiveSubscription() SubscriptionStatus {
	return SubscriptionStatus{}
}

// DisplayDate formats a calendar date the way subscription dates are shown,
// e.g. "Jan 2".
func DisplayDate(t time.Time) string {
	return t.Format("Jan 2")
}
