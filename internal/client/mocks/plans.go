package mocks

import "github.com/dmitrijs2005/nutrio/internal/client/models"

// Plans returns the static plan catalog.
func Plans() []models.Plan {
	return []models.Plan{
		{ID: "1", Name: "Daily", Duration: models.DurationDaily, Price: 99, GymAccess: false},
		{ID: "2", Name: "Weekly", Duration: models.DurationWeekly, Price: 599, GymAccess: true},
		{ID: "3", Name: "Monthly", Duration: models.DurationMonthly, Price: 1999, GymAccess: true},
	}
}

// Subscription returns the demo subscription shown to guests and used when
// the subscriptions table is missing.
func Subscription() models.SubscriptionStatus {
	plan := Plans()[1]
	start, end := "Jan 1", "Jan 8"
	return models.SubscriptionStatus{
		Active:         true,
		Plan:           &plan,
		StartDate:      &start,
		EndDate:        &end,
		GymAccess:      true,
		MealsRemaining: 15,
	}
}
