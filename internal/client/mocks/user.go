// Package mocks provides the static demo data used as the guest identity and
// as the fallback whenever the remote backend is unavailable.
package mocks

import (
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/models"
)

// DefaultAvatar is shown when a profile row has no avatar.
const DefaultAvatar = "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=200&q=80"

// DefaultGoals is used for new profiles and for the demo user.
var DefaultGoals = models.Goals{Calories: 2200, Protein: 150, Carbs: 220, Fat: 70}

var demoProgress = []models.Nutrients{
	{Calories: 1850, Protein: 120, Carbs: 190, Fat: 60},
	{Calories: 2100, Protein: 140, Carbs: 210, Fat: 65},
	{Calories: 1950, Protein: 135, Carbs: 200, Fat: 58},
	{Calories: 2250, Protein: 155, Carbs: 225, Fat: 72},
	{Calories: 2000, Protein: 145, Carbs: 205, Fat: 66},
	{Calories: 1800, Protein: 125, Carbs: 180, Fat: 55},
	{Calories: 1200, Protein: 80, Carbs: 110, Fat: 35},
}

// Progress returns the demo seven-day window ending on now's calendar day.
func Progress(now time.Time) []models.ProgressEntry {
	out := make([]models.ProgressEntry, len(demoProgress))
	for i, n := range demoProgress {
		day := now.AddDate(0, 0, i-len(demoProgress)+1)
		out[i] = models.ProgressEntry{Date: day.Format(models.DateLayout), Nutrients: n}
	}
	return out
}

// User returns a fresh copy of the guest identity.
func User(now time.Time) *models.User {
	return &models.User{
		ID:         "demo-user",
		Name:       "Ahmed Al-Mansouri",
		Email:      "ahmed@example.com",
		Avatar:     DefaultAvatar,
		DailyGoals: DefaultGoals,
		Progress:   Progress(now),
	}
}
