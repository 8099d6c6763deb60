package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_EndDate(t *testing.T) {
	start := time.Date(2024, time.January, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		d    Duration
		want time.Time
	}{
		{DurationDaily, time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC)},
		{DurationWeekly, time.Date(2024, time.February, 7, 10, 0, 0, 0, time.UTC)},
		// AddDate normalizes Feb 31 to Mar 2 in a leap year.
		{DurationMonthly, time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)},
		{Duration("yearly"), start},
	}
	for _, tt := range tests {
		t.Run(string(tt.d), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.EndDate(start))
		})
	}
}

func TestDuration_MealsIncluded(t *testing.T) {
	assert.Equal(t, 3, DurationDaily.MealsIncluded())
	assert.Equal(t, 21, DurationWeekly.MealsIncluded())
	assert.Equal(t, 90, DurationMonthly.MealsIncluded())
	assert.Equal(t, 90, Duration("").MealsIncluded())
}

func TestInactiveSubscription(t *testing.T) {
	s := InactiveSubscription()
	assert.False(t, s.Active)
	assert.Nil(t, s.Plan)
	assert.Nil(t, s.StartDate)
	assert.Nil(t, s.EndDate)
	assert.False(t, s.GymAccess)
	assert.Zero(t, s.MealsRemaining)
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Mar 5", DisplayDate(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)))
}

func TestLanguage(t *testing.T) {
	assert.True(t, LanguageArabic.IsRTL())
	assert.False(t, LanguageEnglish.IsRTL())
	assert.True(t, Language("ar").Valid())
	assert.False(t, Language("fr").Valid())
	assert.False(t, Language("").Valid())
}

func TestNutrients_Add(t *testing.T) {
	got := Nutrients{Calories: 100, Protein: 10, Carbs: 5, Fat: 1}.Add(Nutrients{Calories: 100, Protein: 10, Carbs: 5, Fat: 1})
	assert.Equal(t, Nutrients{Calories: 200, Protein: 20, Carbs: 10, Fat: 2}, got)
}

func TestUser_CloneDoesNotShareProgress(t *testing.T) {
	u := &User{ID: "u1", Progress: []ProgressEntry{{Date: "2025-01-01"}}}
	c := u.Clone()
	c.Progress[0].Calories = 500

	assert.Zero(t, u.Progress[0].Calories)
	assert.Nil(t, (*User)(nil).Clone())
}
