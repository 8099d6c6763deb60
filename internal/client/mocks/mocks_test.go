package mocks

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_SevenDaysEndingToday(t *testing.T) {
	now := time.Date(2025, time.March, 1, 15, 0, 0, 0, time.UTC)
	p := Progress(now)

	require.Len(t, p, 7)
	assert.Equal(t, "2025-02-23", p[0].Date)
	assert.Equal(t, "2025-03-01", p[6].Date)
	for i := 1; i < len(p); i++ {
		assert.Less(t, p[i-1].Date, p[i].Date)
	}
}

func TestUser_ReturnsFreshCopies(t *testing.T) {
	now := time.Now()
	a, b := User(now), User(now)
	a.Progress[0].Calories = -1
	a.Name = "changed"

	assert.NotEqual(t, a.Progress[0].Calories, b.Progress[0].Calories)
	assert.Equal(t, DefaultGoals, b.DailyGoals)
	assert.Equal(t, DefaultAvatar, b.Avatar)
}

func TestSubscription_IsActiveWeekly(t *testing.T) {
	s := Subscription()
	require.NotNil(t, s.Plan)
	assert.True(t, s.Active)
	assert.Equal(t, models.DurationWeekly, s.Plan.Duration)
	assert.Equal(t, Subscription(), s)
}

func TestMealsReferenceKnownRestaurants(t *testing.T) {
	byID := map[string]string{}
	for _, r := range Restaurants() {
		byID[r.ID] = r.Name
	}

	meals := Meals()
	require.Len(t, meals, 9)
	for _, m := range meals {
		assert.Equal(t, byID[m.RestaurantID], m.Restaurant, m.Name)
		assert.NotEmpty(t, m.Categories, m.Name)
		assert.Contains(t, models.MealTimes, m.MealTime, m.Name)
	}
}

func TestCategories_StartWithAll(t *testing.T) {
	c := Categories()
	require.NotEmpty(t, c)
	assert.Equal(t, models.CategoryAll, c[0].ID)
}
