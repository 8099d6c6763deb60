package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/mocks"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const subUser = "user-1"

func newSubStore(t *testing.T, mem *gateway.Memory, userID string) (*SubscriptionStore, *memKV) {
	t.Helper()
	kv := newMemKV()
	return NewSubscriptionStore(mem, staticSession{id: userID}, kv, WithClock(clock)), kv
}

func TestFetchPlans(t *testing.T) {
	s, kv := newSubStore(t, newMemory(), "")

	require.NoError(t, s.FetchPlans(context.Background()))
	assert.Equal(t, mocks.Plans(), s.Snapshot().Plans)

	var saved persistedSubscription
	kv.decode(t, KeySubscription, &saved)
	assert.Equal(t, mocks.Plans(), saved.Plans)
}

func TestFetchPlans_Failure(t *testing.T) {
	s, _ := newSubStore(t, newMemory(), "")
	s.catalog = func(context.Context) ([]models.Plan, error) { return nil, errors.New("") }

	err := s.FetchPlans(context.Background())
	assert.EqualError(t, err, "Failed to fetch plans")
	assert.Equal(t, "Failed to fetch plans", s.Snapshot().Error)
}

func TestLoad_RestoresPlans(t *testing.T) {
	ctx := context.Background()
	s, kv := newSubStore(t, newMemory(), "")
	require.NoError(t, kv.Set(ctx, KeySubscription, []byte(`{"plans":[{"id":"9","name":"Trial","duration":"daily","price":1,"gymAccess":false}]}`)))

	s.Load(ctx)
	assert.Equal(t, []models.Plan{{ID: "9", Name: "Trial", Duration: models.DurationDaily, Price: 1}}, s.Snapshot().Plans)
}

func TestFetchSubscription_Unauthenticated(t *testing.T) {
	mem := newMemory()
	s, _ := newSubStore(t, mem, "")

	s.FetchSubscription(context.Background())

	if diff := cmp.Diff(mocks.Subscription(), s.Snapshot().Subscription); diff != "" {
		t.Errorf("subscription mismatch (-want +got):\n%s", diff)
	}
	assert.Zero(t, mem.Calls(gateway.OpSubLatest))
}

func TestFetchSubscription_NoRow(t *testing.T) {
	s, _ := newSubStore(t, newMemory(), subUser)

	s.FetchSubscription(context.Background())

	snap := s.Snapshot()
	assert.Equal(t, models.InactiveSubscription(), snap.Subscription)
	assert.Equal(t, mocks.Plans(), snap.Plans, "plans are loaded on demand")
	assert.False(t, snap.IsLoading)
}

func TestFetchSubscription_Row(t *testing.T) {
	ctx := context.Background()
	mem := newMemory()
	require.NoError(t, mem.Subscriptions().Insert(ctx, gateway.SubscriptionRow{
		UserID: subUser, PlanID: "3", PlanName: "Monthly",
		StartDate: "2025-03-01", EndDate: "2025-04-01",
		GymAccess: true, MealsRemaining: 42, Active: true,
	}))
	s, _ := newSubStore(t, mem, subUser)

	s.FetchSubscription(ctx)

	got := s.Snapshot().Subscription
	require.NotNil(t, got.Plan)
	assert.Equal(t, "Monthly", got.Plan.Name)
	assert.True(t, got.Active)
	assert.Equal(t, "Mar 1", *got.StartDate)
	assert.Equal(t, "Apr 1", *got.EndDate)
	assert.True(t, got.GymAccess)
	assert.Equal(t, 42, got.MealsRemaining)
}

func TestFetchSubscription_DanglingPlan(t *testing.T) {
	ctx := context.Background()
	mem := newMemory()
	require.NoError(t, mem.Subscriptions().Insert(ctx, gateway.SubscriptionRow{
		UserID: subUser, PlanID: "404", StartDate: "2025-03-01", EndDate: "bad", Active: true, MealsRemaining: 3,
	}))
	s, _ := newSubStore(t, mem, subUser)

	s.FetchSubscription(ctx)

	got := s.Snapshot().Subscription
	assert.True(t, got.Active)
	assert.Nil(t, got.Plan)
	assert.Nil(t, got.EndDate)
	assert.Equal(t, 3, got.MealsRemaining)
}

func TestFetchSubscription_Fallbacks(t *testing.T) {
	for name, setup := range map[string]func(*gateway.Memory){
		"schema missing": func(m *gateway.Memory) { m.DropTable(gateway.TableSubscriptions) },
		"other failure":  func(m *gateway.Memory) { m.FailOn(gateway.OpSubLatest, errors.New("timeout")) },
	} {
		t.Run(name, func(t *testing.T) {
			mem := newMemory()
			setup(mem)
			s, _ := newSubStore(t, mem, subUser)

			s.FetchSubscription(context.Background())

			snap := s.Snapshot()
			assert.Equal(t, mocks.Subscription(), snap.Subscription)
			assert.Empty(t, snap.Error)
		})
	}
}

func TestSubscribe_Weekly(t *testing.T) {
	for _, gym := range []bool{true, false} {
		mem := newMemory()
		s, _ := newSubStore(t, mem, subUser)

		require.NoError(t, s.Subscribe(context.Background(), "2", gym))

		rows := mem.SubscriptionRows()
		require.Len(t, rows, 1)
		r := rows[0]
		assert.Equal(t, 21, r.MealsRemaining)
		start, err := time.Parse(models.DateLayout, r.StartDate)
		require.NoError(t, err)
		end, err := time.Parse(models.DateLayout, r.EndDate)
		require.NoError(t, err)
		assert.Equal(t, start.AddDate(0, 0, 7), end)
		assert.Equal(t, "2025-03-10", r.StartDate)
		assert.Equal(t, gym, r.GymAccess)

		got := s.Snapshot().Subscription
		assert.Equal(t, 21, got.MealsRemaining)
		assert.Equal(t, "Mar 10", *got.StartDate)
		assert.Equal(t, "Mar 17", *got.EndDate)
		assert.Equal(t, "Weekly", got.Plan.Name)
		assert.Equal(t, gym, got.GymAccess)
	}
}

func TestSubscribe_SupersedesPrevious(t *testing.T) {
	ctx := context.Background()
	mem := newMemory()
	s, _ := newSubStore(t, mem, subUser)

	require.NoError(t, s.Subscribe(ctx, "1", false))
	require.NoError(t, s.Subscribe(ctx, "3", true))

	rows := mem.SubscriptionRows()
	require.Len(t, rows, 2)
	assert.False(t, rows[0].Active)
	assert.True(t, rows[1].Active)
	assert.Equal(t, 90, rows[1].MealsRemaining)
	assert.Equal(t, "2025-04-10", rows[1].EndDate)
	assert.Equal(t, "Monthly", s.Snapshot().Subscription.Plan.Name)
}

func TestSubscribe_UnknownPlan(t *testing.T) {
	ctx := context.Background()
	mem := newMemory()
	s, _ := newSubStore(t, mem, subUser)
	require.NoError(t, s.Subscribe(ctx, "2", true))
	before := s.Snapshot().Subscription

	err := s.Subscribe(ctx, "nope", true)

	require.ErrorIs(t, err, ErrPlanNotFound)
	var ae *ActionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "subscribe", ae.Action)
	assert.Equal(t, before, s.Snapshot().Subscription)
	assert.Len(t, mem.SubscriptionRows(), 1)
}

func TestSubscribe_Unauthenticated(t *testing.T) {
	mem := newMemory()
	s, _ := newSubStore(t, mem, "")

	require.NoError(t, s.Subscribe(context.Background(), "2", true))
	assert.Equal(t, mocks.Subscription(), s.Snapshot().Subscription)
	assert.Zero(t, mem.Calls(gateway.OpSubInsert))
}

func TestSubscribe_SchemaMissing(t *testing.T) {
	mem := newMemory()
	mem.DropTable(gateway.TableSubscriptions)
	s, _ := newSubStore(t, mem, subUser)

	require.NoError(t, s.Subscribe(context.Background(), "1", false))
	assert.Equal(t, mocks.Subscription(), s.Snapshot().Subscription)
	assert.Equal(t, 1, mem.Calls(gateway.OpSubInsert), "deactivate is tolerated, insert still runs")
}

func TestSubscribe_Failures(t *testing.T) {
	ctx := context.Background()

	mem := newMemory()
	mem.FailOn(gateway.OpSubInsert, &gateway.Error{Description: "quota exceeded"})
	s, _ := newSubStore(t, mem, subUser)
	err := s.Subscribe(ctx, "1", false)
	assert.EqualError(t, err, "quota exceeded")
	assert.Equal(t, "quota exceeded", s.Snapshot().Error)
	assert.False(t, s.Snapshot().IsLoading)

	mem = newMemory()
	mem.FailOn(gateway.OpSubDeactivate, errors.New(""))
	s, _ = newSubStore(t, mem, subUser)
	err = s.Subscribe(ctx, "1", false)
	assert.EqualError(t, err, "Failed to create subscription")
	assert.Zero(t, mem.Calls(gateway.OpSubInsert))
}

func TestCancelSubscription(t *testing.T) {
	ctx := context.Background()
	mem := newMemory()
	s, _ := newSubStore(t, mem, subUser)
	require.NoError(t, s.Subscribe(ctx, "2", true))

	require.NoError(t, s.CancelSubscription(ctx))

	assert.Equal(t, models.InactiveSubscription(), s.Snapshot().Subscription)
	assert.False(t, mem.SubscriptionRows()[0].Active)
}

func TestCancelSubscription_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	mem := newMemory()
	s, _ := newSubStore(t, mem, "")
	s.FetchSubscription(ctx)
	before := s.Snapshot()

	require.NoError(t, s.CancelSubscription(ctx))

	assert.Equal(t, before, s.Snapshot())
	assert.Zero(t, mem.Calls(gateway.OpSubDeactivate))
}

func TestCancelSubscription_Failures(t *testing.T) {
	ctx := context.Background()

	mem := newMemory()
	mem.DropTable(gateway.TableSubscriptions)
	s, _ := newSubStore(t, mem, subUser)
	require.NoError(t, s.CancelSubscription(ctx))
	assert.Equal(t, models.InactiveSubscription(), s.Snapshot().Subscription)

	mem = newMemory()
	mem.FailOn(gateway.OpSubDeactivate, errors.New(""))
	s, _ = newSubStore(t, mem, subUser)
	err := s.CancelSubscription(ctx)
	assert.EqualError(t, err, "Failed to cancel subscription")
}

func TestSubscriptionSnapshotIsolated(t *testing.T) {
	ctx := context.Background()
	s, _ := newSubStore(t, newMemory(), subUser)
	require.NoError(t, s.Subscribe(ctx, "2", true))

	snap := s.Snapshot()
	snap.Subscription.Plan.Name = "mutated"
	snap.Plans[0].Name = "mutated"

	again := s.Snapshot()
	assert.Equal(t, "Weekly", again.Subscription.Plan.Name)
	assert.Equal(t, "Daily", again.Plans[0].Name)
}

func TestSubscriptionStore_WithUserStore(t *testing.T) {
	ctx := context.Background()
	mem := newMemory()
	register(t, mem, "sara@example.com", "secret1", "Sara")
	users := newUserStore(t, mem, newMemKV())
	subs := NewSubscriptionStore(mem, users, newMemKV(), WithClock(clock))

	subs.FetchSubscription(ctx)
	assert.Equal(t, mocks.Subscription(), subs.Snapshot().Subscription)

	require.NoError(t, users.Login(ctx, "sara@example.com", "secret1"))
	subs.FetchSubscription(ctx)
	assert.Equal(t, models.InactiveSubscription(), subs.Snapshot().Subscription)
}

func TestSubscriptionStore_OnChange(t *testing.T) {
	s, _ := newSubStore(t, newMemory(), subUser)

	var got []SubscriptionSnapshot
	unsub := s.OnChange(func(snap SubscriptionSnapshot) { got = append(got, snap) })

	require.NoError(t, s.Subscribe(context.Background(), "2", false))
	require.NotEmpty(t, got)
	last := got[len(got)-1]
	assert.True(t, last.Subscription.Active)
	assert.Equal(t, 21, last.Subscription.MealsRemaining)
	assert.False(t, last.IsLoading)

	unsub()
	n := len(got)
	require.NoError(t, s.CancelSubscription(context.Background()))
	assert.Len(t, got, n, "no callbacks after unsubscribe")
}
