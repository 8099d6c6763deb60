package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/mocks"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/dmitrijs2005/nutrio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nutrio/internal/logging"
)

// SessionSource tells the subscription store who is signed in.
// *UserStore implements it.
type SessionSource interface {
	Session() (userID string, ok bool)
}

type SubscriptionSnapshot struct {
	Plans        []models.Plan
	Subscription models.SubscriptionStatus
	IsLoading    bool
	Error        string
}

func (s SubscriptionSnapshot) clone() SubscriptionSnapshot {
	s.Plans = append([]models.Plan(nil), s.Plans...)
	s.Subscription = cloneStatus(s.Subscription)
	return s
}

func cloneStatus(st models.SubscriptionStatus) models.SubscriptionStatus {
	if st.Plan != nil {
		p := *st.Plan
		st.Plan = &p
	}
	if st.StartDate != nil {
		d := *st.StartDate
		st.StartDate = &d
	}
	if st.EndDate != nil {
		d := *st.EndDate
		st.EndDate = &d
	}
	return st
}

type persistedSubscription struct {
	Plans []models.Plan `json:"plans"`
}

type SubscriptionStore struct {
	gw      gateway.Gateway
	session SessionSource
	kv      metadata.Repository
	log     logging.Logger
	now     func() time.Time
	// catalog sources the plan list.
	catalog func(ctx context.Context) ([]models.Plan, error)

	mu    sync.RWMutex
	state SubscriptionSnapshot
	obs   observers[SubscriptionSnapshot]
}

func NewSubscriptionStore(gw gateway.Gateway, session SessionSource, kv metadata.Repository, opts ...Option) *SubscriptionStore {
	o := buildOptions(opts)
	return &SubscriptionStore{
		gw:      gw,
		session: session,
		kv:      kv,
		log:     o.log.With("store", "subscription"),
		now:     o.now,
		catalog: func(context.Context) ([]models.Plan, error) { return mocks.Plans(), nil },
		state:   SubscriptionSnapshot{Subscription: models.InactiveSubscription()},
	}
}

func (s *SubscriptionStore) Snapshot() SubscriptionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// OnChange registers fn to receive every new snapshot.
func (s *SubscriptionStore) OnChange(fn func(SubscriptionSnapshot)) (unsubscribe func()) {
	return s.obs.subscribe(fn)
}

func (s *SubscriptionStore) update(ctx context.Context, fn func(*SubscriptionSnapshot)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state.clone()
	s.mu.Unlock()

	s.obs.notify(snap)
}

func (s *SubscriptionStore) startLoading(ctx context.Context) func() {
	s.update(ctx, func(st *SubscriptionSnapshot) {
		st.IsLoading = true
		st.Error = ""
	})
	return func() {
		s.update(ctx, func(st *SubscriptionSnapshot) { st.IsLoading = false })
	}
}

func (s *SubscriptionStore) setStatus(ctx context.Context, st models.SubscriptionStatus) {
	s.update(ctx, func(snap *SubscriptionSnapshot) {
		snap.Subscription = st
		snap.Error = ""
	})
}

// Load restores the persisted plan catalog.
func (s *SubscriptionStore) Load(ctx context.Context) {
	var saved persistedSubscription
	found, err := loadJSON(ctx, s.kv, KeySubscription, &saved)
	if err != nil {
		s.log.Warn(ctx, "load persisted plans failed", "error", err)
		return
	}
	if !found {
		return
	}
	s.mu.Lock()
	s.state.Plans = saved.Plans
	snap := s.state.clone()
	s.mu.Unlock()
	s.obs.notify(snap)
}

// FetchPlans loads the plan catalog.
func (s *SubscriptionStore) FetchPlans(ctx context.Context) error {
	plans, err := s.catalog(ctx)
	if err != nil {
		ae := newActionError("fetch plans", err, msgFetchPlansFailed)
		s.log.Warn(ctx, "fetch plans failed", "error", err)
		s.update(ctx, func(st *SubscriptionSnapshot) { st.Error = ae.Message })
		return ae
	}
	s.update(ctx, func(st *SubscriptionSnapshot) {
		st.Plans = plans
		st.Error = ""
	})
	saveJSON(ctx, s.kv, s.log, KeySubscription, persistedSubscription{Plans: plans})
	return nil
}

func (s *SubscriptionStore) ensurePlans(ctx context.Context) {
	s.mu.RLock()
	n := len(s.state.Plans)
	s.mu.RUnlock()
	if n == 0 {
		_ = s.FetchPlans(ctx)
	}
}

func (s *SubscriptionStore) plan(id string) (models.Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return models.Plan{}, false
}

// FetchSubscription loads the newest active subscription. It never fails:
// guests, a missing table and unexpected errors all yield the mock
// subscription, and no row yields the inactive shape.
func (s *SubscriptionStore) FetchSubscription(ctx context.Context) {
	userID, ok := s.session.Session()
	if !ok {
		s.setStatus(ctx, mocks.Subscription())
		return
	}

	done := s.startLoading(ctx)
	defer done()

	s.ensurePlans(ctx)

	row, err := s.gw.Subscriptions().LatestActive(ctx, userID)
	switch {
	case gateway.IsSchemaMissing(err):
		s.log.Info(ctx, "subscriptions table missing, using mock subscription")
		s.setStatus(ctx, mocks.Subscription())
	case errors.Is(err, gateway.ErrNoRows):
		s.setStatus(ctx, models.InactiveSubscription())
	case err != nil:
		s.log.Warn(ctx, "fetch subscription failed, using mock subscription", "error", err)
		s.setStatus(ctx, mocks.Subscription())
	default:
		s.setStatus(ctx, s.statusOf(ctx, row))
	}
}

func (s *SubscriptionStore) statusOf(ctx context.Context, row *gateway.SubscriptionRow) models.SubscriptionStatus {
	st := models.SubscriptionStatus{
		Active:         row.Active,
		StartDate:      displayDate(row.StartDate),
		EndDate:        displayDate(row.EndDate),
		GymAccess:      row.GymAccess,
		MealsRemaining: row.MealsRemaining,
	}
	if p, ok := s.plan(row.PlanID); ok {
		st.Plan = &p
	} else {
		s.log.Warn(ctx, "subscription references unknown plan", "plan_id", row.PlanID, "subscription_id", row.ID)
	}
	return st
}

func displayDate(date string) *string {
	if date == "" {
		return nil
	}
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil
	}
	d := models.DisplayDate(t)
	return &d
}

// Subscribe replaces any active subscription with a new one for planID.
func (s *SubscriptionStore) Subscribe(ctx context.Context, planID string, withGym bool) error {
	userID, ok := s.session.Session()
	if !ok {
		s.log.Info(ctx, "not authenticated, using mock subscription")
		s.setStatus(ctx, mocks.Subscription())
		return nil
	}

	done := s.startLoading(ctx)
	defer done()

	s.ensurePlans(ctx)
	plan, ok := s.plan(planID)
	if !ok {
		return s.fail(ctx, "subscribe", ErrPlanNotFound, msgSubscribeFailed)
	}

	start := s.now()
	end := plan.Duration.EndDate(start)
	subs := s.gw.Subscriptions()

	if err := tolerate(subs.DeactivateAll(ctx, userID)); err != nil {
		return s.fail(ctx, "subscribe", err, msgSubscribeFailed)
	}

	err := subs.Insert(ctx, gateway.SubscriptionRow{
		UserID:         userID,
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		StartDate:      start.Format(models.DateLayout),
		EndDate:        end.Format(models.DateLayout),
		GymAccess:      withGym,
		MealsRemaining: plan.Duration.MealsIncluded(),
		Active:         true,
	})
	switch {
	case gateway.IsSchemaMissing(err):
		s.log.Info(ctx, "subscriptions table missing, using mock subscription")
		s.setStatus(ctx, mocks.Subscription())
		return nil
	case err != nil:
		return s.fail(ctx, "subscribe", err, msgSubscribeFailed)
	}

	s.log.Info(ctx, "subscribed", "user_id", userID, "plan_id", plan.ID, "gym", withGym)
	s.FetchSubscription(ctx)
	return nil
}

// CancelSubscription deactivates the active subscription.
func (s *SubscriptionStore) CancelSubscription(ctx context.Context) error {
	userID, ok := s.session.Session()
	if !ok {
		return nil
	}

	done := s.startLoading(ctx)
	defer done()

	if err := tolerate(s.gw.Subscriptions().DeactivateAll(ctx, userID)); err != nil {
		return s.fail(ctx, "cancel subscription", err, msgCancelFailed)
	}
	s.setStatus(ctx, models.InactiveSubscription())
	return nil
}

func (s *SubscriptionStore) fail(ctx context.Context, action string, err error, fallback string) error {
	ae := newActionError(action, err, fallback)
	s.log.Warn(ctx, action+" failed", "error", err)
	s.update(ctx, func(st *SubscriptionSnapshot) { st.Error = ae.Message })
	return ae
}
