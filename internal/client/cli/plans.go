package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/nutrio/internal/client/models"
)

// Plans lists the plan catalog.
func (a *App) Plans(ctx context.Context, args []string) error {
	if err := a.subs.FetchPlans(ctx); err != nil {
		a.reportError(err)
		return err
	}
	for _, p := range a.subs.Snapshot().Plans {
		gym := ""
		if p.GymAccess {
			gym = "  +gym"
		}
		a.printf("  %-10s %-20s %-8s %7.2f%s\n", p.ID, p.Name, p.Duration, p.Price, gym)
	}
	return nil
}

// SubscribePlan subscribes to args[0]; a trailing "gym" adds gym access.
func (a *App) SubscribePlan(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return a.usage("subscribe <plan-id> [gym]")
	}
	withGym := len(args) == 2 && strings.EqualFold(args[1], "gym")

	if err := a.subs.Subscribe(ctx, args[0], withGym); err != nil {
		a.reportError(err)
		return err
	}
	a.printSubscription(a.subs.Snapshot().Subscription)
	return nil
}

// Cancel asks for confirmation and cancels the active subscription.
func (a *App) Cancel(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return errNotLoggedIn
	}
	if ok, err := a.confirm(args, a.lang.T("cancelSubscriptionMessage")); err != nil || !ok {
		return err
	}

	if err := a.subs.CancelSubscription(ctx); err != nil {
		a.println(a.lang.T("failedToCancelSubscription") + ": " + err.Error())
		return err
	}
	a.println(a.lang.T("subscriptionCanceled"))
	return nil
}

// Subscription reloads and prints the current subscription.
func (a *App) Subscription(ctx context.Context, args []string) error {
	a.subs.FetchSubscription(ctx)
	a.printSubscription(a.subs.Snapshot().Subscription)
	return nil
}

func (a *App) printSubscription(s models.SubscriptionStatus) {
	a.println(a.lang.T("subscription"))
	if !s.Active {
		a.println("  " + a.lang.T("noActiveSubscription"))
		a.println("  " + a.lang.T("subscribeNow") + ": subscribe <plan-id>")
		return
	}

	if s.Plan != nil {
		a.printf("  %s (%s)\n", s.Plan.Name, s.Plan.Duration)
	}
	if s.StartDate != nil && s.EndDate != nil {
		a.printf("  %s - %s\n", *s.StartDate, *s.EndDate)
	}
	a.printf("  %d %s\n", s.MealsRemaining, a.lang.T("mealsRemaining"))
	if s.GymAccess {
		a.println("  " + a.lang.T("gymAccessIncluded"))
	} else {
		a.println("  " + a.lang.T("noGymAccess"))
	}
}
