package pg

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/dbx"
)

type SubscriptionRepository struct {
	db dbx.DBTX
}

func NewSubscriptionRepository(db dbx.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) LatestActive(ctx context.Context, userID string) (*gateway.SubscriptionRow, error) {
	query :=
		`SELECT id, user_id, plan_id, plan_name,
		        to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
		        gym_access, meals_remaining, active, created_at
		 FROM subscriptions
		 WHERE user_id = $1 AND active = true
		 ORDER BY created_at DESC
		 LIMIT 1`

	s := &gateway.SubscriptionRow{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.ID, &s.UserID, &s.PlanID, &s.PlanName,
		&s.StartDate, &s.EndDate,
		&s.GymAccess, &s.MealsRemaining, &s.Active, &s.CreatedAt,
	)
	if err != nil {
		return nil, mapError(gateway.TableSubscriptions, err)
	}
	return s, nil
}

func (r *SubscriptionRepository) DeactivateAll(ctx context.Context, userID string) error {
	query :=
		`UPDATE subscriptions SET active = false
		 WHERE user_id = $1 AND active = true`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return mapError(gateway.TableSubscriptions, fmt.Errorf("db error: %w", err))
	}
	return nil
}

func (r *SubscriptionRepository) Insert(ctx context.Context, s gateway.SubscriptionRow) error {
	query :=
		`INSERT INTO subscriptions (user_id, plan_id, plan_name, start_date, end_date,
		        gym_access, meals_remaining, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		s.UserID, s.PlanID, s.PlanName, s.StartDate, s.EndDate,
		s.GymAccess, s.MealsRemaining, s.Active,
	)
	if err != nil {
		return mapError(gateway.TableSubscriptions, fmt.Errorf("db error: %w", err))
	}
	return nil
}
