package pg

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/dmitrijs2005/nutrio/internal/dbx"
)

type NutritionLogRepository struct {
	db dbx.DBTX
}

func NewNutritionLogRepository(db dbx.DBTX) *NutritionLogRepository {
	return &NutritionLogRepository{db: db}
}

func (r *NutritionLogRepository) ListSince(ctx context.Context, userID, since string) ([]gateway.NutritionLogRow, error) {
	query :=
		`SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), calories, protein, carbs, fat
		 FROM nutrition_logs
		 WHERE user_id = $1 AND date >= $2
		 ORDER BY date ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, mapError(gateway.TableNutritionLogs, fmt.Errorf("db error: %w", err))
	}
	defer rows.Close()

	result := []gateway.NutritionLogRow{}
	for rows.Next() {
		var l gateway.NutritionLogRow
		if err := rows.Scan(&l.ID, &l.UserID, &l.Date, &l.Calories, &l.Protein, &l.Carbs, &l.Fat); err != nil {
			return nil, mapError(gateway.TableNutritionLogs, fmt.Errorf("db error: %w", err))
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(gateway.TableNutritionLogs, fmt.Errorf("db error: %w", err))
	}
	return result, nil
}

func (r *NutritionLogRepository) GetByDate(ctx context.Context, userID, date string) (*gateway.NutritionLogRow, error) {
	query :=
		`SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), calories, protein, carbs, fat
		 FROM nutrition_logs
		 WHERE user_id = $1 AND date = $2
		 LIMIT 1`

	l := &gateway.NutritionLogRow{}
	err := r.db.QueryRowContext(ctx, query, userID, date).Scan(&l.ID, &l.UserID, &l.Date, &l.Calories, &l.Protein, &l.Carbs, &l.Fat)
	if err != nil {
		return nil, mapError(gateway.TableNutritionLogs, err)
	}
	return l, nil
}

func (r *NutritionLogRepository) Insert(ctx context.Context, l gateway.NutritionLogRow) error {
	query :=
		`INSERT INTO nutrition_logs (user_id, date, calories, protein, carbs, fat)
		 VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(ctx, query, l.UserID, l.Date, l.Calories, l.Protein, l.Carbs, l.Fat); err != nil {
		return mapError(gateway.TableNutritionLogs, fmt.Errorf("db error: %w", err))
	}
	return nil
}

func (r *NutritionLogRepository) UpdateTotals(ctx context.Context, id string, t models.Nutrients) error {
	query :=
		`UPDATE nutrition_logs
		 SET calories = $1, protein = $2, carbs = $3, fat = $4
		 WHERE id = $5`

	if _, err := r.db.ExecContext(ctx, query, t.Calories, t.Protein, t.Carbs, t.Fat, id); err != nil {
		return mapError(gateway.TableNutritionLogs, fmt.Errorf("db error: %w", err))
	}
	return nil
}
