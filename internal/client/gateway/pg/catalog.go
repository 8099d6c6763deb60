package pg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/dmitrijs2005/nutrio/internal/dbx"
)

type CatalogRepository struct {
	db dbx.DBTX
}

func NewCatalogRepository(db dbx.DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListMeals(ctx context.Context) ([]models.Meal, error) {
	query :=
		`SELECT m.id, m.name, m.description, m.image,
		        m.calories, m.protein, m.carbs, m.fat,
		        m.restaurant_id, r.name, r.logo,
		        m.categories, m.ingredients, m.price, m.meal_time
		 FROM meals m
		 JOIN restaurants r ON r.id = m.restaurant_id
		 ORDER BY m.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(gateway.TableMeals, fmt.Errorf("db error: %w", err))
	}
	defer rows.Close()

	result := []models.Meal{}
	for rows.Next() {
		var m models.Meal
		var categories, ingredients []byte
		var mealTime string
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Description, &m.Image,
			&m.Calories, &m.Protein, &m.Carbs, &m.Fat,
			&m.RestaurantID, &m.Restaurant, &m.RestaurantLogo,
			&categories, &ingredients, &m.Price, &mealTime,
		); err != nil {
			return nil, mapError(gateway.TableMeals, fmt.Errorf("db error: %w", err))
		}
		if err := json.Unmarshal(categories, &m.Categories); err != nil {
			return nil, fmt.Errorf("meal %s categories: %w", m.ID, err)
		}
		if err := json.Unmarshal(ingredients, &m.Ingredients); err != nil {
			return nil, fmt.Errorf("meal %s ingredients: %w", m.ID, err)
		}
		m.MealTime = models.MealTime(mealTime)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(gateway.TableMeals, fmt.Errorf("db error: %w", err))
	}
	return result, nil
}

func (r *CatalogRepository) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	query := `SELECT id, name, logo, cuisine_type FROM restaurants ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(gateway.TableRestaurants, fmt.Errorf("db error: %w", err))
	}
	defer rows.Close()

	result := []models.Restaurant{}
	for rows.Next() {
		var rs models.Restaurant
		if err := rows.Scan(&rs.ID, &rs.Name, &rs.Logo, &rs.CuisineType); err != nil {
			return nil, mapError(gateway.TableRestaurants, fmt.Errorf("db error: %w", err))
		}
		result = append(result, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(gateway.TableRestaurants, fmt.Errorf("db error: %w", err))
	}
	return result, nil
}
