package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/gateway/pg/migrations"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/dmitrijs2005/nutrio/internal/dbx"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Options configure a Gateway.
type Options struct {
	JWTSecret  []byte
	SessionTTL time.Duration
	// Now is the clock used for tokens; nil means time.Now.
	Now func() time.Time
}

// Gateway is the PostgreSQL gateway.Gateway.
type Gateway struct {
	db            *sql.DB
	auth          *Auth
	profiles      *ProfileRepository
	nutritionLogs *NutritionLogRepository
	subscriptions *SubscriptionRepository
	catalog       *CatalogRepository
}

var _ gateway.Gateway = (*Gateway)(nil)

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open connects to dsn with the pgx driver and verifies the connection.
func Open(ctx context.Context, dsn string, opts Options) (*Gateway, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, mapError("", fmt.Errorf("ping postgres: %w", err))
	}
	return New(db, opts), nil
}

// New wraps an already opened database.
func New(db *sql.DB, opts Options) *Gateway {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Gateway{
		db:            db,
		auth:          NewAuth(db, opts.JWTSecret, ttl, opts.Now),
		profiles:      NewProfileRepository(db),
		nutritionLogs: NewNutritionLogRepository(db),
		subscriptions: NewSubscriptionRepository(db),
		catalog:       NewCatalogRepository(db),
	}
}

func (g *Gateway) Auth() gateway.AuthClient                      { return g.auth }
func (g *Gateway) Profiles() gateway.ProfileRepository           { return g.profiles }
func (g *Gateway) NutritionLogs() gateway.NutritionLogRepository { return g.nutritionLogs }
func (g *Gateway) Subscriptions() gateway.SubscriptionRepository { return g.subscriptions }
func (g *Gateway) Catalog() gateway.CatalogRepository            { return g.catalog }

func (g *Gateway) Ping(ctx context.Context) error {
	return mapError("", g.db.PingContext(ctx))
}

func (g *Gateway) Close() error {
	return g.db.Close()
}

// DB exposes the underlying pool for migrations and seeding.
func (g *Gateway) DB() *sql.DB {
	return g.db
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate applies the embedded schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedCatalog upserts restaurants and meals in one transaction.
func SeedCatalog(ctx context.Context, db dbx.TxBeginner, meals []models.Meal, restaurants []models.Restaurant) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, r := range restaurants {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO restaurants (id, name, logo, cuisine_type)
				 VALUES ($1, $2, $3, $4)
				 ON CONFLICT (id) DO UPDATE
				 SET name = EXCLUDED.name, logo = EXCLUDED.logo, cuisine_type = EXCLUDED.cuisine_type`,
				r.ID, r.Name, r.Logo, r.CuisineType)
			if err != nil {
				return mapError(gateway.TableRestaurants, fmt.Errorf("seed restaurant %s: %w", r.ID, err))
			}
		}
		for _, m := range meals {
			categories, err := json.Marshal(nonNil(m.Categories))
			if err != nil {
				return err
			}
			ingredients, err := json.Marshal(nonNil(m.Ingredients))
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO meals (id, name, description, image, calories, protein, carbs, fat,
				        restaurant_id, categories, ingredients, price, meal_time)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
				 ON CONFLICT (id) DO UPDATE
				 SET name = EXCLUDED.name, description = EXCLUDED.description, image = EXCLUDED.image,
				     calories = EXCLUDED.calories, protein = EXCLUDED.protein, carbs = EXCLUDED.carbs,
				     fat = EXCLUDED.fat, restaurant_id = EXCLUDED.restaurant_id,
				     categories = EXCLUDED.categories, ingredients = EXCLUDED.ingredients,
				     price = EXCLUDED.price, meal_time = EXCLUDED.meal_time`,
				m.ID, m.Name, m.Description, m.Image, m.Calories, m.Protein, m.Carbs, m.Fat,
				m.RestaurantID, string(categories), string(ingredients), m.Price, string(m.MealTime))
			if err != nil {
				return mapError(gateway.TableMeals, fmt.Errorf("seed meal %s: %w", m.ID, err))
			}
		}
		return nil
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
