package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/models"
)

// NormalizeEmail trims surrounding whitespace. Emails keep their case and
// are matched case-insensitively.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// Table names as they exist on the backend.
const (
	TableProfiles      = "profiles"
	TableNutritionLogs = "nutrition_logs"
	TableSubscriptions = "subscriptions"
	TableMeals         = "meals"
	TableRestaurants   = "restaurants"
)

type Gateway interface {
	Auth() AuthClient
	Profiles() ProfileRepository
	NutritionLogs() NutritionLogRepository
	Subscriptions() SubscriptionRepository
	Catalog() CatalogRepository
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// AuthUser is the account as known to the auth service.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session is an authenticated session. AccessToken is opaque to the client
// and may be handed back to RestoreSession after a restart.
type Session struct {
	AccessToken string    `json:"access_token"`
	User        AuthUser  `json:"user"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AuthEvent string

const (
	EventSignedIn       AuthEvent = "SIGNED_IN"
	EventSignedOut      AuthEvent = "SIGNED_OUT"
	EventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)

// AuthStateFunc receives session-change notifications. session is nil for
// EventSignedOut.
type AuthStateFunc func(event AuthEvent, session *Session)

type AuthClient interface {
	// SignUp creates the account. It does not start a session.
	SignUp(ctx context.Context, email, password, name string) (*AuthUser, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
	// GetSession returns the live session, or nil without error when there is none.
	GetSession(ctx context.Context) (*Session, error)
	// RestoreSession validates a previously issued access token and makes it
	// the live session.
	RestoreSession(ctx context.Context, accessToken string) (*Session, error)
	OnAuthStateChange(fn AuthStateFunc) (unsubscribe func())
}

// ProfileRow mirrors the profiles table.
type ProfileRow struct {
	ID                string
	Name              string
	Email             string
	AvatarURL         string
	DailyCaloriesGoal int
	DailyProteinGoal  int
	DailyCarbsGoal    int
	DailyFatGoal      int
}

// Goals returns the row's goal columns.
func (p ProfileRow) Goals() models.Goals {
	return models.Goals{
		Calories: p.DailyCaloriesGoal,
		Protein:  p.DailyProteinGoal,
		Carbs:    p.DailyCarbsGoal,
		Fat:      p.DailyFatGoal,
	}
}

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	Name      *string
	AvatarURL *string
	Goals     *models.Goals
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.AvatarURL == nil && u.Goals == nil
}

type ProfileRepository interface {
	// Get returns ErrNoRows when the profile does not exist.
	Get(ctx context.Context, id string) (*ProfileRow, error)
	Insert(ctx context.Context, row ProfileRow) error
	Update(ctx context.Context, id string, u ProfileUpdate) error
}

// NutritionLogRow mirrors the nutrition_logs table; Date is YYYY-MM-DD.
type NutritionLogRow struct {
	ID     string
	UserID string
	Date   string
	models.Nutrients
}

type NutritionLogRepository interface {
	// ListSince returns the user's rows with date >= since, oldest first.
	ListSince(ctx context.Context, userID, since string) ([]NutritionLogRow, error)
	// GetByDate returns ErrNoRows when there is no row for that day.
	GetByDate(ctx context.Context, userID, date string) (*NutritionLogRow, error)
	Insert(ctx context.Context, row NutritionLogRow) error
	// UpdateTotals overwrites the totals of row id.
	UpdateTotals(ctx context.Context, id string, totals models.Nutrients) error
}

// SubscriptionRow mirrors the subscriptions table; dates are YYYY-MM-DD.
type SubscriptionRow struct {
	ID             string
	UserID         string
	PlanID         string
	PlanName       string
	StartDate      string
	EndDate        string
	GymAccess      bool
	MealsRemaining int
	Active         bool
	CreatedAt      time.Time
}

type SubscriptionRepository interface {
	// LatestActive returns the newest active row, or ErrNoRows.
	LatestActive(ctx context.Context, userID string) (*SubscriptionRow, error)
	// DeactivateAll clears the active flag on every active row of the user.
	DeactivateAll(ctx context.Context, userID string) error
	Insert(ctx context.Context, row SubscriptionRow) error
}

type CatalogRepository interface {
	ListMeals(ctx context.Context) ([]models.Meal, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
}
