package store

import (
	"errors"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
)

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Fallback messages used when a failure carries no text of its own.
const (
	msgLoginFailed        = "Login failed"
	msgSignupFailed       = "Signup failed"
	msgLogoutFailed       = "Logout failed"
	msgUpdateUserFailed   = "Failed to update user"
	msgLogNutritionFailed = "Failed to log nutrition"
	msgSetAvatarFailed    = "Failed to update avatar"
	msgFetchPlansFailed   = "Failed to fetch plans"
	msgSubscribeFailed    = "Failed to create subscription"
	msgCancelFailed       = "Failed to cancel subscription"
	msgNoSignupUser       = "No user data returned from signup"
)

// ActionError is a user-actionable failure. Message is ready to show.
type ActionError struct {
	Action  string
	Message string
	Err     error
}

func (e *ActionError) Error() string { return e.Message }

func (e *ActionError) Unwrap() error { return e.Err }

func newActionError(action string, err error, fallback string) *ActionError {
	return &ActionError{
		Action:  action,
		Message: gateway.MessageOf(err, fallback),
		Err:     err,
	}
}
