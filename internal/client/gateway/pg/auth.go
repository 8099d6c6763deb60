package pg

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/common"
	"github.com/dmitrijs2005/nutrio/internal/cryptox"
	"github.com/dmitrijs2005/nutrio/internal/dbx"
)

const tableUsers = "users"

// Auth implements gateway.AuthClient over the users table. It holds at most
// one live session.
type Auth struct {
	db     dbx.DBTX
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	hub    *gateway.Hub

	mu      sync.Mutex
	current *gateway.Session
}

func NewAuth(db dbx.DBTX, secret []byte, ttl time.Duration, now func() time.Time) *Auth {
	if now == nil {
		now = time.Now
	}
	return &Auth{db: db, secret: secret, ttl: ttl, now: now, hub: gateway.NewHub()}
}

func invalidCredentials() error {
	return &gateway.Error{Kind: gateway.KindAuth, Message: "Invalid login credentials", Err: common.ErrorInvalidLoginPassword}
}

func (a *Auth) SignUp(ctx context.Context, email, password, name string) (*gateway.AuthUser, error) {
	query :=
		`INSERT INTO users (email, password_hash, name)
		 VALUES ($1, $2, $3)
		 RETURNING id`

	u := &gateway.AuthUser{Email: gateway.NormalizeEmail(email), Name: name}
	err := a.db.QueryRowContext(ctx, query, u.Email, cryptox.HashPassword(password), name).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &gateway.Error{Kind: gateway.KindAuth, Table: tableUsers, Message: "User already registered", Err: common.ErrorLoginAlreadyExists}
		}
		return nil, mapError(tableUsers, fmt.Errorf("db error: %w", err))
	}
	return u, nil
}

func (a *Auth) SignIn(ctx context.Context, email, password string) (*gateway.Session, error) {
	query :=
		`SELECT id, email, name, password_hash FROM users
		 WHERE lower(email) = lower($1)`

	var u gateway.AuthUser
	var hash string
	err := a.db.QueryRowContext(ctx, query, gateway.NormalizeEmail(email)).Scan(&u.ID, &u.Email, &u.Name, &hash)
	if err != nil {
		if errors.Is(mapError(tableUsers, err), gateway.ErrNoRows) {
			return nil, invalidCredentials()
		}
		return nil, mapError(tableUsers, fmt.Errorf("db error: %w", err))
	}

	ok, err := cryptox.VerifyPassword(password, hash)
	if err != nil || !ok {
		return nil, invalidCredentials()
	}

	s, err := a.issue(u)
	if err != nil {
		return nil, err
	}
	a.setCurrent(s)
	a.hub.Publish(gateway.EventSignedIn, s)
	return s, nil
}

func (a *Auth) SignOut(ctx context.Context) error {
	a.setCurrent(nil)
	a.hub.Publish(gateway.EventSignedOut, nil)
	return nil
}

// GetSession returns the live session. A session past half of its lifetime
// is re-issued and announced with EventTokenRefreshed.
func (a *Auth) GetSession(ctx context.Context) (*gateway.Session, error) {
	a.mu.Lock()
	cur := a.current
	now := a.now()
	if cur != nil && !cur.ExpiresAt.After(now) {
		a.current = nil
		cur = nil
	}
	a.mu.Unlock()

	if cur == nil {
		return nil, nil
	}

	if cur.ExpiresAt.Sub(now) > a.ttl/2 {
		s := *cur
		return &s, nil
	}

	s, err := a.issue(cur.User)
	if err != nil {
		return nil, err
	}
	a.setCurrent(s)
	a.hub.Publish(gateway.EventTokenRefreshed, s)
	return s, nil
}

func (a *Auth) RestoreSession(ctx context.Context, accessToken string) (*gateway.Session, error) {
	claims, err := ParseToken(accessToken, a.secret, a.now())
	if err != nil {
		return nil, &gateway.Error{Kind: gateway.KindAuth, Message: "Invalid or expired session", Err: err}
	}

	query := `SELECT id, email, name FROM users WHERE id = $1`

	var u gateway.AuthUser
	if err := a.db.QueryRowContext(ctx, query, claims.UserID).Scan(&u.ID, &u.Email, &u.Name); err != nil {
		if errors.Is(mapError(tableUsers, err), gateway.ErrNoRows) {
			return nil, &gateway.Error{Kind: gateway.KindAuth, Message: "Invalid or expired session", Err: common.ErrorNotFound}
		}
		return nil, mapError(tableUsers, fmt.Errorf("db error: %w", err))
	}

	s := &gateway.Session{AccessToken: accessToken, User: u, ExpiresAt: claims.ExpiresAt.Time}
	a.setCurrent(s)
	return s, nil
}

func (a *Auth) OnAuthStateChange(fn gateway.AuthStateFunc) func() {
	return a.hub.Subscribe(fn)
}

func (a *Auth) issue(u gateway.AuthUser) (*gateway.Session, error) {
	token, exp, err := GenerateToken(u.ID, a.secret, a.ttl, a.now())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &gateway.Session{AccessToken: token, User: u, ExpiresAt: exp}, nil
}

func (a *Auth) setCurrent(s *gateway.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s == nil {
		a.current = nil
		return
	}
	c := *s
	a.current = &c
}
