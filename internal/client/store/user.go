package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/avatars"
	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/mocks"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/dmitrijs2005/nutrio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nutrio/internal/logging"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseInitializing
	PhaseAuthenticated
	PhaseGuest
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseAuthenticated:
		return "ready-authenticated"
	case PhaseGuest:
		return "ready-guest"
	default:
		return "uninitialized"
	}
}

// UserSnapshot is the user state. IsAuthenticated is true exactly when
// Session is non-nil.
type UserSnapshot struct {
	Phase           Phase
	User            *models.User
	Session         *gateway.Session
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

func (s UserSnapshot) clone() UserSnapshot {
	s.User = s.User.Clone()
	if s.Session != nil {
		sess := *s.Session
		s.Session = &sess
	}
	return s
}

// persistedUser is the durable slice of the user state.
type persistedUser struct {
	IsAuthenticated bool             `json:"isAuthenticated"`
	Session         *gateway.Session `json:"session"`
}

// UserUpdate is a partial profile change; nil fields are left alone.
type UserUpdate struct {
	Name       *string
	DailyGoals *models.Goals
}

type UserStore struct {
	gw       gateway.Gateway
	kv       metadata.Repository
	log      logging.Logger
	avatars  avatars.Storage
	now      func() time.Time
	validate *validator.Validate

	mu    sync.RWMutex
	state UserSnapshot
	obs   observers[UserSnapshot]

	// own holds the events the store's in-flight auth calls will raise.
	own   pendingEvents
	unsub func()
}

func NewUserStore(gw gateway.Gateway, kv metadata.Repository, opts ...Option) *UserStore {
	o := buildOptions(opts)
	s := &UserStore{
		gw:       gw,
		kv:       kv,
		log:      o.log.With("store", "user"),
		avatars:  o.avatars,
		now:      o.now,
		validate: newValidator(),
		state:    UserSnapshot{Phase: PhaseUninitialized},
	}
	s.unsub = gw.Auth().OnAuthStateChange(s.onAuthEvent)
	return s
}

// Close stops listening to auth events.
func (s *UserStore) Close() {
	if s.unsub != nil {
		s.unsub()
	}
}

func (s *UserStore) Snapshot() UserSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// OnChange registers fn to receive every new snapshot. The returned
// function unregisters it.
func (s *UserStore) OnChange(fn func(UserSnapshot)) (unsubscribe func()) {
	return s.obs.subscribe(fn)
}

// Session returns the signed-in user's id.
func (s *UserStore) Session() (userID string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Session == nil {
		return "", false
	}
	return s.state.Session.User.ID, true
}

// update applies fn to the state, persists the auth slice when it changed
// and notifies subscribers.
func (s *UserStore) update(ctx context.Context, fn func(*UserSnapshot)) {
	s.mu.Lock()
	before := persistedUser{IsAuthenticated: s.state.IsAuthenticated, Session: s.state.Session}
	fn(&s.state)
	s.state.IsAuthenticated = s.state.Session != nil
	after := persistedUser{IsAuthenticated: s.state.IsAuthenticated, Session: s.state.Session}
	snap := s.state.clone()
	s.mu.Unlock()

	if before.IsAuthenticated != after.IsAuthenticated || before.Session != after.Session {
		saveJSON(ctx, s.kv, s.log, KeyUser, after)
	}
	s.obs.notify(snap)
}

func (s *UserStore) guestUser() *models.User {
	return mocks.User(s.now())
}

func (s *UserStore) startLoading(ctx context.Context) func() {
	s.update(ctx, func(st *UserSnapshot) {
		st.IsLoading = true
		st.Error = ""
	})
	return func() {
		s.update(ctx, func(st *UserSnapshot) { st.IsLoading = false })
	}
}

func (s *UserStore) becomeGuest(ctx context.Context) {
	s.update(ctx, func(st *UserSnapshot) {
		st.Phase = PhaseGuest
		st.Session = nil
		st.User = s.guestUser()
	})
}

func (s *UserStore) becomeAuthenticated(ctx context.Context, sess *gateway.Session) {
	cp := *sess
	s.update(ctx, func(st *UserSnapshot) {
		st.Phase = PhaseAuthenticated
		st.Session = &cp
		st.Error = ""
		if st.User == nil {
			st.User = s.guestUser()
		}
	})
}

// fetchAll loads profile and progress concurrently. Neither fetch returns
// an error, so the group never cancels.
func (s *UserStore) fetchAll(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		s.FetchUserProfile(ctx)
		return nil
	})
	g.Go(func() error {
		s.FetchNutritionProgress(ctx)
		return nil
	})
	_ = g.Wait()
}

// InitializeUser sets the guest identity, then tries the live session and
// after that the persisted session handle. It never fails.
func (s *UserStore) InitializeUser(ctx context.Context) {
	s.update(ctx, func(st *UserSnapshot) {
		st.Phase = PhaseInitializing
		st.IsLoading = true
		st.Error = ""
		st.User = s.guestUser()
	})
	defer s.update(ctx, func(st *UserSnapshot) { st.IsLoading = false })

	release := s.own.expect(gateway.EventTokenRefreshed)
	sess, err := s.resolveSession(ctx)
	release()
	if err != nil {
		s.log.Info(ctx, "session check failed, continuing offline", "error", err)
		s.becomeGuest(ctx)
		return
	}
	if sess == nil {
		s.becomeGuest(ctx)
		return
	}

	s.becomeAuthenticated(ctx, sess)
	s.fetchAll(ctx)
}

func (s *UserStore) resolveSession(ctx context.Context) (*gateway.Session, error) {
	sess, err := s.gw.Auth().GetSession(ctx)
	if err != nil || sess != nil {
		return sess, err
	}

	var saved persistedUser
	found, err := loadJSON(ctx, s.kv, KeyUser, &saved)
	if err != nil {
		s.log.Warn(ctx, "load persisted session failed", "error", err)
		return nil, nil
	}
	if !found || saved.Session == nil || saved.Session.AccessToken == "" {
		return nil, nil
	}
	sess, err = s.gw.Auth().RestoreSession(ctx, saved.Session.AccessToken)
	if gateway.KindOf(err) == gateway.KindAuth {
		// The handle is dead; an unreachable backend keeps it for next time.
		saveJSON(ctx, s.kv, s.log, KeyUser, persistedUser{})
	}
	return sess, err
}

// Login signs in and loads the profile and progress.
func (s *UserStore) Login(ctx context.Context, email, password string) error {
	done := s.startLoading(ctx)
	defer done()

	if err := checkInput(s.validate, credentials{Email: email, Password: password}); err != nil {
		return s.fail(ctx, "login", err, msgLoginFailed)
	}

	release := s.own.expect(gateway.EventSignedIn)
	sess, err := s.gw.Auth().SignIn(ctx, email, password)
	release()
	if err != nil {
		return s.fail(ctx, "login", err, msgLoginFailed)
	}
	if sess == nil {
		return nil
	}

	s.becomeAuthenticated(ctx, sess)
	s.log.Info(ctx, "signed in", "user_id", sess.User.ID)
	s.fetchAll(ctx)
	return nil
}

// Signup creates the account and a best-effort profile row. It does not
// sign in.
func (s *UserStore) Signup(ctx context.Context, email, password, name string) error {
	done := s.startLoading(ctx)
	defer done()

	if err := checkInput(s.validate, signupInput{Email: email, Password: password, Name: name}); err != nil {
		return s.fail(ctx, "signup", err, msgSignupFailed)
	}

	u, err := s.gw.Auth().SignUp(ctx, email, password, name)
	if err != nil {
		return s.fail(ctx, "signup", err, msgSignupFailed)
	}
	if u == nil {
		return s.fail(ctx, "signup", errors.New(msgNoSignupUser), msgSignupFailed)
	}

	goals := mocks.DefaultGoals
	err = s.gw.Profiles().Insert(ctx, gateway.ProfileRow{
		ID:                u.ID,
		Name:              name,
		Email:             email,
		DailyCaloriesGoal: goals.Calories,
		DailyProteinGoal:  goals.Protein,
		DailyCarbsGoal:    goals.Carbs,
		DailyFatGoal:      goals.Fat,
	})
	switch {
	case gateway.IsSchemaMissing(err):
		s.log.Info(ctx, "profiles table missing, skipping profile", "user_id", u.ID)
	case err != nil:
		s.log.Warn(ctx, "profile creation failed", "user_id", u.ID, "error", err)
	}
	return nil
}

// Logout ends the session and reverts to the guest identity. A failure is
// recorded in the snapshot and not returned.
func (s *UserStore) Logout(ctx context.Context) {
	done := s.startLoading(ctx)
	defer done()

	release := s.own.expect(gateway.EventSignedOut)
	err := s.gw.Auth().SignOut(ctx)
	release()
	if err != nil {
		msg := gateway.MessageOf(err, msgLogoutFailed)
		s.log.Warn(ctx, "logout failed", "error", err)
		s.update(ctx, func(st *UserSnapshot) { st.Error = msg })
		return
	}
	s.becomeGuest(ctx)
}

// UpdateUser writes the changed profile fields and re-reads the profile.
func (s *UserStore) UpdateUser(ctx context.Context, u UserUpdate) error {
	userID, ok := s.Session()
	if !ok {
		return nil
	}

	done := s.startLoading(ctx)
	defer done()

	in := userUpdateInput{Name: u.Name}
	if u.DailyGoals != nil {
		g := goalsInput(*u.DailyGoals)
		in.Goals = &g
	}
	if err := checkInput(s.validate, in); err != nil {
		return s.fail(ctx, "update user", err, msgUpdateUserFailed)
	}

	pu := gateway.ProfileUpdate{Name: u.Name, Goals: u.DailyGoals}
	if !pu.Empty() {
		if err := s.gw.Profiles().Update(ctx, userID, pu); err != nil {
			return s.fail(ctx, "update user", err, msgUpdateUserFailed)
		}
	}

	s.FetchUserProfile(ctx)
	return nil
}

// SetAvatar uploads a new profile picture and stores its reference.
func (s *UserStore) SetAvatar(ctx context.Context, contentType string, data []byte) error {
	userID, ok := s.Session()
	if !ok {
		return nil
	}
	if s.avatars == nil {
		return s.fail(ctx, "set avatar", errors.New("avatar storage is not configured"), msgSetAvatarFailed)
	}

	done := s.startLoading(ctx)
	defer done()

	ref, err := s.avatars.Upload(ctx, userID, contentType, data)
	if err != nil {
		return s.fail(ctx, "set avatar", err, msgSetAvatarFailed)
	}
	if err := s.gw.Profiles().Update(ctx, userID, gateway.ProfileUpdate{AvatarURL: &ref}); err != nil {
		return s.fail(ctx, "set avatar", err, msgSetAvatarFailed)
	}

	s.FetchUserProfile(ctx)
	return nil
}

// FetchUserProfile maps the profile row onto the user, keeping progress.
// Any failure falls back to the default identity.
func (s *UserStore) FetchUserProfile(ctx context.Context) {
	userID, ok := s.Session()
	if !ok {
		return
	}

	row, err := s.gw.Profiles().Get(ctx, userID)
	row, substituted, err := substitute(row, err, func() *gateway.ProfileRow { return nil })
	if substituted {
		s.log.Info(ctx, "profiles table missing, using mock user")
	}
	if err != nil {
		s.log.Warn(ctx, "fetch profile failed, using mock user", "error", err)
	}

	var next *models.User
	if row != nil {
		next = &models.User{
			ID:         row.ID,
			Name:       row.Name,
			Email:      row.Email,
			Avatar:     s.avatarURL(ctx, row.AvatarURL),
			DailyGoals: row.Goals(),
		}
	}

	s.update(ctx, func(st *UserSnapshot) {
		if next == nil {
			st.User = s.guestUser()
			st.Error = ""
			return
		}
		if st.User != nil {
			next.Progress = st.User.Progress
		}
		st.User = next
		st.Error = ""
	})
}

func (s *UserStore) avatarURL(ctx context.Context, stored string) string {
	if stored == "" {
		return mocks.DefaultAvatar
	}
	if !avatars.IsRef(stored) || s.avatars == nil {
		return stored
	}
	url, err := s.avatars.URL(ctx, stored)
	if err != nil {
		s.log.Warn(ctx, "resolve avatar failed", "ref", stored, "error", err)
		return mocks.DefaultAvatar
	}
	return url
}

// FetchNutritionProgress loads the trailing seven days. Failures fall back
// to the demo progress.
func (s *UserStore) FetchNutritionProgress(ctx context.Context) {
	userID, ok := s.Session()
	if !ok {
		return
	}

	today := s.now()
	since := today.AddDate(0, 0, -6).Format(models.DateLayout)

	rows, err := s.gw.NutritionLogs().ListSince(ctx, userID, since)
	var progress []models.ProgressEntry
	switch {
	case gateway.IsSchemaMissing(err):
		s.log.Info(ctx, "nutrition_logs table missing, using mock progress")
		progress = mocks.Progress(today)
	case err != nil:
		s.log.Warn(ctx, "fetch progress failed, using mock progress", "error", err)
		progress = mocks.Progress(today)
	default:
		progress = Window(today, rows)
	}

	s.update(ctx, func(st *UserSnapshot) {
		if st.User != nil {
			st.User.Progress = progress
		}
		st.Error = ""
	})
}

// Window materializes exactly seven entries ending on today's date, oldest
// first. Days without a row are zero.
func Window(today time.Time, rows []gateway.NutritionLogRow) []models.ProgressEntry {
	byDate := make(map[string]models.Nutrients, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r.Nutrients
	}

	out := make([]models.ProgressEntry, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i).Format(models.DateLayout)
		out = append(out, models.ProgressEntry{Date: d, Nutrients: byDate[d]})
	}
	return out
}

// LogNutrition adds delta to today's row, creating it when absent, then
// refreshes progress. A missing table is ignored.
func (s *UserStore) LogNutrition(ctx context.Context, delta models.Nutrients) error {
	userID, ok := s.Session()
	if !ok {
		s.log.Debug(ctx, "not authenticated, skipping nutrition log")
		return nil
	}

	today := s.now().Format(models.DateLayout)
	logs := s.gw.NutritionLogs()

	existing, err := logs.GetByDate(ctx, userID, today)
	if gateway.IsSchemaMissing(err) {
		s.log.Info(ctx, "nutrition_logs table missing, skipping log")
		return nil
	}
	switch {
	case errors.Is(err, gateway.ErrNoRows):
		err = logs.Insert(ctx, gateway.NutritionLogRow{UserID: userID, Date: today, Nutrients: delta})
	case err == nil:
		err = logs.UpdateTotals(ctx, existing.ID, existing.Nutrients.Add(delta))
	}

	if err = tolerate(err); err != nil {
		return newActionError("log nutrition", err, msgLogNutritionFailed)
	}

	s.FetchNutritionProgress(ctx)
	return nil
}

// onAuthEvent keeps the store in line with session changes made outside
// its own calls.
func (s *UserStore) onAuthEvent(event gateway.AuthEvent, sess *gateway.Session) {
	if s.own.consume(event) {
		return
	}
	ctx := context.Background()

	switch event {
	case gateway.EventSignedIn:
		if sess == nil {
			return
		}
		s.becomeAuthenticated(ctx, sess)
		s.fetchAll(ctx)
	case gateway.EventSignedOut:
		s.update(ctx, func(st *UserSnapshot) {
			st.Phase = PhaseGuest
			st.Session = nil
			st.User = s.guestUser()
			st.Error = ""
		})
	case gateway.EventTokenRefreshed:
		if sess == nil {
			return
		}
		cp := *sess
		s.update(ctx, func(st *UserSnapshot) {
			if st.Session != nil {
				st.Session = &cp
			}
		})
	}
}

// fail records the extracted message and returns it as an *ActionError.
func (s *UserStore) fail(ctx context.Context, action string, err error, fallback string) error {
	ae := newActionError(action, err, fallback)
	s.log.Warn(ctx, action+" failed", "error", err)
	s.update(ctx, func(st *UserSnapshot) { st.Error = ae.Message })
	return ae
}
