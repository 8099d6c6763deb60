package gateway

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/google/uuid"
)

// Op names a Memory operation for failure injection.
type Op string

const (
	OpSignUp          Op = "auth.signup"
	OpSignIn          Op = "auth.signin"
	OpSignOut         Op = "auth.signout"
	OpGetSession      Op = "auth.get_session"
	OpRestoreSession  Op = "auth.restore_session"
	OpProfileGet      Op = "profiles.get"
	OpProfileInsert   Op = "profiles.insert"
	OpProfileUpdate   Op = "profiles.update"
	OpLogListSince    Op = "nutrition_logs.list_since"
	OpLogGetByDate    Op = "nutrition_logs.get_by_date"
	OpLogInsert       Op = "nutrition_logs.insert"
	OpLogUpdate       Op = "nutrition_logs.update"
	OpSubLatest       Op = "subscriptions.latest_active"
	OpSubDeactivate   Op = "subscriptions.deactivate_all"
	OpSubInsert       Op = "subscriptions.insert"
	OpListMeals       Op = "meals.list"
	OpListRestaurants Op = "restaurants.list"
	OpPing            Op = "ping"
)

func (o Op) table() string {
	t, _, _ := strings.Cut(string(o), ".")
	return t
}

type memUser struct {
	AuthUser
	password string
}

// Memory is an in-process Gateway. It is safe for concurrent use.
//
// Tables can be dropped with DropTable to produce schema-missing errors, and
// any operation can be made to fail with FailOn.
type Memory struct {
	mu          sync.Mutex
	now         func() time.Time
	ttl         time.Duration
	users       map[string]*memUser
	sessions    map[string]*Session
	current     *Session
	profiles    map[string]ProfileRow
	logs        []NutritionLogRow
	subs        []SubscriptionRow
	meals       []models.Meal
	restaurants []models.Restaurant
	dropped     map[string]bool
	failures    map[Op]error
	calls       map[Op]int
	hub         *Hub
}

type MemoryOption func(*Memory)

// WithClock sets the time source used for session expiry and created_at.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

// WithCatalog seeds the meal and restaurant tables.
func WithCatalog(meals []models.Meal, restaurants []models.Restaurant) MemoryOption {
	return func(m *Memory) {
		m.meals = append([]models.Meal(nil), meals...)
		m.restaurants = append([]models.Restaurant(nil), restaurants...)
	}
}

func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		now:      time.Now,
		ttl:      time.Hour,
		users:    make(map[string]*memUser),
		sessions: make(map[string]*Session),
		profiles: make(map[string]ProfileRow),
		dropped:  make(map[string]bool),
		failures: make(map[Op]error),
		calls:    make(map[Op]int),
		hub:      NewHub(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// DropTable makes every operation on table fail with a schema-missing error.
func (m *Memory) DropTable(table string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropped[table] = true
}

// FailOn makes op return err until cleared with FailOn(op, nil).
func (m *Memory) FailOn(op Op, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, op)
		return
	}
	m.failures[op] = err
}

// Calls returns how many times op was invoked.
func (m *Memory) Calls(op Op) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// NutritionLogRows returns a copy of the nutrition_logs table.
func (m *Memory) NutritionLogRows() []NutritionLogRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]NutritionLogRow(nil), m.logs...)
}

// SubscriptionRows returns a copy of the subscriptions table.
func (m *Memory) SubscriptionRows() []SubscriptionRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SubscriptionRow(nil), m.subs...)
}

// Emit publishes an auth event as if it came from the backend.
func (m *Memory) Emit(event AuthEvent, session *Session) {
	m.mu.Lock()
	if event == EventSignedOut {
		m.current = nil
	} else if session != nil {
		s := *session
		m.current = &s
		m.sessions[s.AccessToken] = &s
	}
	m.mu.Unlock()
	m.hub.Publish(event, session)
}

// enter records the call and returns the injected failure, if any.
// m.mu must be held.
func (m *Memory) enter(op Op) error {
	m.calls[op]++
	if err, ok := m.failures[op]; ok {
		return err
	}
	if t := op.table(); m.dropped[t] {
		return SchemaMissing(t, nil)
	}
	return nil
}

func (m *Memory) Auth() AuthClient                      { return (*memAuth)(m) }
func (m *Memory) Profiles() ProfileRepository           { return (*memProfiles)(m) }
func (m *Memory) NutritionLogs() NutritionLogRepository { return (*memLogs)(m) }
func (m *Memory) Subscriptions() SubscriptionRepository { return (*memSubs)(m) }
func (m *Memory) Catalog() CatalogRepository            { return (*memCatalog)(m) }

func (m *Memory) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enter(OpPing)
}

func (m *Memory) Close() error { return nil }

type memAuth Memory

func (a *memAuth) SignUp(ctx context.Context, email, password, name string) (*AuthUser, error) {
	m := (*Memory)(a)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpSignUp); err != nil {
		return nil, err
	}
	email = NormalizeEmail(email)
	key := strings.ToLower(email)
	if _, ok := m.users[key]; ok {
		return nil, &Error{Kind: KindAuth, Message: "User already registered"}
	}
	u := &memUser{AuthUser: AuthUser{ID: uuid.NewString(), Email: email, Name: name}, password: password}
	m.users[key] = u
	au := u.AuthUser
	return &au, nil
}

func (a *memAuth) SignIn(ctx context.Context, email, password string) (*Session, error) {
	m := (*Memory)(a)
	m.mu.Lock()
	if err := m.enter(OpSignIn); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	u, ok := m.users[strings.ToLower(NormalizeEmail(email))]
	if !ok || u.password != password {
		m.mu.Unlock()
		return nil, &Error{Kind: KindAuth, Message: "Invalid login credentials"}
	}
	s := &Session{AccessToken: uuid.NewString(), User: u.AuthUser, ExpiresAt: m.now().Add(m.ttl)}
	m.sessions[s.AccessToken] = s
	m.current = s
	out := *s
	m.mu.Unlock()

	m.hub.Publish(EventSignedIn, &out)
	return &out, nil
}

func (a *memAuth) SignOut(ctx context.Context) error {
	m := (*Memory)(a)
	m.mu.Lock()
	if err := m.enter(OpSignOut); err != nil {
		m.mu.Unlock()
		return err
	}
	if m.current != nil {
		delete(m.sessions, m.current.AccessToken)
	}
	m.current = nil
	m.mu.Unlock()

	m.hub.Publish(EventSignedOut, nil)
	return nil
}

func (a *memAuth) GetSession(ctx context.Context) (*Session, error) {
	m := (*Memory)(a)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpGetSession); err != nil {
		return nil, err
	}
	if m.current == nil || !m.current.ExpiresAt.After(m.now()) {
		return nil, nil
	}
	s := *m.current
	return &s, nil
}

func (a *memAuth) RestoreSession(ctx context.Context, accessToken string) (*Session, error) {
	m := (*Memory)(a)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpRestoreSession); err != nil {
		return nil, err
	}
	s, ok := m.sessions[accessToken]
	if !ok || !s.ExpiresAt.After(m.now()) {
		return nil, &Error{Kind: KindAuth, Message: "Invalid or expired session"}
	}
	m.current = s
	out := *s
	return &out, nil
}

func (a *memAuth) OnAuthStateChange(fn AuthStateFunc) func() {
	return (*Memory)(a).hub.Subscribe(fn)
}

type memProfiles Memory

func (p *memProfiles) Get(ctx context.Context, id string) (*ProfileRow, error) {
	m := (*Memory)(p)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpProfileGet); err != nil {
		return nil, err
	}
	row, ok := m.profiles[id]
	if !ok {
		return nil, ErrNoRows
	}
	return &row, nil
}

func (p *memProfiles) Insert(ctx context.Context, row ProfileRow) error {
	m := (*Memory)(p)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpProfileInsert); err != nil {
		return err
	}
	if _, ok := m.profiles[row.ID]; ok {
		return &Error{Kind: KindValidation, Table: TableProfiles, Code: "23505", Message: "duplicate key value violates unique constraint \"profiles_pkey\""}
	}
	m.profiles[row.ID] = row
	return nil
}

func (p *memProfiles) Update(ctx context.Context, id string, u ProfileUpdate) error {
	m := (*Memory)(p)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpProfileUpdate); err != nil {
		return err
	}
	row, ok := m.profiles[id]
	if !ok {
		return nil
	}
	if u.Name != nil {
		row.Name = *u.Name
	}
	if u.AvatarURL != nil {
		row.AvatarURL = *u.AvatarURL
	}
	if u.Goals != nil {
		row.DailyCaloriesGoal = u.Goals.Calories
		row.DailyProteinGoal = u.Goals.Protein
		row.DailyCarbsGoal = u.Goals.Carbs
		row.DailyFatGoal = u.Goals.Fat
	}
	m.profiles[id] = row
	return nil
}

type memLogs Memory

func (l *memLogs) ListSince(ctx context.Context, userID, since string) ([]NutritionLogRow, error) {
	m := (*Memory)(l)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpLogListSince); err != nil {
		return nil, err
	}
	out := []NutritionLogRow{}
	for _, r := range m.logs {
		if r.UserID == userID && r.Date >= since {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (l *memLogs) GetByDate(ctx context.Context, userID, date string) (*NutritionLogRow, error) {
	m := (*Memory)(l)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpLogGetByDate); err != nil {
		return nil, err
	}
	for _, r := range m.logs {
		if r.UserID == userID && r.Date == date {
			return &r, nil
		}
	}
	return nil, ErrNoRows
}

func (l *memLogs) Insert(ctx context.Context, row NutritionLogRow) error {
	m := (*Memory)(l)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpLogInsert); err != nil {
		return err
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	m.logs = append(m.logs, row)
	return nil
}

func (l *memLogs) UpdateTotals(ctx context.Context, id string, totals models.Nutrients) error {
	m := (*Memory)(l)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpLogUpdate); err != nil {
		return err
	}
	for i := range m.logs {
		if m.logs[i].ID == id {
			m.logs[i].Nutrients = totals
		}
	}
	return nil
}

type memSubs Memory

func (s *memSubs) LatestActive(ctx context.Context, userID string) (*SubscriptionRow, error) {
	m := (*Memory)(s)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpSubLatest); err != nil {
		return nil, err
	}
	var latest *SubscriptionRow
	for i := range m.subs {
		r := &m.subs[i]
		if r.UserID != userID || !r.Active {
			continue
		}
		if latest == nil || !r.CreatedAt.Before(latest.CreatedAt) {
			latest = r
		}
	}
	if latest == nil {
		return nil, ErrNoRows
	}
	out := *latest
	return &out, nil
}

func (s *memSubs) DeactivateAll(ctx context.Context, userID string) error {
	m := (*Memory)(s)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpSubDeactivate); err != nil {
		return err
	}
	for i := range m.subs {
		if m.subs[i].UserID == userID {
			m.subs[i].Active = false
		}
	}
	return nil
}

func (s *memSubs) Insert(ctx context.Context, row SubscriptionRow) error {
	m := (*Memory)(s)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpSubInsert); err != nil {
		return err
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = m.now()
	}
	m.subs = append(m.subs, row)
	return nil
}

type memCatalog Memory

func (c *memCatalog) ListMeals(ctx context.Context) ([]models.Meal, error) {
	m := (*Memory)(c)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpListMeals); err != nil {
		return nil, err
	}
	return append([]models.Meal{}, m.meals...), nil
}

func (c *memCatalog) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	m := (*Memory)(c)
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(OpListRestaurants); err != nil {
		return nil, err
	}
	return append([]models.Restaurant{}, m.restaurants...), nil
}
