package store

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/mocks"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// memKV is an in-memory metadata.Repository with failure injection.
type memKV struct {
	mu     sync.Mutex
	m      map[string][]byte
	getErr error
	setErr error
}

func newMemKV() *memKV { return &memKV{m: make(map[string][]byte)} }

func (k *memKV) Get(_ context.Context, key string) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.getErr != nil {
		return nil, k.getErr
	}
	return k.m[key], nil
}

func (k *memKV) Set(_ context.Context, key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.setErr != nil {
		return k.setErr
	}
	k.m[key] = append([]byte(nil), value...)
	return nil
}

func (k *memKV) Delete(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.m, key)
	return nil
}

func (k *memKV) List(_ context.Context) (map[string][]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make(map[string][]byte, len(k.m))
	for key, v := range k.m {
		out[key] = v
	}
	return out, nil
}

func (k *memKV) Clear(_ context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.m = make(map[string][]byte)
	return nil
}

func (k *memKV) decode(t *testing.T, key string, v any) {
	t.Helper()
	k.mu.Lock()
	raw := k.m[key]
	k.mu.Unlock()
	require.NotNil(t, raw, "key %s not persisted", key)
	require.NoError(t, json.Unmarshal(raw, v))
}

func newMemory() *gateway.Memory {
	return gateway.NewMemory(gateway.WithClock(clock))
}

// register creates an account with a profile row and returns its user.
func register(t *testing.T, mem *gateway.Memory, email, password, name string) *gateway.AuthUser {
	t.Helper()
	ctx := context.Background()
	u, err := mem.Auth().SignUp(ctx, email, password, name)
	require.NoError(t, err)
	g := mocks.DefaultGoals
	require.NoError(t, mem.Profiles().Insert(ctx, gateway.ProfileRow{
		ID:                u.ID,
		Name:              name,
		Email:             email,
		DailyCaloriesGoal: g.Calories,
		DailyProteinGoal:  g.Protein,
		DailyCarbsGoal:    g.Carbs,
		DailyFatGoal:      g.Fat,
	}))
	return u
}

// staticSession is a SessionSource with a fixed answer.
type staticSession struct {
	id string
}

func (s staticSession) Session() (string, bool) { return s.id, s.id != "" }
