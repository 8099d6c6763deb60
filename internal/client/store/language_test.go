package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/nutrio/internal/client/i18n"
	"github.com/dmitrijs2005/nutrio/internal/client/localdb"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/dmitrijs2005/nutrio/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageStore_Defaults(t *testing.T) {
	for name, kv := range map[string]*memKV{
		"empty":   newMemKV(),
		"invalid": {m: map[string][]byte{KeyLanguage: []byte("fr")}},
		"broken":  {m: map[string][]byte{}, getErr: errors.New("locked")},
	} {
		t.Run(name, func(t *testing.T) {
			s := NewLanguageStore(kv, nil)
			s.Load(context.Background())

			snap := s.Snapshot()
			assert.Equal(t, models.LanguageEnglish, snap.Language)
			assert.False(t, snap.IsRTL)
			assert.False(t, snap.RestartRequired)
		})
	}
}

func TestLanguageStore_SetLanguage(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := NewLanguageStore(kv, nil)
	s.Load(ctx)

	var got []LanguageSnapshot
	unsub := s.OnChange(func(ls LanguageSnapshot) { got = append(got, ls) })
	defer unsub()

	require.NoError(t, s.SetLanguage(ctx, "ar"))
	snap := s.Snapshot()
	assert.Equal(t, models.LanguageArabic, snap.Language)
	assert.True(t, snap.IsRTL)
	assert.True(t, snap.RestartRequired)
	assert.Equal(t, []byte("ar"), kv.m[KeyLanguage])
	assert.Equal(t, []LanguageSnapshot{snap}, got)

	require.NoError(t, s.SetLanguage(ctx, "en"))
	assert.False(t, s.Snapshot().RestartRequired, "back to the start direction")
}

func TestLanguageStore_RejectsUnknownCode(t *testing.T) {
	kv := newMemKV()
	s := NewLanguageStore(kv, nil)

	err := s.SetLanguage(context.Background(), "fr")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Equal(t, models.LanguageEnglish, s.Language())
	assert.Empty(t, kv.m)
}

func TestLanguageStore_PersistFailureStillSwitches(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("read-only")
	s := NewLanguageStore(kv, nil)

	require.NoError(t, s.SetLanguage(context.Background(), "ar"))
	assert.Equal(t, models.LanguageArabic, s.Language())
}

func TestLanguageStore_T(t *testing.T) {
	s := NewLanguageStore(newMemKV(), nil)
	require.NoError(t, s.SetLanguage(context.Background(), "ar"))

	for _, key := range []string{"home", "login", "success", "subscribeNow", "noActiveSubscription"} {
		assert.NotEmpty(t, s.T(key), key)
	}
	assert.Equal(t, "no-such-key", s.T("no-such-key"))
	assert.Equal(t, i18n.Translate(models.LanguageArabic, "home"), s.T("home"))
}

func TestLanguageStore_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	db, err := localdb.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	kv := metadata.NewSQLiteRepository(db)

	require.NoError(t, NewLanguageStore(kv, nil).SetLanguage(ctx, "ar"))

	s := NewLanguageStore(kv, nil)
	s.Load(ctx)
	snap := s.Snapshot()
	assert.Equal(t, models.LanguageArabic, snap.Language)
	assert.True(t, snap.IsRTL)
	assert.False(t, snap.RestartRequired)
}
