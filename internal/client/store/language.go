package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/nutrio/internal/client/i18n"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/dmitrijs2005/nutrio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nutrio/internal/logging"
)

// LanguageSnapshot is the language state. RestartRequired is set once the
// text direction has changed since start; layout direction only follows
// after a restart.
type LanguageSnapshot struct {
	Language        models.Language
	IsRTL           bool
	RestartRequired bool
}

type LanguageStore struct {
	kv  metadata.Repository
	log logging.Logger

	mu       sync.RWMutex
	state    LanguageSnapshot
	startRTL bool
	obs      observers[LanguageSnapshot]
}

func NewLanguageStore(kv metadata.Repository, log logging.Logger) *LanguageStore {
	if log == nil {
		log = logging.Nop()
	}
	return &LanguageStore{
		kv:  kv,
		log: log.With("store", "language"),
		state: LanguageSnapshot{
			Language: models.DefaultLanguage,
			IsRTL:    models.DefaultLanguage.IsRTL(),
		},
	}
}

// Load restores the persisted language. Anything missing or unknown leaves
// the default in place.
func (s *LanguageStore) Load(ctx context.Context) {
	lang := models.DefaultLanguage
	if s.kv != nil {
		raw, err := s.kv.Get(ctx, KeyLanguage)
		if err != nil {
			s.log.Warn(ctx, "load language failed", "error", err)
		} else if l := models.Language(raw); l.Valid() {
			lang = l
		}
	}

	s.mu.Lock()
	s.state = LanguageSnapshot{Language: lang, IsRTL: lang.IsRTL()}
	s.startRTL = lang.IsRTL()
	snap := s.state
	s.mu.Unlock()

	s.obs.notify(snap)
}

// SetLanguage switches the active language. A persistence failure is logged
// and the in-memory state still changes.
func (s *LanguageStore) SetLanguage(ctx context.Context, code string) error {
	lang := models.Language(code)
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	if s.kv != nil {
		if err := s.kv.Set(ctx, KeyLanguage, []byte(lang)); err != nil {
			s.log.Warn(ctx, "save language failed", "language", lang, "error", err)
		}
	}

	s.mu.Lock()
	s.state = LanguageSnapshot{
		Language:        lang,
		IsRTL:           lang.IsRTL(),
		RestartRequired: lang.IsRTL() != s.startRTL,
	}
	snap := s.state
	s.mu.Unlock()

	s.log.Info(ctx, "language changed", "language", lang)
	s.obs.notify(snap)
	return nil
}

// T looks key up in the active language, then English, then returns key.
func (s *LanguageStore) T(key string, args ...any) string {
	return i18n.Translate(s.Language(), key, args...)
}

func (s *LanguageStore) Language() models.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Language
}

func (s *LanguageStore) Snapshot() LanguageSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *LanguageStore) OnChange(fn func(LanguageSnapshot)) (unsubscribe func()) {
	return s.obs.subscribe(fn)
}
