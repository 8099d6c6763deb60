package store

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/nutrio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nutrio/internal/logging"
)

// Keys of the durable slices in the local key/value store.
const (
	KeyLanguage     = "app_language"
	KeyUser         = "nutrio-user-storage"
	KeySubscription = "nutrio-subscription-storage"
	KeyFavorites    = "nutrio-favorites"
)

// loadJSON decodes key into v. found is false when the key is absent or kv is nil.
func loadJSON(ctx context.Context, kv metadata.Repository, key string, v any) (found bool, err error) {
	if kv == nil {
		return false, nil
	}
	raw, err := kv.Get(ctx, key)
	if err != nil || raw == nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

// saveJSON writes v under key. Failures are logged and dropped.
func saveJSON(ctx context.Context, kv metadata.Repository, log logging.Logger, key string, v any) {
	if kv == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err == nil {
		err = kv.Set(ctx, key, raw)
	}
	if err != nil {
		log.Warn(ctx, "persist failed", "key", key, "error", err)
	}
}
