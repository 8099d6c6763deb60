package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/nutrio/internal/client/avatars"
	"github.com/dmitrijs2005/nutrio/internal/client/config"
	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/gateway/pg"
	"github.com/dmitrijs2005/nutrio/internal/client/localdb"
	"github.com/dmitrijs2005/nutrio/internal/client/mocks"
	"github.com/dmitrijs2005/nutrio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nutrio/internal/logging"
)

// Seams for tests.
var (
	openLocalDB = localdb.Open
	openGateway = func(ctx context.Context, c *config.Config) (gateway.Gateway, error) {
		return pg.Open(ctx, c.DatabaseDSN, pg.Options{JWTSecret: []byte(c.JWTSecret), SessionTTL: c.SessionTTL})
	}
	logOutput io.Writer = os.Stderr
)

// NewApp wires an App from c: the local SQLite file, the Postgres gateway
// (or the in-memory one when no DSN is set) and S3 avatars when a bucket is
// configured.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogBackend, c.LogLevel, logOutput)

	db, err := openLocalDB(ctx, c.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing local database: %w", err)
	}

	var gw gateway.Gateway
	if c.DatabaseDSN == "" {
		log.Info(ctx, "no database configured, using in-memory backend")
		gw = gateway.NewMemory(gateway.WithCatalog(mocks.Meals(), mocks.Restaurants()))
	} else {
		gw, err = openGateway(ctx, c)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	var av avatars.Storage
	if c.S3Bucket != "" {
		av = avatars.NewS3Storage(c.Avatars())
	}

	app := New(Deps{
		Gateway: gw,
		KV:      metadata.NewSQLiteRepository(db),
		Avatars: av,
		Logger:  log,
	})
	app.onClose(db.Close)
	app.onClose(gw.Close)
	return app, nil
}
