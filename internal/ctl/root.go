// Package ctl implements nutrioctl, the non-interactive operations tool:
// schema migration, catalog seeding, catalog listing and local state
// inspection.
package ctl

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/nutrio/internal/client/config"
	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/gateway/pg"
	"github.com/dmitrijs2005/nutrio/internal/client/localdb"
	"github.com/dmitrijs2005/nutrio/internal/client/mocks"
	"github.com/dmitrijs2005/nutrio/internal/logging"
	"github.com/spf13/cobra"
)

// Seams for tests.
var (
	openDB = func(ctx context.Context, dsn string) (*sql.DB, error) {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return db, nil
	}
	openLocalDB = localdb.Open
	migrate     = pg.Migrate
	seedCatalog = pg.SeedCatalog
)

// env is the state shared by all subcommands.
type env struct {
	envFile  string
	dsn      string
	localDB  string
	logLevel string

	cfg *config.Config
	log logging.Logger
}

// NewRootCmd builds the nutrioctl command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "nutrioctl",
		Short:         "nutrioctl manages the nutrio backend and local state",
		Long:          "nutrioctl applies database migrations, seeds the meal catalog and inspects catalog and local client data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&e.envFile, "env", "e", "", "dotenv file with NUTRIO_* variables")
	pf.StringVar(&e.dsn, "dsn", "", "PostgreSQL DSN (default $NUTRIO_DATABASE_DSN)")
	pf.StringVar(&e.localDB, "local-db", "", "local SQLite file (default $NUTRIO_LOCAL_DB_PATH or nutrio.db)")
	pf.StringVarP(&e.logLevel, "log-level", "v", "", "log level")

	root.AddCommand(
		newMigrateCmd(e),
		newSeedCmd(e),
		newPlansCmd(),
		newMealsCmd(e),
		newRestaurantsCmd(e),
		newLocalCmd(e),
		newVersionCmd(),
	)
	return root
}

// Execute runs nutrioctl with os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load resolves configuration: defaults, then the environment, then flags.
func (e *env) load(cmd *cobra.Command) error {
	cfg, err := config.LoadEnv(e.envFile)
	if err != nil {
		return err
	}
	if e.dsn != "" {
		cfg.DatabaseDSN = e.dsn
	}
	if e.localDB != "" {
		cfg.LocalDBPath = e.localDB
	}
	if e.logLevel != "" {
		cfg.LogLevel = e.logLevel
	}
	e.cfg = cfg
	e.log = logging.New(cfg.LogBackend, cfg.LogLevel, cmd.ErrOrStderr())
	return nil
}

// withDB opens the remote database for the duration of run.
func (e *env) withDB(ctx context.Context, run func(*sql.DB) error) error {
	if e.cfg.DatabaseDSN == "" {
		return fmt.Errorf("no database configured: set --dsn or %s_DATABASE_DSN", config.EnvPrefix)
	}
	db, err := openDB(ctx, e.cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	return run(db)
}

// withCatalog hands run the remote catalog, or the built-in one when no
// database is configured.
func (e *env) withCatalog(ctx context.Context, run func(gateway.CatalogRepository) error) error {
	if e.cfg.DatabaseDSN == "" {
		e.log.Info(ctx, "no database configured, listing the built-in catalog")
		return run(gateway.NewMemory(gateway.WithCatalog(mocks.Meals(), mocks.Restaurants())).Catalog())
	}
	return e.withDB(ctx, func(db *sql.DB) error {
		return run(pg.New(db, pg.Options{}).Catalog())
	})
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
