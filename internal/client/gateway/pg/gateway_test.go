package pg

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/mocks"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_PingsDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })
	var gotDriver, gotDSN string
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		gotDriver, gotDSN = driver, dsn
		return db, nil
	}

	mock.ExpectPing()
	g, err := Open(context.Background(), "postgres://localhost/nutrio", Options{JWTSecret: testSecret})
	require.NoError(t, err)
	assert.Equal(t, "pgx", gotDriver)
	assert.Equal(t, "postgres://localhost/nutrio", gotDSN)

	var _ gateway.Gateway = g
	assert.NotNil(t, g.Auth())
	assert.NotNil(t, g.Profiles())
	assert.NotNil(t, g.NutritionLogs())
	assert.NotNil(t, g.Subscriptions())
	assert.NotNil(t, g.Catalog())

	mock.ExpectPing().WillReturnError(errors.New("server closed the connection unexpectedly"))
	assert.Error(t, g.Ping(context.Background()))

	mock.ExpectClose()
	require.NoError(t, g.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_PingFailureClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })
	sqlOpen = func(string, string) (*sql.DB, error) { return db, nil }

	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()
	_, err = Open(context.Background(), "dsn", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping postgres")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_UsesEmbeddedFS(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, d *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, Migrate(context.Background(), db))
	assert.Equal(t, ".", gotDir)

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("dirty")
	}
	err = Migrate(context.Background(), db)
	assert.EqualError(t, err, "migrate: dirty")
}

func TestSeedCatalog(t *testing.T) {
	db, mock := newMock(t)

	meals := mocks.Meals()[:2]
	restaurants := mocks.Restaurants()[:2]

	mock.ExpectBegin()
	for _, r := range restaurants {
		mock.ExpectExec(`(?s)^INSERT\s+INTO\s+restaurants`).
			WithArgs(r.ID, r.Name, r.Logo, r.CuisineType).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+meals`).
		WithArgs("1", "Protein Pancakes", sqlmock.AnyArg(), sqlmock.AnyArg(), 320, 25, 35, 8, "1",
			`["protein","breakfast"]`, sqlmock.AnyArg(), 45.0, "breakfast").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+meals`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, SeedCatalog(context.Background(), db, meals, restaurants))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedCatalog_RollsBack(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT\s+INTO\s+restaurants`).WillReturnError(undefinedTable)
	mock.ExpectRollback()

	err := SeedCatalog(context.Background(), db, nil, mocks.Restaurants()[:1])
	assert.True(t, gateway.IsSchemaMissing(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
