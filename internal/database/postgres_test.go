package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// 重設所有 seam
func restoreSeams() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = func(f fs.FS, dir string) (src.Driver, error) { return iofs.New(f, dir) }
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		return migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
	}
}

type fakeMigrator struct {
	upErr   error
	downErr error
}

func (f *fakeMigrator) Up() error   { return f.upErr }
func (f *fakeMigrator) Down() error { return f.downErr }

func stubMigrationSeams(t *testing.T, m migrateInstance, newErr error) {
	t.Helper()
	t.Cleanup(restoreSeams)
	sqlOpenDB = func(string, string) (*sql.DB, error) {
		return sql.Open("pgx", "postgres://stub@localhost/stub")
	}
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return m, newErr
	}
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restoreSeams)

	pgxpoolNew = func(_ context.Context, url string) (*pgxpool.Pool, error) {
		require.Equal(t, "postgres://x", url)
		return &pgxpool.Pool{}, nil
	}
	db, err := NewPgxPool(context.Background(), "postgres://x")
	require.NoError(t, err)
	require.NotNil(t, db)

	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) {
		return nil, errors.New("dial failed")
	}
	_, err = NewPgxPool(context.Background(), "postgres://x")
	require.EqualError(t, err, "dial failed")
}

func TestRunMigrations(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stubMigrationSeams(t, &fakeMigrator{}, nil)
		require.NoError(t, RunMigrations("postgres://x"))
	})

	t.Run("no change tolerated", func(t *testing.T) {
		stubMigrationSeams(t, &fakeMigrator{upErr: migrate.ErrNoChange}, nil)
		require.NoError(t, RunMigrations("postgres://x"))
	})

	t.Run("up failure", func(t *testing.T) {
		stubMigrationSeams(t, &fakeMigrator{upErr: errors.New("broken")}, nil)
		require.EqualError(t, RunMigrations("postgres://x"), "broken")
	})

	t.Run("open failure", func(t *testing.T) {
		t.Cleanup(restoreSeams)
		sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
		require.EqualError(t, RunMigrations("postgres://x"), "open")
	})

	t.Run("driver failure", func(t *testing.T) {
		stubMigrationSeams(t, nil, nil)
		postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) {
			return nil, errors.New("driver")
		}
		require.EqualError(t, RunMigrations("postgres://x"), "driver")
	})

	t.Run("source failure", func(t *testing.T) {
		stubMigrationSeams(t, nil, nil)
		iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("source") }
		require.EqualError(t, RunMigrations("postgres://x"), "source")
	})

	t.Run("instance failure", func(t *testing.T) {
		stubMigrationSeams(t, nil, errors.New("instance"))
		require.EqualError(t, RunMigrations("postgres://x"), "instance")
	})
}

func TestRollbackAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stubMigrationSeams(t, &fakeMigrator{}, nil)
		require.NoError(t, RollbackAll("postgres://x"))
	})

	t.Run("no change tolerated", func(t *testing.T) {
		stubMigrationSeams(t, &fakeMigrator{downErr: migrate.ErrNoChange}, nil)
		require.NoError(t, RollbackAll("postgres://x"))
	})

	t.Run("down failure", func(t *testing.T) {
		stubMigrationSeams(t, &fakeMigrator{downErr: errors.New("broken")}, nil)
		require.EqualError(t, RollbackAll("postgres://x"), "broken")
	})
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	var ups, downs int
	for _, e := range entries {
		name := e.Name()
		switch {
		case len(name) > 7 && name[len(name)-7:] == ".up.sql":
			ups++
		case len(name) > 9 && name[len(name)-9:] == ".down.sql":
			downs++
		}
	}
	require.Equal(t, ups, downs, "every up migration needs a matching down")
	require.GreaterOrEqual(t, ups, 2)
}
