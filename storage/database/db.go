package database

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/trezcool/lmsadmin/core"
	appfs "github.com/trezcool/lmsadmin/fs"
)

// URL builds the connection string of database `dbName`, as the admin user if `admin` is set.
func URL(dbName string, admin bool, conf *core.Config) string {
	user := url.UserPassword(conf.Database.User, conf.Database.Password)
	if admin && conf.Database.AdminUser != "" {
		user = url.UserPassword(conf.Database.AdminUser, conf.Database.AdminPassword)
	}

	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.Database.Engine,
		User:     user,
		Host:     conf.Database.Address(),
		Path:     dbName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func open(dbName string, admin bool, conf *core.Config) (*sqlx.DB, error) {
	return sqlx.Open(conf.Database.Engine, URL(dbName, admin, conf))
}

// Open returns the application's connection pool; it does not wait for the server.
func Open(conf *core.Config) (*sqlx.DB, error) {
	db, err := open(conf.Database.Name, false, conf)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	db.SetMaxOpenConns(conf.Database.MaxOpenConns)
	db.SetMaxIdleConns(conf.Database.MaxIdleConns)
	db.SetConnMaxLifetime(conf.Database.ConnMaxLifetime)
	return db, nil
}

// Ping waits for the database to be ready. Waits 100ms longer between each attempt.
func Ping(ctx context.Context, db core.Pinger) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "DB ping cancelled")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}
	return errors.Wrap(err, "DB ping timeout")
}

func exists(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (bool, error) {
	var found bool
	err := db.GetContext(ctx, &found, query, args...)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return found, err
}

func createAppUser(ctx context.Context, db *sqlx.DB, conf *core.Config) error {
	if conf.Database.User == "" || conf.Database.User == conf.Database.AdminUser {
		return nil
	}

	found, err := exists(ctx, db, "SELECT true FROM pg_roles WHERE rolname = $1", conf.Database.User)
	if err != nil {
		return errors.Wrap(err, "checking app user")
	}
	if !found {
		// identifiers and passwords cannot be bound as parameters in DDL
		q := "CREATE USER " + pq.QuoteIdentifier(conf.Database.User) +
			" CREATEDB ENCRYPTED PASSWORD " + pq.QuoteLiteral(conf.Database.Password)
		if _, err = db.ExecContext(ctx, q); err != nil {
			return errors.Wrap(err, "creating app user")
		}
	}
	return nil
}

func createDB(ctx context.Context, db *sqlx.DB, conf *core.Config) error {
	found, err := exists(ctx, db, "SELECT true FROM pg_database WHERE datname = $1", conf.Database.Name)
	if err != nil {
		return errors.Wrap(err, "checking DB")
	}
	if !found {
		if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(conf.Database.Name)); err != nil {
			return errors.Wrap(err, "creating database")
		}
	}
	return nil
}

// CreateIfNotExist creates the application's role and database using the admin credentials.
func CreateIfNotExist(ctx context.Context, conf *core.Config) error {
	admin, err := open("postgres", true, conf)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer func() { _ = admin.Close() }()

	if err = Ping(ctx, admin); err != nil {
		return errors.Wrap(err, "pinging database")
	}
	if err = createAppUser(ctx, admin, conf); err != nil {
		return err
	}

	// create DB as app user so it owns it
	db, err := open("postgres", false, conf)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer func() { _ = db.Close() }()
	return createDB(ctx, db, conf)
}

// Migrate applies every pending migration embedded in appfs.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(appfs.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	if err := goose.UpContext(ctx, db, appfs.MigrationsDir); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}
