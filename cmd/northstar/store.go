package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/forgo/northstar/internal/config"
	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/repository"
)

// engineStore is a store the invariant checks can run transactions on.
type engineStore interface {
	database.Store
	database.TxRunner
}

// openStore connects to the configured backend. The returned func releases it.
func openStore(ctx context.Context, c *config.Config, log *slog.Logger) (engineStore, func(), error) {
	switch c.Store.Driver {
	case config.DriverPostgres:
		db, err := openPostgres(ctx, c)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewPostgresStore(db, repository.WithIsolation(sql.LevelSerializable))
		return store, func() { _ = db.Close() }, nil

	case config.DriverSurrealDB:
		db, err := openSurreal(ctx, c)
		if err != nil {
			return nil, nil, err
		}
		log.Info("connected to database",
			slog.String("host", c.Database.Host),
			slog.String("database", c.Database.Database),
		)
		return repository.NewSurrealStore(db), func() { _ = db.Close() }, nil

	case config.DriverMemory:
		log.Warn("using the in-memory store; results reflect an empty dataset")
		return repository.NewMemoryStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", c.Store.Driver)
}

func openPostgres(ctx context.Context, c *config.Config) (*sql.DB, error) {
	return database.OpenPostgres(ctx, database.PostgresConfig{
		URL:             c.Postgres.URL,
		MaxOpenConns:    c.Postgres.MaxOpenConns,
		ConnMaxLifetime: c.Postgres.ConnMaxLifetime,
	})
}

func openSurreal(ctx context.Context, c *config.Config) (*database.SurrealDB, error) {
	db := database.NewSurrealDB(database.Config{
		Host:      c.Database.Host,
		Port:      c.Database.Port,
		User:      c.Database.User,
		Password:  c.Database.Password,
		Namespace: c.Database.Namespace,
		Database:  c.Database.Database,
	})
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
