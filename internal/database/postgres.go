// Package database owns the PostgreSQL connection and schema migrations.
package database

import (
	"fmt"
	"time"

	"device-warranty-server/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Client bundles the raw sql handle (used for connectivity checks and
// migrations) with the gorm handle the repositories run on. Both share one
// underlying connection pool.
type Client struct {
	DB   *sqlx.DB
	Gorm *gorm.DB
}

func NewClient(cfg config.DatabaseConfig, logger *zap.Logger) (*Client, error) {
	db, err := sqlx.Connect("postgres", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := applyMigrations(cfg, logger); err != nil {
		db.Close()
		return nil, err
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	logger.Info("connected to postgres",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
	)

	return &Client{DB: db, Gorm: gormDB}, nil
}

func applyMigrations(cfg config.DatabaseConfig, logger *zap.Logger) error {
	m, err := migrate.New(cfg.MigrationsPath, cfg.URL())
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info("database schema up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations applied")
	return nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}
