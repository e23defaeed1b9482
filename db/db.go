package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rtharindu/echannaling-admin/config"
	"github.com/rtharindu/echannaling-admin/models"
)

// Client owns the process-wide database handle.
type Client struct {
	DB  *gorm.DB
	log zerolog.Logger
}

type Options struct {
	Debug        bool
	MaxOpenConns int
	MaxIdleConns int
}

// Connect opens the Postgres database named by DATABASE_URL.
func Connect(cfg *config.Config, log zerolog.Logger) (*Client, error) {
	return Open(postgres.Open(cfg.DatabaseURL), Options{
		Debug:        cfg.IsDev(),
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	}, log)
}

// Open establishes the connection for any GORM dialector.
func Open(dialector gorm.Dialector, opts Options, log zerolog.Logger) (*Client, error) {
	gdb, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   NewGormLogger(log, opts.Debug),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info().Str("dialect", dialector.Name()).Msg("database connection established")
	return &Client{DB: gdb, log: log}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close disconnects from the database. Call it once, at shutdown.
func (c *Client) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	c.log.Info().Msg("database connection closed")
	return nil
}

// Migrate creates or updates the tables for every model.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.User{},
		&models.Agent{},
		&models.Doctor{},
		&models.Hospital{},
		&models.Customer{},
		&models.Appointment{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
