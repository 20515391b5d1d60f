package database

import (
	"fmt"

	"storefront-service/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB initializes the database connection with configuration. Schema
// migration is owned by the store packages that define the records.
func InitDB(cfg *config.Config) error {
	var err error

	// Configure GORM logger
	logLevel := cfg.DB.LogLevel
	if cfg.Server.Env == "production" {
		logLevel = logger.Error
	}

	// Create DSN string
	dsn := cfg.DB.GetDSN()

	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	// Open connection
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get generic database object SQL
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}
