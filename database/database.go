package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sofatesting/Sofa-Driving-Test/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the Postgres connection. When no database host is
// configured it returns a nil *gorm.DB and the repositories fall back to
// their in-memory stores, so the service stays runnable standalone.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Host == "" {
		log.Warn().Msg("DATABASE_HOST not set, running with in-memory stores (attempts and results are lost on restart)")
		return nil, nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Database connection established")
	return db, nil
}
