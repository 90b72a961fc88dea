package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/utils"
)

var ErrEmptyDatabaseURL = errors.New("DATABASE_URL is empty")

// DB holds the GORM handle and the pool underneath it
type DB struct {
	*sql.DB
	GORM *gorm.DB
}

type Options struct {
	// Verbose logs every SQL statement
	Verbose bool
}

// NewDB opens a postgres connection and verifies it with a ping
func NewDB(connStr string, opts Options) (*DB, error) {
	if connStr == "" {
		return nil, ErrEmptyDatabaseURL
	}

	logLevel := logger.Warn
	if opts.Verbose {
		logLevel = logger.Info
	}

	gormDB, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	// The knowledge base is read once at startup, a small pool is enough
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	utils.LogInfo("✅ Database connected (GORM)!", nil)
	return &DB{
		DB:   sqlDB,
		GORM: gormDB,
	}, nil
}

func (db *DB) Close() error {
	utils.LogInfo("🔌 Closing database connection...", nil)
	return db.DB.Close()
}
