package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB holds the database connection
type DB struct {
	Postgres *gorm.DB
}

// InitDB initializes and returns the database connection
func InitDB(connStr string) (*DB, error) {
	if connStr == "" {
		return nil, fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
	}

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the services rely on for Conflict mapping.
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to PostgreSQL!")
	return &DB{Postgres: db}, nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db.Postgres == nil {
		return
	}
	sqlDB, err := db.Postgres.DB()
	if err != nil {
		log.Printf("Error getting SQL DB from GORM: %v\n", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing PostgreSQL connection: %v\n", err)
	} else {
		log.Println("PostgreSQL connection closed.")
	}
}
