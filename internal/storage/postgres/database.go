package postgres

import (
	"fmt"
	"log"
	"strconv"

	"github.com/dkosyrev/postline/internal/config"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
)

var DB *gorm.DB

// GetDB returns the global DB handle (exposed for tests).
func GetDB() *gorm.DB {
	return DB
}

// InitDB connects to PostgreSQL using the DB_* environment variables and
// sets the global DB handle.
func InitDB() error {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetEnv("DB_HOST"),
		config.GetEnv("DB_USER"),
		config.GetEnv("DB_PASSWORD"),
		config.GetEnv("DB_NAME"),
		config.GetEnv("DB_PORT"),
		config.GetEnv("DB_SSLMODE"),
	)

	db, err := gorm.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}

	DB = db
	log.Println("connected to the database")
	return nil
}

// CloseDB closes the database connection.
func CloseDB() error {
	if DB == nil {
		return nil
	}

	if err := DB.Close(); err != nil {
		return fmt.Errorf("failed to close the database connection: %w", err)
	}

	log.Println("database connection closed")
	return nil
}

// InitDBWithConnection injects an existing connection (used by tests).
func InitDBWithConnection(db *gorm.DB) {
	DB = db
}

// parseID converts an API-level string id into the database key type.
func parseID(id string) (uint, error) {
	n, err := strconv.Atoi(id)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid id %q", id)
	}
	return uint(n), nil
}
