package database

import (
	"Packlist/internal/config"
	"Packlist/internal/models"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDatabase(configuration *config.Configuration) (*gorm.DB, error) {
	dialector, err := dialectorFor(configuration.Storage)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(models.Draft{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(storage config.StorageConfig) (gorm.Dialector, error) {
	switch storage.Driver {
	case "sqlite":
		if storage.Path == "" {
			return nil, errors.New("storage.path is required for the sqlite driver")
		}
		if storage.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(storage.Path), 0o755); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(storage.Path), nil
	case "postgres", "":
		dsn, err := postgresDSN()
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", storage.Driver)
}

// postgresDSN reads DB_* variables, loading a .env file first when present.
func postgresDSN() (string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if envVariable == "DB_SSLMODE" {
			if os.Getenv(envVariable) == "" {
				if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
					return "", err
				}
			}
			continue
		}
		if os.Getenv(envVariable) == "" {
			return "", fmt.Errorf("%s environment variable not set", envVariable)
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
