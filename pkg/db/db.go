package db

import (
	"fmt"

	"github.com/colima-services/reference-api/internal/models"
	"github.com/colima-services/reference-api/pkg/env"
	_ "github.com/jackc/pgx/v4"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Credentials holds database credentials resolved from the secret
// store. They are used to assemble a DSN and then discarded.
type Credentials struct {
	User     string
	Password string
	Database string
}

// DSN assembles a postgres connection string from resolved credentials
// and the configured host and port.
func DSN(creds Credentials, host string, port int) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, creds.User, creds.Password, creds.Database,
	)
}

// Open connects to the configured database. The postgres DSN is
// expected to carry credentials freshly resolved from the secret
// store; sqlite is used for local development and tests.
func Open(dsn string) (*gorm.DB, error) {
	switch env.Variables().DatabaseType {
	case "sqlite":
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		fallthrough
	default:
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
}

// Migrate applies the schema for all models.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&models.Message{})
}
