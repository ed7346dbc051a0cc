package database

import (
	"context"
	"fmt"

	"github.com/colima-services/reference-api/internal/vault"
	"github.com/colima-services/reference-api/pkg/db"
	"github.com/colima-services/reference-api/pkg/env"
	"github.com/colima-services/reference-api/pkg/log"
	"gorm.io/gorm"
)

// CredentialSecret is the logical service name the database
// credentials live under in the secret store.
const CredentialSecret = "postgres"

const pingQuery = "SELECT CURRENT_TIMESTAMP"

// ConnectionError indicates the database itself was unreachable after
// credentials resolved successfully.
type ConnectionError struct {
	Err error
}

func (e ConnectionError) Error() string {
	return fmt.Sprintf("database connection failed: %v", e.Err)
}

func (e ConnectionError) Unwrap() error {
	return e.Err
}

type PingResult struct {
	Database string `json:"database"`
	Query    string `json:"query"`
	Result   string `json:"result"`
}

type Database interface {
	WithOpener(func(dsn string) (*gorm.DB, error)) Database
	Ping() (*PingResult, error)
}

type databaseService struct {
	ctx     context.Context
	secrets *vault.Client
	open    func(dsn string) (*gorm.DB, error)
}

// Service returns a request-scoped database service. Credentials are
// resolved fresh on every call, so rotated passwords take effect on
// the next connection.
func Service(ctx context.Context, secrets *vault.Client) Database {
	return &databaseService{ctx: ctx, secrets: secrets, open: db.Open}
}

func (s *databaseService) WithOpener(open func(dsn string) (*gorm.DB, error)) Database {
	s.open = open
	return s
}

func (s *databaseService) Ping() (*PingResult, error) {
	creds, err := s.secrets.FetchSecretBundle(s.ctx, CredentialSecret)
	if err != nil {
		return nil, err
	}

	user, ok := creds.Field("user")
	if !ok {
		return nil, vault.FieldNotFoundError{Service: CredentialSecret, Field: "user"}
	}
	password, ok := creds.Field("password")
	if !ok {
		return nil, vault.FieldNotFoundError{Service: CredentialSecret, Field: "password"}
	}
	name, ok := creds.Field("database")
	if !ok {
		return nil, vault.FieldNotFoundError{Service: CredentialSecret, Field: "database"}
	}

	vars := env.Variables()
	dsn := db.DSN(
		db.Credentials{User: user, Password: password, Database: name},
		vars.PostgresHost,
		vars.PostgresPort,
	)

	gdb, err := s.open(dsn)
	if err != nil {
		log.Warn("database connection failed", "host", vars.PostgresHost, "error", err)
		return nil, ConnectionError{Err: err}
	}

	if sqlDB, dbErr := gdb.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	var now string
	if err := gdb.WithContext(s.ctx).Raw(pingQuery).Scan(&now).Error; err != nil {
		return nil, ConnectionError{Err: err}
	}

	return &PingResult{Database: "postgres", Query: pingQuery, Result: now}, nil
}
