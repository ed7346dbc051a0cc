package db

import (
	"os"
	"testing"

	"github.com/colima-services/reference-api/internal/models"
	"github.com/colima-services/reference-api/pkg/env"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type DBSuite struct {
	suite.Suite
}

func TestDBSuite(t *testing.T) {
	suite.Run(t, new(DBSuite))
}

func (s *DBSuite) SetupTest() {
	os.Setenv("REFAPI_DATABASE_TYPE", "sqlite")
	s.Require().NoError(env.Process())
}

func (s *DBSuite) TearDownTest() {
	os.Unsetenv("REFAPI_DATABASE_TYPE")
}

func (s *DBSuite) TestDSN() {
	dsn := DSN(Credentials{User: "svc", Password: "p@ss", Database: "demo"}, "postgres", 5432)
	s.Equal("host=postgres port=5432 user=svc password=p@ss dbname=demo sslmode=disable", dsn)
}

func (s *DBSuite) TestOpenAndMigrate() {
	gdb, err := Open(":memory:")
	s.Require().NoError(err)
	s.Require().NoError(Migrate(gdb))

	message := &models.Message{ID: uuid.New(), Queue: "orders", Payload: []byte(`{}`)}
	s.Require().NoError(gdb.Create(message).Error)

	var count int64
	s.Require().NoError(gdb.Model(&models.Message{}).Count(&count).Error)
	s.Equal(int64(1), count)
}
