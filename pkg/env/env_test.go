package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type EnvTestSuite struct {
	suite.Suite
}

func (s *EnvTestSuite) SetupTest() {
	os.Unsetenv("REFAPI_PORT")
	os.Unsetenv("REFAPI_LOG_LEVEL")
}

func (s *EnvTestSuite) TestProcess() {
	assert.Nil(s.T(), Process())
	assert.NotNil(s.T(), Variables())
	assert.Equal(s.T(), "info", Variables().LogLevel)
	assert.Equal(s.T(), 8080, Variables().Port)
	assert.Equal(s.T(), "secret", Variables().VaultMount)
}

func (s *EnvTestSuite) TestProcessOverride() {
	os.Setenv("REFAPI_PORT", "9090")
	assert.Nil(s.T(), Process())
	assert.Equal(s.T(), 9090, Variables().Port)
}

func (s *EnvTestSuite) TestProcessSnakeCaseNames() {
	os.Setenv("REFAPI_DATABASE_TYPE", "sqlite")
	os.Setenv("REFAPI_VAULT_MOUNT", "kv")
	defer os.Unsetenv("REFAPI_DATABASE_TYPE")
	defer os.Unsetenv("REFAPI_VAULT_MOUNT")

	assert.Nil(s.T(), Process())
	assert.Equal(s.T(), "sqlite", Variables().DatabaseType)
	assert.Equal(s.T(), "kv", Variables().VaultMount)
}

func (s *EnvTestSuite) TestProcessInvalidTypeFailure() {
	os.Setenv("REFAPI_PORT", "not_a_port")
	assert.NotNil(s.T(), Process())
}

func (s *EnvTestSuite) TestProcessInvalidLogLevelFailure() {
	os.Setenv("REFAPI_LOG_LEVEL", "bogus")
	assert.NotNil(s.T(), Process())
}

func TestEnvTestSuite(t *testing.T) {
	suite.Run(t, new(EnvTestSuite))
}
