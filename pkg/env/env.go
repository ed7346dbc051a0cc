package env

import (
	"time"

	"github.com/colima-services/reference-api/pkg/log"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

var variables = new(Environment)

// Process the environment variables set for the reference API.
func Process() error {
	if err := envconfig.Process("refapi", variables); err != nil {
		return errors.Wrap(err, "failed to process environment variables")
	}

	// set the log level
	if err := log.SetLevel(variables.LogLevel); err != nil {
		return errors.Wrap(err, "failed to set log level")
	}

	return nil
}

// Variables returns the processed environment variables.
func Variables() Environment {
	return *variables
}

// Environment defines the environment variables used
// by the reference API.
type Environment struct {
	LogLevel       string        `envconfig:"log_level" default:"info"`
	Port           int           `default:"8080"`
	VaultAddr      string        `envconfig:"vault_addr" default:"http://vault:8200"`
	VaultToken     string        `envconfig:"vault_token" default:""`
	VaultMount     string        `envconfig:"vault_mount" default:"secret"`
	VaultTimeout   time.Duration `envconfig:"vault_timeout" default:"5s"`
	PostgresHost   string        `envconfig:"postgres_host" default:"postgres"`
	PostgresPort   int           `envconfig:"postgres_port" default:"5432"`
	RabbitMQHost   string        `envconfig:"rabbitmq_host" default:"rabbitmq"`
	RabbitMQPort   int           `envconfig:"rabbitmq_port" default:"5672"`
	DatabaseType   string        `envconfig:"database_type" default:"postgres"`
	DatabaseDSN    string        `envconfig:"database_dsn" default:""`
	HealthInterval time.Duration `envconfig:"health_interval" default:"0s"`
}
