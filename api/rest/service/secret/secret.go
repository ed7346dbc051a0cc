package secret

import (
	"context"
	"time"

	"github.com/colima-services/reference-api/internal/metrics"
	"github.com/colima-services/reference-api/internal/vault"
	"github.com/colima-services/reference-api/pkg/log"
)

type Secret interface {
	Bundle(service string) (vault.Bundle, error)
	Field(service, field string) (string, error)
	Names() ([]string, error)
	Health() vault.HealthStatus
}

type secretService struct {
	ctx     context.Context
	secrets *vault.Client
}

// Service returns a request-scoped secret service backed by the
// injected resolution client.
func Service(ctx context.Context, secrets *vault.Client) Secret {
	return &secretService{ctx: ctx, secrets: secrets}
}

func (s *secretService) Bundle(service string) (vault.Bundle, error) {
	start := time.Now()
	bundle, err := s.secrets.FetchSecretBundle(s.ctx, service)
	observe(service, start, err)

	if err != nil {
		log.Warn("secret bundle fetch failed", "service", service, "error", err)
		return nil, err
	}

	log.Debug("secret bundle fetched", "service", service, "fields", len(bundle))
	return bundle, nil
}

func (s *secretService) Field(service, field string) (string, error) {
	start := time.Now()
	value, err := s.secrets.FetchSecretField(s.ctx, service, field)
	observe(service, start, err)

	if err != nil {
		log.Warn("secret field fetch failed", "service", service, "field", field, "error", err)
		return "", err
	}

	return value, nil
}

func (s *secretService) Names() ([]string, error) {
	names, err := s.secrets.ListSecretNames(s.ctx)
	if err != nil {
		log.Warn("secret list failed", "error", err)
		return nil, err
	}
	return names, nil
}

func (s *secretService) Health() vault.HealthStatus {
	status := s.secrets.CheckStoreHealth(s.ctx)
	if status.Status == vault.StatusHealthy {
		metrics.StoreHealthy.Set(1)
	} else {
		metrics.StoreHealthy.Set(0)
	}
	return status
}

func observe(service string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.SecretFetchesTotal.WithLabelValues(service, status).Inc()
	metrics.SecretFetchDurationSeconds.WithLabelValues(service, status).Observe(time.Since(start).Seconds())
}
