package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/colima-services/reference-api/internal/messaging"
	"github.com/colima-services/reference-api/internal/vault"
	vaultapi "github.com/hashicorp/vault/api"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type HealthSuite struct {
	suite.Suite
}

type fakeLogical struct {
	err error
}

func (f *fakeLogical) ReadWithContext(ctx context.Context, path string) (*vaultapi.Secret, error) {
	return nil, f.err
}

func (f *fakeLogical) ListWithContext(ctx context.Context, path string) (*vaultapi.Secret, error) {
	return nil, f.err
}

type fakeSys struct {
	health *vaultapi.HealthResponse
	err    error
}

func (f *fakeSys) HealthWithContext(ctx context.Context) (*vaultapi.HealthResponse, error) {
	return f.health, f.err
}

type fakePublisher struct {
	err error
}

func (f *fakePublisher) Publish(ctx context.Context, in messaging.PublishInput) error {
	return f.err
}

func (f *fakePublisher) QueueInfo(ctx context.Context, queue string) (messaging.QueueInfo, error) {
	return messaging.QueueInfo{Queue: queue}, f.err
}

func (f *fakePublisher) Close() error {
	return nil
}

func (s *HealthSuite) request(handler echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	return rec, handler(e.NewContext(req, rec))
}

func (s *HealthSuite) TestCheckReportsAllDependencies() {
	controller := NewHealthController(
		vault.NewWithTransport(
			vault.NewPathResolver("secret"),
			&fakeLogical{err: errors.New("connection refused")},
			&fakeSys{health: &vaultapi.HealthResponse{Initialized: true, Version: "1.15.0"}},
		),
		&fakePublisher{},
	)

	rec, err := s.request(controller.Check)
	s.NoError(err)

	// the credential read fails, so postgres drags the aggregate down
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	resp := &HealthResponse{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), resp))

	s.Equal(vault.StatusUnhealthy, resp.Status)
	s.NotEmpty(resp.Uptime)
	s.Len(resp.Dependencies, 3)
	s.Equal(vault.StatusHealthy, resp.Dependencies["vault"].Status)
	s.Equal(vault.StatusHealthy, resp.Dependencies["messaging"].Status)
	s.Equal(vault.StatusUnhealthy, resp.Dependencies["postgres"].Status)
}

func (s *HealthSuite) TestCheckMessagingFailure() {
	controller := NewHealthController(
		vault.NewWithTransport(
			vault.NewPathResolver("secret"),
			&fakeLogical{err: errors.New("connection refused")},
			&fakeSys{health: &vaultapi.HealthResponse{Initialized: true}},
		),
		&fakePublisher{err: errors.New("outbox store unavailable")},
	)

	rec, err := s.request(controller.Check)
	s.NoError(err)
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	resp := &HealthResponse{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), resp))
	s.Equal(vault.StatusUnhealthy, resp.Dependencies["messaging"].Status)
}

func (s *HealthSuite) TestVaultHealthy() {
	controller := NewHealthController(
		vault.NewWithTransport(
			vault.NewPathResolver("secret"),
			&fakeLogical{},
			&fakeSys{health: &vaultapi.HealthResponse{Initialized: true, Version: "1.15.0"}},
		),
		&fakePublisher{},
	)

	rec, err := s.request(controller.Vault)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HealthSuite) TestVaultUnhealthy() {
	controller := NewHealthController(
		vault.NewWithTransport(
			vault.NewPathResolver("secret"),
			&fakeLogical{},
			&fakeSys{err: errors.New("connection refused")},
		),
		&fakePublisher{},
	)

	rec, err := s.request(controller.Vault)
	s.NoError(err)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func TestHealthSuite(t *testing.T) {
	suite.Run(t, new(HealthSuite))
}
