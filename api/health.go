package api

import (
	"net/http"
	"time"

	"github.com/colima-services/reference-api/api/rest/service/database"
	"github.com/colima-services/reference-api/api/rest/service/secret"
	"github.com/colima-services/reference-api/internal/messaging"
	"github.com/colima-services/reference-api/internal/metrics"
	"github.com/colima-services/reference-api/internal/vault"
	"github.com/labstack/echo/v4"
)

var startedAt time.Time

func init() {
	startedAt = time.Now()
}

// healthProbeQueue is the queue the messaging probe inspects. It only
// needs to exist for the publisher to answer, not to hold messages.
const healthProbeQueue = "health"

// HealthController serves the liveness and dependency
// health endpoints.
type HealthController struct {
	secrets   *vault.Client
	publisher messaging.Publisher
}

// NewHealthController wires a HealthController to the collaborators
// its checks depend on.
func NewHealthController(secrets *vault.Client, publisher messaging.Publisher) *HealthController {
	return &HealthController{secrets: secrets, publisher: publisher}
}

// HealthResponse defines the data the Health REST
// endpoint returns.
type HealthResponse struct {
	Status       vault.Status                  `json:"status"`
	Uptime       string                        `json:"uptime"`
	Dependencies map[string]vault.HealthStatus `json:"dependencies"`
}

// Check reports the aggregate health of the service and
// its dependencies. The response also includes the uptime.
func (h *HealthController) Check(c echo.Context) error {
	ctx := c.Request().Context()

	deps := map[string]vault.HealthStatus{
		"vault":     secret.Service(ctx, h.secrets).Health(),
		"postgres":  h.postgres(c),
		"messaging": h.messaging(c),
	}

	status := vault.StatusHealthy
	code := http.StatusOK

	for name, dep := range deps {
		healthy := 1.0
		if dep.Status != vault.StatusHealthy {
			healthy = 0
			status = vault.StatusUnhealthy
			code = http.StatusServiceUnavailable
		}
		metrics.DependencyHealthy.WithLabelValues(name).Set(healthy)
	}

	return c.JSON(code, HealthResponse{
		Status:       status,
		Uptime:       time.Since(startedAt).String(),
		Dependencies: deps,
	})
}

// Vault reports the health of the secret store alone.
func (h *HealthController) Vault(c echo.Context) error {
	health := secret.Service(c.Request().Context(), h.secrets).Health()

	code := http.StatusOK
	if health.Status != vault.StatusHealthy {
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, health)
}

func (h *HealthController) postgres(c echo.Context) vault.HealthStatus {
	if _, err := database.Service(c.Request().Context(), h.secrets).Ping(); err != nil {
		return vault.HealthStatus{
			Status: vault.StatusUnhealthy,
			Error:  err.Error(),
		}
	}
	return vault.HealthStatus{Status: vault.StatusHealthy}
}

func (h *HealthController) messaging(c echo.Context) vault.HealthStatus {
	if _, err := h.publisher.QueueInfo(c.Request().Context(), healthProbeQueue); err != nil {
		return vault.HealthStatus{
			Status: vault.StatusUnhealthy,
			Error:  err.Error(),
		}
	}
	return vault.HealthStatus{Status: vault.StatusHealthy}
}
