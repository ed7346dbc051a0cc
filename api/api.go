package api

import (
	"context"
	"fmt"
	"time"

	"github.com/colima-services/reference-api/api/gql"
	"github.com/colima-services/reference-api/api/rest/bind"
	rest "github.com/colima-services/reference-api/api/rest/v1"
	"github.com/colima-services/reference-api/pkg/env"
	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
)

// Options carries the collaborators the API needs. All of
// them are injected so tests can swap in fakes.
type Options = bind.Options

var e *echo.Echo

// Start launches the API.
func Start(opts Options) error {
	e = echo.New()
	e.HideBanner = true
	e.HidePort = true

	// health
	health := NewHealthController(opts.Secrets, opts.Publisher)
	e.GET("/health", health.Check)
	e.GET("/health/vault", health.Vault)

	// metrics
	prometheus.NewPrometheus("refapi", nil).Use(e)

	// REST
	rest.Bind(e.Group("/v1"), opts)

	// GraphQL
	e.GET("/gql", gql.Handler(opts.Secrets))

	return e.Start(fmt.Sprintf(":%v", env.Variables().Port))
}

// Shutdown drains the API's in-flight requests before
// stopping the listener.
func Shutdown() error {
	if e == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return e.Shutdown(ctx)
}
