package bind

import (
	"github.com/colima-services/reference-api/api/rest/controller/database"
	"github.com/colima-services/reference-api/api/rest/controller/message"
	"github.com/colima-services/reference-api/api/rest/controller/secret"
	"github.com/colima-services/reference-api/internal/messaging"
	"github.com/colima-services/reference-api/internal/vault"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Options carries the collaborators the REST controllers need.
type Options struct {
	Secrets   *vault.Client
	Publisher messaging.Publisher
	DB        *gorm.DB
}

func All(g *echo.Group, opts Options) {
	// vault
	{
		ct := secret.NewController(opts.Secrets)
		g.GET("/vault/secrets", ct.List)
		g.GET("/vault/secrets/:service", ct.Get)
		g.GET("/vault/secrets/:service/:key", ct.Field)
	}

	// messaging
	{
		ct := message.NewController(opts.Secrets, opts.Publisher, opts.DB)
		g.POST("/messaging/publish", ct.Publish)
		g.GET("/messaging/queues/:name", ct.Queue)
		g.GET("/messaging/messages", ct.List)
	}

	// database
	{
		ct := database.NewController(opts.Secrets)
		g.GET("/database/postgres/query", ct.Ping)
	}
}
