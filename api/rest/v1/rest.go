package rest

import (
	"github.com/colima-services/reference-api/api/rest/bind"
	"github.com/labstack/echo/v4"
)

// Bind the REST endpoints to the versioned endpoint group.
func Bind(group *echo.Group, opts bind.Options) {
	bind.All(group, opts)
}
