package httperr

import (
	"errors"

	"github.com/colima-services/reference-api/api/rest/service/database"
	"github.com/colima-services/reference-api/api/rest/service/message"
	"github.com/colima-services/reference-api/internal/vault"
	"github.com/labstack/echo/v4"
)

// From translates service layer errors into echo HTTP errors,
// keeping the original error attached for request logging.
func From(err error) error {
	var (
		notFound   vault.NotFoundError
		noField    vault.FieldNotFoundError
		transport  vault.TransportError
		config     vault.ConfigError
		validation message.ValidationError
		tooLarge   message.PayloadTooLargeError
		connection database.ConnectionError
	)

	switch {
	case errors.As(err, &notFound), errors.As(err, &noField):
		return echo.ErrNotFound.SetInternal(err)
	case errors.As(err, &transport), errors.As(err, &connection):
		return echo.ErrServiceUnavailable.SetInternal(err)
	case errors.As(err, &validation), errors.As(err, &config):
		return echo.ErrBadRequest.SetInternal(err)
	case errors.As(err, &tooLarge):
		return echo.ErrStatusRequestEntityTooLarge.SetInternal(err)
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}
}
