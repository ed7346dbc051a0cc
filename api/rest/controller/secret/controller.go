package secret

import (
	"github.com/colima-services/reference-api/internal/vault"
)

// Controller serves the secret store endpoints.
type Controller struct {
	secrets *vault.Client
}

// NewController wires a secret Controller to a store client.
func NewController(secrets *vault.Client) *Controller {
	return &Controller{secrets: secrets}
}
