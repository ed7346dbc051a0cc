package database

import (
	"github.com/colima-services/reference-api/internal/vault"
)

// Controller serves the database endpoints.
type Controller struct {
	secrets *vault.Client
}

// NewController wires a database Controller to the secret store.
func NewController(secrets *vault.Client) *Controller {
	return &Controller{secrets: secrets}
}
