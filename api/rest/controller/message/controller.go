package message

import (
	"github.com/colima-services/reference-api/internal/messaging"
	"github.com/colima-services/reference-api/internal/vault"
	"gorm.io/gorm"
)

// Controller serves the messaging endpoints.
type Controller struct {
	secrets   *vault.Client
	publisher messaging.Publisher
	db        *gorm.DB
}

// NewController wires a messaging Controller to its collaborators.
func NewController(secrets *vault.Client, publisher messaging.Publisher, db *gorm.DB) *Controller {
	return &Controller{
		secrets:   secrets,
		publisher: publisher,
		db:        db,
	}
}
