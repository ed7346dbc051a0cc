package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Message is a record of a payload handed to the messaging publisher.
// Broker credentials are resolved per publish and never stored.
type Message struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Queue     string         `gorm:"index" json:"queue"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

type Messages []*Message
