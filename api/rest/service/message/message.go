package message

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/colima-services/reference-api/internal/messaging"
	"github.com/colima-services/reference-api/internal/metrics"
	"github.com/colima-services/reference-api/internal/models"
	"github.com/colima-services/reference-api/internal/vault"
	"github.com/colima-services/reference-api/pkg/env"
	"github.com/colima-services/reference-api/pkg/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BrokerSecret is the logical service name the broker credentials live
// under in the secret store.
const BrokerSecret = "rabbitmq"

// MaxPayloadBytes caps the accepted message payload size.
const MaxPayloadBytes = 1 << 20

var queueNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidationError rejects malformed publish requests before any secret
// is resolved.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PayloadTooLargeError rejects payloads over MaxPayloadBytes.
type PayloadTooLargeError struct {
	Size int
}

func (e PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload size %d exceeds %d byte limit", e.Size, MaxPayloadBytes)
}

type Message interface {
	Publish(*PublishRequest) (*models.Message, error)
	QueueInfo(queue string) (messaging.QueueInfo, error)
	List(*ListRequest) (models.Messages, error)
}

type messageService struct {
	ctx       context.Context
	secrets   *vault.Client
	publisher messaging.Publisher
	db        *gorm.DB
}

// Service returns a request-scoped messaging service. Broker
// credentials are resolved fresh on every publish so rotation takes
// effect immediately.
func Service(ctx context.Context, secrets *vault.Client, publisher messaging.Publisher, db *gorm.DB) Message {
	return &messageService{ctx: ctx, secrets: secrets, publisher: publisher, db: db}
}

type PublishRequest struct {
	Queue   string          `json:"queue"`
	Payload json.RawMessage `json:"payload"`
}

func (r *PublishRequest) validate() error {
	if r.Queue == "" || !queueNamePattern.MatchString(r.Queue) {
		return ValidationError{Field: "queue", Message: "queue name must match [a-zA-Z0-9_.-]+"}
	}
	if len(r.Payload) > MaxPayloadBytes {
		return PayloadTooLargeError{Size: len(r.Payload)}
	}
	if len(r.Payload) == 0 || string(r.Payload) == "null" || string(r.Payload) == "{}" {
		return ValidationError{Field: "payload", Message: "payload must be a non-empty JSON object"}
	}
	return nil
}

func (m *messageService) Publish(req *PublishRequest) (*models.Message, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	creds, err := m.secrets.FetchSecretBundle(m.ctx, BrokerSecret)
	if err != nil {
		metrics.MessagesPublishedTotal.WithLabelValues(req.Queue, "error").Inc()
		return nil, err
	}

	user, ok := creds.Field("user")
	if !ok {
		return nil, vault.FieldNotFoundError{Service: BrokerSecret, Field: "user"}
	}
	password, ok := creds.Field("password")
	if !ok {
		return nil, vault.FieldNotFoundError{Service: BrokerSecret, Field: "password"}
	}

	vars := env.Variables()
	message := &models.Message{
		ID:      uuid.New(),
		Queue:   req.Queue,
		Payload: []byte(req.Payload),
	}

	err = m.publisher.Publish(m.ctx, messaging.PublishInput{
		MessageID: message.ID,
		Queue:     message.Queue,
		Payload:   message.Payload,
		BrokerURL: messaging.BrokerURL(user, password, vars.RabbitMQHost, vars.RabbitMQPort),
	})
	if err != nil {
		metrics.MessagesPublishedTotal.WithLabelValues(req.Queue, "error").Inc()
		log.Error("message publish failed", "queue", req.Queue, "message_id", message.ID, "error", err)
		return nil, err
	}

	metrics.MessagesPublishedTotal.WithLabelValues(req.Queue, "published").Inc()
	log.Info("message published", "queue", req.Queue, "message_id", message.ID)

	return message, nil
}

func (m *messageService) QueueInfo(queue string) (messaging.QueueInfo, error) {
	if queue == "" || !queueNamePattern.MatchString(queue) {
		return messaging.QueueInfo{}, ValidationError{Field: "queue", Message: "queue name must match [a-zA-Z0-9_.-]+"}
	}
	return m.publisher.QueueInfo(m.ctx, queue)
}

type ListRequest struct {
	Queue string
	Limit uint64
}

func (m *messageService) List(req *ListRequest) (models.Messages, error) {
	var (
		messages = make(models.Messages, 0)
		q        = m.db.WithContext(m.ctx).Order("created_at DESC")
	)

	if req.Queue != "" {
		q = q.Where("queue = ?", req.Queue)
	}

	if req.Limit > 0 {
		q = q.Limit(int(req.Limit))
	}

	return messages, q.Find(&messages).Error
}
