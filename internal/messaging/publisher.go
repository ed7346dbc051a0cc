package messaging

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// PublishInput carries everything a publisher needs for one delivery.
// BrokerURL embeds freshly resolved credentials and must never be
// logged or persisted.
type PublishInput struct {
	MessageID uuid.UUID
	Queue     string
	Payload   []byte
	BrokerURL string
}

// QueueInfo describes the state of a queue as reported by the broker.
type QueueInfo struct {
	Queue         string `json:"queue"`
	Exists        bool   `json:"exists"`
	MessageCount  *int64 `json:"message_count"`
	ConsumerCount *int64 `json:"consumer_count"`
}

// Publisher is the broker collaborator: it owns the connection and
// publish mechanics, while the caller supplies per-call credentials
// resolved from the secret store.
type Publisher interface {
	Publish(ctx context.Context, in PublishInput) error
	QueueInfo(ctx context.Context, queue string) (QueueInfo, error)
	Close() error
}

// BrokerURL assembles an AMQP connection URL from resolved broker
// credentials. User and password are escaped, so rotated credentials
// with special characters survive the round trip.
func BrokerURL(user, password, host string, port int) string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(user, password),
		Host:   fmt.Sprintf("%s:%d", host, port),
		Path:   "/",
	}
	return u.String()
}
