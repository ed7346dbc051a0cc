package messaging

import (
	"context"

	"github.com/colima-services/reference-api/internal/models"
	"gorm.io/gorm"
)

// Outbox is a Publisher that records deliveries in the relational
// store instead of talking to a live broker. It keeps the publish
// contract honest in environments without a broker: callers still
// resolve credentials and build the connection URL, and the recorded
// rows make delivery observable.
type Outbox struct {
	db *gorm.DB
}

// NewOutbox returns an outbox publisher backed by the given database.
func NewOutbox(db *gorm.DB) *Outbox {
	return &Outbox{db: db}
}

// Publish records the delivery. The broker URL is dropped on the
// floor: it carries credentials.
func (o *Outbox) Publish(ctx context.Context, in PublishInput) error {
	message := &models.Message{
		ID:      in.MessageID,
		Queue:   in.Queue,
		Payload: in.Payload,
	}

	return o.db.WithContext(ctx).Create(message).Error
}

// QueueInfo reports the recorded depth of a queue. A queue nothing was
// ever published to does not exist.
func (o *Outbox) QueueInfo(ctx context.Context, queue string) (QueueInfo, error) {
	var count int64
	err := o.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("queue = ?", queue).
		Count(&count).Error
	if err != nil {
		return QueueInfo{}, err
	}

	info := QueueInfo{Queue: queue, Exists: count > 0}
	if info.Exists {
		consumers := int64(0)
		info.MessageCount = &count
		info.ConsumerCount = &consumers
	}
	return info, nil
}

// Close implements Publisher. The outbox does not own the database
// connection.
func (o *Outbox) Close() error {
	return nil
}
