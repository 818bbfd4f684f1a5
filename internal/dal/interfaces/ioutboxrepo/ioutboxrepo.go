package ioutboxrepo

import (
	"context"
	"time"

	"github.com/mercadofake/store/internal/service/models/outbox"
)

// IOutboxRepository defines the interface for outbox operations.
type IOutboxRepository interface {
	// Insert adds a new message to the outbox
	Insert(ctx context.Context, msg outbox.OutboxMessage) error

	// GetPendingMessages retrieves messages that are ready for publication
	GetPendingMessages(ctx context.Context, limit int) ([]outbox.OutboxMessage, error)

	// Delete removes a message from the outbox after successful delivery
	Delete(ctx context.Context, id string) error

	// UpdateRetry updates retry count and error information
	UpdateRetry(
		ctx context.Context,
		id string,
		retryCount int,
		lastError string,
		nextRetryAt time.Time,
	) error
}
