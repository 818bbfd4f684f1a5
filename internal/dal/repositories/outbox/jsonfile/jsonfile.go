package jsonfilerepo

import (
	"context"
	"fmt"
	"time"

	"github.com/mercadofake/store/internal/dal/jsonfile"
	"github.com/mercadofake/store/internal/service/models/outbox"
)

// SnapshotName is the file holding the outbox collection.
const SnapshotName = "outbox.json"

// OutboxRepository persists pending event messages in a JSON snapshot file.
type OutboxRepository struct {
	col *jsonfile.Collection
}

// NewOutboxRepository creates a new snapshot-backed outbox repository.
func NewOutboxRepository(client *jsonfile.Client) *OutboxRepository {
	return &OutboxRepository{
		col: client.Collection(SnapshotName),
	}
}

// Insert adds a new message to the outbox.
func (r *OutboxRepository) Insert(ctx context.Context, msg outbox.OutboxMessage) error {
	r.col.Lock()
	defer r.col.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	records = append(records, msg)

	return r.col.Save(records)
}

// GetPendingMessages retrieves messages whose next retry time has passed and
// with retries remaining, in stored order.
func (r *OutboxRepository) GetPendingMessages(
	ctx context.Context,
	limit int,
) ([]outbox.OutboxMessage, error) {
	r.col.RLock()
	defer r.col.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pending := make([]outbox.OutboxMessage, 0)
	for _, msg := range records {
		if msg.NextRetryAt.After(now) {
			continue
		}
		if msg.RetryCount >= msg.MaxRetries {
			continue
		}
		pending = append(pending, msg)
		if len(pending) == limit {
			break
		}
	}

	return pending, nil
}

// Delete removes a message from the outbox after successful delivery.
func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	r.col.Lock()
	defer r.col.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == id {
			records = append(records[:i], records[i+1:]...)

			return r.col.Save(records)
		}
	}

	return fmt.Errorf("outbox message %s not found", id)
}

// UpdateRetry updates retry count and error information for a message.
func (r *OutboxRepository) UpdateRetry(
	ctx context.Context,
	id string,
	retryCount int,
	lastError string,
	nextRetryAt time.Time,
) error {
	r.col.Lock()
	defer r.col.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == id {
			records[i].RetryCount = retryCount
			records[i].LastError = lastError
			records[i].NextRetryAt = nextRetryAt
			records[i].UpdatedAt = time.Now()

			return r.col.Save(records)
		}
	}

	return fmt.Errorf("outbox message %s not found", id)
}

func (r *OutboxRepository) load() ([]outbox.OutboxMessage, error) {
	records := make([]outbox.OutboxMessage, 0)
	if err := r.col.Load(&records); err != nil {
		return nil, fmt.Errorf("failed to load outbox snapshot: %w", err)
	}

	return records, nil
}
