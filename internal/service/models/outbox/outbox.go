package outbox

import (
	"time"
)

// OutboxMessage represents an event waiting to be published to RabbitMQ.
type OutboxMessage struct {
	ID           string    `json:"id"`
	QueueName    string    `json:"queue_name"`
	ExchangeName string    `json:"exchange_name"`
	RoutingKey   string    `json:"routing_key"`
	Payload      []byte    `json:"payload"`
	ContentType  string    `json:"content_type"`
	RetryCount   int       `json:"retry_count"`
	MaxRetries   int       `json:"max_retries"`
	LastError    string    `json:"last_error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	NextRetryAt  time.Time `json:"next_retry_at"`
}
