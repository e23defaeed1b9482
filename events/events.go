// Package events publishes domain notifications to other services.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Topic string

const (
	TopicUserCreated Topic = "user.created"
	TopicAuditLog    Topic = "audit.log"
)
// Publisher delivers a payload on a topic. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, topic Topic, payload interface{}) error
	Close() error
}

// Message is the envelope written to the wire.
type Message struct {
	ID        string      `json:"id"`
	Topic     Topic       `json:"topic"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

func NewMessage(topic Topic, payload interface{}) Message {
	return Message{
		ID:        uuid.NewString(),
		Topic:     topic,
		Timestamp: time.Now().UTC(),
		Data:      payload,
	}
}

// AuditEntry records who changed which resource.
type AuditEntry struct {
	Action     string `json:"action"`
	Resource   string `json:"resource"`
	ResourceID string `json:"resourceId,omitempty"`
	UserID     string `json:"userId,omitempty"`
}

// UserCreated is the payload of TopicUserCreated.
type UserCreated struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Audit publishes entry on the audit topic.
func Audit(ctx context.Context, p Publisher, entry AuditEntry) error {
	return p.Publish(ctx, TopicAuditLog, entry)
}

// NopPublisher drops every message. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Topic, interface{}) error { return nil }
func (NopPublisher) Close() error                                     { return nil }
