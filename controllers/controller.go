package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rtharindu/echannaling-admin/events"
	"github.com/rtharindu/echannaling-admin/middleware"
)

// ImageUploader stores an uploaded file and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, file interface{}, publicID, folder string) (string, error)
}

// auditor publishes an audit.log event for every successful mutation.
// Delivery failures never reach the client.
type auditor struct {
	pub events.Publisher
	log zerolog.Logger
}

func (a auditor) record(c *fiber.Ctx, action, resource, id string) {
	if a.pub == nil {
		return
	}
	entry := events.AuditEntry{
		Action:     action,
		Resource:   resource,
		ResourceID: id,
		UserID:     middleware.CurrentUserID(c),
	}
	if err := events.Audit(c.UserContext(), a.pub, entry); err != nil {
		a.log.Warn().Err(err).Str("resource", resource).Str("action", action).Msg("failed to publish audit event")
	}
}
