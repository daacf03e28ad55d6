package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pawmart/pawmart-server/internal/events"
	"github.com/pawmart/pawmart-server/pkg/logging"
)

// publish emits a mutation event. Delivery failures are logged and never
// bubble up into the request.
func publish(ctx context.Context, p *events.Producer, topic, key string, event map[string]any) {
	if p == nil {
		return
	}

	event["eventID"] = uuid.NewString()

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish failed", "topic", topic, "error", err)
	}
}
