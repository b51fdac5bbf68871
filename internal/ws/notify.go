package ws

import (
	"context"
	"encoding/json"

	"jobbridge/internal/infrastructure/events"
)

// Publish sends evt to the clients subscribed to its entity. It satisfies
// events.Publisher so the hub can sit next to the AMQP publisher.
func (h *Hub) Publish(_ context.Context, evt events.Event) error {
	if h == nil {
		return nil
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	h.Broadcast(evt.Entity, b)
	return nil
}
