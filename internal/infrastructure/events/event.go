package events

import (
	"context"
	"errors"
	"time"
)

const TypeRecordsUpdated = "records_updated"

// Entities carried by records_updated events.
const (
	EntityBeneficiary = "beneficiary"
	EntityProvider    = "provider"
	EntityJob         = "job"
	EntitySkill       = "skill"
)

// Event tells listeners that a record changed and any cached match list is
// stale.
type Event struct {
	Type      string `json:"type"`
	Entity    string `json:"entity"`
	Action    string `json:"action"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
}

func RecordsUpdated(entity, action, id string) Event {
	return Event{
		Type:      TypeRecordsUpdated,
		Entity:    entity,
		Action:    action,
		ID:        id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// RoutingKey is "<entity>.<action>", e.g. "job.closed".
func (e Event) RoutingKey() string {
	return e.Entity + "." + e.Action
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

func Nop() Publisher { return nopPublisher{} }

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, evt Event) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
