// Package notify queues user-facing notifications as a side effect of
// appointment transitions. Emission is best-effort: a full queue or a
// failed write never aborts the mutation that triggered it.
package notify

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barberia-app/barberia-api/internal/models"
)

type Event struct {
	UserID   uuid.UUID
	Type     string
	Title    string
	Message  string
	Metadata map[string]any
}

// Emitter is the fire-and-forget contract the usecases depend on.
type Emitter interface {
	Enqueue(ev Event)
}

// Store persists notification rows.
type Store interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
}

type Dispatcher struct {
	store Store
	queue chan Event
	log   *zap.Logger
}

func NewDispatcher(store Store, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan Event, 100),
		log:   log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		var metaJSON string
		if ev.Metadata != nil {
			if b, err := json.Marshal(ev.Metadata); err == nil {
				metaJSON = string(b)
			}
		}

		n := &models.Notification{
			UserID:   ev.UserID,
			Type:     ev.Type,
			Title:    ev.Title,
			Message:  ev.Message,
			Metadata: metaJSON,
		}

		if err := d.store.CreateNotification(context.Background(), n); err != nil {
			d.log.Error("notification write failed",
				zap.String("type", ev.Type),
				zap.String("user_id", ev.UserID.String()),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Enqueue(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Queue full: drop rather than block the request path.
		d.log.Warn("notification queue full, dropping event",
			zap.String("type", ev.Type),
		)
	}
}
