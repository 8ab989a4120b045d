package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event is a single occurrence delivered to subscribers. ID is assigned at
// publish time so a delivery can be correlated across log lines.
type Event struct {
	ID         string
	Name       string
	Payload    any
	OccurredAt time.Time
}

// Handler processes one event. The returned error is logged by the dispatcher
// and never reaches the publisher.
type Handler func(ctx context.Context, e Event) error

// Dispatcher is an in-process named-event bus. It is created once in main and
// passed by reference to publishers and subscribers; there is no package-level
// instance. Publish is fire-and-forget: each subscriber runs in its own
// goroutine and failures stay inside the dispatcher's logging boundary.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	wg       sync.WaitGroup
	logger   *zap.Logger
}

// NewDispatcher returns an empty dispatcher logging through the given logger.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for the named event. Handlers are invoked in
// registration order. There is no unsubscribe.
func (d *Dispatcher) Subscribe(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], h)
}

// Publish delivers the payload to every subscriber of the named event and
// returns immediately. Subscribers receive a background context rather than
// the caller's: the work must outlive the HTTP request that triggered it.
// Subscriber errors and panics are logged here and never propagate.
func (d *Dispatcher) Publish(name string, payload any) {
	e := Event{
		ID:         uuid.New().String(),
		Name:       name,
		Payload:    payload,
		OccurredAt: time.Now(),
	}

	d.mu.RLock()
	handlers := d.handlers[name]
	d.mu.RUnlock()

	for _, h := range handlers {
		d.wg.Add(1)
		go func(h Handler) {
			defer d.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					d.logger.Error("event subscriber panicked",
						zap.String("event", e.Name),
						zap.String("event_id", e.ID),
						zap.Any("panic", r),
					)
				}
			}()
			if err := h(context.Background(), e); err != nil {
				d.logger.Error("event subscriber failed",
					zap.String("event", e.Name),
					zap.String("event_id", e.ID),
					zap.Error(err),
				)
			}
		}(h)
	}
}

// Drain blocks until all in-flight deliveries finish or ctx expires. Used at
// graceful shutdown so accepted notifications get a chance to land.
func (d *Dispatcher) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
