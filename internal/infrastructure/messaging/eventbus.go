// Package messaging implements in-process event delivery for teamkit.
package messaging

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/expense-forecast/teamkit/internal/domain/shared"
	"github.com/expense-forecast/teamkit/pkg/logger"
)

// ErrEventBusClosed is returned when publishing to or subscribing on a closed bus.
var ErrEventBusClosed = errors.New("event bus is closed")

// InMemoryEventBus delivers events synchronously to subscribed handlers, in
// subscription order. Type-specific handlers run before catch-all handlers.
type InMemoryEventBus struct {
	mu          sync.RWMutex
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	logger      *logger.Logger
	metrics     *EventBusMetrics
	closed      bool
}

// NewInMemoryEventBus creates a new in-memory event bus. A nil logger discards output.
func NewInMemoryEventBus(log *logger.Logger) *InMemoryEventBus {
	if log == nil {
		log = logger.NewNop()
	}
	return &InMemoryEventBus{
		handlers: make(map[shared.EventType][]shared.EventHandler),
		logger:   log.With(logger.Component("event_bus")),
		metrics:  NewEventBusMetrics(),
	}
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Debug("subscribed handler", logger.EventType(string(eventType)))

	return nil
}

// SubscribeAll registers a handler for all events.
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrEventBusClosed
	}

	b.allHandlers = append(b.allHandlers, handler)
	b.logger.Debug("subscribed global handler")

	return nil
}

// Publish sends an event to every matching handler. All handlers run even
// when one fails; their errors are joined into the returned error.
func (b *InMemoryEventBus) Publish(event shared.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrEventBusClosed
	}

	handlers := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	handlers = append(handlers, b.handlers[event.EventType()]...)
	handlers = append(handlers, b.allHandlers...)
	b.mu.RUnlock()

	b.metrics.recordPublish(event.EventType())

	if len(handlers) == 0 {
		b.logger.Debug("no handlers for event", logger.EventType(string(event.EventType())))
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		start := time.Now()
		err := handler(event)
		b.metrics.recordHandler(err == nil)
		if err != nil {
			b.logger.Warn("handler error",
				logger.EventType(string(event.EventType())),
				logger.Latency(time.Since(start)),
				logger.Err(err),
			)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("publish %s: %w", event.EventType(), errors.Join(errs...))
	}
	return nil
}

// Close marks the bus closed. Further Publish and Subscribe calls fail.
func (b *InMemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	b.logger.Debug("event bus closed")
	return nil
}

// Metrics returns a snapshot of the delivery counters.
func (b *InMemoryEventBus) Metrics() MetricsSnapshot {
	return b.metrics.snapshot()
}

// EventBusMetrics counts published events and handler outcomes.
type EventBusMetrics struct {
	mu              sync.Mutex
	published       map[shared.EventType]int
	handlerSuccess  int
	handlerFailures int
}

// MetricsSnapshot is a point-in-time copy of EventBusMetrics.
type MetricsSnapshot struct {
	Published       map[shared.EventType]int
	HandlerSuccess  int
	HandlerFailures int
}

// NewEventBusMetrics creates an empty metrics collector.
func NewEventBusMetrics() *EventBusMetrics {
	return &EventBusMetrics{published: make(map[shared.EventType]int)}
}

func (m *EventBusMetrics) recordPublish(t shared.EventType) {
	m.mu.Lock()
	m.published[t]++
	m.mu.Unlock()
}

func (m *EventBusMetrics) recordHandler(ok bool) {
	m.mu.Lock()
	if ok {
		m.handlerSuccess++
	} else {
		m.handlerFailures++
	}
	m.mu.Unlock()
}

func (m *EventBusMetrics) snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	published := make(map[shared.EventType]int, len(m.published))
	for k, v := range m.published {
		published[k] = v
	}
	return MetricsSnapshot{
		Published:       published,
		HandlerSuccess:  m.handlerSuccess,
		HandlerFailures: m.handlerFailures,
	}
}
