package ports

import "context"

const (
	// EventThemeChanged is emitted after any edit that altered the current theme.
	EventThemeChanged = "theme.changed"
	// EventPresetApplied is emitted when a preset replaced the current theme.
	EventPresetApplied = "theme.preset_applied"
	// EventPresetNotFound is emitted when a preset lookup matched nothing.
	EventPresetNotFound = "theme.preset_not_found"
	// EventThemeReset is emitted when the default preset was restored.
	EventThemeReset = "theme.reset"
	// EventUpdateRejected is emitted when strict validation refused an edit.
	EventUpdateRejected = "theme.update_rejected"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer. Events carry structured payloads that downstream
// subscribers can use for logging, UI updates, or integrations.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run, so the style surface
// reflects an edit before the next edit is applied. Implementations must be
// thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Handlers should avoid
// panicking; failures should be surfaced via returned errors so publishers can
// log diagnostics and continue delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events and release resources.
type Subscription interface {
	Unsubscribe()
}
