package theme

import (
	"context"

	domain "github.com/alexisbeaulieu97/sonora/internal/domain/theme"
	"github.com/alexisbeaulieu97/sonora/internal/ports"
)

// Cause labels what kind of edit produced a change.
type Cause string

const (
	CauseUpdate Cause = "update"
	CauseColors Cause = "colors"
	CausePreset Cause = "preset"
	CauseReset  Cause = "reset"
)

// ThemeChangedEvent is published after every edit that altered the theme.
// Subscribers type-assert the event to reach the full Change.
type ThemeChangedEvent struct {
	Change domain.Change
	Cause  Cause
	Group  string
	Field  string
	Preset string
}

// EventType implements ports.DomainEvent.
func (e ThemeChangedEvent) EventType() string {
	return ports.EventThemeChanged
}

// Payload implements ports.DomainEvent.
func (e ThemeChangedEvent) Payload() interface{} {
	payload := map[string]interface{}{
		"cause":  string(e.Cause),
		"groups": e.Change.Groups.Names(),
		"theme":  e.Change.Current.Name,
	}
	if e.Group != "" {
		payload["group"] = e.Group
	}
	if e.Field != "" {
		payload["field"] = e.Field
	}
	if e.Preset != "" {
		payload["preset"] = e.Preset
	}
	return payload
}

type domainEvent struct {
	eventType string
	payload   interface{}
}

func (e domainEvent) EventType() string {
	return e.eventType
}

func (e domainEvent) Payload() interface{} {
	return e.payload
}

func publish(ctx context.Context, publisher ports.EventPublisher, logger ports.Logger, event ports.DomainEvent) {
	if publisher == nil || event == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil && logger != nil {
		logger.Warn(ctx, "failed to publish domain event", "event_type", event.EventType(), "error", err)
	}
}

func publishEvent(ctx context.Context, publisher ports.EventPublisher, logger ports.Logger, eventType string, payload map[string]interface{}) {
	publish(ctx, publisher, logger, domainEvent{eventType: eventType, payload: payload})
}
