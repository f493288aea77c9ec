package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemAdded    EventType = "ItemAdded"
	EventItemUpdated  EventType = "ItemUpdated"
	EventItemDeleted  EventType = "ItemDeleted"
	EventClipRecorded EventType = "ClipRecorded"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
	EventError        EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemAddedEvent is emitted after a new stored item is appended
type ItemAddedEvent struct {
	Item StoredItem
}

func (e ItemAddedEvent) Type() EventType { return EventItemAdded }

// ItemUpdatedEvent is emitted after a stored item's value or tags change
type ItemUpdatedEvent struct {
	Item StoredItem
}

func (e ItemUpdatedEvent) Type() EventType { return EventItemUpdated }

// ItemDeletedEvent is emitted after a stored item is removed
type ItemDeletedEvent struct {
	ID string
}

func (e ItemDeletedEvent) Type() EventType { return EventItemDeleted }

// ClipRecordedEvent is emitted every time the tracker observes a copy
type ClipRecordedEvent struct {
	Value  string
	Usages int
}

func (e ClipRecordedEvent) Type() EventType { return EventClipRecorded }

// ConfigLoadedEvent is emitted when configuration is read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
