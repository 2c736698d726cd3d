// Package member contains the Member entity: a named person who can be
// assigned to teams.
package member

import (
	"github.com/expense-forecast/teamkit/internal/domain/shared"
)

// Member is an immutable, validated entity. The zero value is not a valid
// member; use New or NewWithID.
type Member struct {
	id   shared.UniqueEntityID
	name string
}

// New creates a member with a freshly generated identity.
func New(name string) (*Member, error) {
	return NewWithID(name, nil)
}

// NewWithID creates a member. When id is non-nil it is parsed as the member
// identity; identity errors are returned unchanged before the name is looked at.
func NewWithID(name string, id *string) (*Member, error) {
	memberID, err := shared.NewUniqueEntityID(id)
	if err != nil {
		return nil, err
	}
	return build(name, memberID)
}

func build(name string, id shared.UniqueEntityID) (*Member, error) {
	validName, err := shared.ValidateName(name)
	if err != nil {
		return nil, err
	}
	return &Member{id: id, name: validName}, nil
}

// ID returns the member identity.
func (m Member) ID() shared.UniqueEntityID {
	return m.id
}

// Name returns the validated member name.
func (m Member) Name() string {
	return m.name
}

// Equals reports whether both members share the same identity.
func (m Member) Equals(other Member) bool {
	return m.id.Equals(other.id)
}

// String returns a short human-readable representation.
func (m Member) String() string {
	return m.name + " (" + m.id.String() + ")"
}

// RegisteredEvent returns the event describing this member's registration.
func (m Member) RegisteredEvent() shared.Event {
	return MemberRegisteredEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventMemberRegistered, m.id.String()),
		Name:      m.name,
	}
}

// MemberRegisteredEvent is emitted when a new member is registered.
type MemberRegisteredEvent struct {
	shared.BaseEvent
	Name string `json:"name"`
}

// Payload implements shared.Event.
func (e MemberRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"member_id": e.AggregateId,
		"name":      e.Name,
	}
}

// Correlate implements shared.Correlatable.
func (e MemberRegisteredEvent) Correlate(id string) shared.Event {
	e.BaseEvent = e.BaseEvent.WithCorrelationID(id)
	return e
}
