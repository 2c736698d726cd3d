package team

import (
	"github.com/expense-forecast/teamkit/internal/domain/shared"
)

// TeamCreatedEvent is emitted when a team is constructed.
type TeamCreatedEvent struct {
	shared.BaseEvent
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
}

// Payload implements shared.Event.
func (e TeamCreatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"team_id":    e.AggregateId,
		"name":       e.Name,
		"member_ids": e.MemberIDs,
	}
}

// Correlate implements shared.Correlatable.
func (e TeamCreatedEvent) Correlate(id string) shared.Event {
	e.BaseEvent = e.BaseEvent.WithCorrelationID(id)
	return e
}

func newTeamCreatedEvent(t *Team) TeamCreatedEvent {
	return TeamCreatedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventTeamCreated, t.id.String()),
		Name:      t.name,
		MemberIDs: memberIDs(t.members),
	}
}

// TeamChangedEvent is emitted when a team's name and members are replaced.
type TeamChangedEvent struct {
	shared.BaseEvent
	OldName   string   `json:"old_name"`
	NewName   string   `json:"new_name"`
	MemberIDs []string `json:"member_ids"`
}

// Payload implements shared.Event.
func (e TeamChangedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"team_id":    e.AggregateId,
		"old_name":   e.OldName,
		"new_name":   e.NewName,
		"member_ids": e.MemberIDs,
	}
}

// Correlate implements shared.Correlatable.
func (e TeamChangedEvent) Correlate(id string) shared.Event {
	e.BaseEvent = e.BaseEvent.WithCorrelationID(id)
	return e
}

// NameChanged reports whether the change renamed the team.
func (e TeamChangedEvent) NameChanged() bool {
	return e.OldName != e.NewName
}

func newTeamChangedEvent(t *Team, oldName string) TeamChangedEvent {
	return TeamChangedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventTeamChanged, t.id.String()),
		OldName:   oldName,
		NewName:   t.name,
		MemberIDs: memberIDs(t.members),
	}
}

func memberIDs(members []TeamMember) []string {
	ids := make([]string, len(members))
	for i, tm := range members {
		ids[i] = tm.MemberID().String()
	}
	return ids
}
