package team

import (
	"github.com/expense-forecast/teamkit/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// AGGREGATE ROOT: TEAM
// ══════════════════════════════════════════════════════════════════════════════

// TeamProps carries the mutable attributes of a team, as used by Create and
// Change.
type TeamProps struct {
	Name    string
	Members []TeamMember
}

// Team is the aggregate root. Its invariants hold after every successful
// construction and every successful Change:
//
//  1. the name is longer than 3 bytes;
//  2. there is at least one member.
//
// Change needs external exclusive access when a Team is shared between
// goroutines.
type Team struct {
	id      shared.UniqueEntityID
	name    string
	members []TeamMember

	events []shared.Event
}

// Create builds a team from props. When id is nil a fresh identity is
// generated.
func Create(props TeamProps, id *string) (*Team, error) {
	teamID, err := shared.NewUniqueEntityID(id)
	if err != nil {
		return nil, err
	}
	return validateAndBuild(props.Name, props.Members, teamID)
}

// validateAndBuild is the one construction path shared by Create and Builder.
// The name is checked before the members, so the name error wins when both
// are invalid.
func validateAndBuild(name string, members []TeamMember, id shared.UniqueEntityID) (*Team, error) {
	validName, err := validateName(name)
	if err != nil {
		return nil, err
	}
	validMembers, err := validateMembers("Create", members)
	if err != nil {
		return nil, err
	}

	t := &Team{
		id:      id,
		name:    validName,
		members: validMembers,
	}
	t.record(newTeamCreatedEvent(t))
	return t, nil
}

// Change replaces name and members. Both are validated before either is
// written; on error the team is left untouched.
func (t *Team) Change(props TeamProps) error {
	name, err := validateName(props.Name)
	if err != nil {
		return err
	}
	members, err := validateMembers("Change", props.Members)
	if err != nil {
		return err
	}

	oldName := t.name
	t.name = name
	t.members = members
	t.record(newTeamChangedEvent(t, oldName))
	return nil
}

func validateName(name string) (string, error) {
	return shared.ValidateName(name)
}

// validateMembers returns a private copy so callers cannot alias the
// aggregate's slice. A TeamMember that did not come from NewTeamMember has a
// zero identity and an empty role and is rejected.
func validateMembers(op string, members []TeamMember) ([]TeamMember, error) {
	if len(members) == 0 {
		return nil, shared.NewValidationError("team", op, shared.MsgNoMembers)
	}
	for _, tm := range members {
		if !tm.valid() {
			return nil, shared.NewValidationError("team", op, shared.MsgInvalidMember)
		}
	}
	out := make([]TeamMember, len(members))
	copy(out, members)
	return out, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ACCESSORS
// ══════════════════════════════════════════════════════════════════════════════

// ID returns the team identity.
func (t *Team) ID() shared.UniqueEntityID {
	return t.id
}

// Name returns the team name.
func (t *Team) Name() string {
	return t.name
}

// Members returns a copy of the members in insertion order.
func (t *Team) Members() []TeamMember {
	out := make([]TeamMember, len(t.members))
	copy(out, t.members)
	return out
}

// MemberCount returns the number of members.
func (t *Team) MemberCount() int {
	return len(t.members)
}

// HasMember reports whether the member with the given identity is on the team.
func (t *Team) HasMember(memberID shared.UniqueEntityID) bool {
	for _, tm := range t.members {
		if tm.MemberID().Equals(memberID) {
			return true
		}
	}
	return false
}

// MembersWithRole returns the members holding role, in insertion order.
func (t *Team) MembersWithRole(role Role) []TeamMember {
	var out []TeamMember
	for _, tm := range t.members {
		if tm.Role() == role {
			out = append(out, tm)
		}
	}
	return out
}

// Props returns the current attributes, suitable for a later Change.
func (t *Team) Props() TeamProps {
	return TeamProps{Name: t.name, Members: t.Members()}
}

// String returns a short human-readable representation.
func (t *Team) String() string {
	return t.name + " (" + t.id.String() + ")"
}

// ══════════════════════════════════════════════════════════════════════════════
// EVENTS
// ══════════════════════════════════════════════════════════════════════════════

func (t *Team) record(e shared.Event) {
	t.events = append(t.events, e)
}

// Events returns the pending events without clearing them.
func (t *Team) Events() []shared.Event {
	out := make([]shared.Event, len(t.events))
	copy(out, t.events)
	return out
}

// PullEvents returns the pending events and clears the queue.
func (t *Team) PullEvents() []shared.Event {
	out := t.events
	t.events = nil
	return out
}
