// Package team contains the Team aggregate: a named group of members, each
// holding a Role.
//
// The package defines:
//
//   - Aggregate root: Team
//   - Entities: TeamMember (an assignment of a member.Member to a Role)
//   - Value objects: Role, TeamProps
//   - Domain events: TeamCreatedEvent, TeamChangedEvent
//
// # Invariants
//
// A Team always has a name longer than 3 bytes and at least one member. Both
// rules are checked at construction and again on every Change. Change is
// all-or-nothing: when either field is rejected neither is written. The name
// is always checked first, so it is the name error that is reported when both
// fields are invalid.
//
// # Construction
//
// Two façades share one validation routine. From a properties value:
//
//	t, err := team.Create(team.TeamProps{
//	    Name:    "Technical Documentation",
//	    Members: []team.TeamMember{lead},
//	}, nil)
//
// Or fluently:
//
//	t, err := team.NewBuilder().
//	    ID("5b3b22ec-5fdf-4a68-9880-1ca3eed22b82").
//	    Name("Technical Documentation").
//	    Member(lead).
//	    Build()
//
// The builder additionally distinguishes a missing name ("No name") from a
// name that is too short.
//
// # Events
//
// Successful construction records a TeamCreatedEvent and a successful Change
// records a TeamChangedEvent. Callers drain them with PullEvents and hand them
// to a shared.EventPublisher.
package team
