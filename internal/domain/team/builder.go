package team

import (
	"github.com/expense-forecast/teamkit/internal/domain/shared"
)

// Builder accumulates team attributes and assembles a Team with Build.
//
//	t, err := team.NewBuilder().
//	    Name("Technical Documentation").
//	    Member(lead).
//	    Build()
type Builder struct {
	id      *string
	name    *string
	members []TeamMember
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ID sets the identity to parse at Build time.
func (b *Builder) ID(id string) *Builder {
	b.id = &id
	return b
}

// Name sets the team name.
func (b *Builder) Name(name string) *Builder {
	b.name = &name
	return b
}

// Member appends a member.
func (b *Builder) Member(tm TeamMember) *Builder {
	b.members = append(b.members, tm)
	return b
}

// Members appends several members.
func (b *Builder) Members(tms ...TeamMember) *Builder {
	b.members = append(b.members, tms...)
	return b
}

// Build resolves the identity, checks that name and members are present and
// then validates them the same way Create does. The builder itself is not
// modified.
func (b *Builder) Build() (*Team, error) {
	id, err := shared.NewUniqueEntityID(b.id)
	if err != nil {
		return nil, err
	}
	if b.name == nil {
		return nil, shared.NewValidationError("team", "Build", shared.MsgNoName)
	}
	if len(b.members) == 0 {
		return nil, shared.NewValidationError("team", "Build", shared.MsgNoMembers)
	}
	return validateAndBuild(*b.name, b.members, id)
}
