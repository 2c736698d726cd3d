package team

import (
	"github.com/expense-forecast/teamkit/internal/domain/member"
	"github.com/expense-forecast/teamkit/internal/domain/shared"
)

// TeamMember assigns a member to a team with a role. It embeds the member
// value, so no lookup is needed to read the member's name.
type TeamMember struct {
	id     shared.UniqueEntityID
	member member.Member
	role   Role
}

// NewTeamMember creates an assignment. When id is nil a fresh identity is
// generated.
func NewTeamMember(m *member.Member, role Role, id *string) (TeamMember, error) {
	assignmentID, err := shared.NewUniqueEntityID(id)
	if err != nil {
		return TeamMember{}, err
	}
	if m == nil {
		return TeamMember{}, shared.NewValidationError("team", "NewTeamMember", shared.MsgNoMember)
	}
	if !role.IsValid() {
		return TeamMember{}, shared.NewValidationError("team", "NewTeamMember", shared.MsgUnknownRole)
	}
	return TeamMember{id: assignmentID, member: *m, role: role}, nil
}

func (tm TeamMember) valid() bool {
	return !tm.id.IsZero() && !tm.member.ID().IsZero() && tm.role.IsValid()
}

// ID returns the assignment identity.
func (tm TeamMember) ID() shared.UniqueEntityID {
	return tm.id
}

// Member returns the assigned member.
func (tm TeamMember) Member() member.Member {
	return tm.member
}

// MemberID returns the identity of the assigned member.
func (tm TeamMember) MemberID() shared.UniqueEntityID {
	return tm.member.ID()
}

// Role returns the member's role in the team.
func (tm TeamMember) Role() Role {
	return tm.role
}
