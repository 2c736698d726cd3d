package team

import (
	"strings"

	"github.com/expense-forecast/teamkit/internal/domain/shared"
)

// Role is the function a member has inside a team.
type Role string

const (
	// RoleManager manages the team.
	RoleManager Role = "manager"
	// RoleLeader leads the team's work.
	RoleLeader Role = "leader"
	// RoleAnalyst contributes analysis.
	RoleAnalyst Role = "analyst"
)

// Roles lists every valid role in declaration order.
func Roles() []Role {
	return []Role{RoleManager, RoleLeader, RoleAnalyst}
}

// IsValid checks that the role belongs to the closed set.
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleLeader, RoleAnalyst:
		return true
	default:
		return false
	}
}

// String returns the canonical lowercase form.
func (r Role) String() string {
	return string(r)
}

// ParseRole converts raw text into a Role. Matching is case-insensitive and
// ignores surrounding whitespace.
func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if !r.IsValid() {
		return "", shared.NewValidationError("team", "ParseRole", shared.MsgUnknownRole)
	}
	return r, nil
}
