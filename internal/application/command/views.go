package command

import (
	"github.com/expense-forecast/teamkit/internal/domain/member"
	"github.com/expense-forecast/teamkit/internal/domain/team"
)

// MemberView is the serializable form of a member.
type MemberView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewMemberView creates a MemberView.
func NewMemberView(m member.Member) MemberView {
	return MemberView{ID: m.ID().String(), Name: m.Name()}
}

// TeamMemberView is the serializable form of a team membership.
type TeamMemberView struct {
	ID     string     `json:"id"`
	Member MemberView `json:"member"`
	Role   string     `json:"role"`
}

// TeamView is the serializable form of a team.
type TeamView struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Members []TeamMemberView `json:"members"`
}

// NewTeamView creates a TeamView with members in team order.
func NewTeamView(t *team.Team) TeamView {
	members := t.Members()
	view := TeamView{
		ID:      t.ID().String(),
		Name:    t.Name(),
		Members: make([]TeamMemberView, len(members)),
	}
	for i, tm := range members {
		view.Members[i] = TeamMemberView{
			ID:     tm.ID().String(),
			Member: NewMemberView(tm.Member()),
			Role:   tm.Role().String(),
		}
	}
	return view
}
