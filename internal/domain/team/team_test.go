package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-forecast/teamkit/internal/domain/member"
	"github.com/expense-forecast/teamkit/internal/domain/shared"
)

const expectedID = "5b3b22ec-5fdf-4a68-9880-1ca3eed22b82"

func newTestTeamMember(t *testing.T, name string, role Role) TeamMember {
	t.Helper()
	m, err := member.New(name)
	require.NoError(t, err)
	tm, err := NewTeamMember(m, role, nil)
	require.NoError(t, err)
	return tm
}

func newTestTeam(t *testing.T) (*Team, TeamMember) {
	t.Helper()
	lead := newTestTeamMember(t, "John Doe", RoleLeader)
	created, err := Create(TeamProps{
		Name:    "Technical Documentation",
		Members: []TeamMember{lead},
	}, nil)
	require.NoError(t, err)
	return created, lead
}

func TestCreate(t *testing.T) {
	team, lead := newTestTeam(t)

	assert.Equal(t, 4, team.ID().Version())
	assert.Equal(t, "Technical Documentation", team.Name())
	require.Len(t, team.Members(), 1)
	assert.Equal(t, lead, team.Members()[0])
	assert.Equal(t, "John Doe", team.Members()[0].Member().Name())
	assert.Equal(t, RoleLeader, team.Members()[0].Role())
}

func TestCreate_WithID(t *testing.T) {
	lead := newTestTeamMember(t, "John Doe", RoleLeader)
	id := expectedID

	team, err := Create(TeamProps{
		Name:    "Technical Documentation",
		Members: []TeamMember{lead},
	}, &id)
	require.NoError(t, err)

	assert.Equal(t, expectedID, team.ID().String())
	assert.Equal(t, shared.MustParseID(expectedID), team.ID())
}

func TestCreate_InvalidID(t *testing.T) {
	lead := newTestTeamMember(t, "John Doe", RoleLeader)
	id := "fake"

	team, err := Create(TeamProps{Name: "Technical Documentation", Members: []TeamMember{lead}}, &id)
	assert.Nil(t, team)
	assert.True(t, shared.IsInvalidID(err))
}

func TestCreate_ValidationOrder(t *testing.T) {
	lead := newTestTeamMember(t, "John Doe", RoleLeader)

	tests := []struct {
		name    string
		props   TeamProps
		message string
	}{
		{
			name:    "short name",
			props:   TeamProps{Name: "Eng", Members: []TeamMember{lead}},
			message: shared.MsgNameTooShort,
		},
		{
			name:    "no members",
			props:   TeamProps{Name: "Engineering"},
			message: shared.MsgNoMembers,
		},
		{
			name:    "empty members",
			props:   TeamProps{Name: "Engineering", Members: []TeamMember{}},
			message: shared.MsgNoMembers,
		},
		{
			name:    "both invalid reports name",
			props:   TeamProps{Name: "Eng", Members: nil},
			message: shared.MsgNameTooShort,
		},
		{
			name:    "zero value member",
			props:   TeamProps{Name: "Engineering", Members: []TeamMember{lead, {}}},
			message: shared.MsgInvalidMember,
		},
		{
			name:    "short name and zero value member reports name",
			props:   TeamProps{Name: "Eng", Members: []TeamMember{{}}},
			message: shared.MsgNameTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team, err := Create(tt.props, nil)
			assert.Nil(t, team)
			require.Error(t, err)
			assert.True(t, shared.IsValidation(err))
			assert.Equal(t, tt.message, shared.ValidationMessage(err))
		})
	}
}

func TestCreate_CopiesMembers(t *testing.T) {
	lead := newTestTeamMember(t, "John Doe", RoleLeader)
	analyst := newTestTeamMember(t, "Marie Doe", RoleAnalyst)
	members := []TeamMember{lead}

	team, err := Create(TeamProps{Name: "Engineering", Members: members}, nil)
	require.NoError(t, err)

	members[0] = analyst
	assert.Equal(t, lead, team.Members()[0])

	out := team.Members()
	out[0] = analyst
	assert.Equal(t, lead, team.Members()[0])
}

func TestChange(t *testing.T) {
	team, _ := newTestTeam(t)
	id := team.ID()

	manager := newTestTeamMember(t, "Marie Doe", RoleManager)
	err := team.Change(TeamProps{
		Name:    "Engineering",
		Members: []TeamMember{manager},
	})
	require.NoError(t, err)

	assert.Equal(t, id, team.ID())
	assert.Equal(t, "Engineering", team.Name())
	require.Len(t, team.Members(), 1)
	assert.Equal(t, "Marie Doe", team.Members()[0].Member().Name())
	assert.Equal(t, RoleManager, team.Members()[0].Role())
}

func TestChange_Rejected(t *testing.T) {
	team, lead := newTestTeam(t)
	other := newTestTeamMember(t, "Marie Doe", RoleManager)

	err := team.Change(TeamProps{Name: "Eng", Members: []TeamMember{other}})
	assert.Equal(t, shared.MsgNameTooShort, shared.ValidationMessage(err))
	assert.Equal(t, "Technical Documentation", team.Name())
	assert.Equal(t, []TeamMember{lead}, team.Members())

	err = team.Change(TeamProps{Name: "Engineering", Members: []TeamMember{}})
	assert.Equal(t, shared.MsgNoMembers, shared.ValidationMessage(err))
	assert.Equal(t, "Technical Documentation", team.Name())
	assert.Equal(t, []TeamMember{lead}, team.Members())

	err = team.Change(TeamProps{Name: "Eng"})
	assert.Equal(t, shared.MsgNameTooShort, shared.ValidationMessage(err))
	assert.Equal(t, "Technical Documentation", team.Name())
	assert.Equal(t, []TeamMember{lead}, team.Members())
}

func TestChange_RejectsZeroValueMember(t *testing.T) {
	team, lead := newTestTeam(t)
	team.PullEvents()

	err := team.Change(TeamProps{Name: "Engineering", Members: []TeamMember{{}}})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
	assert.Equal(t, shared.MsgInvalidMember, shared.ValidationMessage(err))
	assert.Equal(t, "Technical Documentation", team.Name())
	assert.Equal(t, []TeamMember{lead}, team.Members())
	assert.Empty(t, team.PullEvents())
}

func TestTeam_Queries(t *testing.T) {
	lead := newTestTeamMember(t, "John Doe", RoleLeader)
	a1 := newTestTeamMember(t, "Marie Doe", RoleAnalyst)
	a2 := newTestTeamMember(t, "Anna Doe", RoleAnalyst)

	team, err := Create(TeamProps{Name: "Engineering", Members: []TeamMember{lead, a1, a2}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, team.MemberCount())
	assert.True(t, team.HasMember(a1.MemberID()))
	assert.False(t, team.HasMember(shared.GenerateID()))
	assert.Equal(t, []TeamMember{a1, a2}, team.MembersWithRole(RoleAnalyst))
	assert.Empty(t, team.MembersWithRole(RoleManager))

	props := team.Props()
	assert.Equal(t, "Engineering", props.Name)
	assert.Equal(t, []TeamMember{lead, a1, a2}, props.Members)
}

func TestTeam_Events(t *testing.T) {
	team, lead := newTestTeam(t)

	events := team.PullEvents()
	require.Len(t, events, 1)
	created, ok := events[0].(TeamCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, shared.EventTeamCreated, created.EventType())
	assert.Equal(t, team.ID().String(), created.AggregateID())
	assert.Equal(t, []string{lead.MemberID().String()}, created.MemberIDs)
	assert.Empty(t, team.PullEvents())

	require.Error(t, team.Change(TeamProps{Name: "Eng", Members: []TeamMember{lead}}))
	assert.Empty(t, team.Events())

	require.NoError(t, team.Change(TeamProps{Name: "Engineering", Members: []TeamMember{lead}}))
	events = team.PullEvents()
	require.Len(t, events, 1)
	changed, ok := events[0].(TeamChangedEvent)
	require.True(t, ok)
	assert.Equal(t, "Technical Documentation", changed.OldName)
	assert.Equal(t, "Engineering", changed.NewName)
	assert.True(t, changed.NameChanged())
	assert.Equal(t, "Engineering", changed.Payload()["new_name"])
}
