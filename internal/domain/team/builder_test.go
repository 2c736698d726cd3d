package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-forecast/teamkit/internal/domain/shared"
)

func TestBuilder_Build(t *testing.T) {
	lead := newTestTeamMember(t, "John Doe", RoleLeader)

	team, err := NewBuilder().
		Name("Technical Documentation").
		Member(lead).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 4, team.ID().Version())
	assert.Equal(t, "Technical Documentation", team.Name())
	require.Len(t, team.Members(), 1)
	assert.Equal(t, "John Doe", team.Members()[0].Member().Name())
	assert.Equal(t, RoleLeader, team.Members()[0].Role())
}

func TestBuilder_WithID(t *testing.T) {
	lead := newTestTeamMember(t, "John Doe", RoleLeader)

	team, err := NewBuilder().
		ID(expectedID).
		Name("Technical Documentation").
		Member(lead).
		Build()
	require.NoError(t, err)

	assert.Equal(t, expectedID, team.ID().String())
	assert.Equal(t, shared.MustParseID(expectedID), team.ID())
}

func TestBuilder_Errors(t *testing.T) {
	lead := newTestTeamMember(t, "John Doe", RoleLeader)

	t.Run("no name", func(t *testing.T) {
		team, err := NewBuilder().Member(lead).Build()
		assert.Nil(t, team)
		assert.Equal(t, shared.MsgNoName, shared.ValidationMessage(err))
	})

	t.Run("no members", func(t *testing.T) {
		team, err := NewBuilder().Name("Engineering").Build()
		assert.Nil(t, team)
		assert.Equal(t, shared.MsgNoMembers, shared.ValidationMessage(err))
	})

	t.Run("nothing set", func(t *testing.T) {
		team, err := NewBuilder().Build()
		assert.Nil(t, team)
		assert.Equal(t, shared.MsgNoName, shared.ValidationMessage(err))
	})

	t.Run("short name", func(t *testing.T) {
		team, err := NewBuilder().Name("Eng").Member(lead).Build()
		assert.Nil(t, team)
		assert.Equal(t, shared.MsgNameTooShort, shared.ValidationMessage(err))
	})

	t.Run("short name without members reports presence", func(t *testing.T) {
		team, err := NewBuilder().Name("Eng").Build()
		assert.Nil(t, team)
		assert.Equal(t, shared.MsgNoMembers, shared.ValidationMessage(err))
	})

	t.Run("zero value member", func(t *testing.T) {
		team, err := NewBuilder().Name("Engineering").Member(TeamMember{}).Build()
		assert.Nil(t, team)
		assert.Equal(t, shared.MsgInvalidMember, shared.ValidationMessage(err))
	})

	t.Run("malformed id", func(t *testing.T) {
		team, err := NewBuilder().ID("fake").Build()
		assert.Nil(t, team)
		assert.True(t, shared.IsInvalidID(err))
	})
}

func TestBuilder_Members(t *testing.T) {
	lead := newTestTeamMember(t, "John Doe", RoleLeader)
	analyst := newTestTeamMember(t, "Marie Doe", RoleAnalyst)

	b := NewBuilder().Name("Engineering").Members(lead, analyst)
	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []TeamMember{lead, analyst}, first.Members())
	assert.Equal(t, first.Members(), second.Members())
	assert.False(t, first.ID().Equals(second.ID()))
}
