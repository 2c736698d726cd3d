package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-forecast/teamkit/internal/domain/shared"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles() {
		parsed, err := ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	parsed, err := ParseRole("  Leader ")
	require.NoError(t, err)
	assert.Equal(t, RoleLeader, parsed)
}

func TestParseRole_Unknown(t *testing.T) {
	for _, raw := range []string{"", "owner", "lead"} {
		_, err := ParseRole(raw)
		require.Error(t, err)
		assert.Equal(t, shared.MsgUnknownRole, shared.ValidationMessage(err))
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleManager.IsValid())
	assert.True(t, RoleLeader.IsValid())
	assert.True(t, RoleAnalyst.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("Manager").IsValid())
}
