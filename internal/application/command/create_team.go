package command

import (
	"context"
	"fmt"

	"github.com/expense-forecast/teamkit/internal/domain/member"
	"github.com/expense-forecast/teamkit/internal/domain/shared"
	"github.com/expense-forecast/teamkit/internal/domain/team"
	"github.com/expense-forecast/teamkit/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE TEAM COMMAND
// Assembles a Team from unvalidated input: members are built and their roles
// parsed first, then the team builder checks the aggregate invariants.
// ══════════════════════════════════════════════════════════════════════════════

// MemberInput is the raw description of one team member.
type MemberInput struct {
	// MemberID is an optional identity for the member; empty means generate.
	MemberID string

	// Name is the member name.
	Name string

	// Role is the textual role: manager, leader or analyst.
	Role string

	// AssignmentID is an optional identity for the team membership itself.
	AssignmentID string
}

// CreateTeamCommand contains the raw data for a new team.
type CreateTeamCommand struct {
	// ID is an optional team identity; empty means generate one.
	ID string

	// Name is the team name. Empty means "not provided".
	Name string

	// Members in the order they should appear in the team.
	Members []MemberInput

	// CorrelationID for tracing.
	CorrelationID string
}

// CreateTeamResult contains the created team.
type CreateTeamResult struct {
	Team   *team.Team
	View   TeamView
	Events []shared.Event
}

// CreateTeamHandler handles the CreateTeamCommand.
type CreateTeamHandler struct {
	publisher shared.EventPublisher // optional
	log       *logger.Logger
}

// NewCreateTeamHandler creates a new CreateTeamHandler.
// publisher may be nil. When log is nil the logger is taken from the context
// passed to Handle.
func NewCreateTeamHandler(publisher shared.EventPublisher, log *logger.Logger) *CreateTeamHandler {
	return &CreateTeamHandler{
		publisher: publisher,
		log:       log,
	}
}

// Handle executes the create team command. Checks run in the order the team
// builder uses: team identity, team name, then members.
func (h *CreateTeamHandler) Handle(ctx context.Context, cmd CreateTeamCommand) (*CreateTeamResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := handlerLogger(ctx, h.log, "create_team", cmd.CorrelationID)

	if err := checkTeamHeader(cmd.ID, cmd.Name); err != nil {
		log.Warn("team rejected", logger.Err(err), logger.TeamName(cmd.Name))
		return nil, fmt.Errorf("create_team: %w", err)
	}

	members, err := buildTeamMembers(cmd.Members)
	if err != nil {
		log.Warn("team members rejected", logger.Err(err))
		return nil, fmt.Errorf("create_team: %w", err)
	}

	b := team.NewBuilder().Name(cmd.Name).Members(members...)
	if cmd.ID != "" {
		b.ID(cmd.ID)
	}

	t, err := b.Build()
	if err != nil {
		log.Warn("team rejected", logger.Err(err), logger.TeamName(cmd.Name))
		return nil, fmt.Errorf("create_team: %w", err)
	}

	events := t.PullEvents()
	publish(h.publisher, log, events, cmd.CorrelationID)

	logAssignments(log, members)
	log.Info("team created",
		logger.TeamID(t.ID().String()),
		logger.TeamName(t.Name()),
		logger.Int("members", t.MemberCount()),
	)

	return &CreateTeamResult{
		Team:   t,
		View:   NewTeamView(t),
		Events: events,
	}, nil
}

// checkTeamHeader validates the team identity and name before any member
// input is looked at.
func checkTeamHeader(id, name string) error {
	if id != "" {
		if _, err := shared.ParseID(id); err != nil {
			return err
		}
	}
	if name == "" {
		return shared.NewValidationError("team", "Build", shared.MsgNoName)
	}
	_, err := shared.ValidateName(name)
	return err
}

// buildTeamMembers validates every input in order and stops at the first
// failure, reporting its position.
func buildTeamMembers(inputs []MemberInput) ([]team.TeamMember, error) {
	out := make([]team.TeamMember, 0, len(inputs))
	for i, in := range inputs {
		m, err := member.NewWithID(in.Name, optional(in.MemberID))
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
		role, err := team.ParseRole(in.Role)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
		tm, err := team.NewTeamMember(m, role, optional(in.AssignmentID))
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
		out = append(out, tm)
	}
	return out, nil
}
