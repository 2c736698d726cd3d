package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/expense-forecast/teamkit/internal/domain/shared"
	"github.com/expense-forecast/teamkit/internal/domain/team"
	"github.com/expense-forecast/teamkit/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CHANGE TEAM COMMAND
// Replaces a team's name and members in one step.
// ══════════════════════════════════════════════════════════════════════════════

// ChangeTeamCommand contains the new attributes of an existing team.
type ChangeTeamCommand struct {
	// Team is the aggregate to change. The caller must hold exclusive access.
	Team *team.Team

	// Name is the new team name.
	Name string

	// Members is the new member list, replacing the old one entirely.
	Members []MemberInput

	// CorrelationID for tracing.
	CorrelationID string
}

// Validate validates the command.
func (c ChangeTeamCommand) Validate() error {
	if c.Team == nil {
		return errors.New("change_team: team is required")
	}
	return nil
}

// ChangeTeamResult contains the state after the change.
type ChangeTeamResult struct {
	View        TeamView
	NameChanged bool
	Events      []shared.Event
}

// ChangeTeamHandler handles the ChangeTeamCommand.
type ChangeTeamHandler struct {
	publisher shared.EventPublisher // optional
	log       *logger.Logger
}

// NewChangeTeamHandler creates a new ChangeTeamHandler.
// publisher may be nil. When log is nil the logger is taken from the context
// passed to Handle.
func NewChangeTeamHandler(publisher shared.EventPublisher, log *logger.Logger) *ChangeTeamHandler {
	return &ChangeTeamHandler{
		publisher: publisher,
		log:       log,
	}
}

// Handle executes the change team command. The new name is checked before
// the member inputs. On error the team is unchanged.
func (h *ChangeTeamHandler) Handle(ctx context.Context, cmd ChangeTeamCommand) (*ChangeTeamResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	log := handlerLogger(ctx, h.log, "change_team", cmd.CorrelationID).
		With(logger.TeamID(cmd.Team.ID().String()))

	if _, err := shared.ValidateName(cmd.Name); err != nil {
		log.Warn("team change rejected", logger.Err(err))
		return nil, fmt.Errorf("change_team: %w", err)
	}

	members, err := buildTeamMembers(cmd.Members)
	if err != nil {
		log.Warn("team members rejected", logger.Err(err))
		return nil, fmt.Errorf("change_team: %w", err)
	}

	oldName := cmd.Team.Name()
	if err := cmd.Team.Change(team.TeamProps{Name: cmd.Name, Members: members}); err != nil {
		log.Warn("team change rejected", logger.Err(err))
		return nil, fmt.Errorf("change_team: %w", err)
	}

	events := cmd.Team.PullEvents()
	publish(h.publisher, log, events, cmd.CorrelationID)

	nameChanged := oldName != cmd.Team.Name()
	logAssignments(log, members)
	log.Info("team changed",
		logger.TeamName(cmd.Team.Name()),
		logger.Int("members", cmd.Team.MemberCount()),
		logger.Bool("name_changed", nameChanged),
	)

	return &ChangeTeamResult{
		View:        NewTeamView(cmd.Team),
		NameChanged: nameChanged,
		Events:      events,
	}, nil
}
