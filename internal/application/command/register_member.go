// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"

	"github.com/expense-forecast/teamkit/internal/domain/member"
	"github.com/expense-forecast/teamkit/internal/domain/shared"
	"github.com/expense-forecast/teamkit/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER MEMBER COMMAND
// Turns raw input into a validated Member.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterMemberCommand contains the raw data for a new member.
type RegisterMemberCommand struct {
	// ID is an optional identity; empty means generate one.
	ID string

	// Name is the member name, used as given.
	Name string

	// CorrelationID for tracing.
	CorrelationID string
}

// RegisterMemberResult contains the registered member.
type RegisterMemberResult struct {
	Member *member.Member
	View   MemberView
	Events []shared.Event
}

// RegisterMemberHandler handles the RegisterMemberCommand.
type RegisterMemberHandler struct {
	publisher shared.EventPublisher // optional
	log       *logger.Logger
}

// NewRegisterMemberHandler creates a new RegisterMemberHandler.
// publisher may be nil. When log is nil the logger is taken from the context
// passed to Handle.
func NewRegisterMemberHandler(publisher shared.EventPublisher, log *logger.Logger) *RegisterMemberHandler {
	return &RegisterMemberHandler{
		publisher: publisher,
		log:       log,
	}
}

// Handle executes the register member command.
func (h *RegisterMemberHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) (*RegisterMemberResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := handlerLogger(ctx, h.log, "register_member", cmd.CorrelationID)

	m, err := member.NewWithID(cmd.Name, optional(cmd.ID))
	if err != nil {
		log.Warn("member rejected", logger.Err(err))
		return nil, fmt.Errorf("register_member: %w", err)
	}

	events := []shared.Event{m.RegisteredEvent()}
	publish(h.publisher, log, events, cmd.CorrelationID)

	log.Info("member registered", logger.MemberID(m.ID().String()))

	return &RegisterMemberResult{
		Member: m,
		View:   NewMemberView(*m),
		Events: events,
	}, nil
}
