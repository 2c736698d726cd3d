package command

import (
	"context"

	"github.com/expense-forecast/teamkit/internal/domain/shared"
	"github.com/expense-forecast/teamkit/internal/domain/team"
	"github.com/expense-forecast/teamkit/pkg/logger"
)

// optional maps an empty string to "not provided".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func correlation(id string) logger.Field {
	return logger.String("correlation_id", id)
}

// handlerLogger returns log, or the logger carried by ctx when log is nil,
// tagged with the operation and correlation id.
func handlerLogger(ctx context.Context, log *logger.Logger, op, correlationID string) *logger.Logger {
	if log == nil {
		log = logger.FromContext(ctx)
	}
	return log.With(
		logger.Component("command"),
		logger.Operation(op),
		correlation(correlationID),
	)
}

// publish stamps the correlation id onto events and hands them to the
// publisher in order. The aggregate is already valid at this point, so a
// publisher failure is logged, not returned.
func publish(p shared.EventPublisher, log *logger.Logger, events []shared.Event, correlationID string) {
	shared.CorrelateEvents(events, correlationID)
	if p == nil {
		return
	}
	for _, e := range events {
		if err := p.Publish(e); err != nil {
			log.Error("publish event failed",
				logger.EventType(string(e.EventType())),
				logger.Err(err),
			)
		}
	}
}

func logAssignments(log *logger.Logger, members []team.TeamMember) {
	for _, tm := range members {
		log.Debug("member assigned",
			logger.MemberID(tm.MemberID().String()),
			logger.Role(tm.Role().String()),
		)
	}
}
