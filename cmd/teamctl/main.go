// Package main provides teamctl, a small CLI that builds members and teams
// from command-line input and prints the validated result.
//
// Usage:
//
//	teamctl member -name "John Doe" [-id UUID]
//	teamctl team -name "Technical Documentation" [-id UUID] -member "John Doe:leader" [-member "Marie Doe:analyst:UUID"]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/expense-forecast/teamkit/config"
	"github.com/expense-forecast/teamkit/internal/application/command"
	"github.com/expense-forecast/teamkit/internal/domain/shared"
	"github.com/expense-forecast/teamkit/internal/infrastructure/messaging"
	"github.com/expense-forecast/teamkit/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Output:    os.Stderr,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		Format:    cfg.Observability.LogFormat,
		AddCaller: cfg.IsDevelopment(),
	}).With(logger.String("app", cfg.App.Name), logger.String("version", cfg.App.Version))

	err = run(ctx, cfg, log, os.Args[1:], os.Stdout)
	_ = log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: teamctl <member|team> [flags]")

// run dispatches a subcommand and writes its JSON result to out.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	ctx = logger.WithContext(ctx, log)
	bus := messaging.NewInMemoryEventBus(log)
	defer bus.Close()

	var events []shared.Event
	if err := bus.SubscribeAll(func(e shared.Event) error {
		log.Debug("domain event",
			logger.EventType(string(e.EventType())),
			logger.String("aggregate_id", e.AggregateID()),
		)
		events = append(events, e)
		return nil
	}); err != nil {
		return err
	}

	var (
		result any
		err    error
	)
	switch args[0] {
	case "member":
		result, err = runMember(ctx, bus, args[1:])
	case "team":
		result, err = runTeam(ctx, bus, args[1:])
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
	if err != nil {
		return err
	}

	if cfg.CLI.PrintEvents {
		envelopes := make([]shared.EventEnvelope, 0, len(events))
		for _, e := range events {
			env, err := shared.NewEventEnvelope(e)
			if err != nil {
				return err
			}
			envelopes = append(envelopes, env)
		}
		result = struct {
			Result any                    `json:"result"`
			Events []shared.EventEnvelope `json:"events"`
		}{result, envelopes}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func runMember(ctx context.Context, pub shared.EventPublisher, args []string) (any, error) {
	fs := flag.NewFlagSet("member", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var cmd command.RegisterMemberCommand
	fs.StringVar(&cmd.Name, "name", "", "member name (more than 3 characters)")
	fs.StringVar(&cmd.ID, "id", "", "member identity (UUID); generated when empty")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	res, err := command.NewRegisterMemberHandler(pub, nil).Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return res.View, nil
}

func runTeam(ctx context.Context, pub shared.EventPublisher, args []string) (any, error) {
	fs := flag.NewFlagSet("team", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		cmd     command.CreateTeamCommand
		members memberFlag
	)
	fs.StringVar(&cmd.Name, "name", "", "team name (more than 3 characters)")
	fs.StringVar(&cmd.ID, "id", "", "team identity (UUID); generated when empty")
	fs.Var(&members, "member", `team member as "name:role[:member-id]"; repeatable`)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cmd.Members = members

	res, err := command.NewCreateTeamHandler(pub, nil).Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return res.View, nil
}

// memberFlag collects repeated -member values.
type memberFlag []command.MemberInput

func (m *memberFlag) String() string {
	parts := make([]string, len(*m))
	for i, in := range *m {
		parts[i] = in.Name + ":" + in.Role
	}
	return strings.Join(parts, ",")
}

func (m *memberFlag) Set(value string) error {
	// The member id may itself contain colons, e.g. urn:uuid:...
	parts := strings.SplitN(value, ":", 3)
	if len(parts) < 2 {
		return fmt.Errorf("member %q: expected name:role[:member-id]", value)
	}
	in := command.MemberInput{Name: parts[0], Role: parts[1]}
	if len(parts) == 3 {
		in.MemberID = parts[2]
	}
	*m = append(*m, in)
	return nil
}
