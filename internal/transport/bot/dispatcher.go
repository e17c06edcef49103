// Package bot turns platform updates into calls on the moderation services.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"warden/internal/backlog"
	"warden/internal/botapi"
	"warden/internal/decision"
	"warden/internal/platform/metrics"
	id "warden/pkg/domain"
)

// CommandProcessPending triggers a backlog scan from a chat.
const CommandProcessPending = "process_pending"

// Dispatcher routes one update at a time to the service that owns it.
type Dispatcher struct {
	adjudicator Adjudicator
	scanner     Scanner
	memberLog   MemberLog
	replier     Replier
	admins      []int64
	logger      *slog.Logger
	metrics     *metrics.Metrics

	// commands tracks scans started from chat so shutdown can wait for them.
	commands sync.WaitGroup
}

type Option func(*Dispatcher)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// WithAdmins restricts chat commands to the given user IDs. An empty list
// lets anyone run them.
func WithAdmins(userIDs []int64) Option {
	return func(d *Dispatcher) {
		d.admins = userIDs
	}
}

func NewDispatcher(adjudicator Adjudicator, scanner Scanner, memberLog MemberLog, replier Replier, opts ...Option) (*Dispatcher, error) {
	if adjudicator == nil {
		return nil, errors.New("adjudicator is required")
	}
	if scanner == nil {
		return nil, errors.New("scanner is required")
	}
	if memberLog == nil {
		return nil, errors.New("member log is required")
	}
	if replier == nil {
		return nil, errors.New("replier is required")
	}
	d := &Dispatcher{
		adjudicator: adjudicator,
		scanner:     scanner,
		memberLog:   memberLog,
		replier:     replier,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Dispatch handles one update. Handler failures are logged; they never stop
// the poller.
func (d *Dispatcher) Dispatch(ctx context.Context, update botapi.Update) {
	kind := update.Kind()
	d.metrics.IncrementUpdate(kind)

	switch {
	case update.ChatJoinRequest != nil:
		req := update.ChatJoinRequest
		d.adjudicator.Adjudicate(ctx, id.UserID(req.From.ID), id.GroupID(req.Chat.ID))
	case update.ChatMember != nil:
		if _, err := d.memberLog.Observe(ctx, *update.ChatMember); err != nil {
			d.logger.ErrorContext(ctx, "member event not recorded",
				"group_id", update.ChatMember.Chat.ID,
				"error", err,
			)
		}
	case update.Message != nil:
		d.handleMessage(ctx, update.Message)
	default:
		d.logger.DebugContext(ctx, "ignoring update", "kind", kind)
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, msg *botapi.Message) {
	command, ok := parseCommand(msg.Text)
	if !ok || command != CommandProcessPending {
		return
	}
	if msg.From == nil || !d.isAdmin(msg.From.ID) {
		var from int64
		if msg.From != nil {
			from = msg.From.ID
		}
		d.logger.WarnContext(ctx, "command refused", "command", command, "user_id", from)
		return
	}

	d.logger.InfoContext(ctx, "backlog scan requested from chat",
		"user_id", msg.From.ID,
		"chat_id", msg.Chat.ID,
	)
	// The scan runs beside the poller so live updates keep flowing.
	d.commands.Add(1)
	go func() {
		defer d.commands.Done()
		summary := d.scanner.ScanAll(ctx, backlog.TriggerCommand)
		if _, err := d.replier.SendMessage(ctx, msg.Chat.ID, completionMessage(summary), msg.MessageID); err != nil {
			d.logger.WarnContext(ctx, "could not reply to command",
				"chat_id", msg.Chat.ID,
				"error", err,
			)
		}
	}()
}

// Wait blocks until every scan started from chat has replied.
func (d *Dispatcher) Wait() {
	d.commands.Wait()
}

func (d *Dispatcher) isAdmin(userID int64) bool {
	return len(d.admins) == 0 || slices.Contains(d.admins, userID)
}

// parseCommand extracts the command name from "/name@bot args".
func parseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	name, _, _ := strings.Cut(text[1:], " ")
	name, _, _ = strings.Cut(name, "@")
	return name, name != ""
}

func completionMessage(s backlog.Summary) string {
	msg := fmt.Sprintf("Pending join requests processed: %d approved, %d declined, %d left to moderators.",
		s.Outcomes[decision.OutcomeApproved],
		s.Outcomes[decision.OutcomeDeclined],
		s.Outcomes[decision.OutcomeIgnored],
	)
	if s.FailedGroups > 0 {
		msg += fmt.Sprintf(" %d groups could not be read.", s.FailedGroups)
	}
	return msg
}
