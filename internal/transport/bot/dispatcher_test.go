package bot_test

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"warden/internal/backlog"
	"warden/internal/botapi"
	"warden/internal/decision"
	"warden/internal/platform/metrics"
	"warden/internal/transport/bot"
	"warden/internal/transport/bot/mocks"
	id "warden/pkg/domain"
)

type DispatcherSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	adjudicator *mocks.MockAdjudicator
	scanner     *mocks.MockScanner
	memberLog   *mocks.MockMemberLog
	replier     *mocks.MockReplier
	metrics     *metrics.Metrics
	dispatcher  *bot.Dispatcher
	ctx         context.Context
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}

func (s *DispatcherSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.adjudicator = mocks.NewMockAdjudicator(s.ctrl)
	s.scanner = mocks.NewMockScanner(s.ctrl)
	s.memberLog = mocks.NewMockMemberLog(s.ctrl)
	s.replier = mocks.NewMockReplier(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.dispatcher = s.newDispatcher()
	s.ctx = context.Background()
}

func (s *DispatcherSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DispatcherSuite) newDispatcher(opts ...bot.Option) *bot.Dispatcher {
	opts = append([]bot.Option{bot.WithMetrics(s.metrics)}, opts...)
	d, err := bot.NewDispatcher(s.adjudicator, s.scanner, s.memberLog, s.replier, opts...)
	s.Require().NoError(err)
	return d
}

func command(fromID int64, text string) botapi.Update {
	return botapi.Update{UpdateID: 1, Message: &botapi.Message{
		MessageID: 55,
		From:      &botapi.User{ID: fromID},
		Chat:      botapi.Chat{ID: 900},
		Text:      text,
	}}
}

// =============================================================================
// Routing
// =============================================================================

func (s *DispatcherSuite) TestJoinRequestIsAdjudicated() {
	s.adjudicator.EXPECT().Adjudicate(gomock.Any(), id.UserID(7), id.GroupID(-300)).Return(decision.Result{})

	s.dispatcher.Dispatch(s.ctx, botapi.Update{ChatJoinRequest: &botapi.ChatJoinRequest{
		Chat: botapi.Chat{ID: -300},
		From: botapi.User{ID: 7},
	}})

	s.Equal(1.0, testutil.ToFloat64(s.metrics.UpdatesProcessed.WithLabelValues(botapi.UpdateChatJoinRequest)))
}

func (s *DispatcherSuite) TestMemberUpdateIsObserved() {
	upd := botapi.ChatMemberUpdated{Chat: botapi.Chat{ID: -100}}
	s.memberLog.EXPECT().Observe(gomock.Any(), upd).Return(true, nil)

	s.dispatcher.Dispatch(s.ctx, botapi.Update{ChatMember: &upd})
}

func (s *DispatcherSuite) TestMemberLogFailureDoesNotPanic() {
	upd := botapi.ChatMemberUpdated{Chat: botapi.Chat{ID: -100}}
	s.memberLog.EXPECT().Observe(gomock.Any(), upd).Return(false, errors.New("database is locked"))

	s.NotPanics(func() { s.dispatcher.Dispatch(s.ctx, botapi.Update{ChatMember: &upd}) })
}

func (s *DispatcherSuite) TestPlainMessagesAreIgnored() {
	// no scanner or replier calls expected
	s.dispatcher.Dispatch(s.ctx, command(7, "hello"))
	s.dispatcher.Dispatch(s.ctx, command(7, "/start"))
	s.dispatcher.Wait()
}

// =============================================================================
// /process_pending
// =============================================================================

func (s *DispatcherSuite) TestProcessPendingScansAndReplies() {
	summary := backlog.Summary{Outcomes: map[decision.Outcome]int{decision.OutcomeApproved: 2, decision.OutcomeDeclined: 1}}
	s.scanner.EXPECT().ScanAll(gomock.Any(), backlog.TriggerCommand).Return(summary)
	s.replier.EXPECT().SendMessage(gomock.Any(), int64(900), gomock.Any(), int64(55)).
		DoAndReturn(func(_ context.Context, _ int64, text string, _ int64) (botapi.Message, error) {
			s.True(strings.Contains(text, "2 approved"))
			s.True(strings.Contains(text, "1 declined"))
			return botapi.Message{}, nil
		})

	s.dispatcher.Dispatch(s.ctx, command(7, "/process_pending@warden_bot"))
	s.dispatcher.Wait()
}

func (s *DispatcherSuite) TestProcessPendingRestrictedToAdmins() {
	d := s.newDispatcher(bot.WithAdmins([]int64{1, 2}))

	s.Run("non admin is refused", func() {
		d.Dispatch(s.ctx, command(7, "/process_pending"))
		d.Wait()
	})

	s.Run("admin may scan", func() {
		s.scanner.EXPECT().ScanAll(gomock.Any(), backlog.TriggerCommand).Return(backlog.Summary{Outcomes: map[decision.Outcome]int{}})
		s.replier.EXPECT().SendMessage(gomock.Any(), int64(900), gomock.Any(), int64(55)).Return(botapi.Message{}, nil)
		d.Dispatch(s.ctx, command(2, "/process_pending"))
		d.Wait()
	})
}

func (s *DispatcherSuite) TestReplyFailureIsTolerated() {
	s.scanner.EXPECT().ScanAll(gomock.Any(), backlog.TriggerCommand).Return(backlog.Summary{Outcomes: map[decision.Outcome]int{}})
	s.replier.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(botapi.Message{}, &botapi.Error{Category: botapi.CategoryPermissionDenied})

	s.dispatcher.Dispatch(s.ctx, command(7, "/process_pending"))
	s.dispatcher.Wait()
}

func (s *DispatcherSuite) TestNewDispatcherRequiresCollaborators() {
	_, err := bot.NewDispatcher(nil, s.scanner, s.memberLog, s.replier)
	s.ErrorContains(err, "adjudicator is required")
	_, err = bot.NewDispatcher(s.adjudicator, nil, s.memberLog, s.replier)
	s.ErrorContains(err, "scanner is required")
	_, err = bot.NewDispatcher(s.adjudicator, s.scanner, nil, s.replier)
	s.ErrorContains(err, "member log is required")
	_, err = bot.NewDispatcher(s.adjudicator, s.scanner, s.memberLog, nil)
	s.ErrorContains(err, "replier is required")
}
