package decision_test

//go:generate mockgen -source=ports/registry.go -destination=mocks/registry.go -package=mocks
//go:generate mockgen -source=ports/policy.go -destination=mocks/policy.go -package=mocks
//go:generate mockgen -source=ports/platform.go -destination=mocks/platform.go -package=mocks
//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"warden/internal/botapi"
	"warden/internal/decision"
	"warden/internal/decision/metrics"
	"warden/internal/decision/mocks"
	"warden/internal/decision/store"
	"warden/internal/registry"
	id "warden/pkg/domain"
	"warden/pkg/platform/sentinel"
	"warden/pkg/requestcontext"
)

const (
	userID      id.UserID  = 42
	nsGroup     id.GroupID = -1001
	parniGroup  id.GroupID = -3003
	strayGroup  id.GroupID = -9009
	brokenGroup id.GroupID = -7007
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type ServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	groups   *mocks.MockGroupDirectory
	policy   *mocks.MockEligibilityPolicy
	resolver *mocks.MockJoinRequestResolver
	store    *store.InMemory
	metrics  *metrics.Metrics
	service  *decision.Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.groups = mocks.NewMockGroupDirectory(s.ctrl)
	s.policy = mocks.NewMockEligibilityPolicy(s.ctrl)
	s.resolver = mocks.NewMockJoinRequestResolver(s.ctrl)
	s.store = store.NewInMemory()
	s.metrics = metrics.New(prometheus.NewRegistry())

	svc, err := decision.New(s.groups, s.policy, s.resolver, s.store, decision.WithMetrics(s.metrics))
	s.Require().NoError(err)
	s.service = svc
	s.ctx = requestcontext.WithTime(context.Background(), now)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) expectGroup(groupID id.GroupID, network registry.Network) {
	s.groups.EXPECT().Lookup(gomock.Any(), groupID).Return(registry.Group{ID: groupID, Network: network}, nil)
}

func (s *ServiceSuite) assertNoAdmission() {
	_, ok, err := s.store.Get(s.ctx, userID, parniGroup)
	s.Require().NoError(err)
	s.False(ok)
}

// =============================================================================
// Constructor
// =============================================================================

func (s *ServiceSuite) TestNewRequiresCollaborators() {
	_, err := decision.New(nil, s.policy, s.resolver, s.store)
	s.ErrorContains(err, "group directory is required")
	_, err = decision.New(s.groups, nil, s.resolver, s.store)
	s.ErrorContains(err, "eligibility policy is required")
	_, err = decision.New(s.groups, s.policy, nil, s.store)
	s.ErrorContains(err, "resolver is required")
	_, err = decision.New(s.groups, s.policy, s.resolver, nil)
	s.ErrorContains(err, "store is required")
}

// =============================================================================
// Routing
// =============================================================================

func (s *ServiceSuite) TestVerificationGroupIsIgnored() {
	for _, network := range []registry.Network{registry.NetworkNS, registry.NetworkMK} {
		s.Run(string(network), func() {
			s.expectGroup(nsGroup, network)
			// no policy or resolver calls expected

			res := s.service.Adjudicate(s.ctx, userID, nsGroup)

			s.Equal(decision.OutcomeIgnored, res.Outcome)
			s.Equal(decision.ReasonVerificationNetwork, res.Reason)
			s.False(res.Delivered)
		})
	}
}

func (s *ServiceSuite) TestUnmanagedGroupIsDeclined() {
	s.groups.EXPECT().Lookup(gomock.Any(), strayGroup).Return(registry.Group{}, registry.ErrGroupNotFound)
	s.resolver.EXPECT().Decline(gomock.Any(), strayGroup, userID).Return(nil)

	res := s.service.Adjudicate(s.ctx, userID, strayGroup)

	s.Equal(decision.OutcomeDeclined, res.Outcome)
	s.Equal(decision.ReasonGroupNotManaged, res.Reason)
	s.True(res.Delivered)
}

func (s *ServiceSuite) TestRegistryFailureDeclines() {
	s.groups.EXPECT().Lookup(gomock.Any(), brokenGroup).Return(registry.Group{}, errors.New("database is locked"))
	s.resolver.EXPECT().Decline(gomock.Any(), brokenGroup, userID).Return(nil)

	res := s.service.Adjudicate(s.ctx, userID, brokenGroup)

	s.Equal(decision.OutcomeDeclined, res.Outcome)
	s.Equal(decision.ReasonRegistryUnavailable, res.Reason)
}

func (s *ServiceSuite) TestUnknownNetworkDeclines() {
	s.expectGroup(brokenGroup, registry.NetworkUnknown)
	s.resolver.EXPECT().Decline(gomock.Any(), brokenGroup, userID).Return(nil)

	res := s.service.Adjudicate(s.ctx, userID, brokenGroup)

	s.Equal(decision.OutcomeDeclined, res.Outcome)
	s.Equal(decision.ReasonUnknownNetwork, res.Reason)
}

// =============================================================================
// Gated network
// =============================================================================

func (s *ServiceSuite) TestAlreadyInGatedNetworkDeclinesWithoutEligibilityCheck() {
	s.expectGroup(parniGroup, registry.NetworkPARNI)
	s.policy.EXPECT().IsAlreadyInGatedNetwork(gomock.Any(), userID).Return(true)
	s.resolver.EXPECT().Decline(gomock.Any(), parniGroup, userID).Return(nil)

	res := s.service.Adjudicate(s.ctx, userID, parniGroup)

	s.Equal(decision.OutcomeDeclined, res.Outcome)
	s.Equal(decision.ReasonAlreadyInGatedNetwork, res.Reason)
	s.assertNoAdmission()
}

func (s *ServiceSuite) TestIneligibleDeclines() {
	s.expectGroup(parniGroup, registry.NetworkPARNI)
	s.policy.EXPECT().IsAlreadyInGatedNetwork(gomock.Any(), userID).Return(false)
	s.policy.EXPECT().IsEligibleForGatedNetwork(gomock.Any(), userID).Return(false)
	s.resolver.EXPECT().Decline(gomock.Any(), parniGroup, userID).Return(nil)

	res := s.service.Adjudicate(s.ctx, userID, parniGroup)

	s.Equal(decision.OutcomeDeclined, res.Outcome)
	s.Equal(decision.ReasonNotEligible, res.Reason)
	s.assertNoAdmission()
}

func (s *ServiceSuite) TestEligibleApprovesAndRecordsAdmission() {
	s.expectGroup(parniGroup, registry.NetworkPARNI)
	s.policy.EXPECT().IsAlreadyInGatedNetwork(gomock.Any(), userID).Return(false)
	s.policy.EXPECT().IsEligibleForGatedNetwork(gomock.Any(), userID).Return(true)
	s.resolver.EXPECT().Approve(gomock.Any(), parniGroup, userID).Return(nil)

	res := s.service.Adjudicate(s.ctx, userID, parniGroup)

	s.Equal(decision.OutcomeApproved, res.Outcome)
	s.True(res.Delivered)
	s.True(res.Persisted)

	got, ok, err := s.store.Get(s.ctx, userID, parniGroup)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(now, got.ApprovedAt)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Outcomes.WithLabelValues("approved", "eligible", "true")))
}

func (s *ServiceSuite) TestReadjudicationMovesTimestamp() {
	for i := 0; i < 2; i++ {
		s.expectGroup(parniGroup, registry.NetworkPARNI)
		s.policy.EXPECT().IsAlreadyInGatedNetwork(gomock.Any(), userID).Return(false)
		s.policy.EXPECT().IsEligibleForGatedNetwork(gomock.Any(), userID).Return(true)
		s.resolver.EXPECT().Approve(gomock.Any(), parniGroup, userID).Return(nil)
	}

	s.service.Adjudicate(s.ctx, userID, parniGroup)
	later := now.Add(time.Hour)
	s.service.Adjudicate(requestcontext.WithTime(s.ctx, later), userID, parniGroup)

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(later, all[0].ApprovedAt)
}

func (s *ServiceSuite) TestFailedApprovalIsNotRecorded() {
	s.expectGroup(parniGroup, registry.NetworkPARNI)
	s.policy.EXPECT().IsAlreadyInGatedNetwork(gomock.Any(), userID).Return(false)
	s.policy.EXPECT().IsEligibleForGatedNetwork(gomock.Any(), userID).Return(true)
	approveErr := &botapi.Error{Category: botapi.CategoryNotFound, Method: "approveChatJoinRequest", Description: "HIDE_REQUESTER_MISSING"}
	s.resolver.EXPECT().Approve(gomock.Any(), parniGroup, userID).Return(approveErr)

	res := s.service.Adjudicate(s.ctx, userID, parniGroup)

	s.Equal(decision.OutcomeApproved, res.Outcome)
	s.False(res.Delivered)
	s.False(res.Persisted)
	s.ErrorIs(res.DeliveryErr, approveErr)
	s.assertNoAdmission()
}

func (s *ServiceSuite) TestDeclineFailureIsReportedNotReturned() {
	s.expectGroup(parniGroup, registry.NetworkPARNI)
	s.policy.EXPECT().IsAlreadyInGatedNetwork(gomock.Any(), userID).Return(true)
	s.resolver.EXPECT().Decline(gomock.Any(), parniGroup, userID).Return(fmt.Errorf("connection reset"))

	res := s.service.Adjudicate(s.ctx, userID, parniGroup)

	s.Equal(decision.OutcomeDeclined, res.Outcome)
	s.False(res.Delivered)
	s.Error(res.DeliveryErr)
}

func (s *ServiceSuite) TestPersistFailureKeepsApproval() {
	failing := mocks.NewMockStore(s.ctrl)
	svc, err := decision.New(s.groups, s.policy, s.resolver, failing, decision.WithMetrics(s.metrics))
	s.Require().NoError(err)

	s.expectGroup(parniGroup, registry.NetworkPARNI)
	s.policy.EXPECT().IsAlreadyInGatedNetwork(gomock.Any(), userID).Return(false)
	s.policy.EXPECT().IsEligibleForGatedNetwork(gomock.Any(), userID).Return(true)
	s.resolver.EXPECT().Approve(gomock.Any(), parniGroup, userID).Return(nil)
	failing.EXPECT().Upsert(gomock.Any(), decision.JoinRequest{UserID: userID, GroupID: parniGroup, ApprovedAt: now}).
		Return(errors.New("disk full"))

	res := svc.Adjudicate(s.ctx, userID, parniGroup)

	s.Equal(decision.OutcomeApproved, res.Outcome)
	s.True(res.Delivered)
	s.False(res.Persisted)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PersistFailures))
}

func (s *ServiceSuite) TestNotFoundSentinelFromAnyStoreIsUnmanaged() {
	s.groups.EXPECT().Lookup(gomock.Any(), strayGroup).Return(registry.Group{}, fmt.Errorf("wrapped: %w", sentinel.ErrNotFound))
	s.resolver.EXPECT().Decline(gomock.Any(), strayGroup, userID).Return(nil)

	res := s.service.Adjudicate(s.ctx, userID, strayGroup)

	s.Equal(decision.ReasonGroupNotManaged, res.Reason)
}
