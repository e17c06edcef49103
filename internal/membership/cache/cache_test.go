package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"warden/internal/botapi"
	"warden/internal/membership"
	"warden/internal/membership/metrics"
	"warden/internal/membership/mocks"
	id "warden/pkg/domain"
)

type CacheSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	next    *mocks.MockRemote
	lru     *LRU
	metrics *metrics.Metrics
	remote  *Remote
	ctx     context.Context
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.next = mocks.NewMockRemote(s.ctrl)
	s.lru = NewLRU(100, time.Minute)
	s.metrics = metrics.New(prometheus.NewRegistry())
	r, err := NewRemote(s.next, s.lru, WithMetrics(s.metrics))
	s.Require().NoError(err)
	s.remote = r
	s.ctx = context.Background()
}

func (s *CacheSuite) TestReadThrough() {
	standing := membership.Standing{Status: membership.StatusMember}
	s.next.EXPECT().Standing(gomock.Any(), id.GroupID(-1), id.UserID(5)).Return(standing, nil).Times(1)

	for range 3 {
		got, err := s.remote.Standing(s.ctx, -1, 5)
		s.Require().NoError(err)
		s.Equal(standing, got)
	}
	s.Equal(1.0, testutil.ToFloat64(s.metrics.CacheRequests.WithLabelValues("miss")))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.CacheRequests.WithLabelValues("hit")))
}

func (s *CacheSuite) TestErrorsAreNotCached() {
	remoteErr := &botapi.Error{Category: botapi.CategoryTransient}
	gomock.InOrder(
		s.next.EXPECT().Standing(gomock.Any(), id.GroupID(-1), id.UserID(5)).Return(membership.Standing{}, remoteErr),
		s.next.EXPECT().Standing(gomock.Any(), id.GroupID(-1), id.UserID(5)).Return(membership.Standing{Status: "left"}, nil),
	)

	_, err := s.remote.Standing(s.ctx, -1, 5)
	s.ErrorIs(err, remoteErr)
	s.Zero(s.lru.Len())

	got, err := s.remote.Standing(s.ctx, -1, 5)
	s.Require().NoError(err)
	s.Equal("left", got.Status)
	s.Equal(1, s.lru.Len())
}

func (s *CacheSuite) TestKeysAreScopedToGroupAndUser() {
	s.next.EXPECT().Standing(gomock.Any(), id.GroupID(-1), id.UserID(5)).Return(membership.Standing{Status: "member"}, nil)
	s.next.EXPECT().Standing(gomock.Any(), id.GroupID(-2), id.UserID(5)).Return(membership.Standing{Status: "left"}, nil)

	a, err := s.remote.Standing(s.ctx, -1, 5)
	s.Require().NoError(err)
	b, err := s.remote.Standing(s.ctx, -2, 5)
	s.Require().NoError(err)
	s.NotEqual(a.Status, b.Status)
	s.Equal("-1:5", Key(-1, 5))
}

func (s *CacheSuite) TestBackendFailureFallsThrough() {
	r, err := NewRemote(s.next, brokenBackend{}, WithMetrics(s.metrics))
	s.Require().NoError(err)
	s.next.EXPECT().Standing(gomock.Any(), id.GroupID(-1), id.UserID(5)).Return(membership.Standing{Status: "member"}, nil)

	got, err := r.Standing(s.ctx, -1, 5)
	s.Require().NoError(err)
	s.Equal("member", got.Status)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.CacheRequests.WithLabelValues("error")))
}

func (s *CacheSuite) TestLRUExpiry() {
	lru := NewLRU(10, 20*time.Millisecond)
	s.Require().NoError(lru.Set(s.ctx, "k", membership.Standing{Status: "member"}))
	_, ok, _ := lru.Get(s.ctx, "k")
	s.True(ok)

	s.Eventually(func() bool {
		_, ok, _ := lru.Get(s.ctx, "k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func (s *CacheSuite) TestNewRemoteValidation() {
	_, err := NewRemote(nil, s.lru)
	s.Require().Error(err)
	_, err = NewRemote(s.next, nil)
	s.Require().Error(err)
}

type brokenBackend struct{}

func (brokenBackend) Get(context.Context, string) (membership.Standing, bool, error) {
	return membership.Standing{}, false, errors.New("backend down")
}

func (brokenBackend) Set(context.Context, string, membership.Standing) error {
	return errors.New("backend down")
}
