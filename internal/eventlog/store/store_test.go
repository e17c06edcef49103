package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"warden/internal/eventlog"
	"warden/internal/platform/database"
	id "warden/pkg/domain"
)

type memberLog interface {
	eventlog.Store
	ListByUser(ctx context.Context, userID id.UserID) ([]eventlog.MemberEvent, error)
}

// StoreSuite runs the same contract against every member log store.
type StoreSuite struct {
	suite.Suite
	newStore func() memberLog
	store    memberLog
	ctx      context.Context
}

func TestInMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func() memberLog { return NewInMemory() }})
}

func TestSQLStore(t *testing.T) {
	s := &StoreSuite{}
	s.newStore = func() memberLog {
		db, err := database.OpenInMemory(context.Background())
		s.Require().NoError(err)
		s.T().Cleanup(func() { _ = db.Close() })
		return NewSQL(db)
	}
	suite.Run(t, s)
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()
}

func (s *StoreSuite) TestAppendAssignsIncreasingIDs() {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first, err := s.store.Append(s.ctx, eventlog.MemberEvent{UserID: 7, GroupID: -100, Kind: eventlog.KindJoin, At: at})
	s.Require().NoError(err)
	second, err := s.store.Append(s.ctx, eventlog.MemberEvent{UserID: 7, GroupID: -100, Kind: eventlog.KindLeave, At: at.Add(time.Hour)})
	s.Require().NoError(err)

	s.Positive(first.ID)
	s.Greater(second.ID, first.ID)
}

func (s *StoreSuite) TestListByUserKeepsOrder() {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, e := range []eventlog.MemberEvent{
		{UserID: 7, GroupID: -100, Kind: eventlog.KindJoin, At: at},
		{UserID: 8, GroupID: -100, Kind: eventlog.KindJoin, At: at},
		{UserID: 7, GroupID: -100, Kind: eventlog.KindLeave, At: at.Add(time.Minute)},
	} {
		_, err := s.store.Append(s.ctx, e)
		s.Require().NoError(err)
	}

	events, err := s.store.ListByUser(s.ctx, 7)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(eventlog.KindJoin, events[0].Kind)
	s.Equal(eventlog.KindLeave, events[1].Kind)
	s.Equal(id.GroupID(-100), events[1].GroupID)
	s.True(at.Add(time.Minute).Equal(events[1].At))
}
