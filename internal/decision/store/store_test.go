package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"warden/internal/decision"
	"warden/internal/platform/database"
	id "warden/pkg/domain"
)

type admissionStore interface {
	decision.Store
	Get(ctx context.Context, userID id.UserID, groupID id.GroupID) (decision.JoinRequest, bool, error)
	List(ctx context.Context) ([]decision.JoinRequest, error)
}

// StoreSuite runs the same contract against every admission store.
type StoreSuite struct {
	suite.Suite
	newStore func() admissionStore
	store    admissionStore
	ctx      context.Context
}

func TestInMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func() admissionStore { return NewInMemory() }})
}

func TestSQLStore(t *testing.T) {
	s := &StoreSuite{}
	s.newStore = func() admissionStore {
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

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func (s *StoreSuite) TestUpsertInsertsThenMovesTimestamp() {
	s.Require().NoError(s.store.Upsert(s.ctx, decision.JoinRequest{UserID: 7, GroupID: -300, ApprovedAt: t0}))

	got, ok, err := s.store.Get(s.ctx, 7, -300)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.True(t0.Equal(got.ApprovedAt))

	later := t0.Add(48 * time.Hour)
	s.Require().NoError(s.store.Upsert(s.ctx, decision.JoinRequest{UserID: 7, GroupID: -300, ApprovedAt: later}))

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.True(later.Equal(all[0].ApprovedAt))
}

func (s *StoreSuite) TestKeyIsUserAndGroup() {
	s.Require().NoError(s.store.Upsert(s.ctx, decision.JoinRequest{UserID: 7, GroupID: -300, ApprovedAt: t0}))
	s.Require().NoError(s.store.Upsert(s.ctx, decision.JoinRequest{UserID: 7, GroupID: -301, ApprovedAt: t0}))
	s.Require().NoError(s.store.Upsert(s.ctx, decision.JoinRequest{UserID: 8, GroupID: -300, ApprovedAt: t0}))

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *StoreSuite) TestGetMissing() {
	_, ok, err := s.store.Get(s.ctx, 1, -1)
	s.Require().NoError(err)
	s.False(ok)
}
