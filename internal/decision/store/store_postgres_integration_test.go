//go:build integration

package store

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"warden/pkg/testutil/containers"
)

func TestPostgresStore(t *testing.T) {
	db := containers.NewPostgres(t)
	s := &StoreSuite{}
	s.newStore = func() admissionStore {
		containers.Truncate(s.T(), db)
		return NewSQL(db)
	}
	suite.Run(t, s)
}
