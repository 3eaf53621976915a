package dungeonmaps_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/dungeonmap"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
	dungeonmaps "github.com/KirkDiggler/rpg-dungeon-map/internal/repositories/dungeon_maps"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/testutils"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo *dungeonmaps.InMemoryRepository
	ctx  context.Context
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = dungeonmaps.NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) TestSaveGetDelete() {
	state := dungeonmap.MergeRoom(nil, testutils.CreateTestEncounterRoom(), nil)

	_, err := s.repo.Save(s.ctx, &dungeonmaps.SaveInput{SessionID: "s1", State: state})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &dungeonmaps.GetInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Equal(state, got.Snapshot.State)

	_, err = s.repo.Delete(s.ctx, &dungeonmaps.DeleteInput{SessionID: "s1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &dungeonmaps.GetInput{SessionID: "s1"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestStoredStateIsIsolated() {
	state := dungeonmap.MergeRoom(nil, testutils.CreateTestEncounterRoom(), nil)
	_, err := s.repo.Save(s.ctx, &dungeonmaps.SaveInput{SessionID: "s1", State: state})
	s.Require().NoError(err)

	// mutate both the saved value and a fetched copy
	state.CurrentRoomID = "tampered"
	got, err := s.repo.Get(s.ctx, &dungeonmaps.GetInput{SessionID: "s1"})
	s.Require().NoError(err)
	delete(got.Snapshot.State.Entities, testutils.TestCharacterID)

	again, err := s.repo.Get(s.ctx, &dungeonmaps.GetInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Equal(testutils.TestRoomID, again.Snapshot.State.CurrentRoomID)
	_, ok := again.Snapshot.State.Entity(testutils.TestCharacterID)
	s.True(ok)
}

func (s *InMemoryRepositoryTestSuite) TestNotFoundAndInvalid() {
	_, err := s.repo.Get(s.ctx, &dungeonmaps.GetInput{SessionID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &dungeonmaps.DeleteInput{SessionID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Save(s.ctx, &dungeonmaps.SaveInput{SessionID: "x"})
	s.True(errors.IsInvalidArgument(err))
}
