package main

import (
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/dungeonmap"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/testutils"
)

func TestSetupLogging(t *testing.T) {
	for _, level := range []string{"debug", "info", "WARN", "error"} {
		assert.NoError(t, setupLogging(level), level)
	}

	err := setupLogging("loud")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSummarize(t *testing.T) {
	state := dungeonmap.MergeRoom(dungeonmap.NewState(), testutils.CreateTestEncounterRoom(), []entities.DoorInfo{
		{ConnectionID: "door-1", Position: hex.NewCube(10, 2), IsOpen: true},
		{ConnectionID: "door-2", Position: hex.NewCube(-1, 2)},
	})

	summary := summarize("session-1", state)

	assert.Equal(t, "session-1", summary.SessionID)
	assert.Equal(t, testutils.TestRoomID, summary.CurrentRoomID)
	assert.Equal(t, []string{testutils.TestRoomID}, summary.Rooms)
	assert.Equal(t, 100, summary.FloorTiles)
	assert.Equal(t, 2, summary.Doors)
	assert.Equal(t, 1, summary.OpenDoors)
	require.Len(t, summary.Entities, 2)
	assert.Equal(t, testutils.TestCharacterID, summary.Entities[0].ID)
	assert.Equal(t, testutils.TestMonsterID, summary.Entities[1].ID)
}

func TestRequirePersistence(t *testing.T) {
	prev := redisAddr
	t.Cleanup(func() { redisAddr = prev })

	redisAddr = ""
	assert.True(t, errors.IsFailedPrecondition(requirePersistence()))

	redisAddr = "localhost:6379"
	assert.NoError(t, requirePersistence())
}

func TestNewRepositoryInMemory(t *testing.T) {
	prev := redisAddr
	t.Cleanup(func() { redisAddr = prev })
	redisAddr = ""

	repo, closeRepo, err := newRepository()
	require.NoError(t, err)
	defer closeRepo()
	assert.NotNil(t, repo)
}

func TestDemoPersistsToRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	prev := redisAddr
	t.Cleanup(func() { redisAddr = prev })

	rootCmd.SetArgs([]string{"demo", "--rooms", "3", "--seed", "7", "--redis", mr.Addr(), "--log-level", "error"})
	require.NoError(t, rootCmd.Execute())

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "dungeon_map:dungeon_"))
}
