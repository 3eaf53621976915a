package room_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/services/room"
)

func TestSeededRollerIsDeterministic(t *testing.T) {
	a := room.NewSeededRoller(99)
	b := room.NewSeededRoller(99)

	ra, err := a.RollN(20, 6)
	require.NoError(t, err)
	rb, err := b.RollN(20, 6)
	require.NoError(t, err)

	assert.Equal(t, ra, rb)
	for _, v := range ra {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestSeededRollerRejectsBadDice(t *testing.T) {
	r := room.NewSeededRoller(1)

	_, err := r.Roll(0)
	assert.Error(t, err)

	_, err = r.RollN(-1, 6)
	assert.Error(t, err)

	rolls, err := r.RollN(0, 6)
	require.NoError(t, err)
	assert.Empty(t, rolls)
}
