package encounter_test

import (
	"testing"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/api/v1alpha1"
	dnd5ev1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/dnd5e/api/v1alpha1"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/clients/encounter"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/dungeonmap"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

type ConvertTestSuite struct {
	suite.Suite
	room *dnd5ev1alpha1.Room
}

func TestConvertSuite(t *testing.T) {
	suite.Run(t, new(ConvertTestSuite))
}

func (s *ConvertTestSuite) SetupTest() {
	s.room = &dnd5ev1alpha1.Room{
		Id:       "room-1",
		Type:     "dungeon",
		Width:    10,
		Height:   10,
		GridType: apiv1alpha1.GridType_GRID_TYPE_HEX_POINTY,
		Entities: []*dnd5ev1alpha1.EntityPlacement{
			{
				EntityId:   "fighter-123",
				EntityType: entities.EntityTypeCharacter,
				Position:   &apiv1alpha1.Position{X: 2, Y: 3},
			},
			{
				EntityId:   "goblin-1",
				EntityType: entities.EntityTypeMonster,
				Position:   &apiv1alpha1.Position{X: 6.6, Y: 7.2},
			},
			{
				EntityId:   "no-position",
				EntityType: entities.EntityTypeMonster,
			},
		},
	}
}

func (s *ConvertTestSuite) TestConvertAtOrigin() {
	room := encounter.ConvertRoom(s.room, entities.Origin{})

	s.Equal("room-1", room.ID)
	s.Equal("dungeon", room.Type)
	s.Equal(10, room.Width)
	s.Equal(10, room.Height)
	s.Require().NotNil(room.Origin)
	s.Len(room.Entities, 2)

	fighter := room.Entities["fighter-123"]
	s.Equal(hex.NewCube(2, 3), fighter.Position)
	s.Equal(entities.EntityTypeCharacter, fighter.EntityType)

	s.Equal(hex.NewCube(7, 7), room.Entities["goblin-1"].Position)
	s.NotContains(room.Entities, "no-position")
}

func (s *ConvertTestSuite) TestConvertShiftsByOrigin() {
	room := encounter.ConvertRoom(s.room, entities.Origin{X: 10, Z: 5})

	s.Equal(entities.Origin{X: 10, Z: 5}, *room.Origin)
	s.Equal(hex.NewCube(12, 8), room.Entities["fighter-123"].Position)
}

func (s *ConvertTestSuite) TestEntitiesLandOnFloor() {
	room := encounter.ConvertRoom(s.room, entities.Origin{X: -4, Z: 9})
	state := dungeonmap.MergeRoom(dungeonmap.NewState(), room, nil)

	for id, placement := range room.Entities {
		s.True(placement.Position.IsValid(), id)
		s.True(state.HasFloor(placement.Position), id)
	}
}

func (s *ConvertTestSuite) TestNilRoom() {
	room := encounter.ConvertRoom(nil, entities.Origin{})
	s.Empty(room.ID)
	s.Empty(room.Entities)
}
