package encounter

import (
	"math"

	dnd5ev1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/dnd5e/api/v1alpha1"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

// ConvertRoom maps a proto room onto the dungeon map's room input.
//
// Proto positions are room-local cells: x runs along the cube x axis and y
// along the cube z axis, matching how a room's floor is laid out from its
// origin. They are rounded to the nearest cell and shifted by origin.
func ConvertRoom(room *dnd5ev1alpha1.Room, origin entities.Origin) entities.Room {
	if room == nil {
		return entities.Room{}
	}

	o := origin
	result := entities.Room{
		ID:       room.GetId(),
		Type:     room.GetType(),
		Width:    int(room.GetWidth()),
		Height:   int(room.GetHeight()),
		Origin:   &o,
		Entities: make(map[string]entities.EntityPlacement, len(room.GetEntities())),
	}

	for _, placement := range room.GetEntities() {
		if placement.GetEntityId() == "" || placement.GetPosition() == nil {
			continue
		}

		x := int(math.Round(placement.GetPosition().GetX()))
		z := int(math.Round(placement.GetPosition().GetY()))

		result.Entities[placement.GetEntityId()] = entities.EntityPlacement{
			EntityID:   placement.GetEntityId(),
			EntityType: placement.GetEntityType(),
			Position:   hex.NewCube(origin.X+x, origin.Z+z),
		}
	}

	return result
}
