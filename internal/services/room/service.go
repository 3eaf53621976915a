// Package room generates dungeon rooms and the corridors between them
package room

//go:generate mockgen -destination=mock/mock_service.go -package=roommock github.com/KirkDiggler/rpg-dungeon-map/internal/services/room Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

// MinRoomSize is the smallest footprint that still has a western and an
// eastern half
const MinRoomSize = 2

// placement attempts before falling back to the first free cell
const maxPlacementRolls = 10

// Service defines room generation
type Service interface {
	// GenerateRoom rolls a room with characters in the west and monsters in the east
	GenerateRoom(ctx context.Context, input *GenerateRoomInput) (*GenerateRoomOutput, error)

	// GenerateCorridor rolls the next room east of an existing one, joined by a closed door
	GenerateCorridor(ctx context.Context, input *GenerateCorridorInput) (*GenerateCorridorOutput, error)
}

// GenerateRoomInput contains room generation parameters
type GenerateRoomInput struct {
	RoomID       string
	Origin       entities.Origin
	MinSize      int
	MaxSize      int
	CharacterIDs []string
	MonsterCount int
}

// GenerateRoomOutput contains the generated room
type GenerateRoomOutput struct {
	Room entities.Room
}

// GenerateCorridorInput contains parameters for the room after From
type GenerateCorridorInput struct {
	From         entities.Room
	RoomID       string
	MinSize      int
	MaxSize      int
	MonsterCount int
}

// GenerateCorridorOutput contains the new room and the door joining it to From
type GenerateCorridorOutput struct {
	Room entities.Room
	Door entities.DoorInfo
}

// Config holds the dependencies for the room service
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type service struct {
	roller dice.Roller
}

// NewService creates a room service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{roller: cfg.Roller}, nil
}

func validateSizes(minSize, maxSize int, vb *errors.ValidationBuilder) {
	if minSize < MinRoomSize {
		vb.Fieldf("min_size", "must be at least %d", MinRoomSize)
	}
	if maxSize < minSize {
		vb.Field("max_size", "must not be less than min_size")
	}
}

// halfCapacity is how many cells the smaller half of the smallest room holds
func halfCapacity(minSize int) int {
	return (minSize / 2) * minSize
}

func (s *service) GenerateRoom(ctx context.Context, input *GenerateRoomInput) (*GenerateRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("room_id", input.RoomID, vb)
	validateSizes(input.MinSize, input.MaxSize, vb)
	if input.MonsterCount < 0 {
		vb.InvalidField("monster_count", "must not be negative")
	}
	if input.MinSize >= MinRoomSize {
		capacity := halfCapacity(input.MinSize)
		if len(input.CharacterIDs) > capacity {
			vb.Fieldf("character_ids", "at most %d fit in the smallest room", capacity)
		}
		if input.MonsterCount > capacity {
			vb.Fieldf("monster_count", "at most %d fit in the smallest room", capacity)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	width, height, err := s.rollSize(input.MinSize, input.MaxSize)
	if err != nil {
		return nil, err
	}

	origin := input.Origin
	room := entities.Room{
		ID:       input.RoomID,
		Type:     "dungeon",
		Width:    width,
		Height:   height,
		Origin:   &origin,
		Entities: make(map[string]entities.EntityPlacement),
		Walls:    horizontalWalls(origin, width, height),
	}

	if err := s.populate(&room, input.CharacterIDs, input.MonsterCount); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Room generated",
		"room_id", room.ID,
		"width", width,
		"height", height,
		"entity_count", len(room.Entities),
	)

	return &GenerateRoomOutput{Room: room}, nil
}

func (s *service) GenerateCorridor(
	ctx context.Context,
	input *GenerateCorridorInput,
) (*GenerateCorridorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("room_id", input.RoomID, vb)
	errors.ValidateRequired("from.id", input.From.ID, vb)
	if input.From.Width <= 0 || input.From.Height <= 0 {
		vb.InvalidField("from", "room has no floor")
	}
	validateSizes(input.MinSize, input.MaxSize, vb)
	if input.MonsterCount < 0 {
		vb.InvalidField("monster_count", "must not be negative")
	}
	if input.MinSize >= MinRoomSize && input.MonsterCount > halfCapacity(input.MinSize) {
		vb.Fieldf("monster_count", "at most %d fit in the smallest room", halfCapacity(input.MinSize))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	from := input.From.OriginCube()
	doorColumn := from.X + input.From.Width
	origin := entities.Origin{X: doorColumn + 1, Z: from.Z}

	width, height, err := s.rollSize(input.MinSize, input.MaxSize)
	if err != nil {
		return nil, err
	}

	shared := min(height, input.From.Height)
	row, err := s.roller.Roll(shared)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll door row")
	}
	doorPos := hex.NewCube(doorColumn, from.Z+row-1)

	walls := horizontalWalls(origin, width, height)
	walls = append(walls, entities.WallSegment{
		Start: hex.NewCube(doorColumn, from.Z-1),
		End:   hex.NewCube(doorColumn, from.Z+max(height, input.From.Height)),
	})

	room := entities.Room{
		ID:       input.RoomID,
		Type:     "dungeon",
		Width:    width,
		Height:   height,
		Origin:   &origin,
		Entities: make(map[string]entities.EntityPlacement),
		Walls:    walls,
	}
	if err := s.populate(&room, nil, input.MonsterCount); err != nil {
		return nil, err
	}

	door := entities.DoorInfo{
		ConnectionID: fmt.Sprintf("door-%s-%s", input.From.ID, input.RoomID),
		Position:     doorPos,
		IsOpen:       false,
	}

	slog.DebugContext(ctx, "Corridor generated",
		"from_room_id", input.From.ID,
		"room_id", room.ID,
		"door", door.Position.String(),
	)

	return &GenerateCorridorOutput{Room: room, Door: door}, nil
}

func (s *service) rollSize(minSize, maxSize int) (int, int, error) {
	span := maxSize - minSize + 1
	rolls, err := s.roller.RollN(2, span)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to roll room size")
	}
	return minSize + rolls[0] - 1, minSize + rolls[1] - 1, nil
}

// populate places characters in the western half and monsters in the eastern half
func (s *service) populate(room *entities.Room, characterIDs []string, monsterCount int) error {
	west := room.Width / 2
	taken := make(map[cell]bool)

	for _, id := range characterIDs {
		c, err := s.pickCell(0, west, room.Height, taken)
		if err != nil {
			return err
		}
		room.Entities[id] = placementAt(room, id, entities.EntityTypeCharacter, c)
	}

	for i := 0; i < monsterCount; i++ {
		id := fmt.Sprintf("%s-monster-%d", room.ID, i+1)
		c, err := s.pickCell(west, room.Width, room.Height, taken)
		if err != nil {
			return err
		}
		room.Entities[id] = placementAt(room, id, entities.EntityTypeMonster, c)
	}

	return nil
}

// pickCell rolls a free local cell with colFrom <= col < colTo
func (s *service) pickCell(colFrom, colTo, height int, taken map[cell]bool) (cell, error) {
	cols := colTo - colFrom
	for attempt := 0; attempt < maxPlacementRolls; attempt++ {
		col, err := s.roller.Roll(cols)
		if err != nil {
			return cell{}, errors.Wrap(err, "failed to roll column")
		}
		row, err := s.roller.Roll(height)
		if err != nil {
			return cell{}, errors.Wrap(err, "failed to roll row")
		}

		c := cell{col: colFrom + col - 1, row: row - 1}
		if !taken[c] {
			taken[c] = true
			return c, nil
		}
	}

	for row := 0; row < height; row++ {
		for col := colFrom; col < colTo; col++ {
			c := cell{col: col, row: row}
			if !taken[c] {
				taken[c] = true
				return c, nil
			}
		}
	}

	return cell{}, errors.ResourceExhausted("no free cell left in room")
}

// cell is a room-local floor position on the same axes as the floor tiles
type cell struct {
	col, row int
}

// placementAt converts a local cell to the absolute floor hex
func placementAt(room *entities.Room, id, entityType string, c cell) entities.EntityPlacement {
	origin := room.OriginCube()
	return entities.EntityPlacement{
		EntityID:   id,
		EntityType: entityType,
		Position:   hex.NewCube(origin.X+c.col, origin.Z+c.row),
	}
}

// horizontalWalls runs a wall one row above and one row below the footprint
func horizontalWalls(origin entities.Origin, width, height int) []entities.WallSegment {
	return []entities.WallSegment{
		{
			Start: hex.NewCube(origin.X-1, origin.Z-1),
			End:   hex.NewCube(origin.X+width, origin.Z-1),
		},
		{
			Start: hex.NewCube(origin.X-1, origin.Z+height),
			End:   hex.NewCube(origin.X+width, origin.Z+height),
		},
	}
}
