package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/services/room"
)

const (
	demoMinRoomSize  = 5
	demoMaxRoomSize  = 9
	demoMonsters     = 2
	demoMovementFeet = 30
)

var demoCharacters = []string{"hero-1", "hero-2"}

var (
	demoRooms int
	demoSeed  uint64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk a party through generated rooms and print the accumulated map",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&demoRooms, "rooms", 3, "number of rooms to reveal")
	demoCmd.Flags().Uint64Var(&demoSeed, "seed", 0, "seed for reproducible rooms (random when unset)")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("rooms", demoRooms, 1, 20, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	repo, closeRepo, err := newRepository()
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := newService(repo)
	if err != nil {
		return err
	}

	var roller dice.Roller = dice.DefaultRoller
	if cmd.Flags().Changed("seed") {
		roller = room.NewSeededRoller(demoSeed)
	}
	rooms, err := room.NewService(&room.Config{Roller: roller})
	if err != nil {
		return err
	}

	bus := events.NewBus()
	dungeon.Subscribe(bus, svc)

	session, err := svc.StartSession(ctx, &dungeon.StartSessionInput{})
	if err != nil {
		return err
	}
	sessionID := session.SessionID

	first, err := rooms.GenerateRoom(ctx, &room.GenerateRoomInput{
		RoomID:       "room-1",
		MinSize:      demoMinRoomSize,
		MaxSize:      demoMaxRoomSize,
		CharacterIDs: demoCharacters,
		MonsterCount: demoMonsters,
	})
	if err != nil {
		return err
	}

	err = bus.Publish(ctx, dungeon.NewRoomEvent(dungeon.EventCombatStarted, &dungeon.RoomEvent{
		SessionID: sessionID,
		Room:      first.Room,
	}))
	if err != nil {
		return err
	}

	current := first.Room
	for i := 2; i <= demoRooms; i++ {
		next, err := rooms.GenerateCorridor(ctx, &room.GenerateCorridorInput{
			From:         current,
			RoomID:       fmt.Sprintf("room-%d", i),
			MinSize:      demoMinRoomSize,
			MaxSize:      demoMaxRoomSize,
			MonsterCount: demoMonsters,
		})
		if err != nil {
			return err
		}

		if err := bus.Publish(ctx, dungeon.NewRoomEvent(dungeon.EventRoomRevealed, &dungeon.RoomEvent{
			SessionID: sessionID,
			Room:      next.Room,
			Doors:     []entities.DoorInfo{next.Door},
		})); err != nil {
			return err
		}

		opened := next.Door
		opened.IsOpen = true
		if err := bus.Publish(ctx, dungeon.NewDoorEvent(&dungeon.DoorEvent{
			SessionID: sessionID,
			Doors:     []entities.DoorInfo{opened},
		})); err != nil {
			return err
		}

		if err := walkParty(ctx, svc, bus, sessionID, next.Room); err != nil {
			return err
		}

		current = next.Room
	}

	out, err := svc.GetMap(ctx, &dungeon.GetMapInput{SessionID: sessionID})
	if err != nil {
		return err
	}

	summary := summarize(sessionID, out.State)
	summary.MovementRange = make(map[string]int, len(demoCharacters))
	for _, id := range demoCharacters {
		reach, err := svc.GetMovementRange(ctx, &dungeon.GetMovementRangeInput{
			SessionID:    sessionID,
			EntityID:     id,
			MovementFeet: demoMovementFeet,
		})
		if err != nil {
			return err
		}
		summary.MovementRange[id] = len(reach.Hexes)
	}

	return printJSON(summary)
}

// walkParty moves every character as far as it gets toward the middle of
// target and reports the move as a movement event for that room
func walkParty(
	ctx context.Context,
	svc dungeon.Service,
	bus events.EventBus,
	sessionID string,
	target entities.Room,
) error {
	origin := target.OriginCube()
	goal := hex.NewCube(origin.X+target.Width/2, origin.Z+target.Height/2)

	snapshot := target.Clone()
	for _, id := range demoCharacters {
		path, err := svc.FindPath(ctx, &dungeon.FindPathInput{
			SessionID: sessionID,
			EntityID:  id,
			To:        goal,
		})
		if err != nil {
			return err
		}
		if len(path.Path) == 0 {
			continue
		}

		end := path.Path[len(path.Path)-1]
		snapshot.Entities[id] = entities.EntityPlacement{
			EntityID:   id,
			EntityType: entities.EntityTypeCharacter,
			Position:   end,
		}

		slog.DebugContext(ctx, "Character moved",
			"entity_id", id,
			"steps", len(path.Path),
			"complete", path.Complete,
			"position", end.String(),
		)

		// the next character must see this one's new position
		if err := bus.Publish(ctx, dungeon.NewRoomEvent(dungeon.EventMovementCompleted, &dungeon.RoomEvent{
			SessionID: sessionID,
			Room:      snapshot,
		})); err != nil {
			return err
		}
		snapshot = snapshot.Clone()
	}

	return nil
}
