package dungeon

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
)

// Event types the map listens to
const (
	EventRoomRevealed      = "dungeon.room_revealed"
	EventCombatStarted     = "dungeon.combat_started"
	EventTurnEnded         = "dungeon.turn_ended"
	EventMonsterTurn       = "dungeon.monster_turn"
	EventMovementCompleted = "dungeon.movement_completed"
	EventAttackResolved    = "dungeon.attack_resolved"
	EventDoorChanged       = "dungeon.door_changed"
)

const (
	entityTypeRoomEvent = "dungeon_room_event"
	entityTypeDoorEvent = "dungeon_door_event"
)

// revealEvents carry a room that may be new to the map
var revealEvents = []string{EventRoomRevealed, EventCombatStarted}

// turnEvents carry a room snapshot whose entities may have moved
var turnEvents = []string{EventTurnEnded, EventMonsterTurn, EventMovementCompleted, EventAttackResolved}

// RoomEvent is the payload for room reveals and turn updates. It rides on
// the bus as the event source.
type RoomEvent struct {
	SessionID string
	Room      entities.Room
	Doors     []entities.DoorInfo
}

// GetID returns the room ID
func (e *RoomEvent) GetID() string { return e.Room.ID }

// GetType returns the payload type
func (e *RoomEvent) GetType() string { return entityTypeRoomEvent }

// DoorEvent is the payload for door state changes
type DoorEvent struct {
	SessionID string
	Doors     []entities.DoorInfo
}

// GetID returns the session ID
func (e *DoorEvent) GetID() string { return e.SessionID }

// GetType returns the payload type
func (e *DoorEvent) GetType() string { return entityTypeDoorEvent }

var (
	_ core.Entity = (*RoomEvent)(nil)
	_ core.Entity = (*DoorEvent)(nil)
)

// NewRoomEvent builds a publishable room event of the given type
func NewRoomEvent(eventType string, payload *RoomEvent) events.Event {
	return events.NewGameEvent(eventType, payload, nil)
}

// NewDoorEvent builds a publishable door change event
func NewDoorEvent(payload *DoorEvent) events.Event {
	return events.NewGameEvent(EventDoorChanged, payload, nil)
}

// Subscribe registers the map's handlers on bus and returns the
// subscription IDs
func Subscribe(bus events.EventBus, svc Service) []string {
	ids := make([]string, 0, len(revealEvents)+len(turnEvents)+1)

	for _, eventType := range revealEvents {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, revealHandler(svc)))
	}
	for _, eventType := range turnEvents {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, turnHandler(svc)))
	}
	ids = append(ids, bus.SubscribeFunc(EventDoorChanged, 0, doorHandler(svc)))

	return ids
}

func roomPayload(e events.Event) (*RoomEvent, error) {
	payload, ok := e.Source().(*RoomEvent)
	if !ok || payload == nil {
		return nil, errors.InvalidArgumentf("event %s does not carry a room", e.Type())
	}
	return payload, nil
}

func revealHandler(svc Service) events.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		payload, err := roomPayload(e)
		if err != nil {
			return err
		}

		_, err = svc.RevealRoom(ctx, &RevealRoomInput{
			SessionID: payload.SessionID,
			Room:      payload.Room,
			Doors:     payload.Doors,
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to reveal room from event",
				"event_type", e.Type(),
				"session_id", payload.SessionID,
				"room_id", payload.Room.ID,
				"error", err,
			)
			return err
		}
		return nil
	}
}

func turnHandler(svc Service) events.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		payload, err := roomPayload(e)
		if err != nil {
			return err
		}

		_, err = svc.UpdateEntities(ctx, &UpdateEntitiesInput{
			SessionID: payload.SessionID,
			Room:      payload.Room,
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to update entities from event",
				"event_type", e.Type(),
				"session_id", payload.SessionID,
				"room_id", payload.Room.ID,
				"error", err,
			)
			return err
		}
		return nil
	}
}

func doorHandler(svc Service) events.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		payload, ok := e.Source().(*DoorEvent)
		if !ok || payload == nil {
			return errors.InvalidArgumentf("event %s does not carry doors", e.Type())
		}

		_, err := svc.UpdateDoors(ctx, &UpdateDoorsInput{
			SessionID: payload.SessionID,
			Doors:     payload.Doors,
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to update doors from event",
				"session_id", payload.SessionID,
				"error", err,
			)
			return err
		}
		return nil
	}
}
