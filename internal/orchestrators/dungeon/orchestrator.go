// Package dungeon keeps one accumulated dungeon map per session and answers
// movement queries against it
package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=dungeonmock github.com/KirkDiggler/rpg-dungeon-map/internal/orchestrators/dungeon Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/dungeonmap"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/pkg/idgen"
	dungeonmaps "github.com/KirkDiggler/rpg-dungeon-map/internal/repositories/dungeon_maps"
)

// Service defines the interface for dungeon map session operations
type Service interface {
	// StartSession opens a session with an empty map
	// Returns errors.AlreadyExists if the requested session ID is taken
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// RevealRoom merges a room (and its doors) into the session map
	RevealRoom(ctx context.Context, input *RevealRoomInput) (*RevealRoomOutput, error)

	// UpdateEntities refreshes entity positions from a room snapshot
	UpdateEntities(ctx context.Context, input *UpdateEntitiesInput) (*UpdateEntitiesOutput, error)

	// UpdateDoors applies door state changes
	UpdateDoors(ctx context.Context, input *UpdateDoorsInput) (*UpdateDoorsOutput, error)

	// ResetSession clears the map but keeps the session
	ResetSession(ctx context.Context, input *ResetSessionInput) (*ResetSessionOutput, error)

	// GetMap returns the session map
	GetMap(ctx context.Context, input *GetMapInput) (*GetMapOutput, error)

	// GetMovementRange returns the hexes an entity can reach this turn
	// Returns errors.NotFound if the entity is not on the map
	GetMovementRange(ctx context.Context, input *GetMovementRangeInput) (*GetMovementRangeOutput, error)

	// FindPath walks an entity toward a target hex
	// Returns errors.NotFound if the entity is not on the map
	FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error)

	// EndSession discards the session map
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}

// Config holds the dependencies for the dungeon orchestrator
type Config struct {
	Repository  dungeonmaps.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo  dungeonmaps.Repository
	idGen idgen.Generator

	// one lock per session so read-transform-write never interleaves
	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is dropped from the table once nobody holds or waits on it
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewOrchestrator creates a new dungeon orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:  cfg.Repository,
		idGen: cfg.IDGenerator,
		locks: make(map[string]*sessionLock),
	}, nil
}

func (o *orchestrator) lock(sessionID string) func() {
	o.mu.Lock()
	l, ok := o.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		o.locks[sessionID] = l
	}
	l.refs++
	o.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		o.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(o.locks, sessionID)
		}
		o.mu.Unlock()
	}
}

func (o *orchestrator) load(ctx context.Context, sessionID string) (*dungeonmap.State, error) {
	out, err := o.repo.Get(ctx, &dungeonmaps.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load dungeon map %s", sessionID)
	}
	return out.Snapshot.State, nil
}

func (o *orchestrator) store(ctx context.Context, sessionID string, state *dungeonmap.State) error {
	_, err := o.repo.Save(ctx, &dungeonmaps.SaveInput{SessionID: sessionID, State: state})
	if err != nil {
		return errors.Wrapf(err, "failed to save dungeon map %s", sessionID)
	}
	return nil
}

// transform applies fn to the session map under the session lock and
// persists the result
func (o *orchestrator) transform(
	ctx context.Context,
	sessionID string,
	fn func(*dungeonmap.State) *dungeonmap.State,
) (*dungeonmap.State, error) {
	unlock := o.lock(sessionID)
	defer unlock()

	state, err := o.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := fn(state)
	if err := o.store(ctx, sessionID, next); err != nil {
		return nil, err
	}

	return next, nil
}

func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = o.idGen.Generate()
	}

	unlock := o.lock(sessionID)
	defer unlock()

	_, err := o.repo.Get(ctx, &dungeonmaps.GetInput{SessionID: sessionID})
	switch {
	case err == nil:
		return nil, errors.AlreadyExistsf("dungeon map session %s already exists", sessionID)
	case !errors.IsNotFound(err):
		return nil, errors.Wrapf(err, "failed to check dungeon map %s", sessionID)
	}

	state := dungeonmap.NewState()
	if err := o.store(ctx, sessionID, state); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Dungeon map session started", "session_id", sessionID)

	return &StartSessionOutput{SessionID: sessionID, State: state}, nil
}

func (o *orchestrator) RevealRoom(ctx context.Context, input *RevealRoomInput) (*RevealRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateRequired("room_id", input.Room.ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var isUpdate bool
	state, err := o.transform(ctx, input.SessionID, func(s *dungeonmap.State) *dungeonmap.State {
		isUpdate = s.IsRevealed(input.Room.ID)
		return dungeonmap.MergeRoom(s, input.Room, input.Doors)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Room revealed",
		"session_id", input.SessionID,
		"room_id", input.Room.ID,
		"is_update", isUpdate,
		"tile_count", state.TileCount(),
		"entity_count", len(state.Entities),
	)

	return &RevealRoomOutput{State: state, IsUpdate: isUpdate}, nil
}

func (o *orchestrator) UpdateEntities(ctx context.Context, input *UpdateEntitiesInput) (*UpdateEntitiesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateRequired("room_id", input.Room.ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, err := o.transform(ctx, input.SessionID, func(s *dungeonmap.State) *dungeonmap.State {
		return dungeonmap.UpdateEntitiesFromRoom(s, input.Room)
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Entities updated",
		"session_id", input.SessionID,
		"room_id", input.Room.ID,
		"entity_count", len(input.Room.Entities),
	)

	return &UpdateEntitiesOutput{State: state}, nil
}

func (o *orchestrator) UpdateDoors(ctx context.Context, input *UpdateDoorsInput) (*UpdateDoorsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	state, err := o.transform(ctx, input.SessionID, func(s *dungeonmap.State) *dungeonmap.State {
		return dungeonmap.UpdateDoors(s, input.Doors)
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Doors updated",
		"session_id", input.SessionID,
		"door_count", len(input.Doors),
	)

	return &UpdateDoorsOutput{State: state}, nil
}

func (o *orchestrator) ResetSession(ctx context.Context, input *ResetSessionInput) (*ResetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	state, err := o.transform(ctx, input.SessionID, func(*dungeonmap.State) *dungeonmap.State {
		return dungeonmap.Reset()
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Dungeon map reset", "session_id", input.SessionID)

	return &ResetSessionOutput{State: state}, nil
}

func (o *orchestrator) GetMap(ctx context.Context, input *GetMapInput) (*GetMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	state, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetMapOutput{State: state}, nil
}

func (o *orchestrator) GetMovementRange(
	ctx context.Context,
	input *GetMovementRangeInput,
) (*GetMovementRangeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateRequired("entity_id", input.EntityID, vb)
	if input.MovementFeet < 0 {
		vb.InvalidField("movement_feet", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	reachable, ok := dungeonmap.MovementRange(state, input.EntityID, input.MovementFeet)
	if !ok {
		return nil, errors.NotFound("entity not on map").
			WithMeta("session_id", input.SessionID).
			WithMeta("entity_id", input.EntityID)
	}

	return &GetMovementRangeOutput{
		Hexes: reachable.Slice(),
		Steps: hex.StepsForMovement(input.MovementFeet),
	}, nil
}

func (o *orchestrator) FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateRequired("entity_id", input.EntityID, vb)
	if !input.To.IsValid() {
		vb.InvalidField("to", "cube coordinates must sum to zero")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, err := o.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	path, ok := dungeonmap.PathForEntity(state, input.EntityID, input.To)
	if !ok {
		return nil, errors.NotFound("entity not on map").
			WithMeta("session_id", input.SessionID).
			WithMeta("entity_id", input.EntityID)
	}

	from, _ := state.Entity(input.EntityID)

	return &FindPathOutput{
		Path:     path,
		Complete: hex.IsComplete(from.Position, input.To, path),
	}, nil
}

func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	unlock := o.lock(input.SessionID)
	_, err := o.repo.Delete(ctx, &dungeonmaps.DeleteInput{SessionID: input.SessionID})
	unlock()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete dungeon map %s", input.SessionID)
	}

	slog.InfoContext(ctx, "Dungeon map session ended", "session_id", input.SessionID)

	return &EndSessionOutput{Success: true}, nil
}
