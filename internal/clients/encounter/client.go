// Package encounter talks to the rpg-api EncounterService and turns the rooms
// it returns into dungeon map input
package encounter

//go:generate mockgen -destination=mock/mock_client.go -package=encountermock github.com/KirkDiggler/rpg-dungeon-map/internal/clients/encounter Client

import (
	"context"
	"log/slog"

	dnd5ev1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/dnd5e/api/v1alpha1"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
)

// Client defines the encounter operations the dungeon map consumes
type Client interface {
	// DungeonStart starts an encounter and returns its first room
	// Returns errors.InvalidArgument when no characters are given
	DungeonStart(ctx context.Context, input *DungeonStartInput) (*DungeonStartOutput, error)
}

// DungeonStartInput defines the request for starting a dungeon encounter
type DungeonStartInput struct {
	CharacterIDs []string
	// Origin places the returned room in dungeon space; nil means (0,0)
	Origin *entities.Origin
}

// DungeonStartOutput defines the response for starting a dungeon encounter
type DungeonStartOutput struct {
	EncounterID string
	Room        entities.Room
}

// Config holds the dependencies for the encounter client
type Config struct {
	EncounterService dnd5ev1alpha1.EncounterServiceClient
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EncounterService == nil {
		vb.RequiredField("EncounterService")
	}

	return vb.Build()
}

type client struct {
	encounterService dnd5ev1alpha1.EncounterServiceClient
}

// New creates an encounter client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &client{encounterService: cfg.EncounterService}, nil
}

func (c *client) DungeonStart(ctx context.Context, input *DungeonStartInput) (*DungeonStartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.CharacterIDs) == 0 {
		return nil, errors.InvalidArgument("at least one character ID is required")
	}

	resp, err := c.encounterService.DungeonStart(ctx, &dnd5ev1alpha1.DungeonStartRequest{
		CharacterIds: input.CharacterIDs,
	})
	if err != nil {
		return nil, errors.Wrap(errors.FromGRPCError(err), "failed to start dungeon encounter")
	}
	if resp.GetRoom() == nil {
		return nil, errors.DataLossf("encounter %s returned no room", resp.GetEncounterId())
	}

	origin := entities.Origin{}
	if input.Origin != nil {
		origin = *input.Origin
	}
	room := ConvertRoom(resp.GetRoom(), origin)

	slog.InfoContext(ctx, "Dungeon encounter started",
		"encounter_id", resp.GetEncounterId(),
		"room_id", room.ID,
		"entity_count", len(room.Entities),
	)

	return &DungeonStartOutput{
		EncounterID: resp.GetEncounterId(),
		Room:        room,
	}, nil
}
