package main

import (
	"context"

	dnd5ev1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/dnd5e/api/v1alpha1"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/clients/encounter"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/orchestrators/dungeon"
)

var syncCmd = &cobra.Command{
	Use:   "sync [character_ids...]",
	Short: "Start an rpg-api dungeon encounter and map its first room",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	conn, err := encounter.Dial(serverAddr, nil)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	client, err := encounter.New(&encounter.Config{
		EncounterService: dnd5ev1alpha1.NewEncounterServiceClient(conn),
	})
	if err != nil {
		return err
	}

	started, err := client.DungeonStart(ctx, &encounter.DungeonStartInput{CharacterIDs: args})
	if err != nil {
		return err
	}

	repo, closeRepo, err := newRepository()
	if err != nil {
		return err
	}
	defer closeRepo()

	svc, err := newService(repo)
	if err != nil {
		return err
	}

	// the encounter ID doubles as the session ID so later queries can find it
	_, err = svc.StartSession(ctx, &dungeon.StartSessionInput{SessionID: started.EncounterID})
	if err != nil && !errors.IsAlreadyExists(err) {
		return err
	}

	revealed, err := svc.RevealRoom(ctx, &dungeon.RevealRoomInput{
		SessionID: started.EncounterID,
		Room:      started.Room,
	})
	if err != nil {
		return err
	}

	return printJSON(summarize(started.EncounterID, revealed.State))
}
