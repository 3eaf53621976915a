package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/orchestrators/dungeon"
)

var rangeCmd = &cobra.Command{
	Use:   "range <session> <entity> <feet>",
	Short: "List the hexes an entity can reach",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		feet, err := strconv.Atoi(args[2])
		if err != nil {
			return errors.InvalidArgumentf("feet must be a number: %q", args[2])
		}

		return withPersistedService(cmd.Context(), func(ctx context.Context, svc dungeon.Service) error {
			out, err := svc.GetMovementRange(ctx, &dungeon.GetMovementRangeInput{
				SessionID:    args[0],
				EntityID:     args[1],
				MovementFeet: feet,
			})
			if err != nil {
				return err
			}

			return printJSON(map[string]any{
				"entity_id": args[1],
				"steps":     out.Steps,
				"count":     len(out.Hexes),
				"hexes":     out.Hexes,
			})
		})
	},
}

var pathCmd = &cobra.Command{
	Use:   "path <session> <entity> <x> <z>",
	Short: "Walk an entity toward a hex",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, errX := strconv.Atoi(args[2])
		z, errZ := strconv.Atoi(args[3])
		if errX != nil || errZ != nil {
			return errors.InvalidArgumentf("target must be two numbers, got %q %q", args[2], args[3])
		}
		to := hex.NewCube(x, z)

		return withPersistedService(cmd.Context(), func(ctx context.Context, svc dungeon.Service) error {
			out, err := svc.FindPath(ctx, &dungeon.FindPathInput{
				SessionID: args[0],
				EntityID:  args[1],
				To:        to,
			})
			if err != nil {
				return err
			}

			return printJSON(map[string]any{
				"entity_id": args[1],
				"to":        to,
				"complete":  out.Complete,
				"path":      out.Path,
			})
		})
	},
}

func withPersistedService(parent context.Context, fn func(context.Context, dungeon.Service) error) error {
	if err := requirePersistence(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
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

	return fn(ctx, svc)
}
