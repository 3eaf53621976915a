package main

import (
	"strings"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-dungeon-map/internal/redis"
	dungeonmaps "github.com/KirkDiggler/rpg-dungeon-map/internal/repositories/dungeon_maps"
)

// newRepository returns the redis store when --redis is set and an
// in-memory store otherwise. The returned func releases the connection.
func newRepository() (dungeonmaps.Repository, func(), error) {
	if redisAddr == "" {
		return dungeonmaps.NewInMemory(), func() {}, nil
	}

	var (
		client redisclient.Client
		err    error
	)
	if strings.Contains(redisAddr, "://") {
		client, err = redisclient.ParseURL(redisAddr)
	} else {
		client, err = redisclient.NewClient(redisAddr, nil)
	}
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid --redis")
	}

	repo, err := dungeonmaps.NewRedisRepository(&dungeonmaps.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return repo, func() { _ = client.Close() }, nil
}

// newService wires the dungeon orchestrator over repo
func newService(repo dungeonmaps.Repository) (dungeon.Service, error) {
	return dungeon.NewOrchestrator(&dungeon.Config{
		Repository:  repo,
		IDGenerator: idgen.NewUUID("dungeon"),
	})
}

// requirePersistence rejects queries that would only ever see an empty
// in-memory store
func requirePersistence() error {
	if redisAddr == "" {
		return errors.FailedPrecondition("--redis is required to query a saved session")
	}
	return nil
}
