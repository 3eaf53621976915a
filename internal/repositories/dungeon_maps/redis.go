package dungeonmaps

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-dungeon-map/internal/redis"
)

const (
	// Key pattern: dungeon_map:{session_id}
	mapKeyPrefix = "dungeon_map:"
	defaultTTL   = 24 * time.Hour
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration // Defaults to 24h
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed dungeon map repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}

	snapshot := &Snapshot{
		SessionID: input.SessionID,
		State:     input.State.Clone(),
		UpdatedAt: r.clock.Now(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal dungeon map")
	}

	if err := r.client.Set(ctx, mapKeyPrefix+input.SessionID, data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save dungeon map")
	}

	return &SaveOutput{Snapshot: snapshot}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	result, err := r.client.Get(ctx, mapKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("dungeon map session %s not found", input.SessionID)
		}
		return nil, errors.Wrapf(err, "failed to get dungeon map")
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(result), &snapshot); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal dungeon map").
			WithMeta("session_id", input.SessionID)
	}

	// Older snapshots may miss collections; normalise through Clone
	snapshot.State = snapshot.State.Clone()

	return &GetOutput{Snapshot: &snapshot}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	deleted, err := r.client.Del(ctx, mapKeyPrefix+input.SessionID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete dungeon map")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("dungeon map session %s not found", input.SessionID)
	}

	return &DeleteOutput{Success: true}, nil
}
