package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the dungeon map store relies on.
// Both *redis.Client and miniredis-backed clients satisfy it.
type Client interface {
	redis.UniversalClient
}
