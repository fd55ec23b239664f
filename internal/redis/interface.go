package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on an interface
// that swaps cleanly for miniredis-backed clients in tests.
type Client interface {
	redis.UniversalClient
}
