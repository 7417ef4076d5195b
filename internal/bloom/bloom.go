// Package bloom wraps the RedisBloom module for probabilistic first-seen
// checks on scanned codes.
package bloom

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// codesKey is the RedisBloom filter key for scanned-code uniqueness.
const codesKey = "scans:codes"

// Filter answers "has this code been scanned before" with a small, fixed
// memory footprint. False positives are possible; false negatives are not,
// so a code reported as new really is new.
type Filter struct {
	rdb *redis.Client
}

// NewFilter reserves the scanned-code filter and returns a handle to it.
// Reserving an existing filter is not an error worth failing over.
func NewFilter(ctx context.Context, rdb *redis.Client) *Filter {
	// RedisBloom (redis/go-redis/v9): BF.RESERVE creates the filter with
	// error rate 0.001 and capacity 1M. Requires redis-stack-server.
	if err := rdb.Do(ctx, "BF.RESERVE", codesKey, 0.001, 1_000_000).Err(); err != nil {
		log.Printf("bloom: reserve %s (may already exist): %v", codesKey, err)
	}
	return &Filter{rdb: rdb}
}

// Seen adds the code to the filter and reports whether it was probably
// there already. Errors degrade to "not seen" so the caller never blocks
// on the filter.
func (f *Filter) Seen(ctx context.Context, code string) bool {
	// RedisBloom (redis/go-redis/v9): BF.ADD returns 1 when the item was
	// new, 0 when it probably existed.
	res := f.rdb.Do(ctx, "BF.ADD", codesKey, code)
	if res.Err() != nil {
		log.Printf("bloom: BF.ADD: %v", res.Err())
		return false
	}

	// BF.ADD comes back as int or bool depending on the server version.
	if val, err := res.Int(); err == nil {
		return val == 0
	}
	if val, err := res.Bool(); err == nil {
		return !val
	}
	log.Printf("bloom: BF.ADD returned unexpected type")
	return false
}
