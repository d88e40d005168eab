// Package cache holds the read-through cache used for wallet listings and
// customer lookups.
//
// Entries belong to a key family (one per customer listing or lookup) and are
// stored under the family's current generation. Invalidation bumps the
// generation instead of deleting, so a reader that loaded from storage before
// a commit and writes after it lands in a generation nobody reads again.
package cache

import (
	"context"
	"fmt"
)

// Cache stores JSON encoded values by key. A miss is reported as found=false
// with a nil error.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error

	// Generation returns the current generation of family, zero if it was
	// never bumped.
	Generation(ctx context.Context, family string) (int64, error)
	// Bump orphans every entry written under the current generation of family.
	Bump(ctx context.Context, family string) error

	HealthCheck(ctx context.Context) error
}

// Prefixes covers every key this service writes.
var Prefixes = []string{"wallets:", "customer:"}

// GenerateKey builds keys of the form entity:keyType:value.
func GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// WalletsKey is the family of a customer's wallet listing.
func WalletsKey(customerID uint) string {
	return GenerateKey("wallets", "customer", customerID)
}

// CustomerKey is the family of a customer looked up by internal id.
func CustomerKey(customerID uint) string {
	return GenerateKey("customer", "id", customerID)
}

// EntryKey is where family's entry lives in generation gen.
func EntryKey(family string, gen int64) string {
	return fmt.Sprintf("%s:v%d", family, gen)
}

// GenerationKey holds the generation counter of family.
func GenerationKey(family string) string {
	return family + ":gen"
}

// CurrentKey returns the entry key of family's current generation. It must be
// called before the value is loaded from storage; the error means the entry
// should be neither read nor written.
func CurrentKey(ctx context.Context, c Cache, family string) (string, error) {
	gen, err := c.Generation(ctx, family)
	if err != nil {
		return "", err
	}
	return EntryKey(family, gen), nil
}

// Noop is used when no cache is configured. Every read misses.
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, interface{}) error         { return nil }
func (Noop) Generation(context.Context, string) (int64, error)      { return 0, nil }
func (Noop) Bump(context.Context, string) error                     { return nil }
func (Noop) HealthCheck(context.Context) error                      { return nil }
