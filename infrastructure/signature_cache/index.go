package signaturecache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"idguard.io/infrastructure/biometric"
	"idguard.io/infrastructure/logger"
)

// ErrDurableWrite marks a put whose local write succeeded but whose durable
// write did not. The cached set is live and serving; callers decide whether
// to retry training or accept the weaker durability.
var ErrDurableWrite = errors.New("durable signature write failed")

// DurableStore is the persistence tier behind the in-memory cache.
type DurableStore interface {
	Load(ctx context.Context, populationID string) (biometric.EnrolledSet, error)
	Save(ctx context.Context, populationID string, set biometric.EnrolledSet) error
}

// SignatureCache keeps each population's enrolled set in memory with a
// durable tier behind it. Reads go through to the durable tier on a local
// miss; writes always land locally first and then flow through. Sets are
// replaced wholesale, never merged.
type SignatureCache struct {
	mutex   sync.RWMutex
	local   map[string]biometric.EnrolledSet
	durable DurableStore
}

func New(durable DurableStore) *SignatureCache {
	return &SignatureCache{
		local:   map[string]biometric.EnrolledSet{},
		durable: durable,
	}
}

// Get returns a copy of the population's enrolled set. A population with no
// stored signatures anywhere yields an empty set and no error; callers
// treat that as "not yet trained", not a fault.
func (cache *SignatureCache) Get(ctx context.Context, populationID string) (biometric.EnrolledSet, error) {
	cache.mutex.RLock()
	cached, found := cache.local[populationID]
	cache.mutex.RUnlock()
	if found {
		return cached.Copy(), nil
	}

	loaded, err := cache.durable.Load(ctx, populationID)
	if err != nil {
		return nil, fmt.Errorf("durable signature read failed: %w", err)
	}
	if len(loaded) == 0 {
		return biometric.EnrolledSet{}, nil
	}

	cache.mutex.Lock()
	cache.local[populationID] = loaded.Copy()
	cache.mutex.Unlock()

	return loaded, nil
}

// Put replaces the population's enrolled set. The local write always takes
// effect; a durable tier failure is reported as an ErrDurableWrite wrap so
// the caller can surface the degraded durability, but the put itself stands.
func (cache *SignatureCache) Put(ctx context.Context, populationID string, set biometric.EnrolledSet) error {
	cache.mutex.Lock()
	cache.local[populationID] = set.Copy()
	cache.mutex.Unlock()

	if err := cache.durable.Save(ctx, populationID, set); err != nil {
		logger.Warning("signature set cached locally but the durable write failed", logger.LoggerOptions{
			Key:  "populationID",
			Data: populationID,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return fmt.Errorf("%w: %s", ErrDurableWrite, err.Error())
	}
	return nil
}
