package signaturecache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"idguard.io/infrastructure/biometric"
)

// fakeDurableStore serves canned sets and counts tier traffic.
type fakeDurableStore struct {
	sets    map[string]biometric.EnrolledSet
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func newFakeDurableStore() *fakeDurableStore {
	return &fakeDurableStore{sets: map[string]biometric.EnrolledSet{}}
}

func (store *fakeDurableStore) Load(_ context.Context, populationID string) (biometric.EnrolledSet, error) {
	store.loads++
	if store.loadErr != nil {
		return nil, store.loadErr
	}
	return store.sets[populationID].Copy(), nil
}

func (store *fakeDurableStore) Save(_ context.Context, populationID string, set biometric.EnrolledSet) error {
	store.saves++
	if store.saveErr != nil {
		return store.saveErr
	}
	store.sets[populationID] = set.Copy()
	return nil
}

func sampleSet(memberIDs ...string) biometric.EnrolledSet {
	set := biometric.EnrolledSet{}
	for i, memberID := range memberIDs {
		vector := make(biometric.SignatureVector, biometric.Dimensions)
		vector[0] = float64(i + 1)
		set[memberID] = vector
	}
	return set
}

func TestGetReadsThroughOnLocalMiss(t *testing.T) {
	durable := newFakeDurableStore()
	durable.sets["pop-1"] = sampleSet("m1", "m2")
	cache := New(durable)

	set, err := cache.Get(context.Background(), "pop-1")

	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.Equal(t, 1, durable.loads)

	// second read is served from the local tier
	set, err = cache.Get(context.Background(), "pop-1")
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.Equal(t, 1, durable.loads)
}

func TestGetUntrainedPopulationYieldsEmptySet(t *testing.T) {
	durable := newFakeDurableStore()
	cache := New(durable)

	set, err := cache.Get(context.Background(), "pop-1")

	require.NoError(t, err)
	assert.Empty(t, set)

	// empty results are not cached, so the next read probes the durable
	// tier again in case training landed there in the meantime
	_, err = cache.Get(context.Background(), "pop-1")
	require.NoError(t, err)
	assert.Equal(t, 2, durable.loads)
}

func TestGetPropagatesDurableReadFailure(t *testing.T) {
	durable := newFakeDurableStore()
	durable.loadErr = errors.New("connection reset")
	cache := New(durable)

	_, err := cache.Get(context.Background(), "pop-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "durable signature read failed")
}

func TestPutWritesBothTiers(t *testing.T) {
	durable := newFakeDurableStore()
	cache := New(durable)

	require.NoError(t, cache.Put(context.Background(), "pop-1", sampleSet("m1")))
	assert.Equal(t, 1, durable.saves)
	assert.Len(t, durable.sets["pop-1"], 1)

	set, err := cache.Get(context.Background(), "pop-1")
	require.NoError(t, err)
	assert.Len(t, set, 1)
	// the get after a put never touches the durable tier
	assert.Equal(t, 0, durable.loads)
}

func TestPutSurvivesDurableFailure(t *testing.T) {
	durable := newFakeDurableStore()
	durable.saveErr = errors.New("write timeout")
	cache := New(durable)

	err := cache.Put(context.Background(), "pop-1", sampleSet("m1", "m2"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDurableWrite))

	// the local tier still serves the set that failed to persist
	set, getErr := cache.Get(context.Background(), "pop-1")
	require.NoError(t, getErr)
	assert.Len(t, set, 2)
	assert.Equal(t, 0, durable.loads)
}

func TestPutReplacesWholesale(t *testing.T) {
	durable := newFakeDurableStore()
	cache := New(durable)

	require.NoError(t, cache.Put(context.Background(), "pop-1", sampleSet("m1", "m2", "m3")))
	require.NoError(t, cache.Put(context.Background(), "pop-1", sampleSet("m4")))

	set, err := cache.Get(context.Background(), "pop-1")
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Contains(t, set, "m4")
	assert.Len(t, durable.sets["pop-1"], 1)
}

func TestGetReturnsDefensiveCopy(t *testing.T) {
	durable := newFakeDurableStore()
	cache := New(durable)
	require.NoError(t, cache.Put(context.Background(), "pop-1", sampleSet("m1")))

	first, err := cache.Get(context.Background(), "pop-1")
	require.NoError(t, err)
	first["m1"][0] = 99
	first["intruder"] = make(biometric.SignatureVector, biometric.Dimensions)

	second, err := cache.Get(context.Background(), "pop-1")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, float64(1), second["m1"][0])
}

func TestPutCopiesItsInput(t *testing.T) {
	durable := newFakeDurableStore()
	cache := New(durable)
	source := sampleSet("m1")

	require.NoError(t, cache.Put(context.Background(), "pop-1", source))
	source["m1"][0] = 99

	set, err := cache.Get(context.Background(), "pop-1")
	require.NoError(t, err)
	assert.Equal(t, float64(1), set["m1"][0])
}
