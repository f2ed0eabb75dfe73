package enrollment_usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"idguard.io/infrastructure/biometric"
)

type fakeExtractor struct {
	failFor map[string]bool
}

func (extractor *fakeExtractor) Extract(image []byte) (biometric.SignatureVector, error) {
	if extractor.failFor[string(image)] {
		return nil, biometric.ErrNoFaceDetected
	}
	components := make([]float64, biometric.Dimensions)
	components[0] = float64(len(image))
	vector, err := biometric.NewSignatureVector(components)
	if err != nil {
		return nil, err
	}
	return vector, nil
}

func roster(count int) []MemberPhoto {
	members := make([]MemberPhoto, 0, count)
	for i := 0; i < count; i++ {
		members = append(members, MemberPhoto{
			MemberID: fmt.Sprintf("member-%d", i),
			PhotoRef: fmt.Sprintf("photos/member-%d.jpg", i),
		})
	}
	return members
}

func TestAcquireImagesIsolatesFailures(t *testing.T) {
	members := roster(5)
	failing := map[string]bool{
		members[1].PhotoRef: true,
		members[3].PhotoRef: true,
	}
	fetch := func(ctx context.Context, photoRef string) ([]byte, error) {
		if failing[photoRef] {
			return nil, errors.New("photo store unreachable")
		}
		return []byte(photoRef), nil
	}

	acquired := acquireImages(context.Background(), members, fetch)

	require.Len(t, acquired, 5)
	for i, item := range acquired {
		assert.Equal(t, members[i].MemberID, item.member.MemberID)
		if failing[members[i].PhotoRef] {
			assert.Error(t, item.err)
			assert.Nil(t, item.image)
		} else {
			assert.NoError(t, item.err)
			assert.Equal(t, []byte(members[i].PhotoRef), item.image)
		}
	}
}

func TestAcquireImagesRunsWholeBatchDespiteEarlyFailure(t *testing.T) {
	members := roster(20)
	var fetched int32
	fetch := func(ctx context.Context, photoRef string) ([]byte, error) {
		atomic.AddInt32(&fetched, 1)
		return nil, errors.New("always down")
	}

	acquired := acquireImages(context.Background(), members, fetch)

	assert.EqualValues(t, 20, atomic.LoadInt32(&fetched))
	for _, item := range acquired {
		assert.Error(t, item.err)
	}
}

func TestAcquireImagesHonoursConcurrencyCap(t *testing.T) {
	members := roster(32)
	var mutex sync.Mutex
	inFlight := 0
	peak := 0
	gate := make(chan struct{})

	fetch := func(ctx context.Context, photoRef string) ([]byte, error) {
		mutex.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mutex.Unlock()

		<-gate

		mutex.Lock()
		inFlight--
		mutex.Unlock()
		return []byte(photoRef), nil
	}

	go func() {
		close(gate)
	}()
	acquireImages(context.Background(), members, fetch)

	mutex.Lock()
	defer mutex.Unlock()
	assert.LessOrEqual(t, peak, acquisitionConcurrency)
}

func TestRunMemberPipelinePartialEnrollment(t *testing.T) {
	members := roster(5)
	failing := map[string]bool{
		members[0].PhotoRef: true,
		members[4].PhotoRef: true,
	}
	fetch := func(ctx context.Context, photoRef string) ([]byte, error) {
		if failing[photoRef] {
			return nil, errors.New("photo store unreachable")
		}
		return []byte(photoRef), nil
	}

	set, failed := runMemberPipeline(context.Background(), members, fetch, &fakeExtractor{})

	assert.Len(t, set, 3)
	assert.ElementsMatch(t, []string{members[0].MemberID, members[4].MemberID}, failed)
	for _, member := range []MemberPhoto{members[1], members[2], members[3]} {
		assert.Contains(t, set, member.MemberID)
	}
}

func TestRunMemberPipelineSkipsExtractionFailures(t *testing.T) {
	members := roster(3)
	fetch := func(ctx context.Context, photoRef string) ([]byte, error) {
		return []byte(photoRef), nil
	}
	extract := &fakeExtractor{failFor: map[string]bool{
		members[2].PhotoRef: true,
	}}

	set, failed := runMemberPipeline(context.Background(), members, fetch, extract)

	assert.Len(t, set, 2)
	assert.Equal(t, []string{members[2].MemberID}, failed)
}

func TestRunMemberPipelineAllFailuresYieldsEmptySet(t *testing.T) {
	members := roster(5)
	fetch := func(ctx context.Context, photoRef string) ([]byte, error) {
		return nil, errors.New("photo store unreachable")
	}

	set, failed := runMemberPipeline(context.Background(), members, fetch, &fakeExtractor{})

	assert.Empty(t, set)
	assert.Len(t, failed, 5)
}

func TestRunMemberPipelineEmptyRoster(t *testing.T) {
	set, failed := runMemberPipeline(context.Background(), nil, func(ctx context.Context, photoRef string) ([]byte, error) {
		t.Fatal("fetch must not be called for an empty roster")
		return nil, nil
	}, &fakeExtractor{})

	assert.Empty(t, set)
	assert.Empty(t, failed)
}
