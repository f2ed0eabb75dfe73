package biometric

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offsetVector builds a vector whose distance from the zero vector is
// exactly the given value.
func offsetVector(distance float64) SignatureVector {
	return paddedVector(distance)
}

func TestFindBestMatchEmptySet(t *testing.T) {
	result, err := FindBestMatch(EnrolledSet{}, offsetVector(0), DefaultMatchTolerance)

	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Nil(t, result.MemberID)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, ReasonEmptyPopulation, result.Reason)
}

func TestFindBestMatchNilSet(t *testing.T) {
	result, err := FindBestMatch(nil, offsetVector(0), DefaultMatchTolerance)

	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Nil(t, result.MemberID)
}

func TestFindBestMatchPicksMinimumDistance(t *testing.T) {
	enrolled := EnrolledSet{
		"far":     offsetVector(0.45),
		"nearest": offsetVector(0.1),
		"mid":     offsetVector(0.3),
	}

	result, err := FindBestMatch(enrolled, offsetVector(0), DefaultMatchTolerance)

	require.NoError(t, err)
	assert.True(t, result.Matched)
	require.NotNil(t, result.MemberID)
	assert.Equal(t, "nearest", *result.MemberID)
	require.NotNil(t, result.Distance)
	assert.InDelta(t, 0.1, *result.Distance, 1e-9)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)
	assert.Equal(t, ReasonNone, result.Reason)
}

func TestFindBestMatchDistanceGate(t *testing.T) {
	enrolled := EnrolledSet{
		"member-a": offsetVector(0.6),
	}

	result, err := FindBestMatch(enrolled, offsetVector(0), 0.5)

	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Equal(t, ReasonDistanceExceedsTolerance, result.Reason)
	// nearest candidate is still reported on a miss
	require.NotNil(t, result.MemberID)
	assert.Equal(t, "member-a", *result.MemberID)
	require.NotNil(t, result.Distance)
	assert.InDelta(t, 0.6, *result.Distance, 1e-9)
	assert.InDelta(t, 0.4, result.Confidence, 1e-9)
}

func TestFindBestMatchConfidenceGate(t *testing.T) {
	// distance 0.6 passes a 0.8 tolerance but confidence 0.4 sits below the
	// fixed floor, so the second gate rejects it
	enrolled := EnrolledSet{
		"member-a": offsetVector(0.6),
	}

	result, err := FindBestMatch(enrolled, offsetVector(0), 0.8)

	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Equal(t, ReasonLowConfidence, result.Reason)
	require.NotNil(t, result.MemberID)
	assert.Equal(t, "member-a", *result.MemberID)
	assert.InDelta(t, 0.4, result.Confidence, 1e-9)
}

func TestFindBestMatchToleranceMonotonicity(t *testing.T) {
	enrolled := EnrolledSet{
		"member-a": offsetVector(0.2),
	}
	query := offsetVector(0)

	matchedAt := func(tolerance float64) bool {
		result, err := FindBestMatch(enrolled, query, tolerance)
		require.NoError(t, err)
		return result.Matched
	}

	require.True(t, matchedAt(0.25))
	// raising tolerance can never turn a match into a non-match
	for _, tolerance := range []float64{0.3, 0.5, 0.75, 1.0} {
		assert.True(t, matchedAt(tolerance), "tolerance %v", tolerance)
	}
}

func TestFindBestMatchDimensionMismatchIsFatal(t *testing.T) {
	enrolled := EnrolledSet{
		"member-a": make(SignatureVector, Dimensions-3),
	}

	_, err := FindBestMatch(enrolled, offsetVector(0), DefaultMatchTolerance)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestFindBestMatchExactToleranceBoundary(t *testing.T) {
	// a best distance exactly at tolerance passes the first gate
	enrolled := EnrolledSet{
		"member-a": offsetVector(0.4),
	}

	result, err := FindBestMatch(enrolled, offsetVector(0), 0.4)

	require.NoError(t, err)
	assert.True(t, result.Matched)
}
