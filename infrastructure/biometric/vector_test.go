package biometric

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paddedVector(components ...float64) SignatureVector {
	vector := make(SignatureVector, Dimensions)
	copy(vector, components)
	return vector
}

func TestNewSignatureVector(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{
			name:    "valid full-length vector",
			values:  make([]float64, Dimensions),
			wantErr: false,
		},
		{
			name:    "too short",
			values:  make([]float64, Dimensions-1),
			wantErr: true,
		},
		{
			name:    "too long",
			values:  make([]float64, Dimensions+1),
			wantErr: true,
		},
		{
			name: "rejects NaN",
			values: func() []float64 {
				v := make([]float64, Dimensions)
				v[17] = math.NaN()
				return v
			}(),
			wantErr: true,
		},
		{
			name: "rejects Inf",
			values: func() []float64 {
				v := make([]float64, Dimensions)
				v[63] = math.Inf(1)
				return v
			}(),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vector, err := NewSignatureVector(tt.values)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, vector, Dimensions)
		})
	}
}

func TestNewSignatureVectorCopiesInput(t *testing.T) {
	raw := make([]float64, Dimensions)
	raw[0] = 1.5
	vector, err := NewSignatureVector(raw)
	require.NoError(t, err)

	raw[0] = 99
	assert.Equal(t, 1.5, vector[0])
}

func TestDistanceSymmetry(t *testing.T) {
	a := paddedVector(0.1, 0.5, -0.3, 0.9)
	b := paddedVector(-0.2, 0.4, 0.7, 0.1)

	ab, err := Distance(a, b)
	require.NoError(t, err)
	ba, err := Distance(b, a)
	require.NoError(t, err)

	assert.InDelta(t, ab, ba, 1e-12)
}

func TestDistanceKnownValue(t *testing.T) {
	a := paddedVector(3, 0)
	b := paddedVector(0, 4)

	distance, err := Distance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, distance, 1e-12)
}

func TestDistanceIdenticalVectorsIsZero(t *testing.T) {
	a := paddedVector(0.25, -0.75, 0.5)

	distance, err := Distance(a, a)
	require.NoError(t, err)
	assert.Zero(t, distance)
}

func TestDistanceDimensionMismatch(t *testing.T) {
	a := make(SignatureVector, Dimensions)
	b := make(SignatureVector, Dimensions-1)

	_, err := Distance(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestConfidenceDistanceIdentity(t *testing.T) {
	for _, distance := range []float64{0, 0.1, 0.25, 0.5, 0.73, 1.0, 1.4, 2.0} {
		expected := 1 - distance
		if expected < 0 {
			expected = 0
		}
		assert.InDelta(t, expected, Confidence(distance), 1e-6, "distance %v", distance)
	}
}

func TestEnrolledSetCopyIsIndependent(t *testing.T) {
	original := EnrolledSet{
		"member-a": paddedVector(0.5),
	}
	duplicate := original.Copy()

	duplicate["member-a"][0] = 42
	duplicate["member-b"] = paddedVector(1)

	assert.Equal(t, 0.5, original["member-a"][0])
	assert.Len(t, original, 1)
}
