package biometric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	settings := &RecognitionSettings{
		matchTolerance:   DefaultMatchTolerance,
		extractionJitter: DefaultExtractionJitter,
	}

	assert.Equal(t, 0.5, settings.MatchTolerance())
	assert.Equal(t, 10, settings.ExtractionJitter())
}

func TestSetMatchToleranceBounds(t *testing.T) {
	tests := []struct {
		name      string
		tolerance float64
		wantErr   bool
	}{
		{name: "lower bound", tolerance: 0, wantErr: false},
		{name: "upper bound", tolerance: 1, wantErr: false},
		{name: "mid range", tolerance: 0.62, wantErr: false},
		{name: "below range", tolerance: -0.01, wantErr: true},
		{name: "above range", tolerance: 1.01, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &RecognitionSettings{matchTolerance: DefaultMatchTolerance}
			err := settings.SetMatchTolerance(tt.tolerance)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTolerance)
				// rejected values must leave the setting untouched
				assert.Equal(t, DefaultMatchTolerance, settings.MatchTolerance())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.tolerance, settings.MatchTolerance())
		})
	}
}

func TestSetExtractionJitterBounds(t *testing.T) {
	settings := &RecognitionSettings{extractionJitter: DefaultExtractionJitter}

	require.ErrorIs(t, settings.SetExtractionJitter(0), ErrInvalidJitter)
	require.ErrorIs(t, settings.SetExtractionJitter(-4), ErrInvalidJitter)
	assert.Equal(t, DefaultExtractionJitter, settings.ExtractionJitter())

	require.NoError(t, settings.SetExtractionJitter(1))
	assert.Equal(t, 1, settings.ExtractionJitter())
}

func TestSnapshotIsConsistent(t *testing.T) {
	settings := &RecognitionSettings{matchTolerance: 0.4, extractionJitter: 5}

	snapshot := settings.Snapshot()
	require.NoError(t, settings.SetMatchTolerance(0.9))
	require.NoError(t, settings.SetExtractionJitter(2))

	// the snapshot keeps the values read at snapshot time
	assert.Equal(t, 0.4, snapshot.MatchTolerance)
	assert.Equal(t, 5, snapshot.ExtractionJitter)
}
