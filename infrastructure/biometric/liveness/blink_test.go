package liveness

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveEARDetectsBlink(t *testing.T) {
	tracker := NewBlinkTracker()

	open := tracker.ObserveEAR(0.32)
	assert.False(t, open.BlinkDetected)
	require.NotNil(t, open.EyesOpen)
	assert.True(t, *open.EyesOpen)

	closed := tracker.ObserveEAR(0.18)
	assert.True(t, closed.BlinkDetected)
	require.NotNil(t, closed.EyeAspectRatio)
	assert.InDelta(t, 0.18, *closed.EyeAspectRatio, 1e-9)
	require.NotNil(t, closed.Threshold)
	assert.InDelta(t, 0.25, *closed.Threshold, 1e-9)
}

func TestObserveEARHistoryIsBounded(t *testing.T) {
	tracker := NewBlinkTracker()
	for i := 0; i < 25; i++ {
		tracker.ObserveEAR(0.3)
	}
	assert.Len(t, tracker.history, maxHistory)
}

func TestObserveEyeCountFallback(t *testing.T) {
	tracker := NewBlinkTracker()

	tests := []struct {
		name      string
		eyes      int
		wantBlink bool
	}{
		{name: "both eyes visible", eyes: 2, wantBlink: false},
		{name: "one eye visible", eyes: 1, wantBlink: true},
		{name: "no eyes visible", eyes: 0, wantBlink: true},
		{name: "extra detections", eyes: 3, wantBlink: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tracker.ObserveEyeCount(tt.eyes)
			assert.Equal(t, tt.wantBlink, result.BlinkDetected)
			require.NotNil(t, result.EyesVisible)
			assert.Equal(t, tt.eyes, *result.EyesVisible)
			assert.Equal(t, "eye_cascade_fallback", result.Method)
		})
	}
}

func TestEyeAspectRatio(t *testing.T) {
	// symmetric open eye: lid distances 2, width 4
	openEye := []image.Point{{0, 0}, {1, 1}, {3, 1}, {4, 0}, {3, -1}, {1, -1}}
	assert.InDelta(t, 0.5, EyeAspectRatio(openEye), 1e-9)

	// fully closed lids collapse the ratio to zero
	closedEye := []image.Point{{0, 0}, {1, 0}, {3, 0}, {4, 0}, {3, 0}, {1, 0}}
	assert.Zero(t, EyeAspectRatio(closedEye))

	// degenerate zero-width eye falls back to a neutral value
	degenerate := []image.Point{{0, 0}, {0, 1}, {0, 1}, {0, 0}, {0, -1}, {0, -1}}
	assert.InDelta(t, 0.3, EyeAspectRatio(degenerate), 1e-9)

	// too few points cannot be scored
	assert.Zero(t, EyeAspectRatio([]image.Point{{0, 0}, {1, 1}}))
}
