package liveness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMetricsLiveFace(t *testing.T) {
	result := scoreMetrics(Metrics{
		LaplacianVariance: 120,
		SkinRatio:         0.55,
		MoireScore:        0.12,
		EyeCount:          2,
	})

	assert.True(t, result.IsLive)
	assert.Equal(t, 5, result.ChecksPassed)
	assert.Equal(t, 5, result.TotalChecks)
	// 0.25*1 + 0.20*1 + 0.20*0.55 + 0.20*1 + 0.15*(1-0.24)
	assert.InDelta(t, 0.874, result.Confidence, 1e-9)
}

func TestScoreMetricsChecksAloneAreInsufficient(t *testing.T) {
	// texture, color and moire pass (three checks) but the weighted
	// confidence stays far below the floor, so the frame is not live
	result := scoreMetrics(Metrics{
		LaplacianVariance: 16,
		SkinRatio:         0.31,
		MoireScore:        0.29,
		EyeCount:          0,
	})

	assert.Equal(t, 3, result.ChecksPassed)
	// 0.25*0.32 + 0.20*0.16 + 0.20*0.31 + 0 + 0.15*0.42
	assert.InDelta(t, 0.237, result.Confidence, 1e-9)
	assert.False(t, result.IsLive)
}

func TestScoreMetricsConfidenceAloneIsInsufficient(t *testing.T) {
	// confidence clears the floor but only texture and eyes pass, so the
	// three-checks requirement rejects the frame
	result := scoreMetrics(Metrics{
		LaplacianVariance: 49,
		SkinRatio:         0.29,
		MoireScore:        0.31,
		EyeCount:          2,
	})

	assert.Equal(t, 2, result.ChecksPassed)
	// 0.25*0.98 + 0.20*0.49 + 0.20*0.29 + 0.20 + 0.15*0.38
	assert.InDelta(t, 0.658, result.Confidence, 1e-9)
	assert.GreaterOrEqual(t, result.Confidence, 0.5)
	assert.False(t, result.IsLive)
}

func TestScoreMetricsIndividualChecks(t *testing.T) {
	tests := []struct {
		name    string
		metrics Metrics
		want    Checks
	}{
		{
			name: "all thresholds met at boundary",
			metrics: Metrics{
				LaplacianVariance: 50,
				SkinRatio:         0.3,
				MoireScore:        0.29,
				EyeCount:          1,
			},
			want: Checks{TexturePassed: true, QualityPassed: true, ColorPassed: true, EyesDetected: true, MoireLow: true},
		},
		{
			name: "texture passes below sharpness threshold",
			metrics: Metrics{
				LaplacianVariance: 15,
				SkinRatio:         0.1,
				MoireScore:        0.5,
				EyeCount:          0,
			},
			want: Checks{TexturePassed: true, QualityPassed: false, ColorPassed: false, EyesDetected: false, MoireLow: false},
		},
		{
			name: "moire at the ceiling fails",
			metrics: Metrics{
				LaplacianVariance: 100,
				SkinRatio:         0.5,
				MoireScore:        0.3,
				EyeCount:          2,
			},
			want: Checks{TexturePassed: true, QualityPassed: true, ColorPassed: true, EyesDetected: true, MoireLow: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scoreMetrics(tt.metrics)
			assert.Equal(t, tt.want, result.Checks)
		})
	}
}

func TestScoreMetricsScoresEchoMeasurements(t *testing.T) {
	result := scoreMetrics(Metrics{
		LaplacianVariance: 87.654321,
		SkinRatio:         0.41237,
		MoireScore:        0.123456,
		EyeCount:          2,
	})

	assert.InDelta(t, 87.65, result.Scores.Texture, 1e-9)
	// sharpness reuses the same measurement
	assert.Equal(t, result.Scores.Texture, result.Scores.Quality)
	assert.InDelta(t, 0.412, result.Scores.Color, 1e-9)
	assert.InDelta(t, 0.1235, result.Scores.Moire, 1e-9)
}

func TestScoreMetricsConfidenceNormalizersSaturate(t *testing.T) {
	// extreme texture cannot push its terms past their weights
	result := scoreMetrics(Metrics{
		LaplacianVariance: 100000,
		SkinRatio:         1.0,
		MoireScore:        0,
		EyeCount:          2,
	})

	// 0.25 + 0.20 + 0.20 + 0.20 + 0.15
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)
	require.True(t, result.IsLive)
}
