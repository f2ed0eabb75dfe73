package liveness

import "math"

// Fixed anti-spoofing thresholds. These are deliberately not configurable;
// tuning them per deployment defeats cross-deployment comparability of the
// recorded verdicts.
const (
	textureThreshold   = 15.0
	sharpnessThreshold = 50.0
	skinRatioThreshold = 0.3
	moireCeiling       = 0.3

	minChecksPassed   = 3
	minLiveConfidence = 0.5
	totalChecks       = 5
)

// Metrics holds the raw measurements taken over one face crop. The Laplacian
// variance feeds both the texture and the sharpness check, each against its
// own threshold.
type Metrics struct {
	LaplacianVariance float64
	SkinRatio         float64
	MoireScore        float64
	EyeCount          int
}

// Checks reports the pass/fail state of each individual anti-spoofing check.
type Checks struct {
	TexturePassed bool `json:"texture_passed"`
	QualityPassed bool `json:"quality_passed"`
	ColorPassed   bool `json:"color_passed"`
	EyesDetected  bool `json:"eyes_detected"`
	MoireLow      bool `json:"moire_low"`
}

// Scores echoes the raw measurements in the response shape clients consume.
type Scores struct {
	Texture float64 `json:"texture"`
	Quality float64 `json:"quality"`
	Color   float64 `json:"color"`
	Moire   float64 `json:"moire"`
}

// Result is the verdict for one frame.
type Result struct {
	IsLive       bool    `json:"is_live"`
	Confidence   float64 `json:"confidence"`
	Checks       Checks  `json:"checks"`
	Scores       Scores  `json:"scores"`
	ChecksPassed int     `json:"checks_passed"`
	TotalChecks  int     `json:"total_checks"`
}

// scoreMetrics turns raw measurements into a verdict. The verdict is
// conjunctive: at least three of the five checks must pass AND the weighted
// confidence must reach the floor. Either condition alone is insufficient.
func scoreMetrics(metrics Metrics) *Result {
	checks := Checks{
		TexturePassed: metrics.LaplacianVariance >= textureThreshold,
		QualityPassed: metrics.LaplacianVariance >= sharpnessThreshold,
		ColorPassed:   metrics.SkinRatio >= skinRatioThreshold,
		EyesDetected:  metrics.EyeCount >= 1,
		MoireLow:      metrics.MoireScore < moireCeiling,
	}

	checksPassed := 0
	for _, passed := range []bool{checks.TexturePassed, checks.QualityPassed, checks.ColorPassed, checks.EyesDetected, checks.MoireLow} {
		if passed {
			checksPassed++
		}
	}

	eyesWeight := 0.0
	if checks.EyesDetected {
		eyesWeight = 1.0
	}
	confidence := 0.25*math.Min(metrics.LaplacianVariance/50.0, 1.0) +
		0.20*math.Min(metrics.LaplacianVariance/100.0, 1.0) +
		0.20*metrics.SkinRatio +
		0.20*eyesWeight +
		0.15*(1.0-math.Min(metrics.MoireScore*2, 1.0))

	return &Result{
		IsLive:       checksPassed >= minChecksPassed && confidence >= minLiveConfidence,
		Confidence:   roundTo(confidence, 3),
		Checks:       checks,
		Scores: Scores{
			Texture: roundTo(metrics.LaplacianVariance, 2),
			Quality: roundTo(metrics.LaplacianVariance, 2),
			Color:   roundTo(metrics.SkinRatio, 3),
			Moire:   roundTo(metrics.MoireScore, 4),
		},
		ChecksPassed: checksPassed,
		TotalChecks:  totalChecks,
	}
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
