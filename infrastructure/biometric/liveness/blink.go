package liveness

import (
	"image"
	"math"
	"sync"

	"idguard.io/application/utils"
)

const (
	earThreshold = 0.25
	maxHistory   = 10
)

// BlinkResult reports one blink observation. The aspect-ratio fields are
// set on the landmark path, the visibility fields on the cascade fallback.
type BlinkResult struct {
	BlinkDetected  bool     `json:"blink_detected"`
	EyeAspectRatio *float64 `json:"eye_aspect_ratio,omitempty"`
	Threshold      *float64 `json:"threshold,omitempty"`
	EyesOpen       *bool    `json:"eyes_open,omitempty"`
	EyesVisible    *int     `json:"eyes_visible,omitempty"`
	Method         string   `json:"method,omitempty"`
}

// BlinkTracker keeps the bounded history of eye-aspect-ratio samples that
// blink decisions lean on. Safe for concurrent observers.
type BlinkTracker struct {
	mutex   sync.Mutex
	history []float64
}

func NewBlinkTracker() *BlinkTracker {
	return &BlinkTracker{
		history: make([]float64, 0, maxHistory),
	}
}

// ObserveEAR records one aspect-ratio sample for callers that can supply
// eye landmarks. A blink is an EAR dip below the threshold. Only the most
// recent ten samples are retained.
func (tracker *BlinkTracker) ObserveEAR(ear float64) *BlinkResult {
	tracker.mutex.Lock()
	tracker.history = append(tracker.history, ear)
	if len(tracker.history) > maxHistory {
		tracker.history = tracker.history[len(tracker.history)-maxHistory:]
	}
	tracker.mutex.Unlock()

	blinkDetected := ear < earThreshold
	return &BlinkResult{
		BlinkDetected:  blinkDetected,
		EyeAspectRatio: utils.GetFloat64Pointer(roundTo(ear, 3)),
		Threshold:      utils.GetFloat64Pointer(earThreshold),
		EyesOpen:       utils.GetBooleanPointer(!blinkDetected),
	}
}

// ObserveEyeCount is the cascade fallback used when no landmark source is
// available: a blink is assumed when fewer than two eyes are visible.
func (tracker *BlinkTracker) ObserveEyeCount(eyesVisible int) *BlinkResult {
	visible := eyesVisible
	return &BlinkResult{
		BlinkDetected: eyesVisible < 2,
		EyesVisible:   &visible,
		Method:        "eye_cascade_fallback",
	}
}

// EyeAspectRatio computes the six-point eye aspect ratio: the mean of the
// two vertical lid distances over the horizontal eye width. Values collapse
// toward zero as the eye closes.
func EyeAspectRatio(eye []image.Point) float64 {
	if len(eye) < 6 {
		return 0
	}
	vertical1 := pointDistance(eye[1], eye[5])
	vertical2 := pointDistance(eye[2], eye[4])
	horizontal := pointDistance(eye[0], eye[3])
	if horizontal == 0 {
		return 0.3
	}
	return (vertical1 + vertical2) / (2.0 * horizontal)
}

func pointDistance(a image.Point, b image.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
