package biometric

import "sync"

const (
	DefaultMatchTolerance   = 0.5
	DefaultExtractionJitter = 10
)

// SettingsSnapshot is a point-in-time copy of the runtime settings. A
// decision that spans several steps reads one snapshot up front so a
// concurrent update cannot split the call across two configurations.
type SettingsSnapshot struct {
	MatchTolerance   float64
	ExtractionJitter int
}

// RecognitionSettings holds the runtime-tunable recognition parameters.
// Updates apply to calls issued after the update completes.
type RecognitionSettings struct {
	mutex            sync.RWMutex
	matchTolerance   float64
	extractionJitter int
}

var Settings = &RecognitionSettings{
	matchTolerance:   DefaultMatchTolerance,
	extractionJitter: DefaultExtractionJitter,
}

func (settings *RecognitionSettings) MatchTolerance() float64 {
	settings.mutex.RLock()
	defer settings.mutex.RUnlock()
	return settings.matchTolerance
}

func (settings *RecognitionSettings) ExtractionJitter() int {
	settings.mutex.RLock()
	defer settings.mutex.RUnlock()
	return settings.extractionJitter
}

func (settings *RecognitionSettings) Snapshot() SettingsSnapshot {
	settings.mutex.RLock()
	defer settings.mutex.RUnlock()
	return SettingsSnapshot{
		MatchTolerance:   settings.matchTolerance,
		ExtractionJitter: settings.extractionJitter,
	}
}

// SetMatchTolerance rejects values outside [0, 1]. Invalid values are never
// coerced into range.
func (settings *RecognitionSettings) SetMatchTolerance(tolerance float64) error {
	if tolerance < 0 || tolerance > 1 {
		return ErrInvalidTolerance
	}
	settings.mutex.Lock()
	defer settings.mutex.Unlock()
	settings.matchTolerance = tolerance
	return nil
}

// SetExtractionJitter rejects values below 1. Invalid values are never
// coerced into range.
func (settings *RecognitionSettings) SetExtractionJitter(jitter int) error {
	if jitter < 1 {
		return ErrInvalidJitter
	}
	settings.mutex.Lock()
	defer settings.mutex.Unlock()
	settings.extractionJitter = jitter
	return nil
}
