package dto

// Both fields are optional so a caller can tune either knob on its own.
// Out-of-range values are rejected, never clamped.
type UpdateRecognitionSettingsDTO struct {
	MatchTolerance   *float64 `json:"matchTolerance" validate:"omitempty,gte=0,lte=1"`
	ExtractionJitter *int     `json:"extractionJitter" validate:"omitempty,gte=1"`
}
