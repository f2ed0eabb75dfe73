package biometric

// UnmatchedReason explains why the best candidate was rejected.
type UnmatchedReason string

const (
	ReasonNone                     UnmatchedReason = ""
	ReasonEmptyPopulation          UnmatchedReason = "empty_population"
	ReasonDistanceExceedsTolerance UnmatchedReason = "distance_exceeds_tolerance"
	ReasonLowConfidence            UnmatchedReason = "low_confidence"
)

// minMatchConfidence is the fixed floor a candidate's confidence must clear
// after passing the distance gate. Not configurable.
const minMatchConfidence = 0.5

// MatchResult reports the outcome of matching one query vector against an
// enrolled set. On a miss the best candidate's id, confidence and distance
// are still populated so callers can report how close the nearest member was.
type MatchResult struct {
	Matched    bool
	MemberID   *string
	Confidence float64
	Distance   *float64
	Reason     UnmatchedReason
}

// FindBestMatch compares the query against every enrolled vector and decides
// on the member with the smallest Euclidean distance. Two gates are applied
// in order: the best distance must not exceed tolerance, and the derived
// confidence must reach the fixed confidence floor. An empty enrolled set is
// a valid input and yields an unmatched result with zero confidence. A
// dimension mismatch against any enrolled vector fails the whole call.
func FindBestMatch(enrolled EnrolledSet, query SignatureVector, tolerance float64) (MatchResult, error) {
	if len(enrolled) == 0 {
		return MatchResult{
			Matched:    false,
			MemberID:   nil,
			Confidence: 0.0,
			Reason:     ReasonEmptyPopulation,
		}, nil
	}

	var bestID string
	bestDistance := -1.0
	for memberID, candidate := range enrolled {
		distance, err := Distance(query, candidate)
		if err != nil {
			return MatchResult{}, err
		}
		if bestDistance < 0 || distance < bestDistance {
			bestDistance = distance
			bestID = memberID
		}
	}

	confidence := Confidence(bestDistance)
	result := MatchResult{
		MemberID:   &bestID,
		Confidence: confidence,
		Distance:   &bestDistance,
	}

	if bestDistance > tolerance {
		result.Matched = false
		result.Reason = ReasonDistanceExceedsTolerance
		return result, nil
	}
	if confidence < minMatchConfidence {
		result.Matched = false
		result.Reason = ReasonLowConfidence
		return result, nil
	}

	result.Matched = true
	result.Reason = ReasonNone
	return result, nil
}
