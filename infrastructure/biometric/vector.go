package biometric

import (
	"fmt"
	"math"
)

// Dimensions is the fixed length of every signature vector. The dlib
// face descriptor this service is built around is 128-dimensional.
const Dimensions = 128

// SignatureVector is an ordered sequence of Dimensions float64 components
// describing one face. Treat it as immutable once produced.
type SignatureVector []float64

// EnrolledSet maps member ids to their enrolled signature vectors.
type EnrolledSet map[string]SignatureVector

// NewSignatureVector validates raw components into a SignatureVector.
// The length must be exactly Dimensions and every component must be a
// finite number.
func NewSignatureVector(values []float64) (SignatureVector, error) {
	if len(values) != Dimensions {
		return nil, fmt.Errorf("expected %d components, got %d: %w", Dimensions, len(values), ErrDimensionMismatch)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("component %d is not a finite number", i)
		}
	}
	vector := make(SignatureVector, Dimensions)
	copy(vector, values)
	return vector, nil
}

// Distance returns the Euclidean distance between two signature vectors.
// Symmetric and deterministic. Vectors of different lengths produce
// ErrDimensionMismatch.
func Distance(a SignatureVector, b SignatureVector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum), nil
}

// Confidence derives the match confidence for a distance, clamped to [0, 1].
func Confidence(distance float64) float64 {
	confidence := 1 - distance
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

// Copy returns an independent copy of the vector.
func (vector SignatureVector) Copy() SignatureVector {
	if vector == nil {
		return nil
	}
	duplicate := make(SignatureVector, len(vector))
	copy(duplicate, vector)
	return duplicate
}

// Copy returns an independent copy of the set. Vectors are copied too so
// callers can never alias the source's backing arrays.
func (set EnrolledSet) Copy() EnrolledSet {
	if set == nil {
		return nil
	}
	duplicate := make(EnrolledSet, len(set))
	for memberID, vector := range set {
		duplicate[memberID] = vector.Copy()
	}
	return duplicate
}
