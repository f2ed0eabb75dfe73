package biometric

import "errors"

var (
	// ErrNoFaceDetected is returned when a frame contains no detectable face.
	// It is terminal for the call that received the frame, never for the batch
	// the call belongs to.
	ErrNoFaceDetected = errors.New("no face detected in the provided image")

	// ErrDimensionMismatch is returned when two signature vectors of different
	// lengths reach a distance computation. This is a programming or stored
	// data fault and is fatal to the operation that triggered it.
	ErrDimensionMismatch = errors.New("signature vector dimensions do not match")

	ErrInvalidTolerance = errors.New("match tolerance must be between 0 and 1")
	ErrInvalidJitter    = errors.New("extraction jitter must be at least 1")
)
