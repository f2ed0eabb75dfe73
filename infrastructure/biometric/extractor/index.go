package extractor

import (
	"fmt"
	"os"
	"sync"

	"github.com/Kagami/go-face"
	"idguard.io/infrastructure/biometric"
	"idguard.io/infrastructure/logger"
)

// go-face detector defaults, kept explicit so the jitter count can vary
// independently.
const (
	minFaceSize = 150
	facePadding = 0.25
)

// DlibExtractor produces fixed-length signature vectors with dlib's ResNet
// face descriptor through go-face. Jittering controls how many perturbed
// copies of the face are averaged per extraction; more jitter means more
// stable vectors and slower extraction.
type DlibExtractor struct {
	mutex      sync.RWMutex
	recognizer *face.Recognizer
	modelDir   string
	jitter     int
}

// Service is the process-wide extractor, set up during startup.
var Service *DlibExtractor

func InitialiseExtractor() error {
	modelDir := os.Getenv("DLIB_MODELS_PATH")
	if modelDir == "" {
		modelDir = "./models/dlib"
	}
	extractor, err := NewDlibExtractor(modelDir, biometric.Settings.ExtractionJitter())
	if err != nil {
		return err
	}
	Service = extractor
	logger.Info("dlib signature extractor initialised", logger.LoggerOptions{
		Key:  "modelDir",
		Data: modelDir,
	})
	return nil
}

func NewDlibExtractor(modelDir string, jitter int) (*DlibExtractor, error) {
	if jitter < 1 {
		return nil, biometric.ErrInvalidJitter
	}
	recognizer, err := face.NewRecognizerWithConfig(modelDir, minFaceSize, facePadding, jitter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise dlib recognizer: %w", err)
	}
	return &DlibExtractor{
		recognizer: recognizer,
		modelDir:   modelDir,
		jitter:     jitter,
	}, nil
}

// Extract runs face detection on the image and returns the signature vector
// of the largest face found. ErrNoFaceDetected when the image has none.
func (extractor *DlibExtractor) Extract(image []byte) (biometric.SignatureVector, error) {
	extractor.mutex.RLock()
	defer extractor.mutex.RUnlock()

	faces, err := extractor.recognizer.Recognize(image)
	if err != nil {
		return nil, fmt.Errorf("face recognition failed: %w", err)
	}
	if len(faces) == 0 {
		return nil, biometric.ErrNoFaceDetected
	}

	largest := faces[0]
	maxArea := largest.Rectangle.Dx() * largest.Rectangle.Dy()
	for _, candidate := range faces[1:] {
		area := candidate.Rectangle.Dx() * candidate.Rectangle.Dy()
		if area > maxArea {
			largest = candidate
			maxArea = area
		}
	}

	components := make([]float64, biometric.Dimensions)
	for i, component := range largest.Descriptor {
		components[i] = float64(component)
	}
	return biometric.NewSignatureVector(components)
}

// SetJittering swaps in a recognizer built with the new jitter count.
// In-flight extractions finish on the old recognizer before the swap.
func (extractor *DlibExtractor) SetJittering(jitter int) error {
	if jitter < 1 {
		return biometric.ErrInvalidJitter
	}

	extractor.mutex.Lock()
	defer extractor.mutex.Unlock()
	if jitter == extractor.jitter {
		return nil
	}

	recognizer, err := face.NewRecognizerWithConfig(extractor.modelDir, minFaceSize, facePadding, jitter)
	if err != nil {
		return fmt.Errorf("failed to rebuild dlib recognizer: %w", err)
	}
	extractor.recognizer.Close()
	extractor.recognizer = recognizer
	extractor.jitter = jitter
	return nil
}

// Jittering returns the jitter count of the active recognizer.
func (extractor *DlibExtractor) Jittering() int {
	extractor.mutex.RLock()
	defer extractor.mutex.RUnlock()
	return extractor.jitter
}

func (extractor *DlibExtractor) Ready() bool {
	if extractor == nil {
		return false
	}
	extractor.mutex.RLock()
	defer extractor.mutex.RUnlock()
	return extractor.recognizer != nil
}

func (extractor *DlibExtractor) Close() {
	extractor.mutex.Lock()
	defer extractor.mutex.Unlock()
	if extractor.recognizer != nil {
		extractor.recognizer.Close()
		extractor.recognizer = nil
	}
}
