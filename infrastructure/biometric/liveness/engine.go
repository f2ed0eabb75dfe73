package liveness

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
	"idguard.io/infrastructure/biometric"
	"idguard.io/infrastructure/logger"
)

// Engine runs per-frame anti-spoofing checks with OpenCV Haar cascades.
// Every verdict is derived from the single frame it was asked about; the
// only state carried between calls is the auxiliary blink history.
type Engine struct {
	faceCascade  gocv.CascadeClassifier
	eyeCascade   gocv.CascadeClassifier
	modelsLoaded bool
	blink        *BlinkTracker
}

// Service is the process-wide liveness engine, set up during startup.
var Service *Engine

func InitialiseLivenessService() error {
	engine, err := NewEngine()
	if err != nil {
		return err
	}
	Service = engine
	return nil
}

func NewEngine() (*Engine, error) {
	engine := &Engine{
		blink: NewBlinkTracker(),
	}
	if err := engine.loadModels(); err != nil {
		return nil, err
	}
	return engine, nil
}

func (engine *Engine) loadModels() error {
	cascadePath := os.Getenv("OPENCV_CASCADE_PATH")
	if cascadePath == "" {
		cascadePath = "./models/haarcascades"
	}

	engine.faceCascade = gocv.NewCascadeClassifier()
	faceCascadeFile := filepath.Join(cascadePath, "haarcascade_frontalface_default.xml")
	if !engine.faceCascade.Load(faceCascadeFile) {
		alternatives := []string{
			"haarcascade_frontalface_default.xml",
			"/usr/local/share/opencv4/haarcascades/haarcascade_frontalface_default.xml",
			"/usr/share/opencv4/haarcascades/haarcascade_frontalface_default.xml",
			"/opt/homebrew/share/opencv4/haarcascades/haarcascade_frontalface_default.xml",
		}
		loaded := false
		for _, alternative := range alternatives {
			if engine.faceCascade.Load(alternative) {
				loaded = true
				break
			}
		}
		if !loaded {
			return fmt.Errorf("failed to load face cascade classifier from %s or alternative paths", faceCascadeFile)
		}
	}

	engine.eyeCascade = gocv.NewCascadeClassifier()
	eyeCascadeFile := filepath.Join(cascadePath, "haarcascade_eye.xml")
	if !engine.eyeCascade.Load(eyeCascadeFile) {
		alternatives := []string{
			"haarcascade_eye.xml",
			"/usr/local/share/opencv4/haarcascades/haarcascade_eye.xml",
			"/usr/share/opencv4/haarcascades/haarcascade_eye.xml",
			"/opt/homebrew/share/opencv4/haarcascades/haarcascade_eye.xml",
		}
		loaded := false
		for _, alternative := range alternatives {
			if engine.eyeCascade.Load(alternative) {
				loaded = true
				break
			}
		}
		if !loaded {
			return fmt.Errorf("failed to load eye cascade classifier from %s or alternative paths", eyeCascadeFile)
		}
	}

	engine.modelsLoaded = true
	logger.Info("liveness cascade classifiers loaded")
	return nil
}

func (engine *Engine) Close() error {
	if !engine.modelsLoaded {
		return nil
	}
	engine.modelsLoaded = false
	if err := engine.faceCascade.Close(); err != nil {
		return err
	}
	return engine.eyeCascade.Close()
}

// Ready reports whether the cascade models are loaded.
func (engine *Engine) Ready() bool {
	if engine == nil {
		return false
	}
	return engine.modelsLoaded
}

// CheckLiveness runs the full anti-spoofing pipeline on one frame. A frame
// with no detectable face yields a not-live zero-confidence result together
// with ErrNoFaceDetected so callers can tell the conditions apart.
func (engine *Engine) CheckLiveness(frame []byte) (*Result, error) {
	img, err := decodeFrame(frame)
	if err != nil {
		return &Result{IsLive: false, Confidence: 0, TotalChecks: totalChecks}, err
	}
	defer img.Close()

	face, found := engine.detectFace(img)
	if !found {
		return &Result{IsLive: false, Confidence: 0, TotalChecks: totalChecks}, biometric.ErrNoFaceDetected
	}

	crop := img.Region(face)
	defer crop.Close()

	return scoreMetrics(engine.measure(crop)), nil
}

// DetectBlink reports whether the eyes look closed in this frame. Without a
// facial landmark source the eye cascade stands in for the aspect-ratio
// signal: a blink is assumed when fewer than two eyes are visible.
func (engine *Engine) DetectBlink(frame []byte) (*BlinkResult, error) {
	img, err := decodeFrame(frame)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	face, found := engine.detectFace(img)
	if !found {
		return nil, biometric.ErrNoFaceDetected
	}

	crop := img.Region(face)
	defer crop.Close()

	eyesVisible := engine.countEyes(crop)
	return engine.blink.ObserveEyeCount(eyesVisible), nil
}

// AnalyzeFrame returns every raw measurement plus the thresholds they are
// judged against. Debugging surface; the verdict endpoints stay authoritative.
func (engine *Engine) AnalyzeFrame(frame []byte) (*FrameAnalysis, error) {
	img, err := decodeFrame(frame)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	face, found := engine.detectFace(img)
	if !found {
		return &FrameAnalysis{FaceDetected: false}, biometric.ErrNoFaceDetected
	}

	crop := img.Region(face)
	defer crop.Close()

	metrics := engine.measure(crop)
	return &FrameAnalysis{
		FaceDetected: true,
		FaceLocation: &FaceLocation{
			X: face.Min.X,
			Y: face.Min.Y,
			W: face.Dx(),
			H: face.Dy(),
		},
		Metrics: &FrameMetrics{
			TextureScore: roundTo(metrics.LaplacianVariance, 2),
			BlurScore:    roundTo(metrics.LaplacianVariance, 2),
			ColorScore:   roundTo(metrics.SkinRatio, 3),
			MoireScore:   roundTo(metrics.MoireScore, 4),
			EyesDetected: metrics.EyeCount,
		},
		Thresholds: &FrameThresholds{
			TextureMin: textureThreshold,
			QualityMin: sharpnessThreshold,
			ColorMin:   skinRatioThreshold,
		},
	}, nil
}

type FaceLocation struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type FrameMetrics struct {
	TextureScore float64 `json:"texture_score"`
	BlurScore    float64 `json:"blur_score"`
	ColorScore   float64 `json:"color_score"`
	MoireScore   float64 `json:"moire_score"`
	EyesDetected int     `json:"eyes_detected"`
}

type FrameThresholds struct {
	TextureMin float64 `json:"texture_min"`
	QualityMin float64 `json:"quality_min"`
	ColorMin   float64 `json:"color_min"`
}

type FrameAnalysis struct {
	FaceDetected bool             `json:"face_detected"`
	FaceLocation *FaceLocation    `json:"face_location,omitempty"`
	Metrics      *FrameMetrics    `json:"metrics,omitempty"`
	Thresholds   *FrameThresholds `json:"thresholds,omitempty"`
}

func decodeFrame(frame []byte) (gocv.Mat, error) {
	img, err := gocv.IMDecode(frame, gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	if img.Empty() {
		img.Close()
		return gocv.Mat{}, fmt.Errorf("failed to decode frame: empty image")
	}
	return img, nil
}

// detectFace finds the largest face in the frame. Detection runs on the
// grayscale image with a floor of 80x80 pixels so distant background faces
// do not hijack the crop.
func (engine *Engine) detectFace(img gocv.Mat) (image.Rectangle, bool) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	faces := engine.faceCascade.DetectMultiScaleWithParams(
		gray,
		1.1,                 // scale factor
		5,                   // min neighbors
		0,                   // flags
		image.Point{80, 80}, // min size
		image.Point{},       // max size unbounded
	)
	if len(faces) == 0 {
		return image.Rectangle{}, false
	}

	largest := faces[0]
	maxArea := largest.Dx() * largest.Dy()
	for _, face := range faces[1:] {
		area := face.Dx() * face.Dy()
		if area > maxArea {
			largest = face
			maxArea = area
		}
	}
	return largest, true
}

func (engine *Engine) measure(crop gocv.Mat) Metrics {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(crop, &gray, gocv.ColorBGRToGray)

	return Metrics{
		LaplacianVariance: laplacianVariance(gray),
		SkinRatio:         skinRatio(crop),
		MoireScore:        moireScore(gray),
		EyeCount:          engine.countEyesGray(gray),
	}
}

// laplacianVariance measures texture and sharpness in one number. Smooth
// reproductions (prints, screens) flatten the Laplacian response.
func laplacianVariance(gray gocv.Mat) float64 {
	laplacian := gocv.NewMat()
	defer laplacian.Close()
	gocv.Laplacian(gray, &laplacian, gocv.MatTypeCV64F, 1, 1, 0, gocv.BorderDefault)

	rows := laplacian.Rows()
	cols := laplacian.Cols()
	if rows == 0 || cols == 0 {
		return 0
	}

	total := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			total += laplacian.GetDoubleAt(i, j)
		}
	}
	mean := total / float64(rows*cols)

	sumSquares := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			diff := laplacian.GetDoubleAt(i, j) - mean
			sumSquares += diff * diff
		}
	}
	return sumSquares / float64(rows*cols)
}

// skinRatio is the fraction of crop pixels whose YCrCb value falls in the
// skin band (Cr 133-173, Cb 77-127).
func skinRatio(crop gocv.Mat) float64 {
	ycrcb := gocv.NewMat()
	defer ycrcb.Close()
	gocv.CvtColor(crop, &ycrcb, gocv.ColorBGRToYCrCb)

	mask := gocv.NewMat()
	defer mask.Close()
	lower := gocv.NewScalar(0, 133, 77, 0)
	upper := gocv.NewScalar(255, 173, 127, 0)
	gocv.InRangeWithScalar(ycrcb, lower, upper, &mask)

	totalPixels := mask.Rows() * mask.Cols()
	if totalPixels == 0 {
		return 0
	}
	return float64(gocv.CountNonZero(mask)) / float64(totalPixels)
}

// moireScore is the share of spectral energy outside the low-frequency disc
// of radius min(h,w)/8 around the DC component. Screen re-captures leave
// periodic patterns that concentrate energy in the higher frequencies.
func moireScore(gray gocv.Mat) float64 {
	floatMat := gocv.NewMat()
	defer floatMat.Close()
	gray.ConvertTo(&floatMat, gocv.MatTypeCV32F)

	spectrum := gocv.NewMat()
	defer spectrum.Close()
	gocv.DFT(floatMat, &spectrum, gocv.DftComplexOutput)

	planes := gocv.Split(spectrum)
	defer planes[0].Close()
	defer planes[1].Close()

	magnitude := gocv.NewMat()
	defer magnitude.Close()
	gocv.Magnitude(planes[0], planes[1], &magnitude)

	rows := magnitude.Rows()
	cols := magnitude.Cols()
	radius := min(rows, cols) / 8

	total := 0.0
	low := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			value := float64(magnitude.GetFloatAt(i, j))
			total += value
			// wrapped distance from the DC component, equivalent to
			// measuring from the center of the shifted spectrum
			di := min(i, rows-i)
			dj := min(j, cols-j)
			if di*di+dj*dj <= radius*radius {
				low += value
			}
		}
	}
	return (total - low) / (total + 1e-6)
}

func (engine *Engine) countEyes(crop gocv.Mat) int {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(crop, &gray, gocv.ColorBGRToGray)
	return engine.countEyesGray(gray)
}

func (engine *Engine) countEyesGray(gray gocv.Mat) int {
	eyes := engine.eyeCascade.DetectMultiScaleWithParams(
		gray,
		1.1,           // scale factor
		3,             // min neighbors
		0,             // flags
		image.Point{}, // min size unbounded
		image.Point{}, // max size unbounded
	)
	return len(eyes)
}
