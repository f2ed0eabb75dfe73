package dto

type LivenessCheckDTO struct {
	Image string `json:"image" validate:"required,frame_image"`
}

type BlinkCheckDTO struct {
	Image string `json:"image" validate:"required,frame_image"`
}

type FrameAnalysisDTO struct {
	Image string `json:"image" validate:"required,frame_image"`
}
