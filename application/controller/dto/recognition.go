package dto

type TrainPopulationDTO struct {
	PopulationID string `json:"populationId" validate:"required,max=50"`
}

type RecognizeFaceDTO struct {
	PopulationID string `json:"populationId" validate:"required,max=50"`
	Image        string `json:"image" validate:"required,frame_image"`
}
