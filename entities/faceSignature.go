package entities

import (
	"time"

	"idguard.io/application/utils"
)

// This holds the enrolled facial signatures for one population.
// Vectors maps member ids to fixed-length signature vectors and is
// replaced wholesale on each successful training run.
type FaceSignature struct {
	PopulationID string               `bson:"populationID" json:"populationID"`
	Vectors      map[string][]float64 `bson:"vectors" json:"vectors"`
	Dimensions   int                  `bson:"dimensions" json:"dimensions"`
	TrainedAt    time.Time            `bson:"trainedAt" json:"trainedAt"`

	ID            string     `bson:"_id" json:"id"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt     *time.Time `bson:"deletedAt" json:"deletedAt"`
	DeletedReason *string    `bson:"deletedReason" json:"deletedReason"`
}

func (model FaceSignature) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	model.UpdatedAt = now
	return &model
}
