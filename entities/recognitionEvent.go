package entities

import (
	"time"

	"idguard.io/application/utils"
)

type RecognitionEvent struct {
	PopulationID string   `bson:"populationID" json:"populationID"`
	MemberID     *string  `bson:"memberID" json:"memberID"`
	Matched      bool     `bson:"matched" json:"matched"`
	Confidence   float64  `bson:"confidence" json:"confidence"`
	Distance     *float64 `bson:"distance" json:"distance"`
	Reason       string   `bson:"reason" json:"reason"`
	LivenessPass bool     `bson:"livenessPass" json:"livenessPass"`

	ID            string     `bson:"_id" json:"id"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt     *time.Time `bson:"deletedAt" json:"deletedAt"`
	DeletedReason *string    `bson:"deletedReason" json:"deletedReason"`
}

func (model RecognitionEvent) ParseModel() any {
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
