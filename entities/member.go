package entities

import (
	"time"

	"idguard.io/application/utils"
)

// This represents one enrolled person in a population.
// PhotoRef is either a blob name in the configured storage container,
// a full https URL or an inline data URL.
type Member struct {
	PopulationID  string  `bson:"populationID" json:"populationID"`
	Name          string  `bson:"name" json:"name"`
	SRN           string  `bson:"srn" json:"srn"`
	GuardianEmail *string `bson:"guardianEmail" json:"guardianEmail,omitempty"`
	PhotoRef      string  `bson:"photoRef" json:"photoRef"`

	ID            string     `bson:"_id" json:"id"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt     *time.Time `bson:"deletedAt" json:"deletedAt"`
	DeletedReason *string    `bson:"deletedReason" json:"deletedReason"`
}

func (model Member) ParseModel() any {
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
