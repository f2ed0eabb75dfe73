package entities

import (
	"time"

	"idguard.io/application/utils"
)

// This represents one enrollable roster, e.g. a class
type Population struct {
	Name      string `bson:"name" json:"name"`
	Subject   string `bson:"subject" json:"subject"`
	OwnerID   string `bson:"ownerID" json:"ownerID"`
	OwnerName string `bson:"ownerName" json:"ownerName"`

	ID            string     `bson:"_id" json:"id"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt     *time.Time `bson:"deletedAt" json:"deletedAt"`
	DeletedReason *string    `bson:"deletedReason" json:"deletedReason"`
}

func (model Population) ParseModel() any {
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
