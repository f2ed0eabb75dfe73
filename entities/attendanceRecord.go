package entities

import (
	"fmt"
	"time"

	"idguard.io/application/utils"
)

// One attendance record per population per calendar day. The id is
// deterministic ({populationID}_{YYYY-MM-DD}) so repeated marks for the
// same day land on the same document.
type AttendanceRecord struct {
	PopulationID   string   `bson:"populationID" json:"populationID"`
	Date           string   `bson:"date" json:"date"`
	PresentMembers []string `bson:"presentMembers" json:"presentMembers"`
	AbsentMembers  []string `bson:"absentMembers" json:"absentMembers"`
	Closed         bool     `bson:"closed" json:"closed"`

	ID            string     `bson:"_id" json:"id"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
	DeletedAt     *time.Time `bson:"deletedAt" json:"deletedAt"`
	DeletedReason *string    `bson:"deletedReason" json:"deletedReason"`
}

// AttendanceRecordID builds the deterministic document id for a
// population's record on a given day.
func AttendanceRecordID(populationID string, date string) string {
	return fmt.Sprintf("%s_%s", populationID, date)
}

func (model AttendanceRecord) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			if model.PopulationID != "" && model.Date != "" {
				model.ID = AttendanceRecordID(model.PopulationID, model.Date)
			} else {
				model.ID = utils.GenerateULIDString()
			}
		}
	}
	model.UpdatedAt = now
	return &model
}
