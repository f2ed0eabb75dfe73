package recognition_usecases

import (
	"context"
	"errors"
	"time"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/repository"
	"idguard.io/infrastructure/biometric"
)

// PopulationRecognitionStats reports how much of a roster the current
// enrolled set covers and whether the population can serve recognition.
type PopulationRecognitionStats struct {
	PopulationID        string     `json:"populationId"`
	TotalMembers        int        `json:"totalMembers"`
	EnrolledMembers     int        `json:"enrolledMembers"`
	TrainingCoverage    float64    `json:"trainingCoverage"`
	MatchTolerance      float64    `json:"matchTolerance"`
	ReadyForRecognition bool       `json:"readyForRecognition"`
	UntrainedMembers    []string   `json:"untrainedMembers,omitempty"`
	TrainedAt           *time.Time `json:"trainedAt,omitempty"`
}

// RecognitionStatsUseCase compares the roster against the enrolled set.
// The enrolled set is read through the signature cache so the stats report
// what recognition would actually serve, not just what is on disk.
func RecognitionStatsUseCase(ctx any, populationID string) (*PopulationRecognitionStats, error) {
	population, err := repository.PopulationRepo().FindByID(populationID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if population == nil {
		apperrors.NotFoundError(ctx, "population not found")
		return nil, errors.New("population not found")
	}

	members, err := repository.MemberRepo().FindMany(map[string]interface{}{
		"populationID": populationID,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}

	enrolled, err := repository.SignatureStore().Get(context.Background(), populationID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}

	stats := &PopulationRecognitionStats{
		PopulationID:        populationID,
		EnrolledMembers:     len(enrolled),
		MatchTolerance:      biometric.Settings.MatchTolerance(),
		ReadyForRecognition: len(enrolled) > 0,
	}
	if members != nil {
		stats.TotalMembers = len(*members)
		for _, member := range *members {
			if _, found := enrolled[member.ID]; !found {
				stats.UntrainedMembers = append(stats.UntrainedMembers, member.Name)
			}
		}
	}
	if stats.TotalMembers > 0 {
		stats.TrainingCoverage = float64(stats.EnrolledMembers) / float64(stats.TotalMembers)
	}

	signatureDoc, err := repository.FaceSignatureRepo().FindOneByFilter(map[string]interface{}{
		"populationID": populationID,
	})
	if err == nil && signatureDoc != nil {
		trainedAt := signatureDoc.TrainedAt
		stats.TrainedAt = &trainedAt
	}

	return stats, nil
}
