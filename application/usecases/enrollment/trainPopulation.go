package enrollment_usecases

import (
	"context"
	"errors"
	"time"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/constants"
	"idguard.io/application/repository"
	"idguard.io/application/utils"
	"idguard.io/infrastructure/biometric/extractor"
	"idguard.io/infrastructure/logger"
	signaturecache "idguard.io/infrastructure/signature_cache"
)

// TrainingSummary is the payload returned after a training run.
type TrainingSummary struct {
	PopulationID    string   `json:"populationId"`
	MembersTotal    int      `json:"membersTotal"`
	MembersEnrolled int      `json:"membersEnrolled"`
	FailedMembers   []string `json:"failedMembers,omitempty"`
	Durable         bool     `json:"durable"`
	TrainedAt       string   `json:"trainedAt"`
}

// TrainPopulationUseCase rebuilds a population's enrolled signature set
// from its member photos. Members whose photo cannot be fetched or yields
// no face are skipped; a run that enrolls nobody fails outright and the
// previous enrolled set is left untouched.
func TrainPopulationUseCase(ctx any, populationID string) (*TrainingSummary, error) {
	population, err := repository.PopulationRepo().FindByID(populationID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if population == nil {
		apperrors.NotFoundError(ctx, "population not found")
		return nil, errors.New("population not found")
	}
	if !extractor.Service.Ready() {
		err := errors.New("signature extractor is not initialised")
		apperrors.ExternalDependencyError(ctx, "dlib", "503", err)
		return nil, err
	}

	members, err := repository.MemberRepo().FindMany(map[string]interface{}{
		"populationID": populationID,
	})
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, err
	}
	if members == nil || len(*members) == 0 {
		apperrors.NotFoundError(ctx, "population has no members to enroll")
		return nil, errors.New("population has no members to enroll")
	}

	photos := make([]MemberPhoto, 0, len(*members))
	for _, member := range *members {
		photos = append(photos, MemberPhoto{
			MemberID: member.ID,
			PhotoRef: member.PhotoRef,
		})
	}

	runCtx := context.Background()
	enrolledSet, failedMembers := runMemberPipeline(runCtx, photos, resolveMemberImage, extractor.Service)

	if len(enrolledSet) == 0 {
		logger.Error("training run produced no usable signatures", logger.LoggerOptions{
			Key:  "populationID",
			Data: populationID,
		}, logger.LoggerOptions{
			Key:  "membersTotal",
			Data: len(photos),
		})
		apperrors.CustomError(ctx, "none of the member photos produced a usable face signature",
			utils.GetUIntPointer(constants.TRAINING_PRODUCED_NO_SIGNATURES))
		return nil, ErrZeroEnrolled
	}

	durable := true
	if err := repository.SignatureStore().Put(runCtx, populationID, enrolledSet); err != nil {
		if !errors.Is(err, signaturecache.ErrDurableWrite) {
			apperrors.UnknownError(ctx, err, nil)
			return nil, err
		}
		// the cache already logged the durable failure; the in-memory set serves
		durable = false
	}

	logger.Info("population training complete", logger.LoggerOptions{
		Key:  "populationID",
		Data: populationID,
	}, logger.LoggerOptions{
		Key:  "membersEnrolled",
		Data: len(enrolledSet),
	}, logger.LoggerOptions{
		Key:  "membersTotal",
		Data: len(photos),
	})

	return &TrainingSummary{
		PopulationID:    populationID,
		MembersTotal:    len(photos),
		MembersEnrolled: len(enrolledSet),
		FailedMembers:   failedMembers,
		Durable:         durable,
		TrainedAt:       time.Now().UTC().Format(time.RFC3339),
	}, nil
}
