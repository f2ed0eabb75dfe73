package recognition_usecases

import (
	"context"
	"errors"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/constants"
	"idguard.io/application/repository"
	"idguard.io/application/utils"
	"idguard.io/entities"
	"idguard.io/infrastructure/biometric"
	"idguard.io/infrastructure/biometric/extractor"
	"idguard.io/infrastructure/biometric/liveness"
	"idguard.io/infrastructure/database/repository/cache"
	"idguard.io/infrastructure/logger"
)

// Outcome reasons for the paths the match engine never sees.
const (
	ReasonNoFaceDetected       = "no_face_detected"
	ReasonSpoofSuspected       = "spoof_suspected"
	ReasonPopulationNotTrained = "population_not_trained"
)

// RecognitionOutcome is the full verdict for one capture: the liveness
// detail that gated the attempt plus the match decision. On a miss the
// nearest candidate's confidence and distance are still reported so
// operators can judge how close the call was.
type RecognitionOutcome struct {
	PopulationID string           `json:"populationId"`
	Matched      bool             `json:"matched"`
	MemberID     *string          `json:"memberId,omitempty"`
	MemberName   *string          `json:"memberName,omitempty"`
	Confidence   float64          `json:"confidence"`
	Distance     *float64         `json:"distance,omitempty"`
	Reason       string           `json:"reason,omitempty"`
	Liveness     *liveness.Result `json:"liveness,omitempty"`
}

// RecognizeFaceUseCase authenticates one captured frame against a
// population's enrolled signatures. Liveness gates first; a spoof verdict
// never reaches the match engine. The returned response code, when set,
// tells the client which dialog to show.
func RecognizeFaceUseCase(ctx any, populationID string, frame []byte) (*RecognitionOutcome, *uint, error) {
	population, err := repository.PopulationRepo().FindByID(populationID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, nil, err
	}
	if population == nil {
		apperrors.NotFoundError(ctx, "population not found")
		return nil, nil, errors.New("population not found")
	}
	if !liveness.Service.Ready() || !extractor.Service.Ready() {
		err := errors.New("biometric services are not initialised")
		apperrors.ExternalDependencyError(ctx, "biometric", "503", err)
		return nil, nil, err
	}

	cache.Cache.IncrementField("recognition-processed", 1)

	liveResult, livenessErr := liveness.Service.CheckLiveness(frame)
	if livenessErr != nil {
		if !errors.Is(livenessErr, biometric.ErrNoFaceDetected) {
			apperrors.UnknownError(ctx, livenessErr, nil)
			return nil, nil, livenessErr
		}
		outcome := &RecognitionOutcome{
			PopulationID: populationID,
			Matched:      false,
			Reason:       ReasonNoFaceDetected,
			Liveness:     liveResult,
		}
		recordRecognitionEvent(populationID, nil, outcome)
		return outcome, nil, nil
	}
	if !liveResult.IsLive {
		outcome := &RecognitionOutcome{
			PopulationID: populationID,
			Matched:      false,
			Reason:       ReasonSpoofSuspected,
			Liveness:     liveResult,
		}
		recordRecognitionEvent(populationID, nil, outcome)
		return outcome, utils.GetUIntPointer(constants.SPOOF_ATTEMPT_DETECTED), nil
	}

	enrolled, err := repository.SignatureStore().Get(context.Background(), populationID)
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, nil, err
	}
	if len(enrolled) == 0 {
		outcome := &RecognitionOutcome{
			PopulationID: populationID,
			Matched:      false,
			Reason:       ReasonPopulationNotTrained,
			Liveness:     liveResult,
		}
		return outcome, utils.GetUIntPointer(constants.POPULATION_NOT_TRAINED), nil
	}

	query, err := extractor.Service.Extract(frame)
	if err != nil {
		if errors.Is(err, biometric.ErrNoFaceDetected) {
			outcome := &RecognitionOutcome{
				PopulationID: populationID,
				Matched:      false,
				Reason:       ReasonNoFaceDetected,
				Liveness:     liveResult,
			}
			recordRecognitionEvent(populationID, nil, outcome)
			return outcome, nil, nil
		}
		apperrors.UnknownError(ctx, err, nil)
		return nil, nil, err
	}

	// one tolerance snapshot for the whole decision
	match, err := biometric.FindBestMatch(enrolled, query, biometric.Settings.MatchTolerance())
	if err != nil {
		apperrors.UnknownError(ctx, err, nil)
		return nil, nil, err
	}

	outcome := &RecognitionOutcome{
		PopulationID: populationID,
		Matched:      match.Matched,
		MemberID:     match.MemberID,
		Confidence:   match.Confidence,
		Distance:     match.Distance,
		Reason:       string(match.Reason),
		Liveness:     liveResult,
	}

	var responseCode *uint
	if match.Matched {
		cache.Cache.IncrementField("recognition-matched", 1)
		member, memberErr := repository.MemberRepo().FindByID(*match.MemberID)
		if memberErr != nil || member == nil {
			logger.Warning("matched member could not be resolved for display", logger.LoggerOptions{
				Key:  "memberID",
				Data: *match.MemberID,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: memberErr,
			})
		} else {
			outcome.MemberName = &member.Name
		}
	} else {
		responseCode = utils.GetUIntPointer(constants.FACE_NOT_RECOGNISED)
	}

	recordRecognitionEvent(populationID, match.MemberID, outcome)
	return outcome, responseCode, nil
}

// recordRecognitionEvent appends the audit trail entry. Best effort; a
// write failure is logged and never fails the recognition call.
func recordRecognitionEvent(populationID string, memberID *string, outcome *RecognitionOutcome) {
	livenessPass := outcome.Liveness != nil && outcome.Liveness.IsLive
	event := entities.RecognitionEvent{
		PopulationID: populationID,
		MemberID:     memberID,
		Matched:      outcome.Matched,
		Confidence:   outcome.Confidence,
		Distance:     outcome.Distance,
		Reason:       outcome.Reason,
		LivenessPass: livenessPass,
	}
	if _, err := repository.RecognitionEventRepo().CreateOne(context.Background(), event); err != nil {
		logger.Error("failed to record recognition event", logger.LoggerOptions{
			Key:  "populationID",
			Data: populationID,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}
