package controller

import (
	"net/http"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/controller/dto"
	"idguard.io/application/interfaces"
	"idguard.io/infrastructure/biometric"
	"idguard.io/infrastructure/biometric/extractor"
	server_response "idguard.io/infrastructure/serverResponse"
	"idguard.io/infrastructure/validator"
)

func FetchRecognitionSettings(ctx *interfaces.ApplicationContext[any]) {
	snapshot := biometric.Settings.Snapshot()
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "recognition settings fetched", map[string]any{
		"matchTolerance":   snapshot.MatchTolerance,
		"extractionJitter": snapshot.ExtractionJitter,
	}, nil, nil)
}

func UpdateRecognitionSettings(ctx *interfaces.ApplicationContext[dto.UpdateRecognitionSettingsDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	if ctx.Body.MatchTolerance == nil && ctx.Body.ExtractionJitter == nil {
		apperrors.ClientError(ctx.Ctx, "provide at least one setting to update", nil, nil)
		return
	}

	if ctx.Body.MatchTolerance != nil {
		if err := biometric.Settings.SetMatchTolerance(*ctx.Body.MatchTolerance); err != nil {
			errs := []error{err}
			apperrors.ValidationFailedError(ctx.Ctx, &errs)
			return
		}
	}
	if ctx.Body.ExtractionJitter != nil {
		if err := biometric.Settings.SetExtractionJitter(*ctx.Body.ExtractionJitter); err != nil {
			errs := []error{err}
			apperrors.ValidationFailedError(ctx.Ctx, &errs)
			return
		}
		// the extractor rebuilds its recognizer with the new jitter count
		if extractor.Service.Ready() {
			if err := extractor.Service.SetJittering(*ctx.Body.ExtractionJitter); err != nil {
				apperrors.UnknownError(ctx.Ctx, err, nil)
				return
			}
		}
	}

	snapshot := biometric.Settings.Snapshot()
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "recognition settings updated", map[string]any{
		"matchTolerance":   snapshot.MatchTolerance,
		"extractionJitter": snapshot.ExtractionJitter,
	}, nil, nil)
}
