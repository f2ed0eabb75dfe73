package controller

import (
	"net/http"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/controller/dto"
	"idguard.io/application/interfaces"
	enrollment_usecases "idguard.io/application/usecases/enrollment"
	recognition_usecases "idguard.io/application/usecases/recognition"
	server_response "idguard.io/infrastructure/serverResponse"
	"idguard.io/infrastructure/validator"
)

func TrainPopulation(ctx *interfaces.ApplicationContext[dto.TrainPopulationDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	summary, err := enrollment_usecases.TrainPopulationUseCase(ctx.Ctx, ctx.Body.PopulationID)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "population trained", summary, nil, nil)
}

func RecognizeFace(ctx *interfaces.ApplicationContext[dto.RecognizeFaceDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	frame, frameErr := resolveFramePayload(ctx.Body.Image)
	if frameErr != nil {
		apperrors.ClientError(ctx.Ctx, "could not decode the supplied frame", nil, nil)
		return
	}
	outcome, responseCode, err := recognition_usecases.RecognizeFaceUseCase(ctx.Ctx, ctx.Body.PopulationID, frame)
	if err != nil {
		return
	}
	message := "face recognised"
	if !outcome.Matched {
		message = "face not recognised"
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, message, outcome, nil, responseCode)
}

func RecognitionStats(ctx *interfaces.ApplicationContext[any]) {
	populationID := ctx.GetStringParam("id")
	if populationID == "" {
		apperrors.ClientError(ctx.Ctx, "population id is required", nil, nil)
		return
	}
	stats, err := recognition_usecases.RecognitionStatsUseCase(ctx.Ctx, populationID)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "recognition stats fetched", stats, nil, nil)
}
