package controller

import (
	"errors"
	"net/http"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/constants"
	"idguard.io/application/controller/dto"
	"idguard.io/application/interfaces"
	"idguard.io/application/utils"
	"idguard.io/infrastructure/biometric"
	"idguard.io/infrastructure/biometric/liveness"
	"idguard.io/infrastructure/database/repository/cache"
	server_response "idguard.io/infrastructure/serverResponse"
	"idguard.io/infrastructure/validator"
)

func LivenessCheck(ctx *interfaces.ApplicationContext[dto.LivenessCheckDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	if !liveness.Service.Ready() {
		apperrors.ExternalDependencyError(ctx.Ctx, "opencv", "503", errors.New("liveness engine is not initialised"))
		return
	}
	frame, frameErr := resolveFramePayload(ctx.Body.Image)
	if frameErr != nil {
		apperrors.ClientError(ctx.Ctx, "could not decode the supplied frame", nil, nil)
		return
	}

	cache.Cache.IncrementField("liveness-processed", 1)
	result, err := liveness.Service.CheckLiveness(frame)
	if err != nil {
		if errors.Is(err, biometric.ErrNoFaceDetected) {
			server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "no face detected in frame", result, nil, nil)
			return
		}
		apperrors.ClientError(ctx.Ctx, "could not decode the supplied frame", nil, nil)
		return
	}

	var responseCode *uint
	if result.IsLive {
		cache.Cache.IncrementField("liveness-live", 1)
	} else {
		responseCode = utils.GetUIntPointer(constants.SPOOF_ATTEMPT_DETECTED)
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "liveness check complete", result, nil, responseCode)
}

func BlinkCheck(ctx *interfaces.ApplicationContext[dto.BlinkCheckDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	if !liveness.Service.Ready() {
		apperrors.ExternalDependencyError(ctx.Ctx, "opencv", "503", errors.New("liveness engine is not initialised"))
		return
	}
	frame, frameErr := resolveFramePayload(ctx.Body.Image)
	if frameErr != nil {
		apperrors.ClientError(ctx.Ctx, "could not decode the supplied frame", nil, nil)
		return
	}

	result, err := liveness.Service.DetectBlink(frame)
	if err != nil {
		if errors.Is(err, biometric.ErrNoFaceDetected) {
			server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "no face detected in frame", nil, nil, nil)
			return
		}
		apperrors.ClientError(ctx.Ctx, "could not decode the supplied frame", nil, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "blink analysis complete", result, nil, nil)
}

func AnalyzeFrame(ctx *interfaces.ApplicationContext[dto.FrameAnalysisDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	if !liveness.Service.Ready() {
		apperrors.ExternalDependencyError(ctx.Ctx, "opencv", "503", errors.New("liveness engine is not initialised"))
		return
	}
	frame, frameErr := resolveFramePayload(ctx.Body.Image)
	if frameErr != nil {
		apperrors.ClientError(ctx.Ctx, "could not decode the supplied frame", nil, nil)
		return
	}

	analysis, err := liveness.Service.AnalyzeFrame(frame)
	if err != nil {
		if errors.Is(err, biometric.ErrNoFaceDetected) {
			server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "no face detected in frame", analysis, nil, nil)
			return
		}
		apperrors.ClientError(ctx.Ctx, "could not decode the supplied frame", nil, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "frame analysis complete", analysis, nil, nil)
}
