package controller

import (
	"net/http"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/controller/dto"
	"idguard.io/application/interfaces"
	attendance_usecases "idguard.io/application/usecases/attendance"
	server_response "idguard.io/infrastructure/serverResponse"
	"idguard.io/infrastructure/validator"
)

func MarkAttendance(ctx *interfaces.ApplicationContext[dto.MarkAttendanceDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	result, responseCode, err := attendance_usecases.MarkAttendanceUseCase(ctx.Ctx, ctx.Body.PopulationID, ctx.Body.MemberID)
	if err != nil {
		return
	}
	message := "attendance marked"
	if result.AlreadyMarked {
		message = "attendance was already marked today"
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, message, result, nil, responseCode)
}

func CloseAttendanceDay(ctx *interfaces.ApplicationContext[dto.CloseAttendanceDayDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}
	result, err := attendance_usecases.CloseAttendanceDayUseCase(ctx.Ctx, ctx.Body.PopulationID, ctx.Body.Date)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "attendance day closed", result, nil, nil)
}
