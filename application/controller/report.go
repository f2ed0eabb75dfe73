package controller

import (
	"net/http"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/constants"
	"idguard.io/application/interfaces"
	report_usecases "idguard.io/application/usecases/report"
	server_response "idguard.io/infrastructure/serverResponse"
	"idguard.io/infrastructure/validator"
)

func PopulationReport(ctx *interfaces.ApplicationContext[any]) {
	populationID := ctx.GetStringParam("id")
	if populationID == "" {
		apperrors.ClientError(ctx.Ctx, "population id is required", nil, nil)
		return
	}

	startDate := ctx.GetStringQuery("start")
	endDate := ctx.GetStringQuery("end")
	dateRule := "omitempty,datetime=" + constants.ATTENDANCE_DATE_LAYOUT
	if err := validator.ValidatorInstance.ValidateValue(startDate, dateRule); err != nil {
		apperrors.ClientError(ctx.Ctx, "start must be a date in the format YYYY-MM-DD", nil, nil)
		return
	}
	if err := validator.ValidatorInstance.ValidateValue(endDate, dateRule); err != nil {
		apperrors.ClientError(ctx.Ctx, "end must be a date in the format YYYY-MM-DD", nil, nil)
		return
	}

	report, err := report_usecases.PopulationReportUseCase(ctx.Ctx, populationID, startDate, endDate)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "population report generated", report, nil, nil)
}

func OwnerSummary(ctx *interfaces.ApplicationContext[any]) {
	ownerID := ctx.GetStringParam("ownerID")
	if ownerID == "" {
		apperrors.ClientError(ctx.Ctx, "owner id is required", nil, nil)
		return
	}
	summary, err := report_usecases.OwnerSummaryUseCase(ctx.Ctx, ownerID)
	if err != nil {
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "owner summary generated", summary, nil, nil)
}
