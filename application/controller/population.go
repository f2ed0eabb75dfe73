package controller

import (
	"errors"
	"net/http"

	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/interfaces"
	"idguard.io/application/repository"
	server_response "idguard.io/infrastructure/serverResponse"
)

func ListPopulationMembers(ctx *interfaces.ApplicationContext[any]) {
	populationID := ctx.GetStringParam("id")
	if populationID == "" {
		apperrors.ClientError(ctx.Ctx, "population id is required", nil, nil)
		return
	}

	population, err := repository.PopulationRepo().FindByID(populationID)
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	if population == nil {
		apperrors.NotFoundError(ctx.Ctx, "population not found")
		return
	}

	members, err := repository.MemberRepo().FindMany(map[string]interface{}{
		"populationID": populationID,
	})
	if err != nil {
		apperrors.UnknownError(ctx.Ctx, err, nil)
		return
	}
	if members == nil {
		apperrors.UnknownError(ctx.Ctx, errors.New("member lookup returned nothing"), nil)
		return
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "population members fetched", map[string]any{
		"population": population,
		"members":    members,
	}, nil, nil)
}
