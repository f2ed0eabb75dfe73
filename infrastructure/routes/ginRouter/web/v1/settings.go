package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/controller"
	"idguard.io/application/controller/dto"
	"idguard.io/application/interfaces"
)

func SettingsRouter(router *gin.RouterGroup) {
	settingsRouter := router.Group("/settings")
	{
		settingsRouter.GET("/recognition", func(ctx *gin.Context) {
			controller.FetchRecognitionSettings(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
			})
		})

		settingsRouter.PATCH("/recognition", func(ctx *gin.Context) {
			var body dto.UpdateRecognitionSettingsDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.UpdateRecognitionSettings(&interfaces.ApplicationContext[dto.UpdateRecognitionSettingsDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})
	}
}
