package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/controller"
	"idguard.io/application/controller/dto"
	"idguard.io/application/interfaces"
)

func RecognitionRouter(router *gin.RouterGroup) {
	recognitionRouter := router.Group("/recognition")
	{
		recognitionRouter.POST("/train", func(ctx *gin.Context) {
			var body dto.TrainPopulationDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.TrainPopulation(&interfaces.ApplicationContext[dto.TrainPopulationDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		recognitionRouter.POST("/recognize", func(ctx *gin.Context) {
			var body dto.RecognizeFaceDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.RecognizeFace(&interfaces.ApplicationContext[dto.RecognizeFaceDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		recognitionRouter.GET("/populations/:id/stats", func(ctx *gin.Context) {
			controller.RecognitionStats(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})
	}
}
