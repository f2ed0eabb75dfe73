package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/controller"
	"idguard.io/application/controller/dto"
	"idguard.io/application/interfaces"
)

func LivenessRouter(router *gin.RouterGroup) {
	livenessRouter := router.Group("/liveness")
	{
		livenessRouter.POST("/check", func(ctx *gin.Context) {
			var body dto.LivenessCheckDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.LivenessCheck(&interfaces.ApplicationContext[dto.LivenessCheckDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		livenessRouter.POST("/blink", func(ctx *gin.Context) {
			var body dto.BlinkCheckDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.BlinkCheck(&interfaces.ApplicationContext[dto.BlinkCheckDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		livenessRouter.POST("/analyze", func(ctx *gin.Context) {
			var body dto.FrameAnalysisDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.AnalyzeFrame(&interfaces.ApplicationContext[dto.FrameAnalysisDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})
	}
}
