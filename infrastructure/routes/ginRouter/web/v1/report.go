package routev1

import (
	"github.com/gin-gonic/gin"
	"idguard.io/application/controller"
	"idguard.io/application/interfaces"
)

func ReportRouter(router *gin.RouterGroup) {
	reportRouter := router.Group("/reports")
	{
		reportRouter.GET("/populations/:id", func(ctx *gin.Context) {
			controller.PopulationReport(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
				Query: map[string]any{
					"start": ctx.Query("start"),
					"end":   ctx.Query("end"),
				},
			})
		})

		reportRouter.GET("/summary/:ownerID", func(ctx *gin.Context) {
			controller.OwnerSummary(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Param: map[string]any{
					"ownerID": ctx.Param("ownerID"),
				},
			})
		})
	}
}
