package routev1

import (
	"github.com/gin-gonic/gin"
	"idguard.io/application/controller"
	"idguard.io/application/interfaces"
)

func PopulationRouter(router *gin.RouterGroup) {
	populationRouter := router.Group("/populations")
	{
		populationRouter.GET("/:id/members", func(ctx *gin.Context) {
			controller.ListPopulationMembers(&interfaces.ApplicationContext[any]{
				Ctx: ctx,
				Param: map[string]any{
					"id": ctx.Param("id"),
				},
			})
		})
	}
}
