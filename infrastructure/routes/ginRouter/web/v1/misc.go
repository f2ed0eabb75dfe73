package routev1

import (
	"github.com/gin-gonic/gin"
	"idguard.io/application/controller"
	"idguard.io/application/interfaces"
)

func MiscRouter(router *gin.RouterGroup) {
	router.GET("/health", func(ctx *gin.Context) {
		controller.HealthCheck(&interfaces.ApplicationContext[any]{
			Ctx: ctx,
		})
	})
}
