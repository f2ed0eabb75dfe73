package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "idguard.io/application/appErrors"
	"idguard.io/application/controller"
	"idguard.io/application/controller/dto"
	"idguard.io/application/interfaces"
)

func AttendanceRouter(router *gin.RouterGroup) {
	attendanceRouter := router.Group("/attendance")
	{
		attendanceRouter.POST("/mark", func(ctx *gin.Context) {
			var body dto.MarkAttendanceDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.MarkAttendance(&interfaces.ApplicationContext[dto.MarkAttendanceDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})

		attendanceRouter.POST("/close", func(ctx *gin.Context) {
			var body dto.CloseAttendanceDayDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.CloseAttendanceDay(&interfaces.ApplicationContext[dto.CloseAttendanceDayDTO]{
				Ctx:  ctx,
				Body: &body,
			})
		})
	}
}
