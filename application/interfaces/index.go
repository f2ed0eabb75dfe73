package interfaces

import (
	"github.com/gin-gonic/gin"
)

// ApplicationContext carries a parsed request body and request scoped
// values from the transport layer into controllers.
type ApplicationContext[T any] struct {
	Ctx   interface{}
	Body  *T
	Keys  map[string]any
	Param map[string]any
	Query map[string]any
}

func (appCtx *ApplicationContext[T]) GetHeader(key string) *string {
	ginCtx, ok := (appCtx.Ctx).(*gin.Context)
	if !ok {
		return nil
	}
	value := ginCtx.GetHeader(key)
	if value == "" {
		return nil
	}
	return &value
}

func (appCtx *ApplicationContext[T]) GetStringParam(key string) string {
	if appCtx.Param == nil {
		return ""
	}
	value, ok := appCtx.Param[key].(string)
	if !ok {
		return ""
	}
	return value
}

func (appCtx *ApplicationContext[T]) GetStringQuery(key string) string {
	if appCtx.Query == nil {
		return ""
	}
	value, ok := appCtx.Query[key].(string)
	if !ok {
		return ""
	}
	return value
}
