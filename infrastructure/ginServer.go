package infrastructure

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	apperrors "idguard.io/application/appErrors"
	"idguard.io/infrastructure/logger"
	ratelimit "idguard.io/infrastructure/ratelimit"
	webRoutev1 "idguard.io/infrastructure/routes/ginRouter/web/v1"
	server_response "idguard.io/infrastructure/serverResponse"
	startup "idguard.io/infrastructure/startUp"
)

type ginServer struct{}

func (s *ginServer) Start() {
	startup.StartServices()
	defer startup.CleanUpServices()

	server := gin.Default()
	origins := []string{}
	if os.Getenv("GIN_MODE") == "debug" {
		origins = append(origins, "http://localhost:5173")
	} else if os.Getenv("GIN_MODE") == "release" {
		origins = append(origins, "https://idguard.io", "https://www.idguard.io")
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "User-Agent"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	server.Use(cors.New(corsConfig))
	server.Use(ratelimit.TokenBucketPerIP())

	routerV1 := server.Group("/api").Group("/v1")
	{
		webRoutev1.RecognitionRouter(routerV1)
		webRoutev1.LivenessRouter(routerV1)
		webRoutev1.AttendanceRouter(routerV1)
		webRoutev1.PopulationRouter(routerV1)
		webRoutev1.ReportRouter(routerV1)
		webRoutev1.SettingsRouter(routerV1)
		webRoutev1.MiscRouter(routerV1)
	}

	server.GET("/ping", func(ctx *gin.Context) {
		server_response.Responder.Respond(ctx, http.StatusOK, "pong!", nil, nil, nil)
	})

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL))
	})

	gin_mode := os.Getenv("GIN_MODE")
	port := os.Getenv("PORT")
	if gin_mode == "debug" || gin_mode == "release" {
		logger.Info(fmt.Sprintf("Server starting on PORT %s", port))
		server.Run(fmt.Sprintf(":%s", port))
	} else {
		panic(fmt.Sprintf("invalid gin mode used - %s", gin_mode))
	}
}
