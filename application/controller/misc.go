package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"idguard.io/application/interfaces"
	"idguard.io/application/repository"
	"idguard.io/infrastructure/biometric/extractor"
	"idguard.io/infrastructure/biometric/liveness"
	redisClient "idguard.io/infrastructure/database/connection/cache"
	"idguard.io/infrastructure/database/repository/cache"
	server_response "idguard.io/infrastructure/serverResponse"
)

// HealthCheck reports the state of every dependency recognition needs.
// Any unhealthy dependency degrades the overall verdict and the status code.
func HealthCheck(ctx *interfaces.ApplicationContext[any]) {
	mongoHealthy := true
	if _, err := repository.PopulationRepo().CountDocs(map[string]interface{}{}); err != nil {
		mongoHealthy = false
	}

	redisHealthy := false
	if client, err := redisClient.GetInstance(); err == nil && client != nil && client.Client != nil {
		if pingErr := client.Client.Ping(context.Background()).Err(); pingErr == nil {
			redisHealthy = true
		}
	}

	services := map[string]bool{
		"mongo":     mongoHealthy,
		"redis":     redisHealthy,
		"extractor": extractor.Service.Ready(),
		"liveness":  liveness.Service.Ready(),
	}
	status := "healthy"
	code := http.StatusOK
	for _, healthy := range services {
		if !healthy {
			status = "degraded"
			code = http.StatusServiceUnavailable
			break
		}
	}

	payload := map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  services,
	}
	if redisHealthy {
		payload["counters"] = map[string]int64{
			"recognitionProcessed": counterValue("recognition-processed"),
			"recognitionMatched":   counterValue("recognition-matched"),
			"livenessProcessed":    counterValue("liveness-processed"),
			"livenessLive":         counterValue("liveness-live"),
		}
	}

	server_response.Responder.Respond(ctx.Ctx, code, "health check complete", payload, nil, nil)
}

func counterValue(key string) int64 {
	value := cache.Cache.FindOne(key)
	if value == nil {
		return 0
	}
	parsed, err := strconv.ParseInt(*value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}
