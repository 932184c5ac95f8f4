package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/course-apis/internal/middleware"
	"github.com/deppfellow/course-apis/internal/server"
	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// dependencyCheck pings one backing service. required marks checks whose
// failure makes the whole service unhealthy.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

func (h *HealthHandler) checks() []dependencyCheck {
	var checks []dependencyCheck

	if h.server.DB != nil {
		checks = append(checks, dependencyCheck{name: "database", required: true, ping: h.server.DB.Pool.Ping})
	}
	if h.server.Mongo != nil {
		checks = append(checks, dependencyCheck{name: "mongo", required: true, ping: h.server.Mongo.Ping})
	}
	if h.server.Redis != nil {
		// Only background jobs need Redis.
		checks = append(checks, dependencyCheck{name: "redis", ping: func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}})
	}

	return checks
}

// CheckHealth reports the status of Postgres, Mongo and Redis: 200 when
// every required dependency answers, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	}

	checks := make(map[string]interface{})
	response["checks"] = checks
	isHealthy := true

	obs := h.server.Config.Observability
	for _, check := range h.checks() {
		if obs == nil || !obs.HealthCheckEnabled(check.name) {
			continue
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthChecks.Timeout)
		checkStart := time.Now()
		err := check.ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err == nil {
			checks[check.name] = map[string]interface{}{
				"status":        "healthy",
				"response_time": elapsed.String(),
			}
			logger.Debug().Dur("response_time", elapsed).Msgf("%s health check passed", check.name)
			continue
		}

		checks[check.name] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}
		if check.required {
			isHealthy = false
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", check.name)

		h.recordHealthCheckError(check.name, elapsed, err)
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) recordHealthCheckError(checkType string, elapsed time.Duration, err error) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent(
		"HealthCheckError",
		map[string]interface{}{
			"check_type":       checkType,
			"operation":        "health_check",
			"error_type":       checkType + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		},
	)
}
