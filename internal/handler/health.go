package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/FarzanehSa/LightBnB/internal/config"
	"github.com/FarzanehSa/LightBnB/internal/middleware"
	"github.com/FarzanehSa/LightBnB/internal/server"
	"github.com/labstack/echo/v4"
)

// dependencyCheck pings one backing service.
type dependencyCheck func(ctx context.Context) error

// HealthHandler reports whether the service and its configured
// dependencies are reachable.
type HealthHandler struct {
	Handler
	timeout time.Duration
	checks  map[string]dependencyCheck
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	obs := s.Config.Observability
	if obs == nil {
		obs = config.DefaultObservabilityConfig()
	}

	checks := map[string]dependencyCheck{}
	if s.DB != nil && obs.ShouldCheck("database") {
		checks["database"] = func(ctx context.Context) error { return s.DB.Pool.Ping(ctx) }
	}
	if s.Redis != nil && obs.ShouldCheck("redis") {
		checks["redis"] = func(ctx context.Context) error { return s.Redis.Ping(ctx).Err() }
	}

	return &HealthHandler{
		Handler: NewHandler(s),
		timeout: obs.HealthCheckTimeout(),
		checks:  checks,
	}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth answers 200 when every check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   start.UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult, len(h.checks)),
	}

	for name, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			response.Status = "unhealthy"
			response.Checks[name] = checkResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}

			logger.Error().Err(err).Str("check", name).Dur("response_time", elapsed).Msg("health check failed")
			h.recordFailure(name, elapsed, err)
			continue
		}

		response.Checks[name] = checkResult{Status: "healthy", ResponseTime: elapsed.String()}
	}

	if response.Status != "healthy" {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(check string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}
	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":       check,
		"operation":        "health_check",
		"error_type":       check + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}
