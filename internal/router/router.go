// Package router wires middlewares and routes onto an Echo instance.
package router

import (
	"net/http"

	"github.com/FarzanehSa/LightBnB/internal/handler"
	"github.com/FarzanehSa/LightBnB/internal/middleware"
	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/FarzanehSa/LightBnB/internal/server"
	"github.com/labstack/echo/v4"
)

// Login and registration are limited per client IP.
const (
	authRequestsPerMinute = 10
	authBurst             = 5
)

func NewRouter(s *server.Server, h *handler.Handlers, middlewares *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)

	authLimit := middlewares.RateLimit.Limit(authRequestsPerMinute, authBurst)
	requireAuth := middlewares.Auth.RequireAuth

	users := router.Group("/users")
	users.POST("", handler.Handle(h.Users.Handler, h.Users.Register, http.StatusCreated, &model.RegisterUserPayload{}), authLimit)
	users.POST("/login", handler.Handle(h.Users.Handler, h.Users.Login, http.StatusOK, &model.LoginPayload{}), authLimit)
	users.POST("/logout", handler.HandleNoContent(h.Users.Handler, h.Users.Logout, http.StatusNoContent, &model.Empty{}))
	users.GET("/me", handler.Handle(h.Users.Handler, h.Users.Me, http.StatusOK, &model.Empty{}), requireAuth)

	api := router.Group("/api")

	properties := api.Group("/properties")
	properties.GET("", handler.Handle(h.Properties.Handler, h.Properties.Search, http.StatusOK, &model.SearchPropertiesPayload{}))
	properties.POST("", handler.Handle(h.Properties.Handler, h.Properties.Create, http.StatusCreated, &model.CreatePropertyPayload{}), requireAuth)
	properties.GET("/:id/reviews", handler.Handle(h.Properties.Handler, h.Properties.Reviews, http.StatusOK, &model.ListReviewsPayload{}))

	api.GET("/reservations", handler.Handle(h.Reservations.Handler, h.Reservations.List, http.StatusOK, &model.ListReservationsPayload{}), requireAuth)

	return router
}
