package handler

import (
	"fmt"
	"net/http"

	"github.com/FarzanehSa/LightBnB/internal/server"
	"github.com/FarzanehSa/LightBnB/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API reference UI; the page loads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := static.Files.ReadFile("openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}
