package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const apiVersion = "1.0.0"

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/", s.apiInfo)
	s.Router.GET("/health", s.healthCheck)
}

func (s *Server) apiInfo(c echo.Context) error {
	return writeSuccess(c, http.StatusOK, map[string]interface{}{
		"name":    "Contact address book API",
		"version": apiVersion,
		"endpoints": map[string]string{
			"contacts": "/api/contacts",
			"health":   "/health",
		},
	})
}

func (s *Server) healthCheck(c echo.Context) error {
	return writeSuccess(c, http.StatusOK, map[string]string{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": s.Env,
	})
}
