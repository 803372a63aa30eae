package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"addressbook/contact"
	"addressbook/errs"
	"addressbook/pkg/config"
	"addressbook/pkg/logger"
	"addressbook/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// statusClientClosedRequest is the nginx convention for a client that disconnected mid-request.
const statusClientClosedRequest = 499

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	// RateLimit is requests per second per client, 0 disables the limiter
	RateLimit float64

	// Env is reported by the health endpoint
	Env string

	// Debug attaches the underlying error to error responses
	Debug bool

	Logger *zap.SugaredLogger

	ContactService contact.Service
}

func Default(cfg *config.Config, options ...Options) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: []string{"*"},
		RateLimit:    cfg.RateLimit,
		Env:          cfg.AppEnv,
		Debug:        cfg.IsDevelopment(),
		Logger:       logger.NOOPLogger,
	}
	if cfg.Port > 0 {
		s.Addr = fmt.Sprintf(":%d", cfg.Port)
	}
	if cfg.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}

	for _, fn := range options {
		fn(&s)
	}

	s.Router.HideBanner = true
	s.Router.HTTPErrorHandler = s.customHTTPErrorHandler
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterContactRoutes(s.Router.Group("/api/contacts"))
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(s.requestLogger())
	if s.RateLimit > 0 {
		s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(s.RateLimit))))
	}

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

// requestLogger writes one line per request once the response status is known.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// customHTTPErrorHandler maps application errors to appropriate HTTP status codes
func (s *Server) customHTTPErrorHandler(err error, c echo.Context) {
	// Don't write response if already committed
	if c.Response().Committed {
		return
	}

	status, message := errorStatus(err, c)

	if status >= http.StatusInternalServerError {
		s.Logger.Errorw(err.Error(),
			"request_id", requestID(c),
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"code", errs.ErrorCode(err),
		)
		sentry.WithContext(c).
			WithTags(map[string]string{"code": errs.ErrorCode(err)}).
			WithExtras(map[string]interface{}{
				"method": c.Request().Method,
				"path":   c.Request().URL.Path,
			}).
			Error(err)
	}

	info := ""
	if s.Debug {
		info = err.Error()
	}

	if err := writeError(c, status, message, info, err); err != nil {
		s.Logger.Errorw("cannot write error response", "error", err)
	}
}

func errorStatus(err error, c echo.Context) (int, string) {
	// Check if it's an Echo HTTPError
	if he, ok := err.(*echo.HTTPError); ok {
		if he == echo.ErrNotFound {
			return http.StatusNotFound, "endpoint not found: " + c.Request().URL.Path
		}
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}

	// Map application error codes to HTTP status codes
	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		return http.StatusBadRequest, errs.ErrorMessage(err)
	case errs.ENOTFOUND:
		return http.StatusNotFound, errs.ErrorMessage(err)
	case errs.ECONFLICT:
		return http.StatusConflict, errs.ErrorMessage(err)
	case errs.ECANCELED:
		return statusClientClosedRequest, "Request canceled"
	case errs.EUNAVAILABLE:
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	case errs.EMISCONFIGURED:
		return http.StatusInternalServerError, "Server configuration error"
	}
	return http.StatusInternalServerError, "Internal server error"
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
