package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/goliatone/go-pairfinder/internal/config"
	"github.com/goliatone/go-pairfinder/pkg/controller"
	"github.com/goliatone/go-pairfinder/pkg/page"
	"github.com/goliatone/go-pairfinder/pkg/pairing"
	"github.com/goliatone/go-pairfinder/pkg/render"
	"github.com/goliatone/go-pairfinder/pkg/renderers/vanilla"
)

// RateLimitMessage is the inline error shown when searches are throttled.
const RateLimitMessage = "Too many searches, please wait a moment and try again."

// Server hosts the search page.
type Server struct {
	echo      *echo.Echo
	cfg       config.Config
	submitter pairing.Submitter
	html      *vanilla.Renderer
	logger    *zap.Logger
}

// New wires routes and middleware. A nil logger disables logging.
func New(cfg config.Config, submitter pairing.Submitter, html *vanilla.Renderer, logger *zap.Logger) (*Server, error) {
	if submitter == nil {
		return nil, errors.New("server: submitter is required")
	}
	if html == nil {
		return nil, errors.New("server: html renderer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		echo:      echo.New(),
		cfg:       cfg,
		submitter: submitter,
		html:      html,
		logger:    logger,
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(RequestID())
	s.echo.Use(Logging(logger))
	s.echo.Use(echoMiddleware.Recover())

	s.echo.GET("/healthz", s.health)
	s.echo.GET("/", s.index)
	s.echo.POST("/", s.submit, SearchRateLimiter(cfg.RateLimit, isAddAction, s.throttled))
	s.echo.StaticFS("/assets", vanilla.AssetsFS())

	return s, nil
}

// ServeHTTP lets the server be mounted or tested as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on the configured address until Shutdown.
func (s *Server) Start() error {
	return s.echo.Start(s.cfg.Listen)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":     "ok",
		"configured": s.cfg.Controller().Configured(),
	})
}

func (s *Server) index(c echo.Context) error {
	return s.renderPage(c, http.StatusOK, page.New())
}

// submit rebuilds the page from the posted form and runs the requested
// action against a controller bound to that page.
func (s *Server) submit(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	p := page.FromValues(values)

	ctrl, err := controller.New(s.cfg.Controller(), p, s.submitter, s.html,
		controller.WithLogger(s.logger.With(zap.String("request_id", RequestIDFromContext(c)))),
	)
	if err != nil {
		return err
	}

	switch values.Get(page.FieldAction) {
	case page.ActionAdd:
		ctrl.OnAddField()
	default:
		if err := ctrl.OnSubmit(c.Request().Context()); err != nil {
			if _, notified := controller.Notification(err); !notified {
				return err
			}
		}
	}
	return s.renderPage(c, http.StatusOK, p)
}

// isAddAction exempts field additions from the search rate limit.
func isAddAction(c echo.Context) bool {
	return c.FormValue(page.FieldAction) == page.ActionAdd
}

func (s *Server) throttled(c echo.Context) error {
	values, _ := c.FormParams()
	p := page.FromValues(values)
	content, err := s.html.Render(c.Request().Context(), render.Failure(RateLimitMessage))
	if err != nil {
		return err
	}
	p.ShowResults(s.html.ContentType(), content)
	return s.renderPage(c, http.StatusTooManyRequests, p)
}

func (s *Server) renderPage(c echo.Context, status int, p *page.Page) error {
	body, err := s.html.RenderPage(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, body)
}
