package httpserver

import (
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"retoque/internal/core/domain"
	"retoque/internal/core/port"
	"retoque/internal/core/service"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

const (
	sessionCookieName = "retoque_session"
	resultFileName    = "imagen-editada.png"

	// Inline uploads arrive base64-encoded, so allow some headroom.
	uploadBodyLimit = "25M"
)

//go:embed web/index.html
var indexHTML string

type Server struct {
	echo          *echo.Echo
	store         port.SessionStore
	controller    *service.Controller
	cookies       *sessions.CookieStore
	indexTemplate *template.Template
}

func NewServer(store port.SessionStore, controller *service.Controller, cookieSecret []byte) (*Server, error) {
	tmpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, fmt.Errorf("error parsing index template: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(uploadBodyLimit))

	cookies := sessions.NewCookieStore(cookieSecret)
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0, // browser-session cookie, matching the page-lifetime state
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	s := &Server{
		echo:          e,
		store:         store,
		controller:    controller,
		cookies:       cookies,
		indexTemplate: tmpl,
	}

	s.registerRoutes()

	return s, nil
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// session resolves the edit session for the requesting browser, issuing a
// fresh one (and the cookie naming it) when none is live.
func (s *Server) session(c echo.Context) (*domain.Session, error) {
	cookie, err := s.cookies.Get(c.Request(), sessionCookieName)
	if err != nil {
		log.Warn().Err(err).Msg("invalid session cookie, issuing a fresh session")
	}

	if id, ok := cookie.Values["id"].(string); ok {
		if sess, found := s.store.Get(id); found {
			return sess, nil
		}
	}

	sess, err := s.store.Create()
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	cookie.Values["id"] = sess.ID
	if err := cookie.Save(c.Request(), c.Response()); err != nil {
		return nil, fmt.Errorf("error saving session cookie: %w", err)
	}

	return sess, nil
}
