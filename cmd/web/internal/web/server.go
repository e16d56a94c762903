package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/hydra/cmd/web/auth"
	"thirdcoast.systems/hydra/cmd/web/ctxkeys"
	"thirdcoast.systems/hydra/cmd/web/handlers/admin"
	authhandlers "thirdcoast.systems/hydra/cmd/web/handlers/auth"
	"thirdcoast.systems/hydra/cmd/web/handlers/common"
	"thirdcoast.systems/hydra/cmd/web/handlers/showcase"

	"thirdcoast.systems/hydra/cmd/web/handlers/api/clientlog_api"
	"thirdcoast.systems/hydra/cmd/web/handlers/api/systemuser_api"
	"thirdcoast.systems/hydra/cmd/web/handlers/api/widget_api"

	"thirdcoast.systems/hydra/cmd/web/internal/logsink"
	gallery "thirdcoast.systems/hydra/cmd/web/internal/showcase"
	staticpkg "thirdcoast.systems/hydra/cmd/web/internal/web/utils/static"
	"thirdcoast.systems/hydra/internal/services"
	svcauth "thirdcoast.systems/hydra/internal/services/auth"
	"thirdcoast.systems/hydra/internal/services/httpclient"
	"thirdcoast.systems/hydra/internal/services/storage"
	"thirdcoast.systems/hydra/pkg/utils/passwords"
	"thirdcoast.systems/hydra/static"
)

type Webserver struct {
	*echo.Echo
	sessionManager *auth.SessionManager
	services       *services.Services
	hub            *logsink.Hub
	staticCache    *staticpkg.StaticCache
	sessionStore   *storage.SessionStore
	widgets        *gallery.WidgetStore
	widgetAPI      *httpclient.APIClient[gallery.Widget]
	credentials    *passwords.Credentials
	defaults       gallery.Settings
}

type Options struct {
	Services       *services.Services
	SessionManager *auth.SessionManager
	Hub            *logsink.Hub
	Credentials    *passwords.Credentials
	// StrictStyles is the gallery's initial strict-override toggle.
	StrictStyles bool
}

func NewWebserver(ctx context.Context, opts Options) (*Webserver, error) {
	e := echo.New()

	staticCache, err := staticpkg.NewStaticCache(static.FS)
	if err != nil {
		return nil, err
	}

	hub := opts.Hub
	if hub == nil {
		hub = logsink.NewHub(logsink.NewMemorySink(0))
	}

	webserver := &Webserver{
		Echo:           e,
		sessionManager: opts.SessionManager,
		services:       opts.Services,
		hub:            hub,
		staticCache:    staticCache,
		sessionStore:   storage.NewSessionStore(opts.SessionManager.CookieStore()),
		widgets:        gallery.NewWidgetStore(gallery.DefaultWidgets()...),
		widgetAPI:      httpclient.NewAPIClient[gallery.Widget](opts.Services.HTTP),
		credentials:    opts.Credentials,
		defaults:       gallery.Settings{Strict: opts.StrictStyles},
	}

	// Logins and logouts flow through the shared provider.
	opts.Services.Auth.Provider().Subscribe(func(st svcauth.State) {
		slog.Info("auth state changed", "authenticated", st.Authenticated)
	})

	if opts.Credentials == nil {
		slog.InfoContext(ctx, "no demo credentials configured; backend logins will be rejected")
	}

	if err = webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	if err = webserver.registerRoutes(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/admin/clientlog/stream"
		},
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/api/clientlog", "/admin/clientlog/stream", "/healthz":
				return true
			default:
				return false
			}
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	// Session user and per-browser storage for handlers and templates.
	s.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			accessLevel := s.sessionManager.GetAccessLevel(r)
			username, _ := s.sessionManager.GetSession(r)

			c.Set("accessLevel", string(accessLevel))

			ctx := context.WithValue(r.Context(), ctxkeys.AccessLevel, string(accessLevel))
			ctx = context.WithValue(ctx, ctxkeys.Username, username)
			if username != "" {
				ctx = context.WithValue(ctx, ctxkeys.SessionStarted, s.sessionManager.GetSessionCreatedAt(r))
			}
			ctx = storage.NewContext(ctx, s.sessionStore.For(c.Response().Writer, r))
			c.SetRequest(r.WithContext(ctx))

			return next(c)
		}
	})

	return nil
}

func (s *Webserver) registerRoutes() error {
	adminGroup := s.Group("/admin")
	adminGroup.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, err := common.RequireSessionUser(c, s.sessionManager); err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}
			// Access level is stored in the session cookie at login time.
			if s.sessionManager.GetAccessLevel(c.Request()) != auth.AccessAdmin {
				return common.ErrForbidden()
			}
			return next(c)
		}
	})
	adminGroup.GET("/clientlog", admin.HandleClientLogPage(s.hub))
	adminGroup.GET("/clientlog/stream", admin.HandleClientLogStream(s.hub))

	// Demo backend: the client services talk to these.
	apiGroup := s.Group("/api")
	apiGroup.POST("/clientlog", clientlog_api.HandleIngest(s.hub))
	apiGroup.POST("/SystemUser/Login", systemuser_api.HandleLogin(s.credentials))

	widgetGroup := s.Group("/" + s.widgetAPI.Controller())
	widgetGroup.POST("/Select", widget_api.HandleSelect(s.widgets))
	widgetGroup.POST("/Create", widget_api.HandleCreate(s.widgets))
	widgetGroup.PUT("/Update", widget_api.HandleUpdate(s.widgets))
	widgetGroup.DELETE("/Delete/:id", widget_api.HandleDelete(s.widgets))
	widgetGroup.GET("/Details/:id", widget_api.HandleDetails(s.widgets))

	showcaseGroup := s.Group("/showcase")
	showcaseGroup.POST("/state", showcase.HandleState(s.widgetAPI, s.defaults))
	showcaseGroup.GET("/debugger", showcase.HandleDebugger(s.defaults))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Static file serving
	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))

	// Auth routes
	s.GET("/login", authhandlers.HandleLoginPage(s.sessionManager))
	s.POST("/login", authhandlers.HandleLogin(s.sessionManager, s.services))
	s.GET("/logout", authhandlers.HandleLogout(s.sessionManager, s.services))

	s.GET("/", showcase.HandleHome(s.widgetAPI, s.defaults))

	return nil
}
