package server

import (
	"context"
	"errors"
	"net/http"
	"time"
	"webdesktop/internal/config"
	"webdesktop/internal/domain/models"
	"webdesktop/internal/http/handlers/auth/login"
	"webdesktop/internal/http/handlers/auth/register"
	"webdesktop/internal/http/handlers/auth/validate"
	authmw "webdesktop/internal/http/handlers/middlewares/auth"
	"webdesktop/internal/http/handlers/middlewares/compress"
	"webdesktop/internal/http/handlers/middlewares/cors"
	logmw "webdesktop/internal/http/handlers/middlewares/logger"
	"webdesktop/internal/http/handlers/shortcut/create"
	"webdesktop/internal/http/handlers/shortcut/list"
	"webdesktop/internal/http/handlers/shortcut/remove"
	"webdesktop/internal/http/handlers/shortcut/update"
	"webdesktop/internal/http/handlers/system/ping"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type Authentication interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (models.User, error)
}

type Shortcuts interface {
	List(ctx context.Context, userID int64) ([]models.Shortcut, error)
	Create(ctx context.Context, sc models.Shortcut) (models.Shortcut, error)
	Update(ctx context.Context, sc models.Shortcut) (models.Shortcut, error)
	Delete(ctx context.Context, userID, id int64) error
	PingDataBase(ctx context.Context) error
}

type Server struct {
	httpServer      *http.Server
	router          *mux.Router
	log             *zerolog.Logger
	authService     Authentication
	shortcutService Shortcuts
	cfg             config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, auth Authentication, svc Shortcuts) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if auth == nil {
		return nil, errors.New("auth service cannot be nil")
	}
	if svc == nil {
		return nil, errors.New("shortcut service cannot be nil")
	}

	s := &Server{
		router:          mux.NewRouter(),
		cfg:             cfg,
		log:             log,
		authService:     auth,
		shortcutService: svc,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(logmw.MiddlewareLogging(s.log))
	s.router.Use(cors.MiddlewareCORS())
	s.router.Use(compress.MiddlewareCompressing())

	// preflight запросы обрабатывает cors middleware, но mux должен найти маршрут
	s.router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	/*
		Public routes (without auth)
	*/
	s.router.HandleFunc("/ping", ping.HandlerPing(s.shortcutService)).Methods(http.MethodGet)          // 200 / 500
	s.router.HandleFunc("/register", register.HandlerRegister(s.authService)).Methods(http.MethodPost) // 201 / 400
	s.router.HandleFunc("/login", login.HandlerLogin(s.authService)).Methods(http.MethodPost)          // 200 / 400 / 403

	// Protected routes (with auth)
	authRouter := s.router.PathPrefix("/").Subrouter()
	authRouter.Use(authmw.MiddlewareAuth(s.authService))

	authRouter.HandleFunc("/validate-token", validate.HandlerValidateToken()).Methods(http.MethodGet)                           // 200
	authRouter.HandleFunc("/shortcuts", list.HandlerListShortcuts(s.shortcutService)).Methods(http.MethodGet)                   // 200
	authRouter.HandleFunc("/shortcuts", create.HandlerCreateShortcut(s.shortcutService)).Methods(http.MethodPost)               // 201
	authRouter.HandleFunc("/shortcuts/{id:[0-9]+}", update.HandlerUpdateShortcut(s.shortcutService)).Methods(http.MethodPut)    // 200 / 404
	authRouter.HandleFunc("/shortcuts/{id:[0-9]+}", remove.HandlerDeleteShortcut(s.shortcutService)).Methods(http.MethodDelete) // 200 / 404
}

// Handler exposes the configured router, e.g. for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
