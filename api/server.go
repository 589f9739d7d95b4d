package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/media"
	"github.com/rs/zerolog/log"
)

// csrfFieldName matches the hidden input name Django forms use.
const csrfFieldName = "csrfmiddlewaretoken"

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, opts ...RouterOption) (Server, error) {
	// Capture startup time
	startupTime := time.Now()
	opts = append([]RouterOption{WithStartupTime(startupTime)}, opts...)

	router := buildRouterConfig(opts)
	if router.config == nil {
		router.config = config.New()
		opts = append(opts, WithConfig(router.config))
	}
	c := router.config

	if key := config.GetString(c, "CSRF_KEY", ""); key != "" && len(key) != 32 {
		return Server{}, errs.NewConfigInvalidError("CSRF_KEY", fmt.Errorf("must be 32 bytes, got %d", len(key)))
	}

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 60)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      newRouter(database, opts...),
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	notifier    ContactNotifier
	mediaStore  media.Store
}

// RouterOption configures the router built by NewServer.
type RouterOption func(*router)

func WithConfig(c map[string]string) RouterOption {
	return func(r *router) {
		r.config = c
	}
}

func WithStartupTime(startupTime time.Time) RouterOption {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// WithNotifier sets who is told about new contact messages.
func WithNotifier(n ContactNotifier) RouterOption {
	return func(r *router) {
		r.notifier = n
	}
}

// WithMediaStore sets the store behind /media.
func WithMediaStore(store media.Store) RouterOption {
	return func(r *router) {
		r.mediaStore = store
	}
}

func buildRouterConfig(opts []RouterOption) router {
	var r router
	for _, opt := range opts {
		opt(&r)
	}
	if r.startupTime.IsZero() {
		r.startupTime = time.Now()
	}
	return r
}

func newRouter(database database.Database, opts ...RouterOption) *chi.Mux {
	router := buildRouterConfig(opts)
	c := router.config

	chiRouter := chi.NewRouter()
	if config.GetBool(c, "TRUST_PROXY_HEADERS", false) {
		chiRouter.Use(chimiddleware.RealIP)
	}
	chiRouter.Use(RequestIDMiddleware)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(PrometheusMiddleware)
	if config.GetString(c, "LOG_FORMAT", "console") == "console" {
		chiRouter.Use(ColoredHTTPLoggingMiddleware)
	} else {
		chiRouter.Use(RequestLoggingMiddleware(log.Logger))
	}

	secureCookies := config.GetBool(c, "SECURE_COOKIES", false)

	sessionKey := []byte(config.GetString(c, "SESSION_KEY", ""))
	if len(sessionKey) < 32 {
		log.Warn().Msg("SESSION_KEY unset or shorter than 32 bytes, flash cookies will not survive a restart")
		sessionKey = securecookie.GenerateRandomKey(32)
	}

	csrfKey := []byte(config.GetString(c, "CSRF_KEY", ""))
	csrfEnabled := len(csrfKey) == 32
	if !csrfEnabled {
		log.Warn().Msg("CSRF_KEY not set, contact form is not CSRF protected")
	}

	adminSecret := []byte(config.GetString(c, "ADMIN_JWT_SECRET", ""))

	// Initialize all handlers
	handlers := initializeHandlers(database, handlerDeps{
		startupTime:     router.startupTime,
		notifier:        router.notifier,
		mediaStore:      router.mediaStore,
		flashes:         newFlashStore(sessionKey, secureCookies),
		csrfEnabled:     csrfEnabled,
		backendPassword: config.GetString(c, "BACKEND_PASSWORD", ""),
		adminSecret:     adminSecret,
	})

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware(adminSecret)

	var contactMiddlewares []func(http.Handler) http.Handler
	if csrfEnabled {
		contactMiddlewares = append(contactMiddlewares,
			plaintextHTTP(secureCookies),
			csrf.Protect(csrfKey,
				csrf.Secure(secureCookies),
				csrf.Path("/"),
				csrf.FieldName(csrfFieldName),
				csrf.SameSite(csrf.SameSiteLaxMode),
				csrf.ErrorHandler(csrfFailure(handlers.contactHandler.renderer)),
			),
		)
	}

	contactLimiter := newClientLimiter(config.GetInt(c, "CONTACT_RATE_PER_MINUTE", 5))
	loginLimiter := newClientLimiter(config.GetInt(c, "LOGIN_RATE_PER_MINUTE", 10))

	setupPageRoutes(chiRouter, handlers, config.GetString(c, "STATIC_DIR", "static"))
	setupContactRoutes(chiRouter, handlers, contactMiddlewares, contactLimiter)
	setupAdminRoutes(chiRouter, handlers, authMiddleware, config.GetList(c, "ACCEPTED_ORIGINS"), loginLimiter)

	chiRouter.NotFound(handlers.pageHandler.renderer.NotFound())

	return chiRouter
}

// plaintextHTTP marks requests so the CSRF origin check accepts http:// referers.
func plaintextHTTP(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !secure && r.TLS == nil {
				r = csrf.PlaintextHTTPRequest(r)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func csrfFailure(renderer Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renderer.logger.Warn().Err(csrf.FailureReason(r)).Str("path", r.URL.Path).Msg("CSRF check failed")
		renderer.RenderError(w, r, errs.NewApiErr(http.StatusForbidden, "csrf token invalid"))
	})
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
