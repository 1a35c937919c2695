package http

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenda/config"
	"agenda/transport/http/middleware"
	"agenda/transport/http/response"
	"agenda/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "agenda/docs"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config   *config.Config
	Router   router.Router
	App      middleware.AppMiddleware
	AuthRole middleware.AuthRole
	State    ServerState
	mux      chi.Router
}

func New(cfg *config.Config, r router.Router, app middleware.AppMiddleware, authRole middleware.AuthRole) *HTTP {
	return &HTTP{
		Config:   cfg,
		Router:   r,
		App:      app,
		AuthRole: authRole,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := http.ListenAndServe(net.JoinHostPort("0.0.0.0", h.Config.Server.Port), h.mux); err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the server run behind a serverless function entrypoint.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.mux == nil {
		h.setup()
	}

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	mux.Use(h.App.Tracing)

	if h.Config.App.CORS.Enable {
		corsConfig := h.Config.App.CORS

		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	mux.Use(h.App.RateLimit())

	mux.Get("/health", h.healthCheck)
	mux.Mount("/swagger", httpSwagger.WrapHandler)

	mux.Group(func(r chi.Router) {
		r.Use(h.AuthRole.APIKey)
		r.Use(h.AuthRole.Auth)
		r.Use(h.AuthRole.RBAC)

		h.Router.SetupRoutes(r)
	})

	h.mux = mux
}

func (h *HTTP) healthCheck(w http.ResponseWriter, _ *http.Request) {
	switch h.State {
	case ServerStateInGracePeriod:
		response.WithPreparingShutdown(w)
	case ServerStateInCleanupPeriod:
		response.WithUnhealthy(w)
	default:
		response.WithMessage(w, http.StatusOK, "OK")
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == "development" {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
