package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/undergradassistant/backend/internal/api/middleware"
	"github.com/undergradassistant/backend/internal/config"
	apihttp "github.com/undergradassistant/backend/internal/http"
	"github.com/undergradassistant/backend/internal/logging"
	"github.com/undergradassistant/backend/internal/monitoring"
	"github.com/undergradassistant/backend/internal/scraper"
	"github.com/undergradassistant/backend/internal/store"
	"go.uber.org/zap"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router *gin.Engine
	srv    *http.Server
	store  *store.Store
	log    *logging.Logger
}

// New wires the store, scraper, middleware stack, and routes from
// configuration.
func New(cfg *config.Config, log *logging.Logger) (*Server, error) {
	if log == nil {
		log = logging.NewDefault()
	}

	metrics, registry := monitoring.NewMetrics()

	st, err := store.Open(cfg.Store.Path, log, metrics)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	sc := scraper.New(scraper.Config{
		BaseURL:      cfg.Scraper.BaseURL,
		TotalPages:   cfg.Scraper.TotalPages,
		FetchTimeout: cfg.Scraper.FetchTimeout,
		PageDelay:    cfg.Scraper.PageDelay,
		ShortPause:   cfg.Scraper.ShortPause,
		LongPause:    cfg.Scraper.LongPause,
	}, log, metrics)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	}
	router.Use(middleware.CORS(corsCfg))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(st, sc, log)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	router.GET("/research-areas", handlers.GetResearchAreas)

	router.GET("/user_info/:id", handlers.GetUserInfo)
	router.POST("/user_info", handlers.CreateOrUpdateUserInfo)
	router.POST("/prof_info", handlers.GetProfessorRecommendations)

	router.GET("/professors", handlers.GetProfessors)
	router.GET("/professors/search", handlers.SearchProfessors)

	router.GET("/stats", handlers.GetStats)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	return &Server{
		router: router,
		srv:    &http.Server{Addr: addr, Handler: router},
		store:  st,
		log:    log.Named("server"),
	}, nil
}

// Run starts serving and blocks until the listener stops.
func (s *Server) Run() error {
	s.log.Info("listening", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	return s.store.Close()
}
