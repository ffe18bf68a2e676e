package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/dstevanovic/fitrack/internal/config"
	"github.com/dstevanovic/fitrack/internal/db"
	"github.com/dstevanovic/fitrack/internal/exercises"
	"github.com/dstevanovic/fitrack/internal/middleware"
	"github.com/dstevanovic/fitrack/internal/telemetry/metrics"
	"github.com/dstevanovic/fitrack/internal/telemetry/tracing"
	"github.com/dstevanovic/fitrack/internal/tracker"
	"github.com/dstevanovic/fitrack/internal/tracker/events"
	"github.com/dstevanovic/fitrack/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	fitrackAppSecret  string // shared secret sent by the FitRack mobile app
	versionInfo       string

	config       *config.Config
	dbPool       *pgxpool.Pool
	redisClient  *redis.Client
	catalogApi   *exercises.Client

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	FitrackAppSecret        string
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "fitrack_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitrack-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return &Server{
		config:           params.Config,
		dbPool:           dbPool,
		fitrackAppSecret: params.FitrackAppSecret,
		versionInfo:      params.VersionInfo,
		redisClient:      rdb,
		catalogApi: exercises.NewClient(
			params.Config.ExercisesApiUrl,
			params.Config.CatalogCacheExpireIn,
			tracedHttpClient,
			metricsManager,
		),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitrack-router"))

	completionsRecorder := tracker.NewRecorder(tracker.NewStore(s.redisClient))

	trackerHandler := tracker.NewHandler(completionsRecorder, s.metricsManager)
	r.HandleFunc("/history", trackerHandler.HandleHistory).Methods("GET", "OPTIONS").Name("history")
	r.HandleFunc("/history/week", trackerHandler.HandleWeek).Methods("GET", "OPTIONS").Name("history-week")
	r.HandleFunc("/streak", trackerHandler.HandleStreak).Methods("GET", "OPTIONS").Name("streak")
	r.HandleFunc("/stats", trackerHandler.HandleStats).Methods("GET", "OPTIONS").Name("stats")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	completionsRouter := r.PathPrefix("/completions").Subrouter()
	completionsRouter.HandleFunc("", trackerHandler.HandleRecordCompletion).Methods("POST", "OPTIONS").Name("record-completion")
	completionsRouter.HandleFunc("", trackerHandler.HandleListCompleted).Methods("GET", "OPTIONS").Name("list-completions")
	completionsRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		"completions",
		s.config.CompletionsRateLimitAllowedPerMin,
		s.metricsManager,
	))

	exercisesHandler := exercises.NewHandler(
		exercises.NewService(s.catalogApi, completionsRecorder),
	)
	r.HandleFunc("/exercises", exercisesHandler.HandleGetSchedule).Methods("GET", "OPTIONS").Name("exercises")

	eventsHandler := events.NewHandler(
		events.NewService(events.NewRepo(s.dbPool)),
		s.metricsManager,
	)
	r.HandleFunc("/events/training/start", eventsHandler.HandleTrainingStart).Methods("POST", "OPTIONS")
	r.HandleFunc("/events/training/finish", eventsHandler.HandleTrainingFinish).Methods("POST", "OPTIONS")
	r.HandleFunc("/events/list/page/{page}/size/{size}", eventsHandler.HandleList).Methods("GET", "OPTIONS")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.fitrackAppSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
