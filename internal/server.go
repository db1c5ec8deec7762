package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/middleware"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/internal/tracker/analytics"
	"github.com/2beens/gymtracker/internal/tracker/api"
	"github.com/2beens/gymtracker/internal/tracker/catalog"
	"github.com/2beens/gymtracker/internal/tracker/identity"
	trackermcp "github.com/2beens/gymtracker/internal/tracker/mcp"
	"github.com/2beens/gymtracker/internal/tracker/store"
	"github.com/2beens/gymtracker/pkg"
)

const routerName = "tracker"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config  *config.Config
	secrets *config.Secrets
	dbPool  *pgxpool.Pool

	redisClient *redis.Client

	store         *store.Store
	stats         *analytics.Service
	bootstrapper  *identity.Bootstrapper
	catalogSource catalog.Source

	unsubscribeMetrics func()

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     *config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	secrets := params.Secrets

	var (
		dbPool           *pgxpool.Pool
		pgxpoolCollector prometheus.Collector
	)
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     secrets.PostgresPassword,
			TracingEnabled: secrets.HoneycombEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		if err := db.EnsureSchema(ctx, pool, catalog.Schema); err != nil {
			log.Errorf("catalog schema: %s", err)
		}
		dbPool = pool
		pgxpoolCollector = pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		)
	}

	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymtracker", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, secrets.OtelServiceName, rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	trackerStore := store.New()

	var catalogSource catalog.Source
	switch cfg.Catalog.Source {
	case config.CatalogSourceRest:
		catalogSource = catalog.NewRestSource(
			cfg.Catalog.BaseURL,
			tracedHttpClient,
			cfg.Catalog.CacheSize,
			cfg.Catalog.CacheTTLSec,
		)
	case config.CatalogSourcePostgres:
		catalogSource = catalog.NewPsqlSource(dbPool)
	default:
		log.Warnln("no catalog source configured, starting with an empty catalog")
	}

	s := &Server{
		config:      cfg,
		secrets:     secrets,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		redisClient: rdb,

		store: trackerStore,
		stats: analytics.NewService(trackerStore, metricsManager),
		bootstrapper: identity.NewBootstrapper(
			identity.NewHTTPProfileFetcher(cfg.ProfileURL, secrets.ProfileToken, tracedHttpClient),
			identity.NewRedisOnboardingFlags(rdb),
			trackerStore,
			identity.ProfileFromConfig(cfg.FallbackProfile),
			metricsManager,
		),
		catalogSource: catalogSource,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}
	s.unsubscribeMetrics = trackerStore.Subscribe(s.storeMutationMetrics)

	return s, nil
}

// Init resolves the current user and seeds the catalog. Catalog failures are
// logged, the service keeps running with whatever could be loaded.
func (s *Server) Init(ctx context.Context) {
	user := s.bootstrapper.Bootstrap(ctx)
	log.Infof("current user: %s [%s], first login: %t", user.Name, user.ID, user.FirstLogin)

	if s.catalogSource == nil {
		return
	}
	if err := catalog.Seed(ctx, s.catalogSource, s.store, s.metricsManager); err != nil {
		log.Errorf("catalog seeded partially: %s", err)
		return
	}
	log.Infof(
		"catalog seeded: %d exercises, %d workouts",
		len(s.store.Exercises()), len(s.store.CatalogWorkouts()),
	)
}

func (s *Server) storeMutationMetrics(m store.Mutation) {
	s.metricsManager.CounterStoreMutations.WithLabelValues(m.Kind.String()).Inc()
	switch m.Kind {
	case store.MutationWorkoutAdded, store.MutationWorkoutDeleted:
		s.metricsManager.GaugeUserWorkouts.Set(float64(len(s.store.UserWorkouts())))
	default:
		// only workout count changes are tracked in the gauge
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("tracker-router"))

	r.HandleFunc("/health", s.handleHealth).Methods("GET", "OPTIONS").Name("health")

	apiHandler := api.NewHandler(s.store, s.stats, s.bootstrapper)
	apiHandler.SetupRoutes(r)

	mcpServer := trackermcp.NewServer(s.store, s.stats)
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)
	r.PathPrefix("/mcp").Handler(mcpHandler).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteResponse(w, pkg.ContentType.Text, "not found: "+r.URL.Path, http.StatusNotFound)
	}).Methods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.secrets.APITokenHash)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		routerName,
		s.config.RateLimitAllowedPerMin,
		s.metricsManager,
	))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	version := s.versionInfo
	if version == "" {
		version = "unknown"
	}
	pkg.WriteTextResponseOK(w, "ok, version: "+version)
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	s.Init(ctx)

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
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
	if s.unsubscribeMetrics != nil {
		s.unsubscribeMetrics()
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

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
