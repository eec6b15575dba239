package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitsync/internal/auth"
	"github.com/2beens/fitsync/internal/config"
	"github.com/2beens/fitsync/internal/groups"
	"github.com/2beens/fitsync/internal/middleware"
	"github.com/2beens/fitsync/internal/nutrition"
	"github.com/2beens/fitsync/internal/store"
	"github.com/2beens/fitsync/internal/telemetry/metrics"
	"github.com/2beens/fitsync/internal/user"
	"github.com/2beens/fitsync/internal/workouts"
	"github.com/2beens/fitsync/pkg"

	"cloud.google.com/go/firestore"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	secretHash        string // bcrypt hash of the app access secret
	nutritionAPIKey   string
	versionInfo       string

	config          *config.Config
	firestoreClient *firestore.Client
	docStore        *store.Firestore
	redisClient     *redis.Client
	loginChecker    *auth.LoginChecker
	authService     *auth.Service
	aggregator      *user.Aggregator

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

type NewServerParams struct {
	Config          *config.Config
	SecretHash      string
	NutritionAPIKey string
	RedisPassword   string
	VersionInfo     string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	firestoreClient, err := firestore.NewClient(ctx, params.Config.FirestoreProjectID)
	if err != nil {
		return nil, fmt.Errorf("new firestore client: %w", err)
	}
	docStore := store.NewFirestore(firestoreClient)

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitsync", "main", promRegistry)
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

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	templateService := workouts.NewTemplateService(docStore)
	groupsService := groups.NewService(docStore)
	groupsAggregator := groups.NewAggregator(docStore)
	subscriptions := user.NewSubscriptionManager(docStore, metricsManager)
	aggregator := user.NewAggregator(
		docStore,
		subscriptions,
		templateService,
		groupsService,
		groupsAggregator,
		metricsManager,
	)

	// the aggregator follows the session lifecycle: sign-in triggers the
	// initial load, sign-out tears the aggregated state down
	authService.OnAuthStateChanged(aggregator.OnAuthStateChange)

	return &Server{
		secretHash:      params.SecretHash,
		nutritionAPIKey: params.NutritionAPIKey,
		versionInfo:     params.VersionInfo,

		config:          params.Config,
		firestoreClient: firestoreClient,
		docStore:        docStore,
		redisClient:     rdb,
		authService:     authService,
		loginChecker:    auth.NewLoginChecker(auth.DefaultTTL, rdb),
		aggregator:      aggregator,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitsync-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	userHandler := user.NewHandler(s.authService, s.aggregator, s.secretHash)
	userHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin)

	commitCoordinator := workouts.NewCommitCoordinator(s.docStore, s.metricsManager)
	workoutsHandler := workouts.NewHandler(
		commitCoordinator,
		workouts.NewTemplateService(s.docStore),
		s.authService,
	)
	workoutsHandler.SetupRoutes(r)

	groupsHandler := groups.NewHandler(
		groups.NewService(s.docStore),
		groups.NewAggregator(s.docStore),
		s.authService,
	)
	groupsHandler.SetupRoutes(r)

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	nutritionHandler := nutrition.NewHandler(
		nutrition.NewAPI(s.config.NutritionAPIBaseURL, s.nutritionAPIKey, tracedHttpClient),
		nutrition.NewDayLog(s.redisClient, s.config.NutritionDayCutoverHour),
		s.aggregator,
		s.authService,
	)
	nutritionHandler.SetupRoutes(r)

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "ok")
	}).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET", "OPTIONS").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
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

	// cancels all live store subscriptions too
	s.aggregator.SignOut()

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.firestoreClient != nil {
		if err := s.firestoreClient.Close(); err != nil {
			log.Errorf("failed to close firestore client: %s", err)
		}
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
