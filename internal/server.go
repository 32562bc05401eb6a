package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/repstack/coachcore/internal/config"
	"github.com/repstack/coachcore/internal/middleware"
	"github.com/repstack/coachcore/internal/milestones"
	"github.com/repstack/coachcore/internal/program"
	"github.com/repstack/coachcore/internal/prs"
	"github.com/repstack/coachcore/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// fallback when the config leaves the program cache size unset
const defaultProgramCacheSizeBytes = 10 * 1024 * 1024

type Server struct {
	cfg            *config.Config
	dbPool         *pgxpool.Pool
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry

	httpServer *http.Server
}

func NewServer(cfg *config.Config, dbPool *pgxpool.Pool) *Server {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Server{
		cfg:            cfg,
		dbPool:         dbPool,
		metricsManager: metrics.NewManager("coachcore", "service", promRegistry),
		promRegistry:   promRegistry,
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("coachcore-router"))

	cacheSize := s.cfg.ProgramCacheSizeBytes
	if cacheSize <= 0 {
		cacheSize = defaultProgramCacheSizeBytes
	}

	programHandler := program.NewHandler(program.NewRepo(s.dbPool), cacheSize, s.metricsManager)
	r.HandleFunc("/program/user/{userId}/week/{week}", programHandler.HandleGetWeek).Methods("GET", "OPTIONS").Name("get-week-schedule")
	r.HandleFunc("/program/user/{userId}", programHandler.HandleGetProgram).Methods("GET", "OPTIONS").Name("get-full-program")
	r.HandleFunc("/program/user/{userId}/maxes", programHandler.HandleUpdateMaxes).Methods("PUT", "OPTIONS").Name("update-maxes")
	r.HandleFunc("/program/estimate", programHandler.HandleEstimate).Methods("POST", "OPTIONS").Name("estimate-1rm")

	milestonesHandler := milestones.NewHandler(
		milestones.NewDetector(milestones.NewRepo(s.dbPool)),
		s.metricsManager,
	)
	r.HandleFunc("/milestones/user/{userId}/detect", milestonesHandler.HandleDetect).Methods("POST", "OPTIONS").Name("detect-milestones")
	r.HandleFunc("/milestones/user/{userId}/celebrate", milestonesHandler.HandleCelebrate).Methods("POST", "OPTIONS").Name("celebrate-milestones")

	prsHandler := prs.NewHandler(
		prs.NewDetector(prs.NewRepo(s.dbPool)),
		s.metricsManager,
	)
	r.HandleFunc("/prs/user/{userId}/detect", prsHandler.HandleDetect).Methods("POST", "OPTIONS").Name("detect-prs")

	r.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{})).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Warnf("unknown path: [%s] %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())

	return r
}

func (s *Server) Serve(host string) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(s.cfg.Port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("coachcore service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")
}
