package router

import (
	"database/sql"
	"net/http"

	mem "baby-tracker/internal/adapters/storage/memory"
	pg "baby-tracker/internal/adapters/storage/postgres"
	"baby-tracker/internal/domain/babies"
	"baby-tracker/internal/domain/logs"
	"baby-tracker/internal/middleware"
	"baby-tracker/internal/ports/auth"

	_ "baby-tracker/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Verifier puede ser nil (modo dev: X-Debug-User-ID).
	Verifier auth.Verifier

	// DB opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Logger opcional; nil desactiva el log de requests (útil en tests).
	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		babiesRepo babies.Repository
		logsRepo   logs.Repository
	)

	if opts.DB != nil {
		babiesRepo = pg.NewBabiesRepo(opts.DB)
		logsRepo = pg.NewLogsRepo(opts.DB)
	} else {
		lr := mem.NewLogsRepo()
		babiesRepo = mem.NewBabiesRepo(lr)
		logsRepo = lr
	}

	babiesSvc := babies.NewService(babiesRepo)
	logsSvc := logs.NewService(logsRepo)

	babies.RegisterRoutes(r, babiesSvc)
	logs.RegisterRoutes(r, logsSvc, babiesSvc)

	return r
}
