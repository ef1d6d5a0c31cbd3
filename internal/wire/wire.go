package wire

import (
	"net/http"

	"freelance-market/internal/adaptor"
	"freelance-market/internal/data/repository"
	"freelance-market/internal/usecase"
	"freelance-market/pkg/middleware"
	"freelance-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Wiring holds everything the router needs: handlers plus the repositories
// the auth middleware reads from.
type Wiring struct {
	handler *adaptor.Handler
	repo    *repository.Repository
	log     *zap.Logger
}

func NewWiring(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Wiring {
	service := usecase.NewService(repo, config, log)
	handler := adaptor.NewHandler(service, log)

	return &Wiring{
		handler: handler,
		repo:    repo,
		log:     log,
	}
}

func (w *Wiring) SetupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recover(w.log))
	r.Use(middleware.Logger(w.log))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	r.Get("/health", func(rw http.ResponseWriter, req *http.Request) {
		utils.ResponseSuccess(rw, "OK", nil)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		w.authRoutes(api)
		w.profileRoutes(api)
		w.offerRoutes(api)
		w.orderRoutes(api)
		w.reviewRoutes(api)

		api.Get("/base-info", w.handler.Info.GetBaseInfo)
	})

	return r
}

// auth returns the session-checking middleware shared by every protected
// route group.
func (w *Wiring) auth() func(http.Handler) http.Handler {
	return middleware.AuthSession(w.repo.Session, w.log)
}
