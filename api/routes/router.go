package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smlogitech/backoffice/api/controllers"
	"github.com/smlogitech/backoffice/api/middleware"
	"github.com/smlogitech/backoffice/internal/arrivals"
	"github.com/smlogitech/backoffice/internal/masterdata"
	"github.com/smlogitech/backoffice/internal/orders"
	"github.com/smlogitech/backoffice/internal/reports"
	"github.com/smlogitech/backoffice/internal/uploads"
	"github.com/smlogitech/backoffice/pkg/config"
	"github.com/smlogitech/backoffice/pkg/db"
	"github.com/smlogitech/backoffice/pkg/logger"
	"github.com/smlogitech/backoffice/pkg/redis"
)

// Services bundles everything the router exposes.
type Services struct {
	Orders   orders.Service
	Uploads  uploads.Service
	Reports  reports.Service
	Master   masterdata.Service
	Arrivals arrivals.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbClient, redisClient, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	// evidence images are served straight off disk
	r.Handle(cfg.Evidence.PublicPrefix+"*", http.StripPrefix(
		cfg.Evidence.PublicPrefix,
		http.FileServer(http.Dir(cfg.Evidence.Dir)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(svcs.Orders, logg))
			r.Post("/", controllers.CreateOrder(svcs.Orders, logg))

			r.Route("/{orderId}", func(r chi.Router) {
				r.Get("/", controllers.GetOrder(svcs.Orders, logg))
				r.Put("/", controllers.UpdateOrder(svcs.Orders, logg))
				r.Patch("/", controllers.PatchOrder(svcs.Orders, logg))
				r.Delete("/", controllers.DeleteOrder(svcs.Orders, logg))
				r.Post("/recall", controllers.RecallOrder(svcs.Orders, logg))
				r.Get("/changelog", controllers.OrderChangelog(svcs.Orders, logg))

				r.Route("/evidence/{stream}/{slot}", func(r chi.Router) {
					r.Post("/", controllers.UploadEvidence(svcs.Uploads, cfg.Evidence, logg))
					r.Delete("/", controllers.RemoveEvidence(svcs.Uploads, logg))
				})
			})
		})

		r.Get("/changelog", controllers.LatestChangelog(svcs.Orders, logg))
		r.Get("/settlement", controllers.Settlement(svcs.Orders, logg))

		r.Route("/reports", func(r chi.Router) {
			r.Get("/unpaid-receivables", controllers.UnpaidReceivablesReport(svcs.Reports, logg))
			r.Get("/unpaid-payables", controllers.UnpaidPayablesReport(svcs.Reports, logg))
			r.Get("/tax-unissued", controllers.TaxUnissuedReport(svcs.Reports, logg))
			r.Get("/statistics", controllers.StatisticsReport(svcs.Reports, logg))
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", controllers.ListClients(svcs.Master, logg))
			r.Post("/", controllers.SaveClient(svcs.Master, logg))
			r.Post("/import", controllers.ImportClients(svcs.Master, logg))
			r.Delete("/{name}", controllers.DeleteClient(svcs.Master, logg))
		})
		r.Route("/drivers", func(r chi.Router) {
			r.Get("/", controllers.ListDrivers(svcs.Master, logg))
			r.Post("/", controllers.SaveDriver(svcs.Master, logg))
			r.Post("/import", controllers.ImportDrivers(svcs.Master, logg))
			r.Delete("/{driverId}", controllers.DeleteDriver(svcs.Master, logg))
		})
		r.Get("/master/search", controllers.MasterSearch(svcs.Master, logg))

		r.Route("/arrivals", func(r chi.Router) {
			r.Get("/", controllers.ListArrivals(svcs.Arrivals, logg))
			r.Post("/", controllers.CreateArrival(svcs.Arrivals, logg))
			r.Put("/{arrivalId}", controllers.UpdateArrival(svcs.Arrivals, logg))
			r.Delete("/{arrivalId}", controllers.DeleteArrival(svcs.Arrivals, logg))
		})
	})

	return r
}
