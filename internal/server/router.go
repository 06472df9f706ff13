package server

import (
	"net/http"

	"github.com/diewo77/go-assets/httpx"
	"github.com/diewo77/go-assets/i18n"
	"github.com/diewo77/go-assets/internal/handlers"
	"github.com/diewo77/go-assets/internal/middleware"
	"github.com/diewo77/go-assets/internal/report"
	"github.com/diewo77/go-assets/internal/services"
	"github.com/diewo77/go-assets/internal/store"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options tune the router. Zero values are usable.
type Options struct {
	DefaultLang string
	Logger      *zap.Logger
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	lang := opts.DefaultLang
	if lang == "" {
		lang = i18n.DefaultLang
	}

	st := store.New(db)
	selector := report.NewSelector(st, log)
	gen := report.NewGenerator(selector, report.NewEngine())

	ch := handlers.NewClientHandler(services.NewClientService(st), log)
	eh := handlers.NewEquipmentHandler(services.NewEquipmentService(st), log)
	rh := handlers.NewReportHandler(gen, log)
	dh := handlers.NewDashboardHandler(st, selector, log)

	r := mux.NewRouter()
	r.Use(middleware.Metrics)

	// --- Health endpoints ---
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.WithContext(req.Context()).Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/", dh.Show).Methods(http.MethodGet)
	r.HandleFunc("/export-pdf", rh.PDF).Methods(http.MethodGet)
	r.HandleFunc("/export-xlsx", rh.XLSX).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/clients", ch.List).Methods(http.MethodGet)
	api.HandleFunc("/clients", ch.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id:[0-9]+}", ch.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipment", eh.List).Methods(http.MethodGet)
	api.HandleFunc("/equipment", eh.Create).Methods(http.MethodPost)
	api.HandleFunc("/equipment/{id:[0-9]+}", eh.Get).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id:[0-9]+}", eh.Update).Methods(http.MethodPut)
	api.HandleFunc("/equipment/{id:[0-9]+}", eh.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/equipment/{id:[0-9]+}/qr.png", eh.QR).Methods(http.MethodGet)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	})
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	})
	// subrouters do not inherit these from the root
	for _, rt := range []*mux.Router{r, api} {
		rt.NotFoundHandler = notFound
		rt.MethodNotAllowedHandler = notAllowed
	}

	return middleware.Logging(log)(middleware.Recover(log)(middleware.Prefs(lang)(r)))
}
