package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Davidson1997/bridge-calculator/internal/calc/assess"
	"github.com/Davidson1997/bridge-calculator/internal/calc/batch"
	"github.com/Davidson1997/bridge-calculator/internal/calc/concrete"
	"github.com/Davidson1997/bridge-calculator/internal/calc/loading"
	"github.com/Davidson1997/bridge-calculator/internal/calc/report"
	"github.com/Davidson1997/bridge-calculator/internal/calc/steel"
	"github.com/Davidson1997/bridge-calculator/internal/calc/timber"
	"github.com/Davidson1997/bridge-calculator/internal/calc/vehicle"
	"github.com/Davidson1997/bridge-calculator/internal/config"
)

// Register wires the form page and the JSON API onto the router.
func Register(r *mux.Router, log *zap.Logger, cfg config.Config) {
	limiter := NewIPRateLimiter(rate.Limit(cfg.RateRPS), cfg.RateBurst)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(RequestID, AccessLog(log), limiter.LimitMiddleware)

	api.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")

	steelH := &steel.Handler{}
	concreteH := &concrete.Handler{}
	timberH := &timber.Handler{}
	loadingH := &loading.Handler{}
	vehicleH := &vehicle.Handler{}
	assessH := &assess.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}

	api.HandleFunc("/tools/steel/calc", steelH.Calc).Methods("POST")
	api.HandleFunc("/tools/concrete/calc", concreteH.Calc).Methods("POST")
	api.HandleFunc("/tools/timber/calc", timberH.Calc).Methods("POST")
	api.HandleFunc("/tools/loading/calc", loadingH.Calc).Methods("POST")
	api.HandleFunc("/tools/vehicle/calc", vehicleH.Calc).Methods("POST")
	api.HandleFunc("/tools/assess/calc", assessH.Calc).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/batch/import", batchH.Import).Methods("POST")
	api.HandleFunc("/tools/batch/export", batchH.Export).Methods("POST")

	pages := &Pages{Log: log, VehicleStepM: cfg.VehicleStepM}
	r.HandleFunc("/", pages.Index).Methods("GET")
	r.HandleFunc("/calculate", pages.Calculate).Methods("POST")
}
