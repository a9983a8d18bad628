package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	EngineOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "engine_operations_total", Help: "Reservation engine operations."},
		[]string{"op", "outcome"}, // outcome: ok|error
	)
	StoreEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "store_events_total", Help: "Record store loads/saves/appends."},
		[]string{"file", "event"}, // event: load|save|append
	)
	ReportRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "report_requests_total", Help: "Read-only report API requests."},
		[]string{"route", "status"},
	)
)

// Serve exposes /metrics on METRICS_ADDR in the background. Empty address
// means disabled, which is the default for an interactive session.
func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(EngineOps, StoreEvents, ReportRequests)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveOp(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	EngineOps.WithLabelValues(op, outcome).Inc()
}

func ObserveStore(file, event string) {
	StoreEvents.WithLabelValues(file, event).Inc()
}

func ObserveReport(route string, status int) {
	ReportRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
