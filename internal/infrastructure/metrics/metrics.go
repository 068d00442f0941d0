// Package metrics expone contadores Prometheus del motor de inventario y el
// servidor HTTP que los publica, separado del API principal.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/dulceria-lilis/inventario-api/internal/application/inventory"
)

var _ inventory.Observer = (*Observer)(nil)

// Observer publica las señales post-commit del motor de movimientos como
// métricas Prometheus. Las alertas de stock bajo además quedan en el log.
type Observer struct {
	movementsPosted *prometheus.CounterVec
	lowStockAlerts  prometheus.Counter
}

func NewObserver() *Observer {
	return &Observer{
		movementsPosted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "inventario_movements_posted_total",
			Help: "Movimientos de inventario registrados, por tipo.",
		}, []string{"type"}),
		lowStockAlerts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inventario_low_stock_alerts_total",
			Help: "Alertas de stock bajo emitidas tras registrar movimientos.",
		}),
	}
}

func (o *Observer) MovementPosted(movementType string) {
	o.movementsPosted.WithLabelValues(movementType).Inc()
}

func (o *Observer) LowStock(lotCode string, available, minimum decimal.Decimal) {
	o.lowStockAlerts.Inc()
	log.Warn().
		Str("lote", lotCode).
		Str("disponible", available.String()).
		Str("minimo", minimum.String()).
		Msg("stock bajo tras movimiento")
}

// Server publica /metrics y /health en un puerto separado del API.
type Server struct {
	srv *http.Server
}

func NewServer(addr string) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{srv: &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
