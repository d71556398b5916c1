// Package preview serves the generated site locally during watch mode,
// exposing rebuild metrics on /metrics.
package preview

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"git.home.luguber.info/inful/codedoc/internal/logfields"
)

// Metrics records generation activity for the preview endpoint.
type Metrics struct {
	rebuilds      prom.Counter
	buildDuration prom.Histogram
	pagesEmitted  prom.Gauge
	registry      *prom.Registry
}

// NewMetrics constructs and registers the preview metrics.
func NewMetrics() *Metrics {
	registry := prom.NewRegistry()
	m := &Metrics{
		rebuilds: prom.NewCounter(prom.CounterOpts{
			Namespace: "codedoc",
			Name:      "rebuilds_total",
			Help:      "Number of completed generation passes",
		}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "codedoc",
			Name:      "build_duration_seconds",
			Help:      "Duration of generation passes",
			Buckets:   prom.DefBuckets,
		}),
		pagesEmitted: prom.NewGauge(prom.GaugeOpts{
			Namespace: "codedoc",
			Name:      "pages_emitted",
			Help:      "Pages emitted by the last generation pass",
		}),
		registry: registry,
	}
	registry.MustRegister(m.rebuilds, m.buildDuration, m.pagesEmitted)
	return m
}

// ObserveBuild records one completed generation pass.
func (m *Metrics) ObserveBuild(duration time.Duration, pages int) {
	m.rebuilds.Inc()
	m.buildDuration.Observe(duration.Seconds())
	m.pagesEmitted.Set(float64(pages))
}

// Server serves the output directory plus /metrics.
type Server struct {
	addr    string
	outDir  string
	metrics *Metrics
}

func NewServer(addr, outDir string, metrics *Metrics) *Server {
	return &Server{addr: addr, outDir: outDir, metrics: metrics}
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	mux.Handle("/", http.FileServer(http.Dir(s.outDir)))

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("preview server listening", "addr", s.addr, logfields.Dir(s.outDir))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
