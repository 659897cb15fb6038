// Package metrics exposes engine counters on a private Prometheus registry.
//
// Metrics:
//   - voxel_segments_meshed_total: segments rebuilt by the mesher
//   - voxel_faces_emitted_total: quads emitted by the mesher
//   - voxel_gpu_uploads_total / voxel_gpu_releases_total: uploader traffic
//   - voxel_edits_total{op,result}: edit requests by outcome
//   - voxel_generation_pass_seconds{pass}: init pipeline pass durations
//   - voxel_visible_segments: segments drawn in the last frame
package metrics

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voxel"

var (
	Registry = prometheus.NewRegistry()

	SegmentsMeshed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "segments_meshed_total",
		Help:      "Render segments rebuilt by the mesher.",
	})
	FacesEmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "faces_emitted_total",
		Help:      "Quads emitted by the mesher.",
	})
	Uploads = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gpu_uploads_total",
		Help:      "Segment geometry uploads.",
	})
	Releases = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gpu_releases_total",
		Help:      "Segment geometry releases.",
	})
	Edits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "edits_total",
		Help:      "Voxel edit requests by operation and outcome.",
	}, []string{"op", "result"})
	PassDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_pass_seconds",
		Help:      "Duration of world initialisation passes.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"pass"})
	VisibleSegments = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "visible_segments",
		Help:      "Segments that passed frustum culling in the last frame.",
	})
)

func init() {
	Registry.MustRegister(SegmentsMeshed, FacesEmitted, Uploads, Releases, Edits, PassDuration, VisibleSegments)
}

// ObservePass records how long an init pass took.
// Usage: defer metrics.ObservePass("terrain")()
func ObservePass(pass string) func() {
	start := time.Now()
	return func() {
		PassDuration.WithLabelValues(pass).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr in the background. An empty addr disables it.
func Serve(addr string) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()
	log.Printf("metrics listening on %s", addr)
	return srv
}
