package preview

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies preview spans.
const tracerName = "weft/preview"

// Source produces the chunks of the previewed document, typically by
// calling markup.Fragment. It runs once per request.
type Source func() []string

// Options configures the preview server.
type Options struct {
	// Addr is the listen address (default: "localhost:3600").
	Addr string

	// Watch lists directories whose changes trigger a browser reload.
	Watch []string

	// Debounce is the delay before a change triggers a reload.
	Debounce time.Duration

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Server renders a source on every request and pushes reloads to
// connected browsers when watched files change.
type Server struct {
	source  Source
	options Options
	reload  *ReloadServer
	metrics *metrics
	tracer  trace.Tracer
}

// NewServer creates a preview server for source.
func NewServer(source Source, options Options) *Server {
	if options.Addr == "" {
		options.Addr = "localhost:3600"
	}
	return &Server{
		source:  source,
		options: options,
		reload:  NewReloadServer(),
		metrics: newMetrics(options.Registry),
		tracer:  otel.Tracer(tracerName),
	}
}

// Handler returns the preview routes.
func (s *Server) Handler() http.Handler {
	metricsHandler := promhttp.Handler()
	if g, ok := s.options.Registry.(prometheus.Gatherer); ok {
		metricsHandler = promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.reload.HandleWebSocket)
	r.Get("/metrics", metricsHandler.ServeHTTP)
	return r
}

// Start serves previews until ctx is done. If watch paths were given,
// changes under them broadcast a reload to connected browsers.
func (s *Server) Start(ctx context.Context) error {
	if len(s.options.Watch) > 0 {
		watcher, err := NewWatcher(s.options.Debounce, func(path string) {
			s.reload.NotifyReload(path)
		})
		if err != nil {
			return err
		}
		for _, dir := range s.options.Watch {
			if err := watcher.AddRecursive(dir); err != nil {
				return err
			}
		}
		go watcher.Run(ctx)
	}

	srv := &http.Server{
		Addr:    s.options.Addr,
		Handler: s.Handler(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) handleIndex(w http.ResponseWriter, req *http.Request) {
	_, span := s.tracer.Start(req.Context(), "preview.render")
	defer span.End()

	start := time.Now()
	s.metrics.rendersTotal.Inc()

	var chunks []string
	func() {
		defer func() {
			if r := recover(); r != nil {
				s.metrics.renderErrors.Inc()
				panic(r) // let Recoverer turn it into a 500
			}
		}()
		chunks = s.source()
	}()

	s.metrics.renderDuration.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var written int
	for _, chunk := range chunks {
		n, err := w.Write([]byte(chunk))
		written += n
		if err != nil {
			span.RecordError(err)
			return
		}
	}
	w.Write([]byte(reloadScript))

	s.metrics.renderBytes.Observe(float64(written))
	span.SetAttributes(
		attribute.Int("preview.chunks", len(chunks)),
		attribute.Int("preview.bytes", written),
	)
}

// reloadScript reconnects-and-reloads; appended after the document so
// the previewed markup itself stays untouched.
const reloadScript = `<script>
(function () {
	var ws = new WebSocket("ws://" + location.host + "/ws");
	ws.onmessage = function () { location.reload(); };
})();
</script>
`
