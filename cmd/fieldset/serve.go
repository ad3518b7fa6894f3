package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/fieldset-dev/fieldset"
	"github.com/fieldset-dev/fieldset/internal/config"
	"github.com/fieldset-dev/fieldset/pkg/httpform"
	"github.com/fieldset-dev/fieldset/pkg/middleware"
	"github.com/fieldset-dev/fieldset/pkg/upload"
)

// cleanupEvery is how often the staged-upload sweep runs.
const cleanupEvery = 5 * time.Minute

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the validation server",
		Long: `Start an HTTP server exposing a demo form as a JSON
validation endpoint.

Routes:
  POST /validate   bind and validate a submission
  GET  /healthz    liveness probe
  GET  /metrics    Prometheus metrics

The demo form covers every field kind; its temporal fields use the
formats and locale from fieldset.json, and uploads are staged on
disk and swept after their TTL.

Examples:
  fieldset serve
  fieldset serve --port=3000
  fieldset serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from fieldset.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from fieldset.json)")

	return cmd
}

func runServe(port int, host string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Path() == "" {
		warn("No fieldset.json found, using defaults")
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Serve.Port = port
	}
	if host != "" {
		cfg.Serve.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := upload.NewDiskStore(cfg.UploadDir(), cfg.Serve.Upload.MaxSize)
	if err != nil {
		return err
	}
	store.WithTTL(cfg.UploadTTL())

	form, err := demoForm(cfg, meteredStore{store})
	if err != nil {
		return err
	}

	validateHandler := httpform.Handler(form,
		httpform.WithLogger(logger.With("component", "httpform")),
		httpform.WithMaxBodySize(cfg.Serve.MaxBodySize),
		httpform.WithObserver(func(b *fieldset.BoundForm) {
			middleware.RecordSubmission(b.Validate())
			middleware.RecordValidationFailures(b.Errors())
		}),
	)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Prometheus(
		middleware.WithNamespace(cfg.Serve.MetricsNamespace),
	))
	r.Use(middleware.OpenTelemetry(
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
		}),
	))

	r.Handle("/validate", validateHandler)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Print banner
	printBanner()
	fmt.Println("  serve")
	fmt.Println()
	info("Form fields: %s", fieldNames(form))
	info("Uploads staged in %s (ttl %s)", cfg.UploadDir(), cfg.UploadTTL())
	success("Listening on http://%s/validate", cfg.Address())
	fmt.Println()

	server := &http.Server{
		Addr:    cfg.Address(),
		Handler: r,
	}

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	go sweepUploads(ctx, store, cfg.UploadTTL(), logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		server.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}

// demoForm builds the form the validate endpoint serves: one field of
// each kind, temporal fields wired to the configured formats and
// locale, the file field staging into the store.
func demoForm(cfg *config.Config, store upload.Store) (*fieldset.Form, error) {
	loc, err := cfg.StrtimeLocale()
	if err != nil {
		return nil, err
	}

	return fieldset.New(
		fieldset.NewChar("name", &fieldset.CharOptions{MaxLength: 100}),
		fieldset.NewEmail("email", nil),
		fieldset.NewInteger("guests", &fieldset.IntegerOptions{Optional: true}),
		fieldset.NewBoolean("subscribe", &fieldset.BooleanOptions{Optional: true}),
		fieldset.NewChoice("meal", []string{"vegetarian", "vegan", "omnivore"}, &fieldset.ChoiceOptions{Optional: true}),
		fieldset.NewDate("birthday", &fieldset.TemporalOptions{
			Optional: true,
			Formats:  cfg.Formats.Date,
			Locale:   &loc,
		}),
		fieldset.NewDateTime("arrival", &fieldset.TemporalOptions{
			Optional: true,
			Formats:  cfg.Formats.DateTime,
			Locale:   &loc,
		}),
		fieldset.NewFile("attachment", &fieldset.FileOptions{
			Optional: true,
			MaxSize:  cfg.Serve.Upload.MaxSize,
			Store:    store,
		}),
	), nil
}

// sweepUploads expires staged files that were never claimed.
func sweepUploads(ctx context.Context, store upload.Store, ttl time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(cleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := store.Cleanup(ttl)
			if err != nil {
				logger.Warn("upload sweep failed", "error", err)
				continue
			}
			if removed > 0 {
				middleware.RecordUploadsExpired(removed)
				logger.Info("expired uploads swept", "count", removed)
			}
		}
	}
}

// meteredStore wraps a Store so staged uploads feed the metrics.
type meteredStore struct {
	upload.Store
}

func (m meteredStore) Save(filename, contentType string, size int64, r io.Reader) (string, error) {
	id, err := m.Store.Save(filename, contentType, size, r)
	if err == nil {
		middleware.RecordUploadStaged(size)
	}
	return id, err
}

func fieldNames(form *fieldset.Form) string {
	names := ""
	for i, f := range form.Fields() {
		if i > 0 {
			names += ", "
		}
		names += f.Name()
	}
	return names
}
