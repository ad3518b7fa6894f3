package httpform

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/fieldset-dev/fieldset"
	"github.com/fieldset-dev/fieldset/pkg/strtime"
	"github.com/fieldset-dev/fieldset/pkg/upload"
)

// DefaultTimeLayout renders temporal cleaned values in responses.
const DefaultTimeLayout = "%Y-%m-%d %H:%M:%S"

// DefaultMaxBodySize caps request bodies before parsing.
const DefaultMaxBodySize = 10 << 20

type config struct {
	logger      *slog.Logger
	timeLayout  string
	maxBodySize int64
	observer    func(*fieldset.BoundForm)
}

// Option configures a Handler.
type Option func(*config)

// WithLogger sets the logger. If unset, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithObserver registers a hook that sees every validated submission.
// Callers use it to feed metrics or audit logs without wrapping the
// handler.
func WithObserver(fn func(*fieldset.BoundForm)) Option {
	return func(c *config) { c.observer = fn }
}

// WithTimeLayout sets the %-directive layout used to render time.Time
// cleaned values in the JSON response.
func WithTimeLayout(layout string) Option {
	return func(c *config) { c.timeLayout = layout }
}

// WithMaxBodySize caps the request body size in bytes.
func WithMaxBodySize(n int64) Option {
	return func(c *config) { c.maxBodySize = n }
}

// response is the JSON body every processed submission gets. Cleaned
// holds the fields that cleaned successfully, so an invalid submission
// still shows which parts were fine.
type response struct {
	Valid   bool            `json:"valid"`
	Errors  fieldset.Errors `json:"errors"`
	Cleaned map[string]any  `json:"cleaned"`
}

// fileJSON is the rendered form of an *upload.File. The staging ID is
// what a client echoes back to reference the upload later.
type fileJSON struct {
	ID          string `json:"id,omitempty"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Handler exposes a form as a JSON validation endpoint. POST a
// form-encoded or multipart body; the response reports validity,
// per-field errors, and the cleaned values. Validation failure is a
// processed submission, not a transport error, so it answers 200 with
// "valid": false. Malformed bodies get 400 and non-POST methods 405.
//
// Handler panics if WithTimeLayout was given a malformed layout; the
// layout is part of the program, checked once here.
func Handler(form *fieldset.Form, opts ...Option) http.Handler {
	cfg := config{
		timeLayout:  DefaultTimeLayout,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default().With("component", "httpform")
	}
	if _, err := strtime.Format(time.Time{}, cfg.timeLayout); err != nil {
		panic(err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Cap the body before any parsing touches it.
		r.Body = http.MaxBytesReader(w, r.Body, cfg.maxBodySize)

		bound, err := form.BindRequest(r)
		if err != nil {
			cfg.logger.Warn("bind failed", "path", r.URL.Path, "error", err)
			http.Error(w, "Malformed request body", http.StatusBadRequest)
			return
		}

		valid := bound.Validate()
		errs := bound.Errors()
		if cfg.observer != nil {
			cfg.observer(bound)
		}
		cfg.logger.Info("form processed",
			"path", r.URL.Path,
			"valid", valid,
			"error_fields", len(errs),
		)

		resp := response{
			Valid:   valid,
			Errors:  errs,
			Cleaned: renderCleaned(bound.CleanedData(), cfg.timeLayout),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			cfg.logger.Warn("response encoding failed", "error", err)
		}
	})
}

// renderCleaned converts cleaned values into JSON-friendly forms:
// temporal values through the %-layout, upload records to their
// metadata. Everything else marshals as-is.
func renderCleaned(cleaned map[string]any, layout string) map[string]any {
	out := make(map[string]any, len(cleaned))
	for name, v := range cleaned {
		switch tv := v.(type) {
		case time.Time:
			s, err := strtime.Format(tv, layout)
			if err != nil {
				s = tv.Format(time.RFC3339)
			}
			out[name] = s
		case *upload.File:
			out[name] = fileJSON{
				ID:          tv.ID,
				Filename:    tv.Filename,
				ContentType: tv.ContentType,
				Size:        tv.Size,
			}
		default:
			out[name] = v
		}
	}
	return out
}
