// Package middleware provides production-grade middleware for form endpoints.
//
// This package includes:
//   - OpenTelemetry distributed tracing middleware
//   - Prometheus metrics middleware
//
// Both return standard func(http.Handler) http.Handler wrappers, so they
// compose with chi and with plain net/http mounting.
//
// # OpenTelemetry Middleware
//
// The OpenTelemetry middleware traces every request to a form endpoint.
// Spans carry the method, target path, response status, and any custom
// attributes you extract.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry())
//	r.Handle("/submit", httpform.Handler(form))
//
// Configure with options:
//
//	middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-app"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	)
//
// # Prometheus Metrics
//
// The Prometheus middleware collects metrics about form traffic:
//   - fieldset_requests_total: Requests by path and status code
//   - fieldset_request_duration_seconds: Request duration histogram
//   - fieldset_submissions_total: Submissions by outcome
//   - fieldset_validation_failures_total: Validation failures by field
//   - fieldset_uploads_staged_total, fieldset_upload_bytes,
//     fieldset_uploads_expired_total: Upload staging activity
//
//	r.Use(middleware.Prometheus())
//
// Then expose metrics:
//
//	r.Handle("/metrics", promhttp.Handler())
//
// The submission and upload metrics are fed by the Record* functions;
// call them from your endpoint code where the outcome is known:
//
//	valid := bound.Validate()
//	middleware.RecordSubmission(valid)
//	middleware.RecordValidationFailures(bound.Errors())
//
// # Context Propagation
//
// The tracing middleware injects the span context into the request
// context, so database drivers and HTTP clients inherit the trace:
//
//	func MyHandler(w http.ResponseWriter, r *http.Request) {
//	    row := db.QueryRowContext(r.Context(), "SELECT ...")
//	    req, _ := http.NewRequestWithContext(r.Context(), "GET", url, nil)
//	}
package middleware
