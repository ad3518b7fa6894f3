// Package fieldset provides declarative form definition and validation
// with typed field cleaning and a locale-aware date/time engine.
//
// # Overview
//
// A Form is an immutable roster of named fields. Binding it to
// submitted data produces a BoundForm, which cleans every raw string
// into a typed value, accumulates per-field errors, and exposes the
// results. Date, time and datetime fields parse through the
// pkg/strtime engine: input formats are compiled once when the field
// is constructed and tried in order until one matches.
//
// # Basic Usage
//
//	signup := fieldset.New(
//	    fieldset.NewChar("username", &fieldset.CharOptions{MinLength: 3, MaxLength: 30}),
//	    fieldset.NewEmail("email", nil),
//	    fieldset.NewDate("birthday", &fieldset.TemporalOptions{Optional: true}),
//	    fieldset.NewBoolean("terms", nil),
//	)
//
//	bound := signup.Bind(r.PostForm)
//	if !bound.Validate() {
//	    for field, msgs := range bound.Errors() {
//	        log.Printf("%s: %s", field, msgs[0])
//	    }
//	    return
//	}
//	birthday := bound.Value("birthday") // time.Time or nil
//
// # Fields
//
// The roster covers the common input shapes:
//
//   - NewChar: text, with optional length bounds
//   - NewInteger/NewFloat: numbers with optional inclusive bounds
//   - NewBoolean: checkbox semantics ("true", "on", "1")
//   - NewChoice: membership in a fixed set
//   - NewEmail/NewRegex: pattern-checked text
//   - NewDate/NewTime/NewDateTime: strtime-parsed moments
//   - NewFile: multipart uploads, optionally persisted via pkg/upload
//
// Fields are required by default; set Optional in the options struct to
// allow empty submissions. Additional Validator values attached to a
// field run against its cleaned value during Validate.
//
// # Errors
//
// Validation never stops at the first problem: every field reports into
// an Errors map keyed by field name, so a response can show everything
// wrong with a submission at once.
package fieldset
