// Package errors provides structured, actionable error messages for fieldset.
//
// The errors package implements an error system that:
//   - Points at the offending position inside a format string or input
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with examples
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - format: Malformed format strings and layouts
//   - parse: Input text that does not match a format
//   - range: Field values outside their calendar or clock range
//   - validation: Form input errors
//   - config: fieldset.json problems
//   - cli: Command-line usage errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E001") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E001").
//	    WithSnippet("yyyy-Qd", 5).
//	    WithSuggestion("Quote literal text in single quotes, e.g. 'Q'.")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Unrecognized format directive
//	//
//	//   yyyy-Qd
//	//        ^
//	//
//	//   The format contains a letter run that is not a supported
//	//   directive. Letters that are not directives must be quoted.
//	//
//	//   Hint: Quote literal text in single quotes, e.g. 'Q'.
//	//
//	//   Learn more: https://fieldset.dev/docs/errors/E001
//
// FromStrtime converts the typed errors the parsing engine returns into
// their coded equivalents, so CLI commands render them uniformly.
package errors
