// Package httpform serves a form as a JSON validation endpoint.
//
// Handler wraps a [fieldset.Form] in an http.Handler that accepts
// form-encoded and multipart POST bodies and answers with a JSON
// document:
//
//	{
//	  "valid": false,
//	  "errors": {"age": ["Enter a whole number."]},
//	  "cleaned": {"username": "ada"}
//	}
//
// Cleaned temporal values are rendered through a %-directive layout
// (see [strtime.Format]); uploads are rendered as their staging
// metadata. The zero-configuration path works out of the box:
//
//	form := fieldset.New(
//		fieldset.NewChar("username", &fieldset.CharOptions{MinLength: 3}),
//		fieldset.NewDate("birthday", nil),
//	)
//	http.Handle("/signup", httpform.Handler(form))
//
// Use options to adjust the logger, the body-size cap, or the layout
// for rendered times.
package httpform
