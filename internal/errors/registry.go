package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Format Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryFormat,
		Message:  "Unrecognized format directive",
		Detail:   "The format contains a letter run that is not a supported directive. Letters that are not directives must be quoted.",
		DocURL:   "https://fieldset.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryFormat,
		Message:  "Unterminated quoted literal",
		Detail:   "A literal opened with ' is never closed.",
		DocURL:   "https://fieldset.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryFormat,
		Message:  "Trailing percent in layout",
		Detail:   "A formatting layout ends with a bare % that introduces no directive.",
		DocURL:   "https://fieldset.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryFormat,
		Message:  "Format could not be compiled",
		Detail:   "The format string could not be turned into a matcher.",
		DocURL:   "https://fieldset.dev/docs/errors/E004",
	},

	// ============================================
	// Parse Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryParse,
		Message:  "Input does not match format",
		Detail:   "The input text does not have the shape the format describes.",
		DocURL:   "https://fieldset.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategoryParse,
		Message:  "No format matched the input",
		Detail:   "Every candidate format was tried and none matched the input.",
		DocURL:   "https://fieldset.dev/docs/errors/E021",
	},

	// ============================================
	// Range Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryRange,
		Message:  "Month out of range",
		Detail:   "Months run from 1 to 12.",
		DocURL:   "https://fieldset.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryRange,
		Message:  "Day out of range",
		Detail:   "The day is outside the calendar range for the resolved month and year.",
		DocURL:   "https://fieldset.dev/docs/errors/E041",
	},
	"E042": {
		Category: CategoryRange,
		Message:  "Hour out of range",
		Detail:   "Hours run from 0 to 23 on the 24-hour clock and 1 to 12 on the 12-hour clock.",
		DocURL:   "https://fieldset.dev/docs/errors/E042",
	},
	"E043": {
		Category: CategoryRange,
		Message:  "Minute out of range",
		Detail:   "Minutes run from 0 to 59.",
		DocURL:   "https://fieldset.dev/docs/errors/E043",
	},
	"E044": {
		Category: CategoryRange,
		Message:  "Second out of range",
		Detail:   "Seconds run from 0 to 59.",
		DocURL:   "https://fieldset.dev/docs/errors/E044",
	},

	// ============================================
	// Validation Errors (E080-E099)
	// ============================================

	"E080": {
		Category: CategoryValidation,
		Message:  "Required field missing",
		Detail:   "A required form field was not provided.",
		DocURL:   "https://fieldset.dev/docs/errors/E080",
	},
	"E081": {
		Category: CategoryValidation,
		Message:  "Invalid email format",
		Detail:   "The provided email address is not valid.",
		DocURL:   "https://fieldset.dev/docs/errors/E081",
	},
	"E082": {
		Category: CategoryValidation,
		Message:  "Value too short",
		Detail:   "The provided value is shorter than the minimum length.",
		DocURL:   "https://fieldset.dev/docs/errors/E082",
	},
	"E083": {
		Category: CategoryValidation,
		Message:  "Value too long",
		Detail:   "The provided value exceeds the maximum length.",
		DocURL:   "https://fieldset.dev/docs/errors/E083",
	},
	"E084": {
		Category: CategoryValidation,
		Message:  "Value out of range",
		Detail:   "The numeric value is outside the allowed range.",
		DocURL:   "https://fieldset.dev/docs/errors/E084",
	},
	"E085": {
		Category: CategoryValidation,
		Message:  "Pattern mismatch",
		Detail:   "The value doesn't match the required pattern.",
		DocURL:   "https://fieldset.dev/docs/errors/E085",
	},
	"E086": {
		Category: CategoryValidation,
		Message:  "Invalid choice",
		Detail:   "The value is not one of the configured choices.",
		DocURL:   "https://fieldset.dev/docs/errors/E086",
	},
	"E087": {
		Category: CategoryValidation,
		Message:  "Upload too large",
		Detail:   "The uploaded file exceeds the allowed size.",
		DocURL:   "https://fieldset.dev/docs/errors/E087",
	},
	"E088": {
		Category: CategoryValidation,
		Message:  "Upload type not allowed",
		Detail:   "The uploaded file's content type is not in the allowed list.",
		DocURL:   "https://fieldset.dev/docs/errors/E088",
	},

	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid fieldset.json",
		Detail:   "The fieldset.json configuration file is malformed.",
		DocURL:   "https://fieldset.dev/docs/errors/E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Missing required configuration",
		Detail:   "A required configuration value is not set.",
		DocURL:   "https://fieldset.dev/docs/errors/E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
		Detail:   "The configured port number is invalid or already in use.",
		DocURL:   "https://fieldset.dev/docs/errors/E122",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Configured format does not compile",
		Detail:   "A format listed in the configuration failed to compile.",
		DocURL:   "https://fieldset.dev/docs/errors/E123",
	},
	"E124": {
		Category: CategoryConfig,
		Message:  "Incomplete locale override",
		Detail:   "A locale override must supply twelve month names, twelve abbreviations, and both meridiem markers.",
		DocURL:   "https://fieldset.dev/docs/errors/E124",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Not a fieldset project",
		Detail:   "The current directory is not a fieldset project. Run this command from a directory with fieldset.json.",
		DocURL:   "https://fieldset.dev/docs/errors/E140",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Input could not be parsed",
		Detail:   "The input value does not match any of the formats in effect.",
		DocURL:   "https://fieldset.dev/docs/errors/E141",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Invalid layout",
		Detail:   "The output layout is malformed.",
		DocURL:   "https://fieldset.dev/docs/errors/E142",
	},
	"E143": {
		Category: CategoryCLI,
		Message:  "Unknown locale",
		Detail:   "The requested locale is not built in and no override defines it.",
		DocURL:   "https://fieldset.dev/docs/errors/E143",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
