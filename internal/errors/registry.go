package errors

// Registered error codes.
const (
	CodeEmptyTag        = "W001"
	CodeConfigNotFound  = "W101"
	CodeConfigInvalid   = "W102"
	CodeBucketMissing   = "W201"
	CodePublishEmptyDir = "W202"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Generator errors (W0xx)
	CodeEmptyTag: {
		Category:   CategoryGen,
		Message:    "empty tag name in registry table",
		Detail:     "Every entry in the tag registry table must have a non-empty Name.",
		Suggestion: "Remove the empty entry from internal/gen/table.go.",
	},

	// Config errors (W1xx)
	CodeConfigNotFound: {
		Category:   CategoryConfig,
		Message:    "weft.json not found",
		Detail:     "No weft.json was found in the current directory or any parent.",
		Suggestion: "Run from inside a project, or pass settings as flags.",
	},
	CodeConfigInvalid: {
		Category:   CategoryConfig,
		Message:    "weft.json is not valid JSON",
		Suggestion: "Check the file for syntax errors.",
	},

	// Publish errors (W2xx)
	CodeBucketMissing: {
		Category:   CategoryPublish,
		Message:    "no S3 bucket configured",
		Detail:     "Publishing needs a destination bucket.",
		Suggestion: "Pass --bucket or set publish.bucket in weft.json.",
	},
	CodePublishEmptyDir: {
		Category:   CategoryPublish,
		Message:    "nothing to publish",
		Detail:     "The output directory contains no files.",
		Suggestion: "Build your documents before publishing.",
	},
}
