// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldInput      = "input"
	FieldWorkingDir = "working_dir"
	FieldSource     = "source"

	// Configuration fields.
	FieldGrammar        = "grammar"
	FieldAllowRemaining = "allow_remaining"
	FieldWhitespace     = "whitespace"
	FieldFormat         = "format"
	FieldJobs           = "jobs"

	// Statistics fields.
	FieldInputs   = "inputs"
	FieldMatched  = "matched"
	FieldFailed   = "failed"
	FieldExamples = "examples"
	FieldFiles    = "files"
	FieldLine     = "line"

	// Result fields.
	FieldValue     = "value"
	FieldRemaining = "remaining"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Grammar fields.
	FieldName        = "name"
	FieldAliases     = "aliases"
	FieldExample     = "example"
	FieldDescription = "description"
)
