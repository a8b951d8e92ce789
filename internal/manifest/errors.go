package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrNoOutputs indicates the manifest has no output files defined
	ErrNoOutputs = errors.New("manifest must contain at least one output file")

	// ErrEmptyNamespace indicates a namespace entry with an empty directory or name
	ErrEmptyNamespace = errors.New("namespace directory and name cannot be empty")

	// ErrDuplicateOutput indicates an output name declared more than once
	ErrDuplicateOutput = errors.New("output file declared more than once")

	// ErrInvalidFormat indicates the manifest file is not valid YAML or JSON
	ErrInvalidFormat = errors.New("manifest must be valid YAML or JSON")

	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, .json or .jsonc)")
)
