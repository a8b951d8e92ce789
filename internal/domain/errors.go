package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrConfiguration indicates a deployment or configuration mistake
	ErrConfiguration = errors.New("configuration error")

	// ErrSourceUnavailable indicates a source file is missing or unreadable
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrEmptySourceSet indicates an output has no source files
	ErrEmptySourceSet = errors.New("no source files")

	// ErrCacheMiss indicates a cache miss
	ErrCacheMiss = errors.New("cache miss")
)

// ConfigKind classifies configuration errors
type ConfigKind string

const (
	KindUnknownOutput        ConfigKind = "unknown_output"
	KindUnknownNamespace     ConfigKind = "unknown_namespace"
	KindMalformedReference   ConfigKind = "malformed_reference"
	KindUnsupportedExtension ConfigKind = "unsupported_extension"
)

// ConfigurationError represents an unknown output name, unknown namespace,
// malformed reference or unsupported output extension.
type ConfigurationError struct {
	Kind    ConfigKind
	Subject string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Is reports whether target is ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewUnknownOutputError creates an error for an output name missing from the manifest
func NewUnknownOutputError(name string) *ConfigurationError {
	return &ConfigurationError{
		Kind:    KindUnknownOutput,
		Subject: name,
		Message: fmt.Sprintf("theme file %q is not configured", name),
	}
}

// NewUnknownNamespaceError creates an error for an unconfigured namespace
func NewUnknownNamespaceError(namespace string) *ConfigurationError {
	return &ConfigurationError{
		Kind:    KindUnknownNamespace,
		Subject: namespace,
		Message: fmt.Sprintf("theme namespace %q is not configured", namespace),
	}
}

// NewMalformedReferenceError creates an error for a reference without a path part
func NewMalformedReferenceError(reference string) *ConfigurationError {
	return &ConfigurationError{
		Kind:    KindMalformedReference,
		Subject: reference,
		Message: fmt.Sprintf("invalid theme path format: %q", reference),
	}
}

// NewUnsupportedExtensionError creates an error for an output extension without a content type
func NewUnsupportedExtensionError(ext string) *ConfigurationError {
	return &ConfigurationError{
		Kind:    KindUnsupportedExtension,
		Subject: ext,
		Message: fmt.Sprintf("content type for extension %q is not supported", ext),
	}
}

// IsUnknownOutput checks if err is a ConfigurationError for an unknown output name
func IsUnknownOutput(err error) bool {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind == KindUnknownOutput
	}
	return false
}

// SourceUnavailableError represents a missing or unreadable source file
type SourceUnavailableError struct {
	Path string
	Op   string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("theme source %s failed for %q: %v", e.Op, e.Path, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSourceUnavailable
func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewSourceUnavailableError creates a new SourceUnavailableError
func NewSourceUnavailableError(path, op string, err error) *SourceUnavailableError {
	return &SourceUnavailableError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}

// EmptySourceSetError indicates an output configured with zero sources
type EmptySourceSetError struct {
	Output string
}

func (e *EmptySourceSetError) Error() string {
	if e.Output == "" {
		return ErrEmptySourceSet.Error()
	}
	return fmt.Sprintf("theme file %q has no source files", e.Output)
}

// Is reports whether target is ErrEmptySourceSet
func (e *EmptySourceSetError) Is(target error) bool {
	return target == ErrEmptySourceSet
}

// NewEmptySourceSetError creates a new EmptySourceSetError
func NewEmptySourceSetError(output string) *EmptySourceSetError {
	return &EmptySourceSetError{Output: output}
}
