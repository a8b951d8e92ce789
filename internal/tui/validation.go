package tui

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/quantmind-br/themebundle/internal/config"
	"github.com/quantmind-br/themebundle/internal/utils"
)

// Validation error messages
var (
	ErrRequired      = errors.New("this field is required")
	ErrInvalidNumber = errors.New("must be a valid number")
	ErrInvalidRange  = errors.New("value out of valid range")
)

// ValidateRequired ensures a string value is not empty
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

// ValidateDuration validates that a string can be parsed as a time.Duration
func ValidateDuration(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // Empty is valid (will use default)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration format (use: 30s, 5m, 1h): %w", err)
	}
	if d < 0 {
		return config.ErrInvalidDuration
	}
	return nil
}

// ValidateIntRange validates that a string represents an integer within a range
func ValidateIntRange(min, max int) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return ErrInvalidNumber
		}
		if n < min || n > max {
			return fmt.Errorf("%w: must be between %d and %d", ErrInvalidRange, min, max)
		}
		return nil
	}
}

// ValidateAddress validates a host:port listen address
func ValidateAddress(s string) error {
	if err := ValidateRequired(s); err != nil {
		return err
	}
	if _, _, err := net.SplitHostPort(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid address (use: :8080, 127.0.0.1:8080): %w", err)
	}
	return nil
}

// ValidatePrefix validates the URL prefix combined files are served under
func ValidatePrefix(s string) error {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "/") {
		return fmt.Errorf("prefix must start with /")
	}
	return nil
}

// ValidateLogLevel validates log level values
func ValidateLogLevel(s string) error {
	if !utils.ValidLogLevel(s) {
		return fmt.Errorf("invalid log level: must be one of trace, debug, info, warn, error")
	}
	return nil
}

// ValidateLogFormat validates log format values
func ValidateLogFormat(s string) error {
	switch strings.ToLower(s) {
	case "pretty", "json":
		return nil
	}
	return fmt.Errorf("invalid log format: must be pretty or json")
}

// ValidateBackend validates cache backend values
func ValidateBackend(s string) error {
	switch strings.ToLower(s) {
	case config.BackendMemory, config.BackendBadger:
		return nil
	}
	return fmt.Errorf("invalid cache backend: must be %s or %s", config.BackendMemory, config.BackendBadger)
}
