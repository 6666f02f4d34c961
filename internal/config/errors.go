package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MissingCredentialsError reports league credentials absent from the environment.
type MissingCredentialsError struct {
	Missing []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("league credentials are not set: missing %s", strings.Join(e.Missing, ", "))
}

// InvalidValueError reports a setting that parsed but cannot be used.
type InvalidValueError struct {
	Key    string
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s=%q: %s", e.Key, e.Value, e.Reason)
}

// IsConfigurationError reports whether err came from configuration loading.
func IsConfigurationError(err error) bool {
	var missing *MissingCredentialsError
	var invalid *InvalidValueError
	return errors.As(err, &missing) || errors.As(err, &invalid)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
