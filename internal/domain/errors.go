package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedYear is matched by every ConfigurationError.
	ErrUnsupportedYear = errors.New("fiscal year not supported")

	// ErrInvalidAsset is matched by every InvalidAssetError.
	ErrInvalidAsset = errors.New("invalid asset")
)

// ConfigurationError reports that no rate table exists for a fiscal year.
// It is fatal and must not be retried.
type ConfigurationError struct {
	Year      int
	Available []int
}

func (e *ConfigurationError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no rate table for fiscal year %d", e.Year)
	}
	years := make([]string, len(e.Available))
	for i, y := range e.Available {
		years[i] = fmt.Sprint(y)
	}
	return fmt.Sprintf("no rate table for fiscal year %d (supported: %s)", e.Year, strings.Join(years, ", "))
}

func (e *ConfigurationError) Unwrap() error { return ErrUnsupportedYear }

// InvalidAssetError reports an asset that breaks a data-model invariant.
type InvalidAssetError struct {
	Asset  string
	Reason string
}

func (e *InvalidAssetError) Error() string {
	if e.Asset == "" {
		return "invalid asset: " + e.Reason
	}
	return fmt.Sprintf("invalid asset %q: %s", e.Asset, e.Reason)
}

func (e *InvalidAssetError) Unwrap() error { return ErrInvalidAsset }
