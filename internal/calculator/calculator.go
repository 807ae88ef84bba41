// Package calculator implements the increment engine: baseline resolution,
// bump-kind selection, and calendar rollover. Calculate is a pure function
// of its inputs — it performs no I/O and holds no state between calls.
package calculator

import (
	"fmt"
	"time"

	"github.com/MyCarrier-DevOps/go-nextver/internal/config"
	"github.com/MyCarrier-DevOps/go-nextver/internal/version"
)

// NoPreviousVersion is the previous-version marker emitted when no
// qualifying prior tag existed and no override was given.
const NoPreviousVersion = "none"

// Input is the materialized snapshot the engine operates on.
type Input struct {
	// Tags are the raw tag strings from the configured tag source. Unused
	// when an override version is configured.
	Tags []string

	// Labels are the pull-request label names. Empty when the run is not
	// associated with a pull request.
	Labels []string

	// Now supplies the calendar period for CalVer calculations.
	Now time.Time
}

// Result holds the computed next version and the version it was derived from.
type Result struct {
	// NewVersion is the canonical rendering of the computed version.
	NewVersion string

	// PreviousVersion is the raw tag string the calculation was based on
	// (preserving any prefix it carried), the override string, or
	// NoPreviousVersion.
	PreviousVersion string
}

// Calculate computes the next version for the given configuration and
// snapshot. Identical inputs always produce an identical result.
func Calculate(cfg *config.Config, in Input) (Result, error) {
	switch cfg.Mode.Scheme() {
	case version.SchemeCalVer:
		return nextCalVer(cfg, in)
	default:
		return nextSemVer(cfg, in)
	}
}

// invalidVersionError marks a user-supplied version string that failed its
// scheme's grammar. Malformed tags from the tag list never reach this path;
// they are filtered out during selection.
func invalidVersionError(option string, err error) error {
	return fmt.Errorf("invalid %s: %w", option, err)
}
