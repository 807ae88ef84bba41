// Package config collects the process options into one immutable Config
// value constructed at the process boundary. The calculation engine only
// ever sees a finished Config; it never consults ambient state itself.
package config

import (
	"errors"
	"strings"

	"github.com/MyCarrier-DevOps/go-nextver/internal/version"
)

// DefaultInitialVersion is the baseline used when no tag qualifies and no
// override is given.
const DefaultInitialVersion = "0.0.0"

// Mode selects the versioning scheme and the tag source.
type Mode int

const (
	ModeUnset Mode = iota
	ModeGitSemVer
	ModeGitCalVer
	ModeGHCRCalVer
)

func (m Mode) String() string {
	switch m {
	case ModeGitSemVer:
		return "git-semver"
	case ModeGitCalVer:
		return "git-calver"
	case ModeGHCRCalVer:
		return "ghcr-calver"
	default:
		return "unset"
	}
}

// ParseMode parses a mode name as accepted by the mode option.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "git-semver":
		return ModeGitSemVer, nil
	case "git-calver":
		return ModeGitCalVer, nil
	case "ghcr-calver":
		return ModeGHCRCalVer, nil
	default:
		return ModeUnset, errors.New("invalid mode: " + s)
	}
}

// Scheme returns the version scheme the mode operates under.
func (m Mode) Scheme() version.Scheme {
	if m == ModeGitSemVer {
		return version.SchemeSemVer
	}
	return version.SchemeCalVer
}

// UsesRegistry reports whether the mode reads tags from the container
// registry rather than from git.
func (m Mode) UsesRegistry() bool {
	return m == ModeGHCRCalVer
}

// Config is the immutable per-invocation configuration.
type Config struct {
	Mode            Mode
	GHCRPackageName string
	ResetPolicy     version.ResetPolicy
	Increment       version.Field
	UsePRLabels     bool
	Token           string
	InitialVersion  string
	OverrideVersion string

	// Repository is the owner/repo slug, used for registry package
	// ownership and pull request label lookup.
	Repository string

	// PRNumber identifies the pull request for label lookup. Zero means
	// the run is not associated with a pull request.
	PRNumber int
}

// Owner returns the owner part of the repository slug.
func (c *Config) Owner() string {
	owner, _, _ := strings.Cut(c.Repository, "/")
	return owner
}

// Repo returns the repository part of the repository slug.
func (c *Config) Repo() string {
	_, repo, _ := strings.Cut(c.Repository, "/")
	return repo
}

// Validate checks cross-option consistency for the selected mode. It runs
// once at the process boundary, before any tag lookup.
func (c *Config) Validate() error {
	if c.Mode == ModeUnset {
		return errors.New("mode is required: git-semver, git-calver, or ghcr-calver")
	}

	if c.Mode.UsesRegistry() {
		if c.GHCRPackageName == "" {
			return errors.New("ghcr-package-name is required for mode ghcr-calver")
		}
		if c.Repository == "" {
			return errors.New("repository is required for mode ghcr-calver")
		}
		if c.Token == "" {
			return errors.New("a GitHub token is required for mode ghcr-calver")
		}
	}

	if c.UsePRLabels {
		if c.Repository == "" {
			return errors.New("repository is required when use-pr-labels is set")
		}
		if c.Token == "" {
			return errors.New("a GitHub token is required when use-pr-labels is set")
		}
	}

	return nil
}
