package calculator

import (
	"github.com/MyCarrier-DevOps/go-nextver/internal/config"
	"github.com/MyCarrier-DevOps/go-nextver/internal/version"
)

// Pull request labels recognized when use-pr-labels is enabled.
const (
	labelMajor = "release:major"
	labelMinor = "release:minor"
)

func nextSemVer(cfg *config.Config, in Input) (Result, error) {
	baseline, previous, err := semverBaseline(cfg, in.Tags)
	if err != nil {
		return Result{}, err
	}

	next := baseline.Increment(effectiveField(cfg, in.Labels))

	return Result{
		NewVersion:      next.String(),
		PreviousVersion: previous,
	}, nil
}

// semverBaseline resolves the version the increment is applied against:
// the override when set, otherwise the highest valid tag, otherwise the
// configured initial version.
func semverBaseline(cfg *config.Config, tags []string) (version.SemanticVersion, string, error) {
	if cfg.OverrideVersion != "" {
		v, err := version.ParseSemVer(cfg.OverrideVersion)
		if err != nil {
			return version.SemanticVersion{}, "", invalidVersionError("override-version", err)
		}
		return v, cfg.OverrideVersion, nil
	}

	latest, ok := version.Latest(tags, version.TryParseSemVer, version.SemanticVersion.CompareTo)
	if ok {
		return latest.Version, latest.Tag, nil
	}

	v, err := version.ParseSemVer(cfg.InitialVersion)
	if err != nil {
		return version.SemanticVersion{}, "", invalidVersionError("initial-version", err)
	}
	return v, NoPreviousVersion, nil
}

// effectiveField resolves the increment kind. When label-driven bumping is
// enabled, release:major outranks release:minor, and either outranks the
// configured semver-increment.
func effectiveField(cfg *config.Config, labels []string) version.Field {
	if !cfg.UsePRLabels {
		return cfg.Increment
	}

	hasMinor := false
	for _, name := range labels {
		switch name {
		case labelMajor:
			return version.FieldMajor
		case labelMinor:
			hasMinor = true
		}
	}
	if hasMinor {
		return version.FieldMinor
	}

	return cfg.Increment
}
