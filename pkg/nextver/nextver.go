// Package nextver provides a public Go API for calculating the next release
// version of a project from its existing git tags or GHCR image tags.
//
// Basic usage:
//
//	result, err := nextver.Calculate(nextver.Options{
//	    Mode: "git-semver",
//	    Path: "/path/to/repo",
//	})
//	fmt.Println(result.NewVersion)      // "1.2.4"
//	fmt.Println(result.PreviousVersion) // "v1.2.3"
package nextver

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MyCarrier-DevOps/go-nextver/internal/calculator"
	"github.com/MyCarrier-DevOps/go-nextver/internal/config"
	"github.com/MyCarrier-DevOps/go-nextver/internal/git"

	ghprovider "github.com/MyCarrier-DevOps/go-nextver/internal/github"
)

// Options configures a version calculation. String fields use the same
// values as the CLI flags of the same name.
type Options struct {
	// Mode selects the scheme and tag source: git-semver, git-calver, or
	// ghcr-calver (required).
	Mode string

	// Path to the git repository for the git modes. Defaults to ".".
	Path string

	// Repository is the owner/repo slug, needed for the ghcr-calver mode
	// and for pull request label lookup. Defaults to GITHUB_REPOSITORY.
	Repository string

	// GHCRPackageName is the container package whose image tags are read
	// in ghcr-calver mode.
	GHCRPackageName string

	// ResetPolicy governs the CalVer build counter across month
	// boundaries: monthly or continuous. Defaults to monthly.
	ResetPolicy string

	// Increment is the SemVer field to bump: major, minor, or patch.
	// Defaults to patch.
	Increment string

	// UsePRLabels derives the SemVer bump from release:major and
	// release:minor pull request labels.
	UsePRLabels bool

	// PRNumber identifies the pull request for label lookup. Defaults to
	// the number derived from GITHUB_REF; zero means no pull request.
	PRNumber int

	// Token is a GitHub token. Defaults to GITHUB_TOKEN.
	Token string

	// InitialVersion is the baseline when no qualifying tag exists.
	// Defaults to 0.0.0.
	InitialVersion string

	// OverrideVersion replaces the latest tag as the baseline. When set,
	// no tag source is consulted.
	OverrideVersion string

	// BaseURL is a custom GitHub API base URL for GitHub Enterprise.
	BaseURL string

	// Now overrides the calculation date. Zero means time.Now().
	Now time.Time
}

// Result holds the calculated versions.
type Result struct {
	// NewVersion is the canonical rendering of the next version.
	NewVersion string

	// PreviousVersion is the raw tag the calculation was based on, the
	// override string, or "none".
	PreviousVersion string
}

// Calculate computes the next version for the given options.
func Calculate(opts Options) (*Result, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	tagSource, labelSource, err := buildSources(cfg, opts)
	if err != nil {
		return nil, err
	}

	in, err := calculator.Snapshot(context.Background(), cfg, tagSource, labelSource)
	if err != nil {
		return nil, err
	}
	if !opts.Now.IsZero() {
		in.Now = opts.Now
	}

	res, err := calculator.Calculate(cfg, in)
	if err != nil {
		return nil, err
	}

	return &Result{
		NewVersion:      res.NewVersion,
		PreviousVersion: res.PreviousVersion,
	}, nil
}

func buildConfig(opts Options) (*config.Config, error) {
	layer := &config.UserConfig{}
	if opts.Mode != "" {
		layer.Mode = &opts.Mode
	}
	if opts.GHCRPackageName != "" {
		layer.GHCRPackageName = &opts.GHCRPackageName
	}
	if opts.ResetPolicy != "" {
		layer.ResetPolicy = &opts.ResetPolicy
	}
	if opts.Increment != "" {
		layer.Increment = &opts.Increment
	}
	if opts.UsePRLabels {
		layer.UsePRLabels = &opts.UsePRLabels
	}
	if opts.Token != "" {
		layer.Token = &opts.Token
	}
	if opts.InitialVersion != "" {
		layer.InitialVersion = &opts.InitialVersion
	}
	if opts.OverrideVersion != "" {
		layer.OverrideVersion = &opts.OverrideVersion
	}
	if opts.Repository != "" {
		layer.Repository = &opts.Repository
	}
	if opts.PRNumber != 0 {
		layer.PRNumber = &opts.PRNumber
	}

	cfg, err := config.NewBuilder().Add(layer).Build()
	if err != nil {
		return nil, err
	}

	if cfg.Token == "" {
		cfg.Token = os.Getenv("GITHUB_TOKEN")
	}
	if cfg.Repository == "" {
		cfg.Repository = os.Getenv("GITHUB_REPOSITORY")
	}
	if cfg.PRNumber == 0 {
		cfg.PRNumber = ghprovider.PullRequestNumberFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildSources(cfg *config.Config, opts Options) (calculator.TagSource, calculator.LabelSource, error) {
	var tagSource calculator.TagSource
	var labelSource calculator.LabelSource

	if cfg.Mode.UsesRegistry() || cfg.UsePRLabels {
		client, err := ghprovider.NewClient(ghprovider.ClientConfig{
			Token:   cfg.Token,
			BaseURL: opts.BaseURL,
			Owner:   cfg.Owner(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("creating GitHub client: %w", err)
		}

		if cfg.Mode.UsesRegistry() && cfg.OverrideVersion == "" {
			tagSource = ghprovider.NewPackageTagSource(client, cfg.Owner(), cfg.GHCRPackageName)
		}
		if cfg.UsePRLabels {
			labelSource = ghprovider.NewPRLabelSource(client, cfg.Owner(), cfg.Repo(), cfg.PRNumber)
		}
	}

	if !cfg.Mode.UsesRegistry() && cfg.OverrideVersion == "" {
		path := opts.Path
		if path == "" {
			path = "."
		}
		repo, err := git.Open(path)
		if err != nil {
			return nil, nil, err
		}
		tagSource = repo
	}

	return tagSource, labelSource, nil
}
