package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MyCarrier-DevOps/go-nextver/internal/calculator"
	"github.com/MyCarrier-DevOps/go-nextver/internal/config"
	"github.com/MyCarrier-DevOps/go-nextver/internal/git"
	"github.com/MyCarrier-DevOps/go-nextver/internal/output"

	ghprovider "github.com/MyCarrier-DevOps/go-nextver/internal/github"

	gh "github.com/google/go-github/v68/github"
	"github.com/spf13/cobra"
)

// configFileNames lists the files searched for configuration in order.
// Checks .github/ first, then the working directory.
var configFileNames = []string{
	".github/nextver.yml",
	"nextver.yml",
}

func calculateRunE(cmd *cobra.Command, _ []string) error {
	// 1. Build the immutable configuration from file, flags, and ambient env.
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// 2. Wire the tag and label collaborators for the selected mode.
	tagSource, labelSource, err := buildSources(cfg)
	if err != nil {
		return err
	}

	// 3. Materialize the snapshot. All network and repository I/O happens here.
	in, err := calculator.Snapshot(context.Background(), cfg, tagSource, labelSource)
	if err != nil {
		return err
	}

	// 4. Run the engine.
	result, err := calculator.Calculate(cfg, in)
	if err != nil {
		return err
	}

	// 5. Write output.
	return writeOutput(output.Variables(result))
}

// buildConfig merges config file, flags, and GitHub Actions environment
// into one validated Config.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	builder := config.NewBuilder()

	configPath := flagConfig
	if configPath == "" {
		configPath = findConfigFile(".")
	}
	if configPath != "" {
		userCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}
		builder.Add(userCfg)
	}

	builder.Add(flagLayer(cmd))

	cfg, err := builder.Build()
	if err != nil {
		return nil, err
	}

	// Ambient GitHub Actions context fills the gaps.
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

// flagLayer converts the flags the user actually set into a config layer,
// so unset flags never mask config file values.
func flagLayer(cmd *cobra.Command) *config.UserConfig {
	layer := &config.UserConfig{}

	if flagMode != "" {
		layer.Mode = &flagMode
	}
	if flagPackageName != "" {
		layer.GHCRPackageName = &flagPackageName
	}
	if flagResetPolicy != "" {
		layer.ResetPolicy = &flagResetPolicy
	}
	if flagIncrement != "" {
		layer.Increment = &flagIncrement
	}
	if cmd.Flags().Changed("use-pr-labels") {
		layer.UsePRLabels = &flagUseLabels
	}
	if flagToken != "" {
		layer.Token = &flagToken
	}
	if flagInitial != "" {
		layer.InitialVersion = &flagInitial
	}
	if flagOverride != "" {
		layer.OverrideVersion = &flagOverride
	}
	if flagRepository != "" {
		layer.Repository = &flagRepository
	}
	if cmd.Flags().Changed("pr-number") {
		layer.PRNumber = &flagPRNumber
	}

	return layer
}

// findConfigFile searches for a config file under the given directory.
func findConfigFile(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// buildSources wires the tag and label sources for the configured mode.
// The git repository is not even opened when an override version is set,
// so an override run needs no tag store at all.
func buildSources(cfg *config.Config) (calculator.TagSource, calculator.LabelSource, error) {
	var tagSource calculator.TagSource
	var labelSource calculator.LabelSource

	needsAPI := cfg.Mode.UsesRegistry() || cfg.UsePRLabels

	var client *gh.Client
	if needsAPI {
		c, err := ghprovider.NewClient(ghprovider.ClientConfig{
			Token:      cfg.Token,
			AppID:      flagAppID,
			AppKeyPath: flagAppKeyPath,
			BaseURL:    flagGitHubURL,
			Owner:      cfg.Owner(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("creating GitHub client: %w", err)
		}
		client = c
	}

	switch {
	case cfg.OverrideVersion != "":
		// Tag lookup is short-circuited by the override.
	case cfg.Mode.UsesRegistry():
		tagSource = ghprovider.NewPackageTagSource(client, cfg.Owner(), cfg.GHCRPackageName)
	default:
		repo, err := git.Open(flagPath)
		if err != nil {
			return nil, nil, err
		}
		tagSource = repo
	}

	if cfg.UsePRLabels {
		labelSource = ghprovider.NewPRLabelSource(client, cfg.Owner(), cfg.Repo(), cfg.PRNumber)
	}

	return tagSource, labelSource, nil
}

// writeOutput writes the version variables in the requested format.
func writeOutput(vars map[string]string) error {
	w := os.Stdout

	switch flagOutput {
	case "json":
		return output.WriteJSON(w, vars)
	case "github":
		return output.AppendGitHubOutput(os.Getenv("GITHUB_OUTPUT"), vars)
	case "":
		return output.WriteAll(w, vars)
	default:
		// A variable name prints just that value, for shell substitution.
		if _, ok := vars[flagOutput]; ok {
			return output.WriteVariable(w, vars, flagOutput)
		}
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
}
