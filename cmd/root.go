package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagMode        string
	flagPackageName string
	flagResetPolicy string
	flagIncrement   string
	flagUseLabels   bool
	flagToken       string
	flagInitial     string
	flagOverride    string
	flagRepository  string
	flagPRNumber    int
	flagPath        string
	flagConfig      string
	flagOutput      string
	flagGitHubURL   string
	flagAppID       int64
	flagAppKeyPath  string
)

// rootCmd is the top-level command for nextver.
var rootCmd = &cobra.Command{
	Use:   "nextver",
	Short: "Next release version from existing tags",
	Long: `nextver calculates the next release version for a project from its existing
git tags or GHCR container-image tags, under semantic or calendar versioning
rules.`,
	RunE: calculateRunE,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMode, "mode", "m", "", "versioning mode: git-semver, git-calver, or ghcr-calver")
	rootCmd.PersistentFlags().StringVar(&flagPackageName, "ghcr-package-name", "", "GHCR container package name (required for ghcr-calver)")
	rootCmd.PersistentFlags().StringVar(&flagResetPolicy, "calver-reset-policy", "", "calver build counter policy: monthly or continuous (default monthly)")
	rootCmd.PersistentFlags().StringVar(&flagIncrement, "semver-increment", "", "semver field to bump: major, minor, or patch (default patch)")
	rootCmd.PersistentFlags().BoolVar(&flagUseLabels, "use-pr-labels", false, "derive the semver bump from release:major / release:minor PR labels")
	rootCmd.PersistentFlags().StringVar(&flagToken, "github-token", "", "GitHub token (or set GITHUB_TOKEN env var)")
	rootCmd.PersistentFlags().StringVar(&flagInitial, "initial-version", "", "baseline when no qualifying tag exists (default 0.0.0)")
	rootCmd.PersistentFlags().StringVar(&flagOverride, "override-version", "", "baseline to increment from instead of the latest tag")
	rootCmd.PersistentFlags().StringVarP(&flagRepository, "repository", "r", "", "owner/repo slug (or set GITHUB_REPOSITORY env var)")
	rootCmd.PersistentFlags().IntVar(&flagPRNumber, "pr-number", 0, "pull request number for label lookup (default: derived from GITHUB_REF)")
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path to the git repository")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: json, github, a single variable name, or empty for key=value")
	rootCmd.PersistentFlags().StringVar(&flagGitHubURL, "github-url", "", "GitHub API base URL for GitHub Enterprise (or set GITHUB_API_URL env var)")
	rootCmd.PersistentFlags().Int64Var(&flagAppID, "github-app-id", 0, "GitHub App ID (or set GH_APP_ID env var)")
	rootCmd.PersistentFlags().StringVar(&flagAppKeyPath, "github-app-key-path", "", "path to GitHub App private key PEM file (or set GH_APP_PRIVATE_KEY env var)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
