package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindConfigFile_Found(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nextver.yml")
	require.NoError(t, os.WriteFile(path, []byte("mode: git-semver\n"), 0o644))

	found := findConfigFile(dir)
	require.Equal(t, path, found)
}

func TestFindConfigFile_PrefersGitHubDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".github", "nextver.yml"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nextver.yml"), []byte(""), 0o644))

	found := findConfigFile(dir)
	require.Equal(t, filepath.Join(dir, ".github", "nextver.yml"), found)
}

func TestFindConfigFile_NotFound(t *testing.T) {
	found := findConfigFile(t.TempDir())
	require.Empty(t, found)
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	flagOutput = "xml"
	defer func() { flagOutput = "" }()

	err := writeOutput(map[string]string{"new-version": "1.0.0"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown output format")
}

func TestWriteOutput_SingleVariable(t *testing.T) {
	flagOutput = "new-version"
	defer func() { flagOutput = "" }()

	require.NoError(t, writeOutput(map[string]string{"new-version": "1.0.0"}))
}

func TestRoot_OverrideToGitHubOutput(t *testing.T) {
	// An override run touches no tag store at all, so the whole pipeline
	// can execute end to end without a repository or network.
	outPath := filepath.Join(t.TempDir(), "github_output")
	t.Setenv("GITHUB_OUTPUT", outPath)

	rootCmd.SetArgs([]string{
		"--mode", "git-semver",
		"--override-version", "1.2.3",
		"--semver-increment", "minor",
		"--output", "github",
	})
	defer resetFlags()

	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "new-version=1.3.0\nprevious-version=1.2.3\n", string(data))
}

func resetFlags() {
	flagMode = ""
	flagIncrement = ""
	flagOverride = ""
	flagOutput = ""
	rootCmd.SetArgs(nil)
}
