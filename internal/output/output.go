// Package output renders the calculation result in the supported output
// formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/MyCarrier-DevOps/go-nextver/internal/calculator"
)

// Variables returns the output variables for a calculation result.
func Variables(res calculator.Result) map[string]string {
	return map[string]string{
		"new-version":      res.NewVersion,
		"previous-version": res.PreviousVersion,
	}
}

// WriteJSON writes all variables as pretty-printed JSON to the writer.
func WriteJSON(w io.Writer, variables map[string]string) error {
	data, err := json.MarshalIndent(variables, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling variables to JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// WriteVariable writes a single variable value to the writer.
func WriteVariable(w io.Writer, variables map[string]string, name string) error {
	val, ok := variables[name]
	if !ok {
		return fmt.Errorf("unknown variable %q", name)
	}
	_, err := fmt.Fprintln(w, val)
	return err
}

// WriteAll writes all variables as key=value pairs to the writer, sorted by key.
func WriteAll(w io.Writer, variables map[string]string) error {
	keys := make([]string, 0, len(variables))
	for k := range variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, variables[k]); err != nil {
			return err
		}
	}
	return nil
}

// AppendGitHubOutput appends the variables to a GitHub Actions output file,
// typically the one named by the GITHUB_OUTPUT environment variable.
func AppendGitHubOutput(path string, variables map[string]string) error {
	if path == "" {
		return fmt.Errorf("GITHUB_OUTPUT is not set")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening GitHub output file: %w", err)
	}
	defer f.Close()

	if err := WriteAll(f, variables); err != nil {
		return fmt.Errorf("writing GitHub output: %w", err)
	}
	return nil
}
