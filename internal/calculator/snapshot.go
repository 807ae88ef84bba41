package calculator

import (
	"context"
	"fmt"
	"time"

	"github.com/MyCarrier-DevOps/go-nextver/internal/config"
)

// TagSource yields the raw tag strings to consider for version selection.
type TagSource interface {
	ListTags(ctx context.Context) ([]string, error)
}

// LabelSource yields the label names on the pull request driving the run.
type LabelSource interface {
	CurrentLabels(ctx context.Context) ([]string, error)
}

// Snapshot materializes the engine input from the configured collaborators.
// All I/O happens here, once, before Calculate runs. The tag source is
// never consulted when an override version is set, and the label source
// only when use-pr-labels is enabled. A nil label source stands for a run
// with no associated pull request.
func Snapshot(ctx context.Context, cfg *config.Config, tags TagSource, labels LabelSource) (Input, error) {
	in := Input{Now: time.Now()}

	if cfg.OverrideVersion == "" {
		list, err := tags.ListTags(ctx)
		if err != nil {
			return Input{}, fmt.Errorf("listing tags: %w", err)
		}
		in.Tags = list
	}

	if cfg.UsePRLabels && labels != nil {
		names, err := labels.CurrentLabels(ctx)
		if err != nil {
			return Input{}, fmt.Errorf("listing pull request labels: %w", err)
		}
		in.Labels = names
	}

	return in, nil
}
