// Package git provides the source-control tag source backed by go-git.
package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// TagLister lists the tag names of a local git repository.
type TagLister struct {
	repo *gogit.Repository
}

// Open opens the git repository at path, searching parent directories for
// the .git directory the way the git CLI does.
func Open(path string) (*TagLister, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	return &TagLister{repo: r}, nil
}

// ListTags returns the short names of all tag references. The names are
// returned as opaque strings; parsing and filtering happen downstream.
func (l *TagLister) ListTags(_ context.Context) ([]string, error) {
	iter, err := l.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return tags, nil
}
