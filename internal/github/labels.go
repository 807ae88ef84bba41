package github

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"

	gh "github.com/google/go-github/v68/github"
)

// PRLabelSource lists the label names on a pull request via the Issues API.
type PRLabelSource struct {
	client *gh.Client
	owner  string
	repo   string
	number int
}

// NewPRLabelSource creates a PRLabelSource for the given repository and
// pull request number. A zero number stands for a run with no associated
// pull request.
func NewPRLabelSource(client *gh.Client, owner, repo string, number int) *PRLabelSource {
	return &PRLabelSource{client: client, owner: owner, repo: repo, number: number}
}

// CurrentLabels returns the label names on the pull request, or an empty
// set when the run is not associated with a pull request.
func (s *PRLabelSource) CurrentLabels(ctx context.Context) ([]string, error) {
	if s.number == 0 {
		return nil, nil
	}

	opts := &gh.ListOptions{PerPage: 100}

	var names []string
	for {
		labels, resp, err := s.client.Issues.ListLabelsByIssue(ctx, s.owner, s.repo, s.number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing labels for pull request #%d: %w", s.number, err)
		}

		for _, label := range labels {
			names = append(names, label.GetName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return names, nil
}

var prRefPattern = regexp.MustCompile(`^refs/pull/(\d+)/`)

// PullRequestNumberFromEnv derives the pull request number from the
// GITHUB_REF of a pull_request workflow run. Returns 0 when the ref does
// not belong to a pull request.
func PullRequestNumberFromEnv() int {
	m := prRefPattern.FindStringSubmatch(os.Getenv("GITHUB_REF"))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
