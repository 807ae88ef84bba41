package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v68/github"
)

const containerPackageType = "container"

// PackageTagSource lists the image tags of a GHCR container package via the
// GitHub Packages API.
type PackageTagSource struct {
	client *gh.Client
	owner  string
	pkg    string
}

// NewPackageTagSource creates a PackageTagSource for the given owner and
// package name.
func NewPackageTagSource(client *gh.Client, owner, pkg string) *PackageTagSource {
	return &PackageTagSource{client: client, owner: owner, pkg: pkg}
}

// ListTags returns every tag attached to any version of the container
// package. The organization endpoint is tried first; a 404 means the owner
// is a user account and the user endpoint is used instead.
func (s *PackageTagSource) ListTags(ctx context.Context) ([]string, error) {
	tags, err := s.listTags(ctx, s.orgVersions)
	if IsNotFoundError(err) {
		return s.listTags(ctx, s.userVersions)
	}
	return tags, err
}

// versionLister fetches one page of package versions.
type versionLister func(ctx context.Context, opts *gh.PackageListOptions) ([]*gh.PackageVersion, *gh.Response, error)

func (s *PackageTagSource) listTags(ctx context.Context, list versionLister) ([]string, error) {
	opts := &gh.PackageListOptions{
		PackageType: gh.String(containerPackageType),
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var tags []string
	for {
		versions, resp, err := list(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("listing versions of package %s/%s: %w", s.owner, s.pkg, err)
		}

		for _, v := range versions {
			meta := v.GetMetadata()
			if meta == nil || meta.Container == nil {
				continue
			}
			tags = append(tags, meta.Container.Tags...)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return tags, nil
}

func (s *PackageTagSource) orgVersions(ctx context.Context, opts *gh.PackageListOptions) ([]*gh.PackageVersion, *gh.Response, error) {
	return s.client.Organizations.PackageGetAllVersions(ctx, s.owner, containerPackageType, s.pkg, opts)
}

func (s *PackageTagSource) userVersions(ctx context.Context, opts *gh.PackageListOptions) ([]*gh.PackageVersion, *gh.Response, error) {
	return s.client.Users.PackageGetAllVersions(ctx, s.owner, containerPackageType, s.pkg, opts)
}
