// Package github wraps the GitHub API surface the release-collision check
// needs: looking up a release by tag and telling "no such release" apart
// from a genuine API failure.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

// NotFoundError represents a resource not found condition.
// Used by the mock client and checked by IsNotFound.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// IsNotFound returns true if the error represents a GitHub 404 Not Found
// response. It checks for both the real go-github ErrorResponse and the
// mock NotFoundError.
func IsNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
	}
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// ClientInterface defines the GitHub client contract.
type ClientInterface interface {
	GetRelease(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error)
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// Client wraps the GitHub client with convenience methods.
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub client with the provided token for
// authentication. An empty token is an error since release lookups on
// private repositories require authentication.
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	// oauth2.NewClient returns a client without timeout, so we set it explicitly
	httpClient.Timeout = 30 * time.Second

	return &Client{
		client: github.NewClient(httpClient),
	}, nil
}

// GetRelease fetches the release published for the given tag. The raw error
// is returned unwrapped so callers can recognize a 404 via IsNotFound.
func (c *Client) GetRelease(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error) {
	release, _, err := c.client.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if err != nil {
		return nil, err
	}
	return release, nil
}
