package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/github"
)

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

// MockClient is a mock implementation of the GitHub client for testing.
// Releases are keyed by "owner/repo@tag".
type MockClient struct {
	Releases      map[string]*github.RepositoryRelease
	ErrorToReturn error
}

// NewMockClient creates a new mock GitHub client.
func NewMockClient() *MockClient {
	return &MockClient{
		Releases: make(map[string]*github.RepositoryRelease),
	}
}

// AddRelease registers a release for owner/repo at the given tag.
func (m *MockClient) AddRelease(owner, repo, tag string) {
	m.Releases[releaseKey(owner, repo, tag)] = &github.RepositoryRelease{
		TagName: github.String(tag),
	}
}

// GetRelease returns the registered release, ErrorToReturn if set, or a
// NotFoundError mirroring the API's 404 behavior.
func (m *MockClient) GetRelease(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, error) {
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	release, ok := m.Releases[releaseKey(owner, repo, tag)]
	if !ok {
		return nil, &NotFoundError{Message: fmt.Sprintf("release %s not found in %s/%s", tag, owner, repo)}
	}
	return release, nil
}

func releaseKey(owner, repo, tag string) string {
	return fmt.Sprintf("%s/%s@%s", owner, repo, tag)
}
