// Package npm reads the package descriptor and builds the npm/yarn command
// lines the checks execute, along with parsers for their output.
package npm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultRegistry is the public npm registry. A publishConfig registry other
// than this one is treated as external and skips the registry-bound checks.
const DefaultRegistry = "https://registry.npmjs.org"

// Package is the subset of package.json the pipeline reads.
type Package struct {
	Name          string        `json:"name"`
	Version       string        `json:"version"`
	Private       bool          `json:"private"`
	PublishConfig PublishConfig `json:"publishConfig"`
}

// PublishConfig mirrors the publishConfig block of package.json.
type PublishConfig struct {
	Registry string `json:"registry"`
}

// LoadPackage reads and parses package.json from dir.
func LoadPackage(dir string) (*Package, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if pkg.Name == "" {
		return nil, fmt.Errorf("%s: name is required", path)
	}
	if pkg.Version == "" {
		return nil, fmt.Errorf("%s: version is required", path)
	}

	return &pkg, nil
}

// Registry returns the registry this package publishes to.
func (p *Package) Registry() string {
	if p.PublishConfig.Registry != "" {
		return p.PublishConfig.Registry
	}
	return DefaultRegistry
}

// ExternalRegistry reports whether a non-default registry is configured.
func (p *Package) ExternalRegistry() bool {
	r := p.PublishConfig.Registry
	return r != "" && strings.TrimRight(r, "/") != DefaultRegistry
}

// Tool returns the package manager binary name for the yarn flag.
func Tool(yarn bool) string {
	if yarn {
		return "yarn"
	}
	return "npm"
}

// PingArgs returns the argument list for npm ping against a registry.
func PingArgs(registry string) []string {
	return []string{"ping", "--registry", registry}
}

// WhoamiArgs returns the argument list for npm whoami.
func WhoamiArgs() []string {
	return []string{"whoami"}
}

// CollaboratorsArgs returns the argument list for listing package
// collaborators and their permissions as JSON.
func CollaboratorsArgs(name string) []string {
	return []string{"access", "ls-collaborators", name}
}

// VersionArgs returns the argument list for npm's own version report.
func VersionArgs() []string {
	return []string{"version", "--json"}
}

// TagPrefixArgs returns the argument list for reading the configured git tag
// prefix. npm and yarn name the key differently.
func TagPrefixArgs(yarn bool) []string {
	if yarn {
		return []string{"config", "get", "version-tag-prefix"}
	}
	return []string{"config", "get", "tag-version-prefix"}
}

// IsAuthError reports whether stderr indicates a missing npm login.
func IsAuthError(stderr string) bool {
	return strings.Contains(stderr, "ENEEDAUTH")
}

// IsNotFound reports whether stderr indicates the registry does not know the
// package (the 404 shape an unpublished package produces).
func IsNotFound(stderr string) bool {
	return strings.Contains(stderr, "E404")
}

// ParseCollaborators parses `npm access ls-collaborators` output into a map
// from username to permission list. npm has emitted both a permission string
// ("read-write") and a permission array per user; both forms are accepted.
func ParseCollaborators(out string) (map[string][]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		return nil, fmt.Errorf("unexpected collaborator list: %w", err)
	}

	collaborators := make(map[string][]string, len(raw))
	for user, value := range raw {
		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			collaborators[user] = list
			continue
		}
		var single string
		if err := json.Unmarshal(value, &single); err != nil {
			return nil, fmt.Errorf("unexpected permissions for %s: %s", user, value)
		}
		collaborators[user] = []string{single}
	}
	return collaborators, nil
}

// HasWritePermission reports whether any granted permission includes write.
// npm's string form uses compound names like "read-write".
func HasWritePermission(permissions []string) bool {
	for _, p := range permissions {
		if strings.Contains(p, "write") {
			return true
		}
	}
	return false
}

// ParseVersions parses `npm version --json` output into a tool-to-version
// map ("npm", "node", ...).
func ParseVersions(out string) (map[string]string, error) {
	var versions map[string]string
	if err := json.Unmarshal([]byte(out), &versions); err != nil {
		return nil, fmt.Errorf("unexpected version report: %w", err)
	}
	return versions, nil
}
