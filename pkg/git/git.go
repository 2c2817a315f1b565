// Package git builds the git command lines the pipeline runs and interprets
// their failures.
package git

import (
	"errors"
	"strings"

	"github.com/pubcheck/pubcheck/pkg/command"
)

// LsRemoteArgs returns the argument list for resolving the remote HEAD,
// used to verify the remote is reachable.
func LsRemoteArgs() []string {
	return []string{"ls-remote", "origin", "HEAD"}
}

// FetchArgs returns the argument list for refreshing remote refs before the
// tag collision lookup.
func FetchArgs() []string {
	return []string{"fetch"}
}

// VerifyTagArgs returns the argument list for checking whether a tag exists.
// rev-parse --quiet --verify prints the ref hash when the tag exists and
// exits non-zero with no output when it does not.
func VerifyTagArgs(tag string) []string {
	return []string{"rev-parse", "--quiet", "--verify", "refs/tags/" + tag}
}

// RewriteFatal makes git's "fatal:" prefix readable in operator-facing
// messages.
func RewriteFatal(msg string) string {
	return strings.Replace(msg, "fatal:", "Git fatal error:", 1)
}

// TagAbsent reports whether err is the benign shape rev-parse produces for a
// missing tag: a non-zero exit with nothing on either stream. Any failure
// that carries output means git itself errored and must not be swallowed.
func TagAbsent(err error) bool {
	var cmdErr *command.Error
	if !errors.As(err, &cmdErr) {
		return false
	}
	return cmdErr.Stdout == "" && cmdErr.Stderr == ""
}
