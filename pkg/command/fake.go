package command

import (
	"context"
	"fmt"
	"strings"
)

// Response is a canned result for one command line.
type Response struct {
	Out string
	Err error
}

// Fake is a Runner for tests. Responses are keyed by the full command line
// ("npm whoami", "git fetch", ...). Every invocation is recorded in Calls so
// tests can assert that gated commands never ran.
type Fake struct {
	Responses map[string]Response
	Calls     []string
}

// NewFake creates an empty fake runner.
func NewFake() *Fake {
	return &Fake{Responses: make(map[string]Response)}
}

// Respond registers a canned response for a command line.
func (f *Fake) Respond(line string, out string, err error) {
	f.Responses[line] = Response{Out: out, Err: err}
}

// Run returns the canned response for the command line, honoring a context
// that is already expired to imitate a command interrupted by its deadline.
func (f *Fake) Run(ctx context.Context, name string, args ...string) (string, error) {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	f.Calls = append(f.Calls, line)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	resp, ok := f.Responses[line]
	if !ok {
		return "", fmt.Errorf("no fake response registered for %q", line)
	}
	return resp.Out, resp.Err
}

// Called reports whether the given command line was executed.
func (f *Fake) Called(line string) bool {
	for _, c := range f.Calls {
		if c == line {
			return true
		}
	}
	return false
}
