package git

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pubcheck/pubcheck/pkg/command"
)

func TestArgs(t *testing.T) {
	if got := LsRemoteArgs(); !reflect.DeepEqual(got, []string{"ls-remote", "origin", "HEAD"}) {
		t.Errorf("LsRemoteArgs() = %v", got)
	}
	if got := FetchArgs(); !reflect.DeepEqual(got, []string{"fetch"}) {
		t.Errorf("FetchArgs() = %v", got)
	}
	if got := VerifyTagArgs("v1.2.4"); !reflect.DeepEqual(got, []string{"rev-parse", "--quiet", "--verify", "refs/tags/v1.2.4"}) {
		t.Errorf("VerifyTagArgs() = %v", got)
	}
}

func TestRewriteFatal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			"fatal: unable to access 'https://example.com/': Could not resolve host",
			"Git fatal error: unable to access 'https://example.com/': Could not resolve host",
		},
		{"nothing to rewrite", "nothing to rewrite"},
	}

	for _, tt := range tests {
		if got := RewriteFatal(tt.in); got != tt.want {
			t.Errorf("RewriteFatal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTagAbsent(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"silent non-zero exit", &command.Error{ExitCode: 1}, true},
		{"exit with stderr", &command.Error{Stderr: "fatal: bad object", ExitCode: 128}, false},
		{"exit with stdout", &command.Error{Stdout: "something", ExitCode: 1}, false},
		{"not a command error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagAbsent(tt.err); got != tt.want {
				t.Errorf("TagAbsent() = %v, want %v", got, tt.want)
			}
		})
	}
}
