package check

import (
	stdcontext "context"
	"testing"

	"github.com/pubcheck/pubcheck/pkg/command"
	"github.com/pubcheck/pubcheck/pkg/config"
	pubContext "github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/npm"
	"github.com/sirupsen/logrus"
)

type plainCheck struct{}

func (plainCheck) String() string                    { return "plain" }
func (plainCheck) Run(ctx *pubContext.Context) error { return nil }

type gatedCheck struct {
	plainCheck
	skip    bool
	enabled bool
}

func (g gatedCheck) Skip(ctx *pubContext.Context) bool    { return g.skip }
func (g gatedCheck) Enabled(ctx *pubContext.Context) bool { return g.enabled }

func newContext() *pubContext.Context {
	logger := logrus.New()
	pkg := &npm.Package{Name: "demo-pkg", Version: "1.2.3"}
	return pubContext.New(stdcontext.Background(), config.Default(), pkg, logger, command.NewFake(), pubContext.Options{}, "patch")
}

func TestExcluded(t *testing.T) {
	ctx := newContext()

	tests := []struct {
		name string
		c    Checker
		want bool
	}{
		{"no gates", plainCheck{}, false},
		{"skip true", gatedCheck{skip: true, enabled: true}, true},
		{"enabled false", gatedCheck{skip: false, enabled: false}, true},
		{"both exclude", gatedCheck{skip: true, enabled: false}, true},
		{"both allow", gatedCheck{skip: false, enabled: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excluded(ctx, tt.c); got != tt.want {
				t.Errorf("Excluded() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChecksOrder(t *testing.T) {
	// The version check writes NewVersion; every later check that reads it
	// must come after. Guard the declaration order against accidental edits.
	wantOrder := []string{
		"Ping npm registry",
		"Verify user is authenticated",
		"Check git remote",
		"Validate version",
		"Check for pre-release version",
		"Check npm version",
		"Check git tag existence",
		"Check GitHub release",
	}

	if len(Checks) != len(wantOrder) {
		t.Fatalf("len(Checks) = %d, want %d", len(Checks), len(wantOrder))
	}
	for i, c := range Checks {
		if c.String() != wantOrder[i] {
			t.Errorf("Checks[%d] = %q, want %q", i, c.String(), wantOrder[i])
		}
	}
}
