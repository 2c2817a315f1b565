package bump

import (
	stdcontext "context"
	"strings"
	"testing"

	"github.com/pubcheck/pubcheck/pkg/command"
	"github.com/pubcheck/pubcheck/pkg/config"
	pubContext "github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/npm"
	"github.com/sirupsen/logrus"
)

func newContext(current, input string) *pubContext.Context {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	pkg := &npm.Package{Name: "demo-pkg", Version: current}
	return pubContext.New(stdcontext.Background(), config.Default(), pkg, logger, command.NewFake(), pubContext.Options{}, input)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		input       string
		wantVersion string
		wantErr     string
	}{
		{
			name:        "patch increment",
			current:     "1.2.3",
			input:       "patch",
			wantVersion: "1.2.4",
		},
		{
			name:        "exact higher version",
			current:     "1.2.3",
			input:       "2.0.0",
			wantVersion: "2.0.0",
		},
		{
			name:    "exact lower version",
			current: "1.2.3",
			input:   "1.0.0",
			wantErr: "New version `1.0.0` should be higher than the current version `1.2.3`.",
		},
		{
			name:    "same version",
			current: "1.2.3",
			input:   "1.2.3",
			wantErr: "should be higher",
		},
		{
			name:    "unrecognized input",
			current: "1.2.3",
			input:   "banana",
			wantErr: "Version should be either patch, minor, major, prepatch, preminor, premajor, prerelease, or a valid semver version.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(tt.current, tt.input)
			err := Check{}.Run(ctx)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Run() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if ctx.NewVersion != tt.wantVersion {
				t.Errorf("NewVersion = %q, want %q", ctx.NewVersion, tt.wantVersion)
			}
		})
	}
}

func TestRunStoresVersionBeforeComparing(t *testing.T) {
	// Even a rejected bump leaves the computed version visible, which makes
	// the failure message concrete.
	ctx := newContext("1.2.3", "1.0.0")
	if err := (Check{}).Run(ctx); err == nil {
		t.Fatal("expected error")
	}
	if ctx.NewVersion != "1.0.0" {
		t.Errorf("NewVersion = %q, want computed value", ctx.NewVersion)
	}
}
