package toolchain

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

const versionLine = "npm version --json"

func newContext(fake *command.Fake, nodeVersion string) *pubContext.Context {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	pkg := &npm.Package{Name: "demo-pkg", Version: "1.2.3"}
	ctx := pubContext.New(stdcontext.Background(), config.Default(), pkg, logger, fake, pubContext.Options{}, "patch")
	ctx.NodeVersion = nodeVersion
	return ctx
}

func TestSkip(t *testing.T) {
	tests := []struct {
		name        string
		nodeVersion string
		want        bool
	}{
		{"modern runtime", "v18.2.0", true},
		{"floor exactly", "v16.0.0", true},
		{"old runtime", "v14.17.0", false},
		{"probe failed", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(command.NewFake(), tt.nodeVersion)
			if got := (Check{}).Skip(ctx); got != tt.want {
				t.Errorf("Skip() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		report  string
		wantErr string
	}{
		{"healthy npm", `{"npm": "8.1.0", "node": "14.17.0"}`, ""},
		{"broken seven range", `{"npm": "7.3.0", "node": "14.17.0"}`, "npm@7.3.0"},
		{"ancient npm", `{"npm": "6.5.0", "node": "10.0.0"}`, "npm@6.5.0"},
		{"unparseable report", `npm WARN config`, "version report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := command.NewFake()
			fake.Respond(versionLine, tt.report, nil)

			err := (Check{}).Run(newContext(fake, "v14.17.0"))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Run() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Run() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRunLookupFailure(t *testing.T) {
	fake := command.NewFake()
	fake.Respond(versionLine, "", &command.Error{Stderr: "npm ERR! spawn failed", ExitCode: 1})

	err := (Check{}).Run(newContext(fake, ""))
	if err == nil || !strings.Contains(err.Error(), "npm version") {
		t.Errorf("Run() error = %v, want lookup failure", err)
	}
}
