// Package context carries the shared state one pipeline invocation threads
// through every check.
package context

import (
	stdcontext "context"

	"github.com/pubcheck/pubcheck/pkg/command"
	"github.com/pubcheck/pubcheck/pkg/config"
	"github.com/pubcheck/pubcheck/pkg/github"
	"github.com/pubcheck/pubcheck/pkg/npm"
	"github.com/sirupsen/logrus"
)

// Options captures operator intent for one invocation.
type Options struct {
	// Publish indicates the operator intends to publish after the bump.
	Publish bool
	// Tag is the explicit dist-tag to publish under, if any.
	Tag string
	// Yarn switches package-manager configuration lookups to yarn.
	Yarn bool
}

// Context provides shared state for all checks. It is created once per
// pipeline invocation and mutated only by the specific checks documented on
// each field. Checks run strictly one at a time, so no locking is needed.
type Context struct {
	StdCtx  stdcontext.Context // Standard context for cancellation support
	Config  *config.Config
	Logger  *logrus.Logger
	Runner  command.Runner
	GitHub  github.ClientInterface // nil unless the release check is configured
	Package *npm.Package
	Options Options

	// Mode is the execution mode, set once at startup from configuration.
	// Never read from the ambient process environment.
	Mode string

	// InputVersion is the operator-supplied version specifier: an exact
	// semver version or an increment keyword.
	InputVersion string

	// CurrentVersion is the version currently recorded in package.json.
	CurrentVersion string

	// NewVersion is computed by the version validation check. Written
	// exactly once; empty until that check has run.
	NewVersion string

	// TagPrefix is prepended to NewVersion to form the release tag.
	// Defaults to "v"; the tag-existence check may overwrite it once from
	// package-manager configuration.
	TagPrefix string

	// NodeVersion is the Node.js runtime version probed at startup.
	// Empty when the probe failed.
	NodeVersion string

	// IsPrivate mirrors the package's private flag.
	IsPrivate bool

	// IsExternalRegistry is true when a non-default registry is configured.
	IsExternalRegistry bool
}

// New creates a context for one pipeline run. Derived fields are computed
// here and are read-only afterwards, except for NewVersion and TagPrefix as
// documented above. If stdCtx is nil, context.Background() is used.
func New(stdCtx stdcontext.Context, cfg *config.Config, pkg *npm.Package, logger *logrus.Logger, runner command.Runner, opts Options, inputVersion string) *Context {
	if stdCtx == nil {
		stdCtx = stdcontext.Background()
	}
	return &Context{
		StdCtx:             stdCtx,
		Config:             cfg,
		Logger:             logger,
		Runner:             runner,
		Package:            pkg,
		Options:            opts,
		Mode:               cfg.Mode,
		InputVersion:       inputVersion,
		CurrentVersion:     pkg.Version,
		TagPrefix:          "v",
		IsPrivate:          pkg.Private,
		IsExternalRegistry: pkg.ExternalRegistry(),
	}
}

// ReleaseTag returns the tag the release would create.
func (c *Context) ReleaseTag() string {
	return c.TagPrefix + c.NewVersion
}
