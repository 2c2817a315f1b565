// Package toolchain rejects npm versions with known publish bugs on older
// Node.js runtimes.
package toolchain

import (
	"fmt"

	"github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/npm"
	"github.com/pubcheck/pubcheck/pkg/semver"
)

const (
	// minNodeVersion is the runtime floor above which every npm release
	// publishes correctly and this check is unnecessary.
	minNodeVersion = "16.0.0"

	// brokenNpmRange covers npm releases that corrupt publishes on older
	// runtimes.
	brokenNpmRange = "< 6.8.0 || 7.0.0 - 7.4.1"
)

// Check inspects the package manager's own version.
type Check struct{}

func (Check) String() string { return "Check npm version" }

// Skip excludes runtimes at or above the floor. An empty NodeVersion means
// the startup probe failed, so the check runs to be safe.
func (Check) Skip(ctx *context.Context) bool {
	return ctx.NodeVersion != "" && semver.AtLeast(ctx.NodeVersion, minNodeVersion)
}

func (Check) Run(ctx *context.Context) error {
	out, err := ctx.Runner.Run(ctx.StdCtx, "npm", npm.VersionArgs()...)
	if err != nil {
		return fmt.Errorf("failed to look up npm version: %w", err)
	}

	versions, err := npm.ParseVersions(out)
	if err != nil {
		return err
	}

	if semver.Satisfies(versions["npm"], brokenNpmRange) {
		return fmt.Errorf("npm@%s cannot publish reliably on this Node.js version. Upgrade npm with `npm install --global npm` and try again.", versions["npm"])
	}
	return nil
}
