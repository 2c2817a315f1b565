package check

import (
	"github.com/pubcheck/pubcheck/internal/check/auth"
	"github.com/pubcheck/pubcheck/internal/check/bump"
	"github.com/pubcheck/pubcheck/internal/check/ghrelease"
	"github.com/pubcheck/pubcheck/internal/check/gitremote"
	"github.com/pubcheck/pubcheck/internal/check/gittag"
	"github.com/pubcheck/pubcheck/internal/check/prerelease"
	"github.com/pubcheck/pubcheck/internal/check/registry"
	"github.com/pubcheck/pubcheck/internal/check/toolchain"
)

// Checks contains every pre-publish check in execution order.
//
// The order is a correctness invariant, not a preference: the version
// validation check writes NewVersion, and the pre-release, git tag, and
// GitHub release checks read it. Reordering breaks the pipeline.
var Checks = []Checker{
	registry.Check{},   // Ping npm registry
	auth.Check{},       // Verify authentication and write access
	gitremote.Check{},  // Verify git remote is reachable
	bump.Check{},       // Validate version input, compute new version
	prerelease.Check{}, // Require --tag for pre-release publishes
	toolchain.Check{},  // Reject npm versions with known publish bugs
	gittag.Check{},     // Detect release tag collisions
	ghrelease.Check{},  // Detect GitHub release collisions
}
