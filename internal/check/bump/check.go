// Package bump validates the operator's version input and computes the new
// version the release would publish.
package bump

import (
	"fmt"
	"strings"

	"github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/semver"
)

// Check is the sole writer of ctx.NewVersion. Later checks depend on it, so
// it must stay ahead of them in the pipeline order.
type Check struct{}

func (Check) String() string { return "Validate version" }

func (Check) Run(ctx *context.Context) error {
	if !semver.IsValidInput(ctx.InputVersion) {
		return fmt.Errorf("Version should be either %s, or a valid semver version.",
			strings.Join(semver.Increments, ", "))
	}

	newVersion, err := semver.New(ctx.CurrentVersion, ctx.InputVersion)
	if err != nil {
		return err
	}
	ctx.NewVersion = newVersion

	if !semver.Greater(newVersion, ctx.CurrentVersion) {
		return fmt.Errorf("New version `%s` should be higher than the current version `%s`.",
			newVersion, ctx.CurrentVersion)
	}

	ctx.Logger.Debugf("New version resolved to %s", newVersion)
	return nil
}
