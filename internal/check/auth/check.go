// Package auth verifies the operator is logged in to the registry and has
// write permission on the package.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pubcheck/pubcheck/pkg/command"
	"github.com/pubcheck/pubcheck/pkg/config"
	"github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/npm"
)

// Check runs npm whoami and the collaborator-permission lookup.
type Check struct{}

func (Check) String() string { return "Verify user is authenticated" }

// Skip excludes test mode (no credentials available) along with private
// packages and external registries.
func (Check) Skip(ctx *context.Context) bool {
	return ctx.Mode == config.ModeTest || ctx.IsPrivate || ctx.IsExternalRegistry
}

func (Check) Run(ctx *context.Context) error {
	out, err := ctx.Runner.Run(ctx.StdCtx, "npm", npm.WhoamiArgs()...)
	if err != nil {
		var cmdErr *command.Error
		if errors.As(err, &cmdErr) && npm.IsAuthError(cmdErr.Stderr) {
			return errors.New("You must be logged in. Use `npm login` and try again.")
		}
		return errors.New("Authentication error. Use `npm whoami` to troubleshoot.")
	}
	username := strings.TrimSpace(out)

	collabOut, err := ctx.Runner.Run(ctx.StdCtx, "npm", npm.CollaboratorsArgs(ctx.Package.Name)...)
	if err != nil {
		// An unpublished package has no collaborator list yet; only the
		// registry's not-found shape is treated as success. Anything else
		// (network failure, registry error) must surface.
		var cmdErr *command.Error
		if errors.As(err, &cmdErr) && npm.IsNotFound(cmdErr.Stderr) {
			ctx.Logger.Debugf("Collaborator lookup returned not found, assuming unpublished package: %v", err)
			return nil
		}
		return fmt.Errorf("failed to read collaborator permissions: %w", err)
	}

	collaborators, err := npm.ParseCollaborators(collabOut)
	if err != nil {
		return fmt.Errorf("failed to parse collaborator list: %w", err)
	}

	permissions, ok := collaborators[username]
	if !ok || !npm.HasWritePermission(permissions) {
		return fmt.Errorf("You do not have write permissions required to publish %s.", ctx.Package.Name)
	}
	return nil
}
