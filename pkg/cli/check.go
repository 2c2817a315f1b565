package cli

import (
	stdcontext "context"
	"strings"

	"github.com/pubcheck/pubcheck/pkg/check"
	"github.com/pubcheck/pubcheck/pkg/command"
	"github.com/pubcheck/pubcheck/pkg/config"
	pubContext "github.com/pubcheck/pubcheck/pkg/context"
	"github.com/pubcheck/pubcheck/pkg/github"
	"github.com/pubcheck/pubcheck/pkg/npm"
	"github.com/pubcheck/pubcheck/pkg/runner"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <version>",
	Short: "Run all pre-publish checks",
	Long: `Run the pre-publish validation pipeline for the given version.
The version is either an exact semver version ("1.2.4") or an increment
keyword ("patch", "minor", "major", "prepatch", "preminor", "premajor",
"prerelease") applied to the version in package.json.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

// runCheck executes the check command
func runCheck(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())

	cfg, err := config.Load(GetConfigPath())
	if err != nil {
		ExitWithErrorf(logger, "Failed to load configuration: %v", err)
	}

	packageDir, _ := cmd.Flags().GetString("package")
	pkg, err := npm.LoadPackage(packageDir)
	if err != nil {
		ExitWithErrorf(logger, "Failed to load package descriptor: %v", err)
	}

	opts := pubContext.Options{}
	opts.Publish, _ = cmd.Flags().GetBool("publish")
	opts.Tag, _ = cmd.Flags().GetString("tag")
	opts.Yarn, _ = cmd.Flags().GetBool("yarn")

	exec := command.Exec{}
	ctx := pubContext.New(stdcontext.Background(), cfg, pkg, logger, exec, opts, args[0])
	ctx.NodeVersion = probeNodeVersion(ctx)

	if cfg.GitHub.Configured() {
		client, err := github.NewClient(cfg.GitHub.Token)
		if err != nil {
			ExitWithErrorf(logger, "Failed to create GitHub client: %v", err)
		}
		ctx.GitHub = client
	}

	if err := runner.Run(ctx, check.Checks); err != nil {
		if failure, ok := runner.AsFailure(err); ok {
			ExitWithErrorf(logger, "%s: %s", failure.Check, failure.Message)
		}
		ExitWithErrorf(logger, "Pipeline failed: %v", err)
	}

	logger.Infof("All checks passed. %s is ready to release %s%s.",
		pkg.Name, ctx.TagPrefix, ctx.NewVersion)
}

// probeNodeVersion asks node for its version once at startup. The probe is
// best-effort: on failure the npm-version check simply cannot be skipped.
func probeNodeVersion(ctx *pubContext.Context) string {
	out, err := ctx.Runner.Run(ctx.StdCtx, "node", "--version")
	if err != nil {
		ctx.Logger.Debugf("Node version probe failed: %v", err)
		return ""
	}
	return strings.TrimSpace(out)
}
