package cli

import (
	"fmt"
	"os"

	"github.com/pubcheck/pubcheck/pkg/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "pubcheck",
	Short:   "Pre-publish validation for npm package releases",
	Version: version.VersionInfo(),
	Long: `Pubcheck runs an ordered set of pre-publish checks before a version bump
and publish proceed: registry reachability, authentication and write access,
git remote reachability, version validity, pre-release dist-tag policy,
toolchain compatibility, and tag collisions. The first failing check aborts
the release and is reported by name.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			fmt.Fprintf(os.Stderr, "Error displaying help: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	registerCommands()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	return rootCmd.Execute()
}

// registerCommands initializes flags and registers all subcommands
func registerCommands() {
	rootCmd.PersistentFlags().String("config", ".pubcheck.yaml", "config file path")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug mode")

	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("tag", "", "dist-tag to publish under")
	checkCmd.Flags().Bool("publish", true, "whether a publish will follow the bump")
	checkCmd.Flags().Bool("yarn", false, "read package-manager configuration from yarn")
	checkCmd.Flags().String("package", ".", "directory containing package.json")
}

// GetConfigPath returns the config file path from flags
func GetConfigPath() string {
	configPath, _ := rootCmd.PersistentFlags().GetString("config")
	return configPath
}

// GetDebugMode returns debug mode flag value
func GetDebugMode() bool {
	debug, _ := rootCmd.PersistentFlags().GetBool("debug")
	return debug
}
