package cli

import (
	"errors"
	"os"

	"github.com/ksyq12/gvm-config/internal/logger"
	"github.com/ksyq12/gvm-config/internal/output"
	"github.com/spf13/cobra"
)

var version = "dev"

// lookupEnv is replaced in tests.
var lookupEnv = os.LookupEnv

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	jsonOutput bool
	verbose    bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gvm-config",
		Short: "Render nginx configuration from templates",
		Long: `gvm-config renders a directory of nginx configuration templates.

Values such as the host name, ports, TLS certificate paths and security
headers come from command-line flags, environment variables, an optional
YAML settings file, or built-in defaults, in that order.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(opts.verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging for debugging")

	rootCmd.AddCommand(
		newNginxConfigCmd(opts),
		newNginxContextCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command and exits with status 1 on failure
func Execute() {
	os.Exit(Run(os.Args[1:]))
}

// Run executes the command line in args and returns the exit status
func Run(args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		var silent silentError
		if !errors.As(err, &silent) {
			output.Error("Error: %v", err)
		}
		return 1
	}
	return 0
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}
