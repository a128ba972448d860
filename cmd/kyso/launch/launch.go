// Package launch provides the kyso root command, which hands every argument
// to the platform-specific kyso binary.
package launch

import (
	"context"

	"github.com/kyso-io/kyso-launcher/cmd/kyso/cmdutil"
	"github.com/kyso-io/kyso-launcher/internal/launcher"
	"github.com/kyso-io/kyso-launcher/internal/version"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// NewLaunchCmd creates the kyso root command
func NewLaunchCmd(opts ...launcher.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kyso [args...]",
		Short: "Run the kyso CLI built for this platform",
		Long: `kyso runs the kyso CLI binary built for the current operating system.

The binaries (kyso-macos, kyso-linux, kyso-win.exe) are installed next to this
launcher. Every argument is passed to the binary unchanged, and the launcher
exits with the binary's exit code.

Examples:
  # Equivalent to running kyso-linux login on Linux
  kyso login

  # Arguments with spaces are passed as a single argument
  kyso studies create --title "My first study"`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Annotations: map[string]string{
			"version":   version.Version,
			"commit":    version.Commit,
			"buildDate": version.BuildDate,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd.Context(), args, opts)
		},
	}
	// "completion" belongs to the kyso binary
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// Execute runs the launcher with args. Cobra's hidden completion commands
// are bypassed so that those words still reach the kyso binary.
func Execute(ctx context.Context, args []string, opts ...launcher.Option) error {
	if args == nil {
		args = []string{}
	}
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return runLaunch(ctx, args, opts)
	}

	cmd := NewLaunchCmd(opts...)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func runLaunch(ctx context.Context, args []string, opts []launcher.Option) error {
	klog.V(4).Info(version.String())

	code, err := launcher.New(opts...).Run(ctx, args)
	if err != nil {
		return err
	}
	if code != 0 {
		return &cmdutil.ExitError{Code: code}
	}
	return nil
}
