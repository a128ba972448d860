package main

import (
	"context"
	"os"

	"github.com/kyso-io/kyso-launcher/cmd/kyso/cmdutil"
	"github.com/kyso-io/kyso-launcher/cmd/kyso/launch"
	"github.com/kyso-io/kyso-launcher/internal/tui"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	// Starting from Explorer is the kyso binary's concern, not the launcher's
	cobra.MousetrapHelpText = ""

	err := launch.Execute(context.Background(), os.Args[1:])
	cmdutil.ReportError(tui.NewStderrOutput(), err)

	klog.Flush()
	os.Exit(cmdutil.ExitCode(err))
}
