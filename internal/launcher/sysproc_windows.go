//go:build windows

package launcher

import (
	"os"
	"os/exec"
	"os/signal"
)

// exitCode returns the child's exit code; Windows has no signal termination.
func exitCode(exitErr *exec.ExitError) int {
	return exitErr.ExitCode()
}

// holdInterrupts keeps the launcher alive on Ctrl+C while the child runs.
// The console delivers the event to every attached process, the child included.
func holdInterrupts() (stop func()) {
	// Nothing reads sigCh; Notify drops signals once the buffer is full.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	return func() {
		signal.Stop(sigCh)
	}
}
