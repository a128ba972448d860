//go:build unix

package launcher

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// exitCode converts the child's wait status into a process exit code.
// A child killed by a signal reports 128+signo, as shells do.
func exitCode(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return exitErr.ExitCode()
}

// holdInterrupts keeps the launcher alive on SIGINT/SIGQUIT while the child
// runs; the terminal already delivers them to the child's process group.
// Notify is used rather than Ignore since ignored dispositions survive exec.
func holdInterrupts() (stop func()) {
	// Nothing reads sigCh; Notify drops signals once the buffer is full.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGQUIT)
	return func() {
		signal.Stop(sigCh)
	}
}
