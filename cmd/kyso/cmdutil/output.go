// Package cmdutil provides common utilities for the kyso launcher command
package cmdutil

import (
	"errors"
	"fmt"
	"strings"

	kerrors "github.com/kyso-io/kyso-launcher/internal/errors"
	"github.com/kyso-io/kyso-launcher/internal/launcher"
	"github.com/kyso-io/kyso-launcher/internal/tui"
)

// ExitError carries the companion binary's exit status out of a cobra RunE
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps a command error to the launcher's process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return launcher.ExitLaunchFailed
}

// ReportError prints launcher failures. Child exit statuses are passed
// through silently since the child has already reported them.
func ReportError(out *tui.Output, err error) {
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}

	out.Error(err.Error())
	switch kerrors.CodeOf(err) {
	case kerrors.CodeUnsupportedPlatform:
		supported := make([]string, 0, len(launcher.Platforms()))
		for _, id := range launcher.Platforms() {
			supported = append(supported, id.String())
		}
		out.Hint("Supported platforms: " + strings.Join(supported, ", "))
	case kerrors.CodeLaunchFailed:
		out.Hint("The kyso installation looks incomplete. Please reinstall kyso.")
	}
}
