// Package launcher runs the platform-specific kyso binary installed next to
// the launcher, forwarding arguments and exit status.
package launcher

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	kerrors "github.com/kyso-io/kyso-launcher/internal/errors"
	"github.com/kyso-io/kyso-launcher/internal/platform"
	"k8s.io/klog/v2"
)

// ExitLaunchFailed is the exit code used when the companion binary never started
const ExitLaunchFailed = 1

// Launcher resolves and runs the companion binary
type Launcher struct {
	dir      string
	platform platform.ID
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

// Option configures the launcher
type Option func(*Launcher)

// WithDir sets the directory holding the companion binaries.
// Defaults to the directory of the running executable.
func WithDir(dir string) Option {
	return func(l *Launcher) {
		l.dir = dir
	}
}

// WithPlatform overrides the detected platform
func WithPlatform(id platform.ID) Option {
	return func(l *Launcher) {
		l.platform = id
	}
}

// WithStdio sets the streams handed to the child
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdin = stdin
		l.stdout = stdout
		l.stderr = stderr
	}
}

// New creates a launcher for the current platform
func New(opts ...Option) *Launcher {
	l := &Launcher{
		platform: platform.Current(),
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Platform returns the platform the launcher resolves for
func (l *Launcher) Platform() platform.ID {
	return l.platform
}

// Resolve returns the absolute path of the companion binary.
// The file itself is not checked until Run.
func (l *Launcher) Resolve() (string, error) {
	name, ok := BinaryName(l.platform)
	if !ok {
		return "", kerrors.UnsupportedPlatform(l.platform.String())
	}

	dir := l.dir
	if dir == "" {
		var err error
		if dir, err = platform.ExecutableDir(); err != nil {
			return "", kerrors.LaunchFailed(name, err)
		}
	}

	path, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", kerrors.LaunchFailed(name, err)
	}
	klog.V(4).Infof("Resolved companion binary: platform=%s path=%s", l.platform, path)
	return path, nil
}

// Command builds the child command: the companion binary followed by args,
// each passed as its own argv entry with no shell in between.
func (l *Launcher) Command(ctx context.Context, args []string) (*exec.Cmd, error) {
	path, err := l.Resolve()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	return cmd, nil
}

// Run starts the companion binary, waits for it and returns its exit code.
// A child exiting non-zero is not an error; err is set only when the child
// could not be resolved or started, in which case the code is ExitLaunchFailed.
func (l *Launcher) Run(ctx context.Context, args []string) (int, error) {
	cmd, err := l.Command(ctx, args)
	if err != nil {
		return ExitLaunchFailed, err
	}

	stop := holdInterrupts()
	defer stop()

	klog.V(4).Infof("Launching %s with %d argument(s)", cmd.Path, len(args))
	if err := cmd.Start(); err != nil {
		return ExitLaunchFailed, kerrors.LaunchFailed(cmd.Path, err)
	}

	err = cmd.Wait()
	if err == nil {
		klog.V(4).Info("Companion binary exited: code=0")
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// Wait fails without an exit status only on stdio copy errors
		return ExitLaunchFailed, kerrors.LaunchFailed(cmd.Path, err)
	}

	code := exitCode(exitErr)
	klog.V(4).Infof("Companion binary exited: code=%d", code)
	return code, nil
}
