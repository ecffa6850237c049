// Package subprocess runs the external tools the reset pipeline sequences.
// Commands are plain argument vectors executed without a shell; the Runner
// interface lets tests substitute fakes for real binaries and block devices.
package subprocess

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Cmd describes one external command as an argument vector.
type Cmd struct {
	Name string
	Args []string
}

func (c Cmd) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes external commands.
type Runner interface {
	// Run executes a command and waits for it to exit.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes a command and returns its trimmed stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// RunInput executes a command with the given reader as its stdin.
	RunInput(ctx context.Context, stdin io.Reader, name string, args ...string) error

	// Pipeline streams src's stdout into dst's stdin. Both commands must
	// succeed for the pipeline to succeed.
	Pipeline(ctx context.Context, src, dst Cmd) error
}

// ExitError reports a command that started and exited non-zero.
type ExitError struct {
	Cmd    string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: exit status %d", e.Cmd, e.Code)
	}
	return fmt.Sprintf("%s: exit status %d: %s", e.Cmd, e.Code, e.Stderr)
}

// ExitCode extracts the exit status from an error returned by a Runner.
// The second return is false if the error does not carry an exit status.
func ExitCode(err error) (int, bool) {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code, true
	}
	return 0, false
}

// ExecRunner runs commands with os/exec. A non-zero Timeout supervises every
// invocation; zero leaves external tools unbounded.
type ExecRunner struct {
	Timeout time.Duration
}

// NewRunner creates an exec-backed runner with the given per-command timeout.
func NewRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{Timeout: timeout}
}

func (r *ExecRunner) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.Timeout)
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	return r.RunInput(ctx, nil, name, args...)
}

func (r *ExecRunner) RunInput(ctx context.Context, stdin io.Reader, name string, args ...string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	slog.Info("exec_command", "cmd", name, "args", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return commandError(Cmd{Name: name, Args: args}, err, stderr.String())
	}
	return nil
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Info("exec_command", "cmd", name, "args", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return "", commandError(Cmd{Name: name, Args: args}, err, stderr.String())
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (r *ExecRunner) Pipeline(ctx context.Context, src, dst Cmd) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	first := exec.CommandContext(ctx, src.Name, src.Args...)
	second := exec.CommandContext(ctx, dst.Name, dst.Args...)

	pipe, err := first.StdoutPipe()
	if err != nil {
		return fmt.Errorf("pipeline stdout pipe: %w", err)
	}
	second.Stdin = pipe

	var srcStderr, dstStderr bytes.Buffer
	first.Stderr = &srcStderr
	second.Stderr = &dstStderr

	slog.Info("exec_pipeline", "src", src.String(), "dst", dst.String())

	if err := first.Start(); err != nil {
		return fmt.Errorf("start %s: %w", src.Name, err)
	}
	if err := second.Start(); err != nil {
		first.Process.Kill()
		first.Wait()
		return fmt.Errorf("start %s: %w", dst.Name, err)
	}

	// The writer's Wait only closes the parent's copy of the pipe; the
	// reader holds its own descriptor until it exits.
	srcErr := first.Wait()
	dstErr := second.Wait()

	if dstErr != nil {
		return commandError(dst, dstErr, dstStderr.String())
	}
	if srcErr != nil {
		return commandError(src, srcErr, srcStderr.String())
	}
	return nil
}

func commandError(c Cmd, err error, stderr string) error {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{Cmd: c.String(), Code: ee.ExitCode(), Stderr: strings.TrimSpace(stderr)}
	}
	return fmt.Errorf("%s: %w", c.String(), err)
}
