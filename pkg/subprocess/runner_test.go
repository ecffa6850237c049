package subprocess

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func requirePOSIXTools(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestOutputTrimsStdout(t *testing.T) {
	requirePOSIXTools(t)

	r := NewRunner(0)
	out, err := r.Output(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if out != "hello" {
		t.Errorf("expected %q, got %q", "hello", out)
	}
}

func TestRunReportsExitStatus(t *testing.T) {
	requirePOSIXTools(t)

	r := NewRunner(0)
	err := r.Run(context.Background(), "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}

	code, ok := ExitCode(err)
	if !ok {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if code != 3 {
		t.Errorf("expected exit code 3, got %d", code)
	}
}

func TestRunInputFeedsStdin(t *testing.T) {
	requirePOSIXTools(t)

	r := NewRunner(0)

	err := r.RunInput(context.Background(), strings.NewReader("needle\n"), "grep", "-q", "needle")
	if err != nil {
		t.Errorf("expected grep to find input, got %v", err)
	}

	err = r.RunInput(context.Background(), strings.NewReader("haystack\n"), "grep", "-q", "needle")
	code, ok := ExitCode(err)
	if !ok || code != 1 {
		t.Errorf("expected exit code 1 for missing input, got %v", err)
	}
}

func TestRunMissingBinary(t *testing.T) {
	r := NewRunner(0)
	err := r.Run(context.Background(), "/nonexistent/binary-for-test")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if _, ok := ExitCode(err); ok {
		t.Errorf("start failure should not carry an exit code: %v", err)
	}
}

func TestPipeline(t *testing.T) {
	requirePOSIXTools(t)

	r := NewRunner(0)
	tests := []struct {
		name     string
		src      Cmd
		dst      Cmd
		wantErr  bool
		wantCode int
	}{
		{
			name: "both succeed",
			src:  Cmd{Name: "echo", Args: []string{"hello"}},
			dst:  Cmd{Name: "grep", Args: []string{"-q", "hello"}},
		},
		{
			name:     "destination fails",
			src:      Cmd{Name: "echo", Args: []string{"hello"}},
			dst:      Cmd{Name: "grep", Args: []string{"-q", "absent"}},
			wantErr:  true,
			wantCode: 1,
		},
		{
			name:     "source fails",
			src:      Cmd{Name: "sh", Args: []string{"-c", "exit 4"}},
			dst:      Cmd{Name: "cat"},
			wantErr:  true,
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		err := r.Pipeline(context.Background(), tt.src, tt.dst)
		if !tt.wantErr {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tt.name, err)
			}
			continue
		}
		code, ok := ExitCode(err)
		if !ok {
			t.Errorf("%s: expected ExitError, got %v", tt.name, err)
			continue
		}
		if code != tt.wantCode {
			t.Errorf("%s: expected exit code %d, got %d", tt.name, tt.wantCode, code)
		}
	}
}

func TestPipelineMissingSource(t *testing.T) {
	requirePOSIXTools(t)

	r := NewRunner(0)
	err := r.Pipeline(context.Background(),
		Cmd{Name: "/nonexistent/binary-for-test"},
		Cmd{Name: "cat"})
	if err == nil {
		t.Fatal("expected error for missing source binary")
	}
}

func TestTimeoutKillsCommand(t *testing.T) {
	requirePOSIXTools(t)

	r := NewRunner(100 * time.Millisecond)
	start := time.Now()
	err := r.Run(context.Background(), "sleep", "5")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("command was not killed by timeout, ran for %v", elapsed)
	}
}

func TestExitCodeForeignError(t *testing.T) {
	if _, ok := ExitCode(errors.New("plain")); ok {
		t.Error("plain error should not carry an exit code")
	}
	if _, ok := ExitCode(nil); ok {
		t.Error("nil error should not carry an exit code")
	}
}

func TestCmdString(t *testing.T) {
	tests := []struct {
		cmd      Cmd
		expected string
	}{
		{Cmd{Name: "dmsetup"}, "dmsetup"},
		{Cmd{Name: "dd", Args: []string{"if=/a", "of=/b"}}, "dd if=/a of=/b"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}
