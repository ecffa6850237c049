package luks

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/subprocess"
)

type fakeRunner struct {
	calls  []subprocess.Cmd
	stdins []string
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, subprocess.Cmd{Name: name, Args: args})
	return f.err
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, subprocess.Cmd{Name: name, Args: args})
	return "", f.err
}

func (f *fakeRunner) RunInput(ctx context.Context, stdin io.Reader, name string, args ...string) error {
	f.calls = append(f.calls, subprocess.Cmd{Name: name, Args: args})
	data, _ := io.ReadAll(stdin)
	f.stdins = append(f.stdins, string(data))
	return f.err
}

func (f *fakeRunner) Pipeline(ctx context.Context, src, dst subprocess.Cmd) error {
	f.calls = append(f.calls, src, dst)
	return f.err
}

var _ subprocess.Runner = (*fakeRunner)(nil)

func writeVolume(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reserved")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write volume: %v", err)
	}
	return path
}

func TestProbe(t *testing.T) {
	luksHeader := append([]byte(luksMagic), make([]byte, 100)...)

	tests := []struct {
		name     string
		data     []byte
		expected State
	}{
		{"luks header", luksHeader, Locked},
		{"plain data", []byte("ext4 superblock or whatever else"), NotEncrypted},
		{"empty volume", nil, NotEncrypted},
		{"short volume with magic", []byte(luksMagic), Locked},
		{"short volume without magic", []byte("LU"), NotEncrypted},
	}

	for _, tt := range tests {
		g := NewGate(writeVolume(t, tt.data), &fakeRunner{}, 3)
		state, err := g.Probe()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if state != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, state)
		}
	}
}

func TestProbeUnreadableVolume(t *testing.T) {
	g := NewGate(filepath.Join(t.TempDir(), "does-not-exist"), &fakeRunner{}, 3)
	if _, err := g.Probe(); err == nil {
		t.Fatal("expected error for unreadable volume")
	}
}

func TestSubmitPassphraseAccepted(t *testing.T) {
	volume := writeVolume(t, []byte(luksMagic))
	runner := &fakeRunner{}
	g := NewGate(volume, runner, 3)

	if err := g.SubmitPassphrase(context.Background(), "hunter2"); err != nil {
		t.Fatalf("expected passphrase to be accepted: %v", err)
	}
	if !g.Unlocked() {
		t.Error("gate should report unlocked")
	}

	state, err := g.Probe()
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if state != Unlocked {
		t.Errorf("expected %q after unlock, got %q", Unlocked, state)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected one cryptsetup call, got %d", len(runner.calls))
	}
	expected := "cryptsetup luksOpen --test-passphrase --key-file=- " + volume
	if got := runner.calls[0].String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
	if runner.stdins[0] != "hunter2" {
		t.Errorf("passphrase should reach stdin verbatim, got %q", runner.stdins[0])
	}
}

func TestLockoutAfterThreeRejections(t *testing.T) {
	runner := &fakeRunner{err: &subprocess.ExitError{Cmd: "cryptsetup", Code: badPassphraseExit}}
	g := NewGate(writeVolume(t, []byte(luksMagic)), runner, 3)
	ctx := context.Background()

	for i, remaining := range []int{2, 1} {
		err := g.SubmitPassphrase(ctx, "wrong")
		if !errors.Is(err, ErrBadPassphrase) {
			t.Fatalf("attempt %d: expected ErrBadPassphrase, got %v", i+1, err)
		}
		if g.Remaining() != remaining {
			t.Errorf("attempt %d: expected %d remaining, got %d", i+1, remaining, g.Remaining())
		}
	}

	if err := g.SubmitPassphrase(ctx, "wrong"); !errors.Is(err, ErrLockedOut) {
		t.Fatalf("third rejection should lock out, got %v", err)
	}
	if g.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", g.Remaining())
	}

	// Even a correct passphrase is refused once locked out.
	runner.err = nil
	if err := g.SubmitPassphrase(ctx, "correct"); !errors.Is(err, ErrLockedOut) {
		t.Fatalf("expected ErrLockedOut after lockout, got %v", err)
	}
	if len(runner.calls) != 3 {
		t.Errorf("locked-out submission must not reach cryptsetup, got %d calls", len(runner.calls))
	}
}

func TestSubmitPassphraseUnexpectedFailure(t *testing.T) {
	runner := &fakeRunner{err: &subprocess.ExitError{Cmd: "cryptsetup", Code: 1}}
	g := NewGate(writeVolume(t, []byte(luksMagic)), runner, 3)

	err := g.SubmitPassphrase(context.Background(), "whatever")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrBadPassphrase) || errors.Is(err, ErrLockedOut) {
		t.Fatalf("unexpected cryptsetup failure must not count as a rejection: %v", err)
	}
	if g.Remaining() != 3 {
		t.Errorf("attempts should be unchanged, got %d remaining", g.Remaining())
	}
}
