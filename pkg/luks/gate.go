// Package luks gates a reset behind the encryption state of the reserved
// volume.
//
// Encrypted devices keep a LUKS header on a small reserved logical volume.
// If that header is present the user must prove knowledge of the passphrase
// before anything is erased. Attempts are counted for the life of the
// process; once the allowance is spent no further passphrase is evaluated,
// correct or not.
package luks

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/subprocess"
)

// State of the reserved volume with respect to disk encryption.
type State string

const (
	NotEncrypted State = "not_encrypted"
	Locked       State = "locked"
	Unlocked     State = "unlocked"
)

// luksMagic opens every LUKS superblock.
const luksMagic = "LUKS\xba\xbe"

// headerLen is how much of the volume the probe inspects.
const headerLen = 64

// badPassphraseExit is cryptsetup's exit status for a rejected passphrase.
const badPassphraseExit = 2

var (
	// ErrBadPassphrase reports a rejected passphrase with attempts left.
	ErrBadPassphrase = errors.New("passphrase rejected")

	// ErrLockedOut reports that the attempt allowance is exhausted.
	ErrLockedOut = errors.New("maximum password attempts reached")
)

// Gate tracks encryption state and passphrase attempts for one process.
type Gate struct {
	volume      string
	runner      subprocess.Runner
	maxAttempts int

	attempts int
	unlocked bool
}

func NewGate(volume string, runner subprocess.Runner, maxAttempts int) *Gate {
	return &Gate{volume: volume, runner: runner, maxAttempts: maxAttempts}
}

// Probe inspects the reserved volume's header. An unreadable volume is an
// error: on these devices the volume always exists, so failing to read it
// means the disk layout cannot be trusted.
func (g *Gate) Probe() (State, error) {
	if g.unlocked {
		return Unlocked, nil
	}

	f, err := os.Open(g.volume)
	if err != nil {
		return "", errors.Wrap(err, "open reserved volume")
	}
	defer f.Close()

	header := make([]byte, headerLen)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", errors.Wrap(err, "read reserved volume header")
	}

	if bytes.HasPrefix(header[:n], []byte(luksMagic)) {
		slog.Info("encryption_detected", "volume", g.volume)
		return Locked, nil
	}
	return NotEncrypted, nil
}

// SubmitPassphrase tests a passphrase against the volume without creating a
// mapping. The passphrase travels on stdin so it never appears in an
// argument vector.
func (g *Gate) SubmitPassphrase(ctx context.Context, passphrase string) error {
	if g.unlocked {
		return nil
	}
	if g.attempts >= g.maxAttempts {
		return ErrLockedOut
	}

	err := g.runner.RunInput(ctx, strings.NewReader(passphrase),
		"cryptsetup", "luksOpen", "--test-passphrase", "--key-file=-", g.volume)
	if err == nil {
		g.unlocked = true
		slog.Info("volume_unlocked", "volume", g.volume)
		return nil
	}

	if code, ok := subprocess.ExitCode(err); ok && code == badPassphraseExit {
		g.attempts++
		slog.Warn("passphrase_rejected", "attempts", g.attempts, "max", g.maxAttempts)
		if g.attempts >= g.maxAttempts {
			return ErrLockedOut
		}
		return ErrBadPassphrase
	}

	return errors.Wrap(err, "verify passphrase")
}

// Remaining returns how many passphrase attempts are left.
func (g *Gate) Remaining() int {
	if r := g.maxAttempts - g.attempts; r > 0 {
		return r
	}
	return 0
}

// Unlocked reports whether a passphrase has been accepted.
func (g *Gate) Unlocked() bool {
	return g.unlocked
}
