// Package ui is the interactive surface of a reset: the passphrase prompt,
// progress notes and the final verdict.
package ui

import (
	"context"

	"github.com/furilabs/furios-reset/pkg/errors"
)

// ErrNoPrompt reports that no input is available to ask the user anything.
// A reset that needs a passphrase but has no prompt ends without flashing.
var ErrNoPrompt = errors.New("no interactive input for password prompt")

// UI is what a reset needs from its surroundings.
type UI interface {
	// RequestPassword asks for the encryption passphrase.
	RequestPassword(ctx context.Context, attemptsRemaining int) (string, error)

	// ShowProgress tells the user what is happening.
	ShowProgress(message string)

	// ShowOutcome reports how the run ended.
	ShowOutcome(message string)
}
