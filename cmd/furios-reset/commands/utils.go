package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/furilabs/furios-reset/pkg/errors"
)

// ensureDirectories creates the directories the journal and FSM state live in
func ensureDirectories(databasePath, fsmDBPath string) error {
	if err := os.MkdirAll(filepath.Dir(databasePath), 0755); err != nil {
		return errors.Wrap(err, "failed to create database directory")
	}

	// FSM state directory (only needed for the run command)
	if fsmDBPath != "" {
		if err := os.MkdirAll(fsmDBPath, 0755); err != nil {
			return errors.Wrap(err, "failed to create FSM directory")
		}
	}

	return nil
}

// exitCodeError carries a specific process exit status through cobra.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
