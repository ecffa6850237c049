// Package vmcache asks the kernel to drop its page cache so that large block
// writes see the device instead of stale cached pages.
package vmcache

import (
	"log/slog"
	"os"

	"github.com/furilabs/furios-reset/pkg/errors"
)

// Reclaimer writes to the kernel's drop_caches control file,
// /proc/sys/vm/drop_caches on a running system.
type Reclaimer struct {
	controlPath string
}

func New(controlPath string) *Reclaimer {
	return &Reclaimer{controlPath: controlPath}
}

// Drop releases the page cache. Failures are reported but callers treat them
// as advisory; a reset proceeds with or without the reclaim.
func (r *Reclaimer) Drop() error {
	f, err := os.OpenFile(r.controlPath, os.O_WRONLY, 0)
	if err != nil {
		return errors.Wrap(err, "open drop_caches control")
	}
	defer f.Close()

	if _, err := f.WriteString("1"); err != nil {
		return errors.Wrap(err, "write drop_caches control")
	}

	slog.Info("page_cache_dropped", "path", r.controlPath)
	return nil
}
