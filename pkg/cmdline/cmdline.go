// Package cmdline resolves the active boot slot from the kernel command line.
package cmdline

import (
	"log/slog"
	"os"
	"strings"

	"github.com/furilabs/furios-reset/pkg/security"
)

const slotParam = "androidboot.slot_suffix="

// Resolver reads the kernel command line from a fixed path, /proc/cmdline on
// a running system.
type Resolver struct {
	path string
}

func NewResolver(path string) *Resolver {
	return &Resolver{path: path}
}

// Resolve returns the active slot suffix. It never fails: an unreadable
// command line or a malformed parameter degrades to the empty suffix and the
// caller flashes unsuffixed partition names.
func (r *Resolver) Resolve() string {
	data, err := os.ReadFile(r.path)
	if err != nil {
		slog.Warn("cmdline_unreadable", "path", r.path, "error", err)
		return ""
	}
	return SuffixFrom(string(data))
}

// SuffixFrom extracts the slot suffix from a raw kernel command line. The
// value is cut at the first whitespace and capped at two characters.
func SuffixFrom(cmdline string) string {
	idx := strings.Index(cmdline, slotParam)
	if idx == -1 {
		return ""
	}

	rest := cmdline[idx+len(slotParam):]
	if end := strings.IndexAny(rest, " \t\n"); end != -1 {
		rest = rest[:end]
	}
	if len(rest) > security.MaxSlotSuffixLen {
		rest = rest[:security.MaxSlotSuffixLen]
	}

	if err := security.ValidateSlotSuffix(rest); err != nil {
		slog.Warn("slot_suffix_invalid", "suffix", rest, "error", err)
		return ""
	}
	return rest
}
