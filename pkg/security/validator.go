// Package security validates externally influenced tokens before they are
// used to build device paths or external command arguments.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxSlotSuffixLen is the longest slot suffix token accepted from the kernel
// command line.
const MaxSlotSuffixLen = 2

// ValidateSlotSuffix checks a slot suffix token parsed from the boot command
// line. The empty suffix is valid (single-slot devices). Anything longer than
// two characters or outside [A-Za-z0-9_] is rejected so a hostile command
// line cannot steer writes to an unexpected partition label.
func ValidateSlotSuffix(suffix string) error {
	if suffix == "" {
		return nil
	}
	if len(suffix) > MaxSlotSuffixLen {
		return fmt.Errorf("security: slot suffix too long: %q", suffix)
	}
	for _, r := range suffix {
		if !isLabelRune(r) {
			return fmt.Errorf("security: slot suffix contains invalid character: %q", suffix)
		}
	}
	return nil
}

// ValidatePartitionLabel checks a partition label used to build a
// /dev/disk/by-partlabel path. Labels must be non-empty and contain only
// [A-Za-z0-9._-] so the joined path cannot escape the by-partlabel directory.
func ValidatePartitionLabel(label string) error {
	if label == "" {
		return fmt.Errorf("security: partition label cannot be empty")
	}
	for _, r := range label {
		if !isLabelRune(r) && r != '.' && r != '-' {
			return fmt.Errorf("security: partition label contains invalid character: %q", label)
		}
	}
	if strings.HasPrefix(label, ".") {
		return fmt.Errorf("security: partition label cannot start with a dot: %q", label)
	}
	return nil
}

// ValidateMountPoint checks a scratch mount point path. Mount points must be
// absolute and already clean, so that the mount registry tracks exactly the
// path that was mounted.
func ValidateMountPoint(path string) error {
	if path == "" {
		return fmt.Errorf("security: mount point cannot be empty")
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("security: mount point must be absolute: %q", path)
	}
	if filepath.Clean(path) != path || path == "/" {
		return fmt.Errorf("security: mount point not allowed: %q", path)
	}
	return nil
}

func isLabelRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}
