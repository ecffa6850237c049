// Package payload locates the images a reset flashes.
package payload

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/mounts"
)

// Origin tells which mount an image was found on.
type Origin string

const (
	OriginNone   Origin = ""
	OriginSystem Origin = "system"
	OriginRootfs Origin = "rootfs"
)

// Source is one located image.
type Source struct {
	Path   string
	Origin Origin
}

// Set is everything a flash works from. Boot and Dtbo may be absent; the
// userdata archive never is.
type Set struct {
	Userdata Source
	Boot     Source
	Dtbo     Source

	// FallbackMount is the rootfs mount point when the fallback volume was
	// mounted during the search, whether or not it yielded an image. The
	// caller owns releasing it.
	FallbackMount string
}

// UsesFallback reports whether the rootfs volume was mounted for the search.
func (s *Set) UsesFallback() bool {
	return s.FallbackMount != ""
}

// ErrUserdataMissing reports that no userdata archive exists on the system
// partition. Without it there is nothing to restore, so a reset cannot run.
var ErrUserdataMissing = errors.New("no userdata archive found on system partition")

// archiveCandidates in preference order.
var archiveCandidates = []string{
	"userdata.img.tar.gz",
	"userdata-raw.img.tar.gz",
}

const (
	bootImage = "boot.img"
	dtboImage = "dtbo.img"
)

// Locator finds the flashable payload on the mounted system slot, falling
// back to the rootfs volume for boot images.
type Locator struct {
	registry     *mounts.Registry
	rootfsDevice string
	rootfsMount  string
	fstype       string
}

func NewLocator(registry *mounts.Registry, rootfsDevice, rootfsMount, fstype string) *Locator {
	return &Locator{
		registry:     registry,
		rootfsDevice: rootfsDevice,
		rootfsMount:  rootfsMount,
		fstype:       fstype,
	}
}

// Locate finds the userdata archive and the boot and dtbo images. The
// archive must exist on the system partition. Boot images may instead come
// from the rootfs volume's boot directory, matched by name prefix because
// the files there usually carry a kernel version suffix. Every fallback
// problem short of a missing archive degrades to flashing fewer images.
func (l *Locator) Locate(systemMount string) (*Set, error) {
	set := &Set{}

	for _, name := range archiveCandidates {
		path := filepath.Join(systemMount, name)
		if _, err := os.Stat(path); err == nil {
			set.Userdata = Source{Path: path, Origin: OriginSystem}
			break
		}
	}
	if set.Userdata.Origin == OriginNone {
		return nil, ErrUserdataMissing
	}
	slog.Info("userdata_archive_located", "path", set.Userdata.Path)

	set.Boot = systemImage(systemMount, bootImage)
	set.Dtbo = systemImage(systemMount, dtboImage)
	if set.Boot.Origin != OriginNone && set.Dtbo.Origin != OriginNone {
		return set, nil
	}

	if _, err := os.Stat(l.rootfsDevice); err != nil {
		slog.Info("rootfs_volume_absent", "device", l.rootfsDevice)
		return set, nil
	}

	if err := l.registry.Mount(l.rootfsDevice, l.rootfsMount, l.fstype); err != nil {
		slog.Warn("rootfs_mount_failed", "device", l.rootfsDevice, "error", err)
		return set, nil
	}
	set.FallbackMount = l.rootfsMount

	bootDir := filepath.Join(l.rootfsMount, "boot")
	entries, err := readRawOrder(bootDir)
	if err != nil {
		slog.Warn("rootfs_boot_dir_unreadable", "dir", bootDir, "error", err)
		return set, nil
	}

	if set.Boot.Origin == OriginNone {
		set.Boot = prefixImage(entries, bootDir, bootImage)
	}
	if set.Dtbo.Origin == OriginNone {
		set.Dtbo = prefixImage(entries, bootDir, dtboImage)
	}
	return set, nil
}

func systemImage(systemMount, name string) Source {
	path := filepath.Join(systemMount, name)
	if _, err := os.Stat(path); err != nil {
		slog.Info("system_image_missing", "image", name)
		return Source{}
	}
	return Source{Path: path, Origin: OriginSystem}
}

// readRawOrder returns directory entries in the order the filesystem yields
// them. The order is deliberately not sorted: the first on-disk name with a
// matching prefix wins, which on these images is the kernel the device
// shipped with.
func readRawOrder(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}

func prefixImage(entries []os.DirEntry, dir, prefix string) Source {
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), prefix) {
			path := filepath.Join(dir, e.Name())
			slog.Info("fallback_image_located", "path", path)
			return Source{Path: path, Origin: OriginRootfs}
		}
	}
	slog.Info("fallback_image_missing", "prefix", prefix)
	return Source{}
}
