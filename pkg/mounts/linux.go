//go:build linux
// +build linux

package mounts

import (
	"log/slog"

	"golang.org/x/sys/unix"

	"github.com/furilabs/furios-reset/pkg/errors"
)

// LinuxMounter mounts filesystems with the mount syscall.
type LinuxMounter struct{}

func NewMounter() Mounter {
	return &LinuxMounter{}
}

func (m *LinuxMounter) Mount(device, target, fstype string) error {
	slog.Info("mount_device", "device", device, "target", target, "fstype", fstype)

	if err := unix.Mount(device, target, fstype, 0, ""); err != nil {
		slog.Error("mount_failed", "device", device, "target", target, "error", err)
		return errors.Wrapf(err, "mount %s on %s", device, target)
	}
	return nil
}

func (m *LinuxMounter) Unmount(target string) error {
	slog.Info("unmount_device", "target", target)

	if err := unix.Unmount(target, 0); err != nil {
		slog.Warn("unmount_failed", "target", target, "error", err)
		return errors.Wrapf(err, "unmount %s", target)
	}
	return nil
}
