//go:build !linux
// +build !linux

package mounts

import (
	"fmt"
	"runtime"
)

// StubMounter rejects every operation on platforms without the mount syscall.
type StubMounter struct{}

func NewMounter() Mounter {
	return &StubMounter{}
}

func (m *StubMounter) Mount(device, target, fstype string) error {
	return fmt.Errorf("mounting is not supported on %s", runtime.GOOS)
}

func (m *StubMounter) Unmount(target string) error {
	return fmt.Errorf("unmounting is not supported on %s", runtime.GOOS)
}
