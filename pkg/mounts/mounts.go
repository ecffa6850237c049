// Package mounts provides scratch filesystem mounts with tracked release.
//
// A reset takes short-lived read-only style mounts (the system partition, the
// rootfs volume) purely to read payload images from them. The Registry
// records every mount taken so the orchestrator can release all of them on
// every exit path, including interrupts.
package mounts

import (
	"os"
	"sync"

	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/security"
)

// Mounter mounts and unmounts filesystems.
type Mounter interface {
	Mount(device, target, fstype string) error
	Unmount(target string) error
}

// Registry tracks every scratch mount taken during a run so all of them can
// be released regardless of how the run ends.
type Registry struct {
	mounter Mounter

	mu     sync.Mutex
	active []string
}

func NewRegistry(mounter Mounter) *Registry {
	return &Registry{mounter: mounter}
}

// Mount creates the target directory if needed, mounts the device on it and
// records the target for later release. A failed mount is not recorded.
func (r *Registry) Mount(device, target, fstype string) error {
	if err := security.ValidateMountPoint(target); err != nil {
		return err
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		return errors.Wrap(err, "create mount point")
	}
	if err := r.mounter.Mount(device, target, fstype); err != nil {
		return err
	}

	r.mu.Lock()
	r.active = append(r.active, target)
	r.mu.Unlock()
	return nil
}

// Release unmounts a single tracked target. Releasing a target that is not
// tracked is a no-op.
func (r *Registry) Release(target string) error {
	r.mu.Lock()
	idx := -1
	for i, t := range r.active {
		if t == target {
			idx = i
			break
		}
	}
	if idx == -1 {
		r.mu.Unlock()
		return nil
	}
	r.active = append(r.active[:idx], r.active[idx+1:]...)
	r.mu.Unlock()

	return r.mounter.Unmount(target)
}

// ReleaseAll unmounts every tracked target in reverse mount order. It keeps
// going past failures and returns whatever errors occurred. Calling it again
// after a full release is a no-op.
func (r *Registry) ReleaseAll() []error {
	r.mu.Lock()
	targets := r.active
	r.active = nil
	r.mu.Unlock()

	var errs []error
	for i := len(targets) - 1; i >= 0; i-- {
		if err := r.mounter.Unmount(targets[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Active returns the currently tracked targets in mount order.
func (r *Registry) Active() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.active...)
}
