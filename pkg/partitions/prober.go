// Package partitions probes the dynamic-partition topology and mounts the
// active system slot.
//
// Android-derived devices carry their logical partitions inside a single
// "super" partition. When the device-mapper nodes for those partitions are
// absent they are activated with parse-android-dynparts and dmsetup before
// the system slot can be mounted.
package partitions

import (
	"context"
	"log/slog"
	"os"

	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/mounts"
	"github.com/furilabs/furios-reset/pkg/subprocess"
)

// ErrNoSystemSlot reports that no system slot device exists after probing.
var ErrNoSystemSlot = errors.New("no system slot device found")

// Layout names the devices and mount point the prober works with.
type Layout struct {
	SuperDevice string
	SlotADevice string
	SlotBDevice string
	MountPoint  string
	Fstype      string
}

// Topology describes what a probe found and mounted.
type Topology struct {
	SuperDetected bool
	Device        string
	MountPoint    string
}

// Prober locates and mounts the system slot holding the payload images.
type Prober struct {
	runner   subprocess.Runner
	registry *mounts.Registry
	layout   Layout
}

func NewProber(runner subprocess.Runner, registry *mounts.Registry, layout Layout) *Prober {
	return &Prober{runner: runner, registry: registry, layout: layout}
}

// Probe activates dynamic partitions when necessary and mounts the preferred
// system slot. Activation failures are advisory; only the absence of a
// mountable slot device, or a failed mount, is fatal.
func (p *Prober) Probe(ctx context.Context) (*Topology, error) {
	topo := &Topology{MountPoint: p.layout.MountPoint}

	topo.SuperDetected = exists(p.layout.SuperDevice)
	if topo.SuperDetected && !exists(p.layout.SlotADevice) && !exists(p.layout.SlotBDevice) {
		p.activate(ctx)
	}

	switch {
	case exists(p.layout.SlotADevice):
		topo.Device = p.layout.SlotADevice
	case exists(p.layout.SlotBDevice):
		topo.Device = p.layout.SlotBDevice
	default:
		return nil, ErrNoSystemSlot
	}

	slog.Info("system_slot_selected",
		"device", topo.Device,
		"super_detected", topo.SuperDetected)

	if err := p.registry.Mount(topo.Device, p.layout.MountPoint, p.layout.Fstype); err != nil {
		return nil, errors.Wrap(err, "mount system slot")
	}
	return topo, nil
}

// activate maps the super partition's contents through the device mapper.
// Both steps are best-effort: the slot checks afterwards decide whether the
// probe can continue.
func (p *Prober) activate(ctx context.Context) {
	slog.Info("dynamic_partitions_activate", "super", p.layout.SuperDevice)

	concise, err := p.runner.Output(ctx, "parse-android-dynparts", p.layout.SuperDevice)
	if err != nil {
		slog.Warn("dynpart_parse_failed", "super", p.layout.SuperDevice, "error", err)
		return
	}
	if err := p.runner.Run(ctx, "dmsetup", "create", "--concise", concise); err != nil {
		slog.Warn("dmsetup_create_failed", "error", err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
