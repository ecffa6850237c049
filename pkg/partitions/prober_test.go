package partitions

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/mounts"
	"github.com/furilabs/furios-reset/pkg/subprocess"
)

type fakeRunner struct {
	calls   []string
	outputs map[string]string
	errs    map[string]error
	onRun   func(name string, args []string)
}

func (f *fakeRunner) record(name string, args []string) {
	f.calls = append(f.calls, subprocess.Cmd{Name: name, Args: args}.String())
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.record(name, args)
	if f.onRun != nil {
		f.onRun(name, args)
	}
	return f.errs[name]
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	f.record(name, args)
	return f.outputs[name], f.errs[name]
}

func (f *fakeRunner) RunInput(ctx context.Context, stdin io.Reader, name string, args ...string) error {
	f.record(name, args)
	return f.errs[name]
}

func (f *fakeRunner) Pipeline(ctx context.Context, src, dst subprocess.Cmd) error {
	f.record(src.Name, src.Args)
	f.record(dst.Name, dst.Args)
	if err := f.errs[src.Name]; err != nil {
		return err
	}
	return f.errs[dst.Name]
}

var _ subprocess.Runner = (*fakeRunner)(nil)

type fakeMounter struct {
	mounted []string
	failAll error
}

func (f *fakeMounter) Mount(device, target, fstype string) error {
	if f.failAll != nil {
		return f.failAll
	}
	f.mounted = append(f.mounted, device+" on "+target)
	return nil
}

func (f *fakeMounter) Unmount(target string) error { return nil }

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func testLayout(dir string) Layout {
	return Layout{
		SuperDevice: filepath.Join(dir, "super"),
		SlotADevice: filepath.Join(dir, "dynpart-system_a"),
		SlotBDevice: filepath.Join(dir, "dynpart-system_b"),
		MountPoint:  filepath.Join(dir, "system_mnt"),
		Fstype:      "ext4",
	}
}

func TestProbePrefersSlotA(t *testing.T) {
	dir := t.TempDir()
	layout := testLayout(dir)
	touch(t, layout.SuperDevice)
	touch(t, layout.SlotADevice)
	touch(t, layout.SlotBDevice)

	runner := &fakeRunner{}
	mounter := &fakeMounter{}
	p := NewProber(runner, mounts.NewRegistry(mounter), layout)

	topo, err := p.Probe(context.Background())
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if topo.Device != layout.SlotADevice {
		t.Errorf("expected slot A device %q, got %q", layout.SlotADevice, topo.Device)
	}
	if !topo.SuperDetected {
		t.Error("expected super partition to be detected")
	}
	if len(runner.calls) != 0 {
		t.Errorf("no activation expected when mappers exist, got %v", runner.calls)
	}
	if len(mounter.mounted) != 1 {
		t.Errorf("expected one mount, got %v", mounter.mounted)
	}
}

func TestProbeWithoutSuperPartition(t *testing.T) {
	dir := t.TempDir()
	layout := testLayout(dir)
	touch(t, layout.SlotADevice)

	runner := &fakeRunner{}
	mounter := &fakeMounter{}
	p := NewProber(runner, mounts.NewRegistry(mounter), layout)

	topo, err := p.Probe(context.Background())
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if topo.SuperDetected {
		t.Error("no super partition should be detected")
	}
	if topo.Device != layout.SlotADevice {
		t.Errorf("expected slot A device, got %q", topo.Device)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no activation expected without a super partition, got %v", runner.calls)
	}
	if len(mounter.mounted) != 1 {
		t.Errorf("expected one mount, got %v", mounter.mounted)
	}
}

func TestProbeFallsBackToSlotB(t *testing.T) {
	dir := t.TempDir()
	layout := testLayout(dir)
	touch(t, layout.SuperDevice)
	touch(t, layout.SlotBDevice)

	runner := &fakeRunner{}
	p := NewProber(runner, mounts.NewRegistry(&fakeMounter{}), layout)

	topo, err := p.Probe(context.Background())
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if topo.Device != layout.SlotBDevice {
		t.Errorf("expected slot B device %q, got %q", layout.SlotBDevice, topo.Device)
	}
	if len(runner.calls) != 0 {
		t.Errorf("one mapper present, activation should be skipped, got %v", runner.calls)
	}
}

func TestProbeActivatesDynamicPartitions(t *testing.T) {
	dir := t.TempDir()
	layout := testLayout(dir)
	touch(t, layout.SuperDevice)

	runner := &fakeRunner{
		outputs: map[string]string{"parse-android-dynparts": "dynpart-system_a,,1,normal"},
	}
	// dmsetup create is what makes the mapper node appear.
	runner.onRun = func(name string, args []string) {
		if name == "dmsetup" {
			touch(t, layout.SlotADevice)
		}
	}

	mounter := &fakeMounter{}
	p := NewProber(runner, mounts.NewRegistry(mounter), layout)

	topo, err := p.Probe(context.Background())
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if topo.Device != layout.SlotADevice {
		t.Errorf("expected slot A device after activation, got %q", topo.Device)
	}

	expected := []string{
		"parse-android-dynparts " + layout.SuperDevice,
		"dmsetup create --concise dynpart-system_a,,1,normal",
	}
	if len(runner.calls) != len(expected) {
		t.Fatalf("expected calls %v, got %v", expected, runner.calls)
	}
	for i := range expected {
		if runner.calls[i] != expected[i] {
			t.Errorf("call %d: expected %q, got %q", i, expected[i], runner.calls[i])
		}
	}
}

func TestProbeActivationFailureLeavesSlotCheckToDecide(t *testing.T) {
	dir := t.TempDir()
	layout := testLayout(dir)
	touch(t, layout.SuperDevice)

	runner := &fakeRunner{errs: map[string]error{"parse-android-dynparts": errors.New("no super header")}}
	p := NewProber(runner, mounts.NewRegistry(&fakeMounter{}), layout)

	_, err := p.Probe(context.Background())
	if !errors.Is(err, ErrNoSystemSlot) {
		t.Fatalf("expected ErrNoSystemSlot, got %v", err)
	}
	for _, call := range runner.calls {
		if strings.HasPrefix(call, "dmsetup") {
			t.Errorf("dmsetup should not run after a parse failure: %v", runner.calls)
		}
	}
}

func TestProbeNoDevices(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{}
	p := NewProber(runner, mounts.NewRegistry(&fakeMounter{}), testLayout(dir))

	_, err := p.Probe(context.Background())
	if !errors.Is(err, ErrNoSystemSlot) {
		t.Fatalf("expected ErrNoSystemSlot, got %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no super partition, activation should be skipped, got %v", runner.calls)
	}
}

func TestProbeMountFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	layout := testLayout(dir)
	touch(t, layout.SlotADevice)

	registry := mounts.NewRegistry(&fakeMounter{failAll: errors.New("bad superblock")})
	p := NewProber(&fakeRunner{}, registry, layout)

	_, err := p.Probe(context.Background())
	if err == nil {
		t.Fatal("expected mount failure to be fatal")
	}
	if len(registry.Active()) != 0 {
		t.Errorf("failed mount should leave nothing tracked, got %v", registry.Active())
	}
}
