package payload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/mounts"
)

type fakeMounter struct {
	mounted []string
	fail    error
}

func (f *fakeMounter) Mount(device, target, fstype string) error {
	if f.fail != nil {
		return f.fail
	}
	f.mounted = append(f.mounted, target)
	return nil
}

func (f *fakeMounter) Unmount(target string) error { return nil }

type fixture struct {
	systemMount string
	rootfsDev   string
	rootfsMount string
	mounter     *fakeMounter
	locator     *Locator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		systemMount: filepath.Join(dir, "system_mnt"),
		rootfsDev:   filepath.Join(dir, "droidian--rootfs"),
		rootfsMount: filepath.Join(dir, "rootfs_mnt"),
		mounter:     &fakeMounter{},
	}
	if err := os.MkdirAll(f.systemMount, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	f.locator = NewLocator(mounts.NewRegistry(f.mounter), f.rootfsDev, f.rootfsMount, "ext4")
	return f
}

func (f *fixture) addSystemFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(f.systemMount, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func (f *fixture) addRootfsBootFile(t *testing.T, name string) string {
	t.Helper()
	bootDir := filepath.Join(f.rootfsMount, "boot")
	if err := os.MkdirAll(bootDir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	path := filepath.Join(bootDir, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func (f *fixture) addRootfsDevice(t *testing.T) {
	t.Helper()
	if err := os.WriteFile(f.rootfsDev, nil, 0644); err != nil {
		t.Fatalf("failed to create device: %v", err)
	}
}

func TestLocateEverythingOnSystem(t *testing.T) {
	f := newFixture(t)
	archive := f.addSystemFile(t, "userdata.img.tar.gz")
	boot := f.addSystemFile(t, "boot.img")
	dtbo := f.addSystemFile(t, "dtbo.img")

	set, err := f.locator.Locate(f.systemMount)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}

	if set.Userdata.Path != archive || set.Userdata.Origin != OriginSystem {
		t.Errorf("unexpected userdata source: %+v", set.Userdata)
	}
	if set.Boot.Path != boot || set.Boot.Origin != OriginSystem {
		t.Errorf("unexpected boot source: %+v", set.Boot)
	}
	if set.Dtbo.Path != dtbo || set.Dtbo.Origin != OriginSystem {
		t.Errorf("unexpected dtbo source: %+v", set.Dtbo)
	}
	if set.UsesFallback() {
		t.Error("fallback should not be mounted when system has everything")
	}
	if len(f.mounter.mounted) != 0 {
		t.Errorf("unexpected mounts: %v", f.mounter.mounted)
	}
}

func TestLocateArchivePreference(t *testing.T) {
	f := newFixture(t)
	preferred := f.addSystemFile(t, "userdata.img.tar.gz")
	f.addSystemFile(t, "userdata-raw.img.tar.gz")
	f.addSystemFile(t, "boot.img")
	f.addSystemFile(t, "dtbo.img")

	set, err := f.locator.Locate(f.systemMount)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if set.Userdata.Path != preferred {
		t.Errorf("expected %q to win, got %q", preferred, set.Userdata.Path)
	}
}

func TestLocateRawArchiveAlone(t *testing.T) {
	f := newFixture(t)
	raw := f.addSystemFile(t, "userdata-raw.img.tar.gz")
	f.addSystemFile(t, "boot.img")
	f.addSystemFile(t, "dtbo.img")

	set, err := f.locator.Locate(f.systemMount)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if set.Userdata.Path != raw {
		t.Errorf("expected raw archive %q, got %q", raw, set.Userdata.Path)
	}
}

func TestLocateMissingArchive(t *testing.T) {
	f := newFixture(t)
	f.addSystemFile(t, "boot.img")
	f.addSystemFile(t, "dtbo.img")

	_, err := f.locator.Locate(f.systemMount)
	if !errors.Is(err, ErrUserdataMissing) {
		t.Fatalf("expected ErrUserdataMissing, got %v", err)
	}
}

func TestLocateFallbackByPrefix(t *testing.T) {
	f := newFixture(t)
	f.addSystemFile(t, "userdata.img.tar.gz")
	f.addRootfsDevice(t)
	f.addRootfsBootFile(t, "initrd.img-5.10.192")
	f.addRootfsBootFile(t, "config-5.10.192")
	boot := f.addRootfsBootFile(t, "boot.img-5.10.192")
	dtbo := f.addRootfsBootFile(t, "dtbo.img-5.10.192")

	set, err := f.locator.Locate(f.systemMount)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}

	if set.Boot.Path != boot || set.Boot.Origin != OriginRootfs {
		t.Errorf("unexpected boot source: %+v", set.Boot)
	}
	if set.Dtbo.Path != dtbo || set.Dtbo.Origin != OriginRootfs {
		t.Errorf("unexpected dtbo source: %+v", set.Dtbo)
	}
	if set.FallbackMount != f.rootfsMount {
		t.Errorf("expected fallback mount %q, got %q", f.rootfsMount, set.FallbackMount)
	}
	if len(f.mounter.mounted) != 1 {
		t.Errorf("expected one mount, got %v", f.mounter.mounted)
	}
}

func TestLocateMixedOrigins(t *testing.T) {
	f := newFixture(t)
	f.addSystemFile(t, "userdata.img.tar.gz")
	boot := f.addSystemFile(t, "boot.img")
	f.addRootfsDevice(t)
	dtbo := f.addRootfsBootFile(t, "dtbo.img-6.1.0")

	set, err := f.locator.Locate(f.systemMount)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if set.Boot.Path != boot || set.Boot.Origin != OriginSystem {
		t.Errorf("unexpected boot source: %+v", set.Boot)
	}
	if set.Dtbo.Path != dtbo || set.Dtbo.Origin != OriginRootfs {
		t.Errorf("unexpected dtbo source: %+v", set.Dtbo)
	}
}

func TestLocateRootfsDeviceAbsent(t *testing.T) {
	f := newFixture(t)
	f.addSystemFile(t, "userdata.img.tar.gz")

	set, err := f.locator.Locate(f.systemMount)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if set.Boot.Origin != OriginNone || set.Dtbo.Origin != OriginNone {
		t.Errorf("expected no boot images, got %+v", set)
	}
	if set.UsesFallback() {
		t.Error("fallback should not be recorded without a device")
	}
	if len(f.mounter.mounted) != 0 {
		t.Errorf("unexpected mounts: %v", f.mounter.mounted)
	}
}

func TestLocateFallbackMountFailure(t *testing.T) {
	f := newFixture(t)
	f.addSystemFile(t, "userdata.img.tar.gz")
	f.addRootfsDevice(t)
	f.mounter.fail = errors.New("bad superblock")

	set, err := f.locator.Locate(f.systemMount)
	if err != nil {
		t.Fatalf("fallback mount failure must not be fatal: %v", err)
	}
	if set.UsesFallback() {
		t.Error("failed fallback mount should not be recorded")
	}
	if set.Boot.Origin != OriginNone || set.Dtbo.Origin != OriginNone {
		t.Errorf("expected no boot images, got %+v", set)
	}
}

func TestLocateFallbackWithoutBootDir(t *testing.T) {
	f := newFixture(t)
	f.addSystemFile(t, "userdata.img.tar.gz")
	f.addRootfsDevice(t)

	set, err := f.locator.Locate(f.systemMount)
	if err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	// The volume was mounted before the scan could fail, so the caller
	// still has to release it.
	if set.FallbackMount != f.rootfsMount {
		t.Errorf("expected fallback mount to be recorded, got %q", set.FallbackMount)
	}
	if set.Boot.Origin != OriginNone {
		t.Errorf("expected no boot image, got %+v", set.Boot)
	}
}
