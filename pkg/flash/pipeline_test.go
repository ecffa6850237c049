package flash

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/furilabs/furios-reset/pkg/payload"
	"github.com/furilabs/furios-reset/pkg/subprocess"
)

type fakeRunner struct {
	calls []string
	errs  map[string]error
}

func (f *fakeRunner) run(cmd string) error {
	f.calls = append(f.calls, cmd)
	return f.errs[cmd]
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	return f.run(subprocess.Cmd{Name: name, Args: args}.String())
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	return "", f.run(subprocess.Cmd{Name: name, Args: args}.String())
}

func (f *fakeRunner) RunInput(ctx context.Context, stdin io.Reader, name string, args ...string) error {
	return f.run(subprocess.Cmd{Name: name, Args: args}.String())
}

func (f *fakeRunner) Pipeline(ctx context.Context, src, dst subprocess.Cmd) error {
	return f.run(src.String() + " | " + dst.String())
}

var _ subprocess.Runner = (*fakeRunner)(nil)

type fakeDropper struct {
	drops int
	err   error
}

func (f *fakeDropper) Drop() error {
	f.drops++
	return f.err
}

func fullSet() *payload.Set {
	return &payload.Set{
		Userdata: payload.Source{Path: "/system_mnt/userdata.img.tar.gz", Origin: payload.OriginSystem},
		Boot:     payload.Source{Path: "/system_mnt/boot.img", Origin: payload.OriginSystem},
		Dtbo:     payload.Source{Path: "/system_mnt/dtbo.img", Origin: payload.OriginSystem},
	}
}

func TestFlashFullSet(t *testing.T) {
	runner := &fakeRunner{}
	dropper := &fakeDropper{}
	p := NewPipeline(runner, dropper, "/dev/disk/by-partlabel", "4M")

	report, err := p.Flash(context.Background(), fullSet(), "_a")
	if err != nil {
		t.Fatalf("flash failed: %v", err)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}

	expected := []string{
		"tar -xzOf /system_mnt/userdata.img.tar.gz | dd of=/dev/disk/by-partlabel/userdata bs=4M",
		"dd if=/system_mnt/boot.img of=/dev/disk/by-partlabel/boot_a bs=4M",
		"dd if=/system_mnt/dtbo.img of=/dev/disk/by-partlabel/dtbo_a bs=4M",
	}
	if len(runner.calls) != len(expected) {
		t.Fatalf("expected calls %v, got %v", expected, runner.calls)
	}
	for i := range expected {
		if runner.calls[i] != expected[i] {
			t.Errorf("call %d: expected %q, got %q", i, expected[i], runner.calls[i])
		}
	}

	if dropper.drops != 2 {
		t.Errorf("expected cache drop before and after, got %d drops", dropper.drops)
	}
}

func TestFlashEmptySlotSuffix(t *testing.T) {
	runner := &fakeRunner{}
	p := NewPipeline(runner, &fakeDropper{}, "/dev/disk/by-partlabel", "4M")

	if _, err := p.Flash(context.Background(), fullSet(), ""); err != nil {
		t.Fatalf("flash failed: %v", err)
	}

	want := "dd if=/system_mnt/boot.img of=/dev/disk/by-partlabel/boot bs=4M"
	found := false
	for _, call := range runner.calls {
		if call == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unsuffixed boot target, calls: %v", runner.calls)
	}
}

func TestFlashExtractionFailureStopsPipeline(t *testing.T) {
	extraction := "tar -xzOf /system_mnt/userdata.img.tar.gz | dd of=/dev/disk/by-partlabel/userdata bs=4M"
	runner := &fakeRunner{errs: map[string]error{extraction: errors.New("short write")}}
	dropper := &fakeDropper{}
	p := NewPipeline(runner, dropper, "/dev/disk/by-partlabel", "4M")

	_, err := p.Flash(context.Background(), fullSet(), "_a")
	if err == nil {
		t.Fatal("expected extraction failure to be fatal")
	}

	for _, call := range runner.calls {
		if strings.HasPrefix(call, "dd if=") {
			t.Errorf("no image may be flashed after a failed extraction: %v", runner.calls)
		}
	}
	if dropper.drops != 1 {
		t.Errorf("expected only the initial cache drop, got %d", dropper.drops)
	}
}

func TestFlashMissingImagesBecomeWarnings(t *testing.T) {
	runner := &fakeRunner{}
	p := NewPipeline(runner, &fakeDropper{}, "/dev/disk/by-partlabel", "4M")

	set := fullSet()
	set.Boot = payload.Source{}
	set.Dtbo = payload.Source{}

	report, err := p.Flash(context.Background(), set, "_a")
	if err != nil {
		t.Fatalf("flash failed: %v", err)
	}
	if len(report.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", report.Warnings)
	}
	if len(runner.calls) != 1 {
		t.Errorf("expected only the extraction call, got %v", runner.calls)
	}
}

func TestFlashImageFailureBecomesWarning(t *testing.T) {
	failing := "dd if=/system_mnt/boot.img of=/dev/disk/by-partlabel/boot_b bs=4M"
	runner := &fakeRunner{errs: map[string]error{failing: errors.New("write error")}}
	p := NewPipeline(runner, &fakeDropper{}, "/dev/disk/by-partlabel", "4M")

	report, err := p.Flash(context.Background(), fullSet(), "_b")
	if err != nil {
		t.Fatalf("boot image failure must not fail the flash: %v", err)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", report.Warnings)
	}
	if !strings.Contains(report.Warnings[0], "boot_b") {
		t.Errorf("warning should name the target: %q", report.Warnings[0])
	}

	// The dtbo image is still flashed after a boot failure.
	want := "dd if=/system_mnt/dtbo.img of=/dev/disk/by-partlabel/dtbo_b bs=4M"
	found := false
	for _, call := range runner.calls {
		if call == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected dtbo flash to proceed, calls: %v", runner.calls)
	}
}

func TestFlashRejectsHostileSlotSuffix(t *testing.T) {
	runner := &fakeRunner{}
	p := NewPipeline(runner, &fakeDropper{}, "/dev/disk/by-partlabel", "4M")

	report, err := p.Flash(context.Background(), fullSet(), "/../x")
	if err != nil {
		t.Fatalf("flash failed: %v", err)
	}
	if len(report.Warnings) != 2 {
		t.Fatalf("expected boot and dtbo to be refused, got %v", report.Warnings)
	}
	for _, call := range runner.calls {
		if strings.HasPrefix(call, "dd if=") {
			t.Errorf("no image write may use an invalid label: %v", runner.calls)
		}
	}
}

func TestFlashCacheDropFailureIsAdvisory(t *testing.T) {
	dropper := &fakeDropper{err: errors.New("permission denied")}
	p := NewPipeline(&fakeRunner{}, dropper, "/dev/disk/by-partlabel", "4M")

	report, err := p.Flash(context.Background(), fullSet(), "_a")
	if err != nil {
		t.Fatalf("cache drop failure must not fail the flash: %v", err)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("cache drop failures are logged, not reported: %v", report.Warnings)
	}
	if dropper.drops != 2 {
		t.Errorf("expected both drops to be attempted, got %d", dropper.drops)
	}
}
