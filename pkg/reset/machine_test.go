package reset

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/flash"
	"github.com/furilabs/furios-reset/pkg/luks"
	"github.com/furilabs/furios-reset/pkg/mounts"
	"github.com/furilabs/furios-reset/pkg/partitions"
	"github.com/furilabs/furios-reset/pkg/payload"
	"github.com/furilabs/furios-reset/pkg/ui"
)

type fakeProber struct {
	topo *partitions.Topology
	err  error
}

func (f *fakeProber) Probe(ctx context.Context) (*partitions.Topology, error) {
	return f.topo, f.err
}

type fakeGate struct {
	state     luks.State
	probeErr  error
	submitErr []error
	remaining int
	submitted []string
}

func (f *fakeGate) Probe() (luks.State, error) {
	return f.state, f.probeErr
}

func (f *fakeGate) SubmitPassphrase(ctx context.Context, passphrase string) error {
	f.submitted = append(f.submitted, passphrase)
	if len(f.submitErr) == 0 {
		return nil
	}
	err := f.submitErr[0]
	f.submitErr = f.submitErr[1:]
	if errors.Is(err, luks.ErrBadPassphrase) || errors.Is(err, luks.ErrLockedOut) {
		f.remaining--
	}
	return err
}

func (f *fakeGate) Remaining() int {
	if f.remaining < 0 {
		return 0
	}
	return f.remaining
}

type fakeUI struct {
	passwords []string
	errs      []error
	progress  []string
	outcomes  []string
}

func (f *fakeUI) RequestPassword(ctx context.Context, attemptsRemaining int) (string, error) {
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return "", err
		}
	}
	if len(f.passwords) == 0 {
		return "", ui.ErrNoPrompt
	}
	pass := f.passwords[0]
	f.passwords = f.passwords[1:]
	return pass, nil
}

func (f *fakeUI) ShowProgress(message string) { f.progress = append(f.progress, message) }
func (f *fakeUI) ShowOutcome(message string)  { f.outcomes = append(f.outcomes, message) }

type fakeLocator struct {
	set *payload.Set
	err error
}

func (f *fakeLocator) Locate(systemMount string) (*payload.Set, error) {
	return f.set, f.err
}

type fakeFlasher struct {
	report *flash.Report
	err    error
	suffix string
	called bool
}

func (f *fakeFlasher) Flash(ctx context.Context, set *payload.Set, slotSuffix string) (*flash.Report, error) {
	f.called = true
	f.suffix = slotSuffix
	if f.report == nil {
		f.report = &flash.Report{}
	}
	return f.report, f.err
}

type fakeMounter struct {
	unmounted []string
}

func (f *fakeMounter) Mount(device, target, fstype string) error { return nil }
func (f *fakeMounter) Unmount(target string) error {
	f.unmounted = append(f.unmounted, target)
	return nil
}

type fixture struct {
	prober  *fakeProber
	gate    *fakeGate
	locator *fakeLocator
	flasher *fakeFlasher
	mounter *fakeMounter
	scratch *mounts.Registry
	term    *fakeUI
	machine *Machine
}

func newFixture() *fixture {
	f := &fixture{
		prober:  &fakeProber{},
		gate:    &fakeGate{remaining: 3},
		locator: &fakeLocator{},
		flasher: &fakeFlasher{},
		mounter: &fakeMounter{},
		term:    &fakeUI{},
	}
	f.scratch = mounts.NewRegistry(f.mounter)
	f.machine = NewMachine(f.prober, f.gate, f.locator, f.flasher, f.scratch, f.term)
	return f
}

func TestProbeRecordsTopology(t *testing.T) {
	f := newFixture()
	f.prober.topo = &partitions.Topology{
		SuperDetected: true,
		Device:        "/dev/mapper/dynpart-system_a",
		MountPoint:    "/system_mnt",
	}

	resp := &Response{}
	if err := f.machine.probe(context.Background(), resp); err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if !resp.SuperDetected || resp.SlotDevice != "/dev/mapper/dynpart-system_a" || resp.SystemMount != "/system_mnt" {
		t.Errorf("topology not recorded: %+v", resp)
	}
}

func TestProbeFailure(t *testing.T) {
	f := newFixture()
	f.prober.err = partitions.ErrNoSystemSlot

	if err := f.machine.probe(context.Background(), &Response{}); err == nil {
		t.Fatal("expected error")
	}
	if f.machine.reason != ReasonTopology {
		t.Errorf("expected reason %q, got %q", ReasonTopology, f.machine.reason)
	}
	if !errors.Is(f.machine.failure, partitions.ErrNoSystemSlot) {
		t.Errorf("expected recorded failure to wrap ErrNoSystemSlot, got %v", f.machine.failure)
	}
}

func TestCheckEncryptionRecordsState(t *testing.T) {
	f := newFixture()
	f.gate.state = luks.Locked

	resp := &Response{}
	if err := f.machine.checkEncryption(resp); err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if resp.Encryption != string(luks.Locked) {
		t.Errorf("expected %q, got %q", luks.Locked, resp.Encryption)
	}
}

func TestCheckEncryptionUnreadableVolume(t *testing.T) {
	f := newFixture()
	f.gate.probeErr = errors.New("open reserved volume: no such file")

	if err := f.machine.checkEncryption(&Response{}); err == nil {
		t.Fatal("expected error")
	}
	if f.machine.reason != ReasonEncryption {
		t.Errorf("expected reason %q, got %q", ReasonEncryption, f.machine.reason)
	}
}

func TestAwaitPasswordSkipsUnencrypted(t *testing.T) {
	f := newFixture()

	resp := &Response{Encryption: string(luks.NotEncrypted)}
	if err := f.machine.awaitPassword(context.Background(), resp); err != nil {
		t.Fatalf("await failed: %v", err)
	}
	if len(f.gate.submitted) != 0 {
		t.Errorf("no passphrase should be submitted, got %v", f.gate.submitted)
	}
}

func TestAwaitPasswordUnlocksAfterRetry(t *testing.T) {
	f := newFixture()
	f.term.passwords = []string{"wrong", "right"}
	f.gate.submitErr = []error{luks.ErrBadPassphrase, nil}

	resp := &Response{Encryption: string(luks.Locked)}
	if err := f.machine.awaitPassword(context.Background(), resp); err != nil {
		t.Fatalf("await failed: %v", err)
	}
	if resp.Encryption != string(luks.Unlocked) {
		t.Errorf("expected unlocked, got %q", resp.Encryption)
	}
	if len(f.gate.submitted) != 2 || f.gate.submitted[1] != "right" {
		t.Errorf("unexpected submissions: %v", f.gate.submitted)
	}

	found := false
	for _, msg := range f.term.progress {
		if msg == "Incorrect password." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected rejection notice, got %v", f.term.progress)
	}
}

func TestAwaitPasswordLockout(t *testing.T) {
	f := newFixture()
	f.term.passwords = []string{"a", "b", "c"}
	f.gate.submitErr = []error{luks.ErrBadPassphrase, luks.ErrBadPassphrase, luks.ErrLockedOut}

	err := f.machine.awaitPassword(context.Background(), &Response{Encryption: string(luks.Locked)})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(f.machine.failure, luks.ErrLockedOut) {
		t.Errorf("expected lockout failure, got %v", f.machine.failure)
	}
}

func TestAwaitPasswordNoPrompt(t *testing.T) {
	f := newFixture()

	// A prompt that cannot ask at all must end the run without flashing.
	err := f.machine.awaitPassword(context.Background(), &Response{Encryption: string(luks.Locked)})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(f.machine.failure, ErrPasswordRequired) {
		t.Errorf("expected ErrPasswordRequired, got %v", f.machine.failure)
	}
	if len(f.gate.submitted) != 0 {
		t.Errorf("no passphrase should be submitted, got %v", f.gate.submitted)
	}
}

func TestAwaitPasswordCancelled(t *testing.T) {
	f := newFixture()
	f.term.errs = []error{context.Canceled}

	err := f.machine.awaitPassword(context.Background(), &Response{Encryption: string(luks.Locked)})
	if err == nil {
		t.Fatal("expected error")
	}
	if f.machine.reason != ReasonInterrupted {
		t.Errorf("expected reason %q, got %q", ReasonInterrupted, f.machine.reason)
	}
}

func TestLocateRecordsPayload(t *testing.T) {
	f := newFixture()
	f.locator.set = &payload.Set{
		Userdata: payload.Source{Path: "/system_mnt/userdata.img.tar.gz", Origin: payload.OriginSystem},
		Boot:     payload.Source{Path: "/system_mnt/boot.img", Origin: payload.OriginSystem},
	}

	resp := &Response{SystemMount: "/system_mnt"}
	if err := f.machine.locate(resp); err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if resp.UserdataArchive != "/system_mnt/userdata.img.tar.gz" {
		t.Errorf("archive not recorded: %+v", resp)
	}
	if resp.BootImage != "/system_mnt/boot.img" || resp.DtboImage != "" {
		t.Errorf("images not recorded: %+v", resp)
	}

	found := false
	for _, msg := range f.term.progress {
		if msg == "Resetting device..." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected progress notice, got %v", f.term.progress)
	}
}

func TestLocateFailure(t *testing.T) {
	f := newFixture()
	f.locator.err = payload.ErrUserdataMissing

	if err := f.machine.locate(&Response{}); err == nil {
		t.Fatal("expected error")
	}
	if f.machine.reason != ReasonExtraction {
		t.Errorf("expected reason %q, got %q", ReasonExtraction, f.machine.reason)
	}
	if !errors.Is(f.machine.failure, payload.ErrUserdataMissing) {
		t.Errorf("expected failure to wrap ErrUserdataMissing, got %v", f.machine.failure)
	}
}

func TestLocateReleasesIdleFallback(t *testing.T) {
	f := newFixture()
	fallback := filepath.Join(t.TempDir(), "rootfs_mnt")
	if err := f.scratch.Mount("/dev/rootfs", fallback, "ext4"); err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	// Fallback was mounted during the search but yielded nothing.
	f.locator.set = &payload.Set{
		Userdata:      payload.Source{Path: "/system_mnt/userdata.img.tar.gz", Origin: payload.OriginSystem},
		Boot:          payload.Source{Path: "/system_mnt/boot.img", Origin: payload.OriginSystem},
		Dtbo:          payload.Source{Path: "/system_mnt/dtbo.img", Origin: payload.OriginSystem},
		FallbackMount: fallback,
	}

	if err := f.machine.locate(&Response{SystemMount: "/system_mnt"}); err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if len(f.scratch.Active()) != 0 {
		t.Errorf("idle fallback should be released, still active: %v", f.scratch.Active())
	}
}

func TestLocateKeepsFallbackInUse(t *testing.T) {
	f := newFixture()
	fallback := filepath.Join(t.TempDir(), "rootfs_mnt")
	if err := f.scratch.Mount("/dev/rootfs", fallback, "ext4"); err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	f.locator.set = &payload.Set{
		Userdata:      payload.Source{Path: "/system_mnt/userdata.img.tar.gz", Origin: payload.OriginSystem},
		Boot:          payload.Source{Path: fallback + "/boot/boot.img-5.10", Origin: payload.OriginRootfs},
		FallbackMount: fallback,
	}

	if err := f.machine.locate(&Response{SystemMount: "/system_mnt"}); err != nil {
		t.Fatalf("locate failed: %v", err)
	}
	if len(f.scratch.Active()) != 1 {
		t.Errorf("fallback holding a payload image must stay mounted: %v", f.scratch.Active())
	}
}

func TestFlashPayload(t *testing.T) {
	f := newFixture()
	f.machine.images = &payload.Set{}
	f.flasher.report = &flash.Report{Warnings: []string{"no dtbo image found"}}

	resp := &Response{}
	if err := f.machine.flashPayload(context.Background(), resp, "_b"); err != nil {
		t.Fatalf("flash failed: %v", err)
	}
	if f.flasher.suffix != "_b" {
		t.Errorf("expected slot suffix to reach the flasher, got %q", f.flasher.suffix)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0] != "no dtbo image found" {
		t.Errorf("warnings not propagated: %v", resp.Warnings)
	}
}

func TestFlashPayloadFailure(t *testing.T) {
	f := newFixture()
	f.machine.images = &payload.Set{}
	f.flasher.err = errors.New("extract userdata archive: exit status 1")

	if err := f.machine.flashPayload(context.Background(), &Response{}, "_a"); err == nil {
		t.Fatal("expected error")
	}
	if f.machine.reason != ReasonExtraction {
		t.Errorf("expected reason %q, got %q", ReasonExtraction, f.machine.reason)
	}
}

func TestFinalizeReleasesEverything(t *testing.T) {
	f := newFixture()
	dir := t.TempDir()
	system := filepath.Join(dir, "system_mnt")
	rootfs := filepath.Join(dir, "rootfs_mnt")
	f.scratch.Mount("/dev/a", system, "ext4")
	f.scratch.Mount("/dev/b", rootfs, "ext4")

	resp := &Response{}
	f.machine.finalize(resp)

	if resp.Status != StatusSuccess {
		t.Errorf("expected %q, got %q", StatusSuccess, resp.Status)
	}
	if len(f.scratch.Active()) != 0 {
		t.Errorf("all scratch mounts must be released: %v", f.scratch.Active())
	}
	// Reverse mount order: the fallback goes before the system slot.
	if len(f.mounter.unmounted) != 2 || f.mounter.unmounted[0] != rootfs || f.mounter.unmounted[1] != system {
		t.Errorf("unexpected unmount order: %v", f.mounter.unmounted)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*fixture)
		resp           *Response
		waitErr        error
		ctxCancelled   bool
		expectedStatus string
		expectedReason string
	}{
		{
			name:           "success",
			resp:           &Response{Status: StatusSuccess},
			expectedStatus: StatusSuccess,
		},
		{
			name: "lockout",
			setup: func(f *fixture) {
				f.machine.fail(ReasonEncryption, luks.ErrLockedOut)
			},
			resp:           &Response{},
			waitErr:        errors.New("fsm aborted"),
			expectedStatus: StatusLockedOut,
			expectedReason: ReasonEncryption,
		},
		{
			name: "needs password",
			setup: func(f *fixture) {
				f.machine.fail(ReasonEncryption, ErrPasswordRequired)
			},
			resp:           &Response{},
			waitErr:        errors.New("fsm aborted"),
			expectedStatus: StatusNeedsPassword,
			expectedReason: ReasonEncryption,
		},
		{
			name: "topology failure",
			setup: func(f *fixture) {
				f.machine.fail(ReasonTopology, partitions.ErrNoSystemSlot)
			},
			resp:           &Response{},
			waitErr:        errors.New("fsm aborted"),
			expectedStatus: StatusFailure,
			expectedReason: ReasonTopology,
		},
		{
			name:           "framework error without record",
			resp:           &Response{},
			waitErr:        errors.New("fsm wait failed"),
			expectedStatus: StatusFailure,
			expectedReason: ReasonInternal,
		},
		{
			name:           "interrupted",
			resp:           &Response{},
			waitErr:        errors.New("fsm aborted"),
			ctxCancelled:   true,
			expectedStatus: StatusFailure,
			expectedReason: ReasonInterrupted,
		},
	}

	for _, tt := range tests {
		f := newFixture()
		if tt.setup != nil {
			tt.setup(f)
		}

		ctx := context.Background()
		if tt.ctxCancelled {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			ctx = cancelled
		}

		out := f.machine.Outcome(ctx, tt.resp, tt.waitErr)
		if out.Status != tt.expectedStatus {
			t.Errorf("%s: expected status %q, got %q", tt.name, tt.expectedStatus, out.Status)
		}
		if out.Reason != tt.expectedReason {
			t.Errorf("%s: expected reason %q, got %q", tt.name, tt.expectedReason, out.Reason)
		}
	}
}

func TestOutcomeCarriesWarnings(t *testing.T) {
	f := newFixture()
	resp := &Response{Status: StatusSuccess, Warnings: []string{"no boot image found"}}

	out := f.machine.Outcome(context.Background(), resp, nil)
	if len(out.Warnings) != 1 {
		t.Errorf("warnings should survive into the outcome: %v", out.Warnings)
	}
	if out.Message() != "Successfully reset to factory settings" {
		t.Errorf("unexpected message: %q", out.Message())
	}
}

func TestOutcomeExitCodes(t *testing.T) {
	tests := []struct {
		status   string
		expected int
	}{
		{StatusSuccess, 0},
		{StatusFailure, 1},
		{StatusLockedOut, 2},
		{StatusNeedsPassword, 3},
	}

	for _, tt := range tests {
		out := &Outcome{Status: tt.status}
		if got := out.ExitCode(); got != tt.expected {
			t.Errorf("%s: expected exit code %d, got %d", tt.status, tt.expected, got)
		}
	}
}
