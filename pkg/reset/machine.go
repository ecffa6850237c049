// Package reset implements the factory reset finite state machine workflow.
// It orchestrates topology probing, the encryption gate, payload location and
// flashing using the superfly/fsm library, and condenses however the run ends
// into exactly one verdict.
package reset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/superfly/fsm"

	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/flash"
	"github.com/furilabs/furios-reset/pkg/luks"
	"github.com/furilabs/furios-reset/pkg/mounts"
	"github.com/furilabs/furios-reset/pkg/partitions"
	"github.com/furilabs/furios-reset/pkg/payload"
	"github.com/furilabs/furios-reset/pkg/ui"
)

type topologyProber interface {
	Probe(ctx context.Context) (*partitions.Topology, error)
}

type encryptionGate interface {
	Probe() (luks.State, error)
	SubmitPassphrase(ctx context.Context, passphrase string) error
	Remaining() int
}

type imageLocator interface {
	Locate(systemMount string) (*payload.Set, error)
}

type flashPipeline interface {
	Flash(ctx context.Context, set *payload.Set, slotSuffix string) (*flash.Report, error)
}

// Machine holds dependencies for the reset transitions
type Machine struct {
	prober  topologyProber
	gate    encryptionGate
	locator imageLocator
	flasher flashPipeline
	scratch *mounts.Registry
	term    ui.UI

	images  *payload.Set
	failure error
	reason  string
}

// NewMachine creates a reset machine with dependencies
func NewMachine(
	prober topologyProber,
	gate encryptionGate,
	locator imageLocator,
	flasher flashPipeline,
	scratch *mounts.Registry,
	term ui.UI,
) *Machine {
	return &Machine{
		prober:  prober,
		gate:    gate,
		locator: locator,
		flasher: flasher,
		scratch: scratch,
		term:    term,
	}
}

// Register registers the factory reset FSM
func (m *Machine) Register(ctx context.Context, manager *fsm.Manager) (fsm.Start[Request, Response], fsm.Resume, error) {
	start, resume, err := fsm.Register[Request, Response](manager, "factory-reset").
		Start(StateProbingTopology, m.handleProbeTopology).
		To(StateCheckingEncryption, m.handleCheckEncryption).
		To(StateAwaitingPassword, m.handleAwaitPassword).
		To(StateLocatingImages, m.handleLocateImages).
		To(StateFlashing, m.handleFlash).
		To(StateFinalizing, m.handleFinalize).
		End(StateFailed).
		Build(ctx)

	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to register FSM")
	}

	return start, resume, nil
}

// guard suppresses the framework's retry behavior. A reset is never retried:
// re-running a state after a partial flash could write the device twice.
func guard(ctx context.Context) error {
	if retry := fsm.RetryFromContext(ctx); retry > 0 {
		return fsm.Abort(fmt.Errorf("retry %d suppressed", retry))
	}
	return nil
}

// fail records the verdict the run will end with and aborts the FSM. The
// recorded error, not the framework's, is what Outcome reads back.
func (m *Machine) fail(reason string, err error) error {
	m.reason = reason
	m.failure = err
	slog.Error("reset_failed", "reason", reason, "error", err)
	return fsm.Abort(err)
}

func (m *Machine) handleProbeTopology(ctx context.Context, req *fsm.Request[Request, Response]) (*fsm.Response[Response], error) {
	slog.Info("reset_state_probing_topology", "run_id", req.Msg.RunID)

	if err := guard(ctx); err != nil {
		return nil, err
	}

	resp := req.W.Msg
	if resp == nil {
		resp = &Response{}
	}
	resp.RunID = req.Msg.RunID

	if err := m.probe(ctx, resp); err != nil {
		return nil, err
	}

	return fsm.NewResponse(resp), nil
}

func (m *Machine) handleCheckEncryption(ctx context.Context, req *fsm.Request[Request, Response]) (*fsm.Response[Response], error) {
	slog.Info("reset_state_checking_encryption", "run_id", req.Msg.RunID)

	if err := guard(ctx); err != nil {
		return nil, err
	}

	resp := req.W.Msg
	if resp == nil {
		return nil, m.fail(ReasonInternal, errors.New("response not initialized"))
	}

	if err := m.checkEncryption(resp); err != nil {
		return nil, err
	}

	return fsm.NewResponse(resp), nil
}

func (m *Machine) handleAwaitPassword(ctx context.Context, req *fsm.Request[Request, Response]) (*fsm.Response[Response], error) {
	slog.Info("reset_state_awaiting_password", "run_id", req.Msg.RunID)

	if err := guard(ctx); err != nil {
		return nil, err
	}

	resp := req.W.Msg
	if resp == nil {
		return nil, m.fail(ReasonInternal, errors.New("response not initialized"))
	}

	if err := m.awaitPassword(ctx, resp); err != nil {
		return nil, err
	}

	return fsm.NewResponse(resp), nil
}

func (m *Machine) handleLocateImages(ctx context.Context, req *fsm.Request[Request, Response]) (*fsm.Response[Response], error) {
	slog.Info("reset_state_locating_images", "run_id", req.Msg.RunID)

	if err := guard(ctx); err != nil {
		return nil, err
	}

	resp := req.W.Msg
	if resp == nil {
		return nil, m.fail(ReasonInternal, errors.New("response not initialized"))
	}

	if err := m.locate(resp); err != nil {
		return nil, err
	}

	return fsm.NewResponse(resp), nil
}

func (m *Machine) handleFlash(ctx context.Context, req *fsm.Request[Request, Response]) (*fsm.Response[Response], error) {
	slog.Info("reset_state_flashing", "run_id", req.Msg.RunID)

	if err := guard(ctx); err != nil {
		return nil, err
	}

	resp := req.W.Msg
	if resp == nil {
		return nil, m.fail(ReasonInternal, errors.New("response not initialized"))
	}

	if err := m.flashPayload(ctx, resp, req.Msg.SlotSuffix); err != nil {
		return nil, err
	}

	return fsm.NewResponse(resp), nil
}

func (m *Machine) handleFinalize(ctx context.Context, req *fsm.Request[Request, Response]) (*fsm.Response[Response], error) {
	slog.Info("reset_state_finalizing", "run_id", req.Msg.RunID)

	if err := guard(ctx); err != nil {
		return nil, err
	}

	resp := req.W.Msg
	if resp == nil {
		return nil, m.fail(ReasonInternal, errors.New("response not initialized"))
	}

	m.finalize(resp)

	return fsm.NewResponse(resp), nil
}

// probe mounts the system slot the payload will be read from.
func (m *Machine) probe(ctx context.Context, resp *Response) error {
	topo, err := m.prober.Probe(ctx)
	if err != nil {
		return m.fail(ReasonTopology, errors.Wrap(err, "topology probe failed"))
	}

	resp.SuperDetected = topo.SuperDetected
	resp.SlotDevice = topo.Device
	resp.SystemMount = topo.MountPoint
	return nil
}

func (m *Machine) checkEncryption(resp *Response) error {
	state, err := m.gate.Probe()
	if err != nil {
		return m.fail(ReasonEncryption, errors.Wrap(err, "encryption probe failed"))
	}

	slog.Info("encryption_state", "state", state)
	resp.Encryption = string(state)
	return nil
}

// awaitPassword passes straight through unless the volume is locked.
func (m *Machine) awaitPassword(ctx context.Context, resp *Response) error {
	if luks.State(resp.Encryption) != luks.Locked {
		return nil
	}

	if err := m.promptUntilUnlocked(ctx); err != nil {
		return err
	}
	resp.Encryption = string(luks.Unlocked)
	return nil
}

// promptUntilUnlocked drives the prompt-and-verify loop. It ends when a
// passphrase is accepted, the attempt allowance runs out, or no prompt is
// available.
func (m *Machine) promptUntilUnlocked(ctx context.Context) error {
	for {
		pass, err := m.term.RequestPassword(ctx, m.gate.Remaining())
		if err != nil {
			switch {
			case errors.Is(err, ui.ErrNoPrompt):
				return m.fail(ReasonEncryption, ErrPasswordRequired)
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return m.fail(ReasonInterrupted, err)
			default:
				return m.fail(ReasonEncryption, errors.Wrap(err, "password prompt failed"))
			}
		}

		err = m.gate.SubmitPassphrase(ctx, pass)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, luks.ErrLockedOut):
			return m.fail(ReasonEncryption, err)
		case errors.Is(err, luks.ErrBadPassphrase):
			m.term.ShowProgress("Incorrect password.")
		default:
			return m.fail(ReasonEncryption, errors.Wrap(err, "passphrase verification failed"))
		}
	}
}

// locate finds the payload. The fallback volume stays mounted when a located
// image will be read from it during the flash.
func (m *Machine) locate(resp *Response) error {
	m.term.ShowProgress("Resetting device...")

	set, err := m.locator.Locate(resp.SystemMount)
	if err != nil {
		return m.fail(ReasonExtraction, errors.Wrap(err, "image search failed"))
	}
	m.images = set

	resp.UserdataArchive = set.Userdata.Path
	resp.BootImage = set.Boot.Path
	resp.DtboImage = set.Dtbo.Path

	m.releaseIdleFallback(set)
	return nil
}

// releaseIdleFallback unmounts the fallback volume when none of the located
// images live on it.
func (m *Machine) releaseIdleFallback(set *payload.Set) {
	if !set.UsesFallback() {
		return
	}
	if set.Boot.Origin == payload.OriginRootfs || set.Dtbo.Origin == payload.OriginRootfs {
		return
	}
	if err := m.scratch.Release(set.FallbackMount); err != nil {
		slog.Warn("fallback_release_failed", "target", set.FallbackMount, "error", err)
	}
}

func (m *Machine) flashPayload(ctx context.Context, resp *Response, slotSuffix string) error {
	if m.images == nil {
		return m.fail(ReasonInternal, errors.New("no payload located"))
	}

	report, err := m.flasher.Flash(ctx, m.images, slotSuffix)
	if err != nil {
		return m.fail(ReasonExtraction, err)
	}

	resp.Warnings = append(resp.Warnings, report.Warnings...)
	return nil
}

// finalize releases every scratch mount and pronounces success. Failed runs
// never reach it; their mounts are released by the caller's deferred sweep.
func (m *Machine) finalize(resp *Response) {
	for _, err := range m.scratch.ReleaseAll() {
		slog.Warn("scratch_release_failed", "error", err)
	}

	resp.Status = StatusSuccess
	slog.Info("reset_complete", "run_id", resp.RunID, "warning_count", len(resp.Warnings))
}

// Outcome condenses however the run ended into the one verdict the caller
// reports. The machine's own failure record wins over the framework's error,
// whose wrapping is not ours to rely on.
func (m *Machine) Outcome(ctx context.Context, resp *Response, waitErr error) *Outcome {
	out := &Outcome{AttemptsRemaining: m.gate.Remaining()}
	if resp != nil {
		out.Warnings = resp.Warnings
	}

	if waitErr == nil && m.failure == nil && resp != nil && resp.Status == StatusSuccess {
		out.Status = StatusSuccess
		return out
	}

	err := m.failure
	if err == nil {
		err = waitErr
	}

	switch {
	case errors.Is(err, luks.ErrLockedOut):
		out.Status = StatusLockedOut
		out.Reason = ReasonEncryption
	case errors.Is(err, ErrPasswordRequired):
		out.Status = StatusNeedsPassword
		out.Reason = ReasonEncryption
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), ctx.Err() != nil:
		out.Status = StatusFailure
		out.Reason = ReasonInterrupted
	default:
		out.Status = StatusFailure
		out.Reason = m.reason
		if out.Reason == "" {
			out.Reason = ReasonInternal
		}
	}
	return out
}
