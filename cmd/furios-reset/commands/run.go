package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"github.com/superfly/fsm"
	"golang.org/x/sys/unix"

	"github.com/furilabs/furios-reset/internal/config"
	"github.com/furilabs/furios-reset/pkg/cmdline"
	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/flash"
	"github.com/furilabs/furios-reset/pkg/history"
	"github.com/furilabs/furios-reset/pkg/luks"
	"github.com/furilabs/furios-reset/pkg/mounts"
	"github.com/furilabs/furios-reset/pkg/partitions"
	"github.com/furilabs/furios-reset/pkg/payload"
	"github.com/furilabs/furios-reset/pkg/reset"
	"github.com/furilabs/furios-reset/pkg/subprocess"
	"github.com/furilabs/furios-reset/pkg/ui"
	"github.com/furilabs/furios-reset/pkg/vmcache"
)

var runYes bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Erase user data and restore the device to factory state",
	Long: `Runs a factory reset: mounts the active system slot, checks the
encryption gate, then rewrites the userdata partition from the factory
archive and reflashes the boot images. All user data is destroyed.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&runYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config load failed")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config invalid")
	}

	if err := ensureDirectories(cfg.DatabasePath, cfg.FSMDBPath); err != nil {
		return err
	}

	term := ui.NewTerminal(os.Stdin, os.Stdout)
	if !runYes && !term.Confirm("Factory reset device? All user data will be erased.") {
		fmt.Println("Aborted.")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	defer stop()

	journal, err := history.NewRepository(cfg.DatabasePath)
	if err != nil {
		return errors.Wrap(err, "journal init failed")
	}
	defer journal.Close()

	runner := subprocess.NewRunner(cfg.CommandTimeout)
	registry := mounts.NewRegistry(mounts.NewMounter())

	// Whatever happens below, no scratch mount survives the run.
	defer func() {
		for _, err := range registry.ReleaseAll() {
			slog.Warn("scratch_release_failed", "error", err)
		}
	}()

	prober := partitions.NewProber(runner, registry, partitions.Layout{
		SuperDevice: cfg.SuperDevice,
		SlotADevice: cfg.SlotADevice,
		SlotBDevice: cfg.SlotBDevice,
		MountPoint:  cfg.SystemMountPoint,
		Fstype:      cfg.MountFstype,
	})
	gate := luks.NewGate(cfg.ReservedVolume, runner, cfg.MaxPasswordAttempts)
	locator := payload.NewLocator(registry, cfg.RootfsDevice, cfg.RootfsMountPoint, cfg.MountFstype)
	flasher := flash.NewPipeline(runner, vmcache.New(cfg.DropCachesPath), cfg.PartlabelDir, cfg.BlockSize)

	slotSuffix := cmdline.NewResolver(cfg.CmdlinePath).Resolve()
	runID := ulid.Make().String()
	slog.Info("reset_run_start", "run_id", runID, "slot_suffix", slotSuffix)

	// The journal is advisory; a reset proceeds even if it cannot be recorded.
	if err := journal.Create(&history.Run{ID: runID, SlotSuffix: slotSuffix}); err != nil {
		slog.Warn("journal_unavailable", "error", err)
	}

	manager, err := fsm.New(fsm.Config{DBPath: cfg.FSMDBPath})
	if err != nil {
		return errors.Wrap(err, "FSM manager failed")
	}
	defer manager.Shutdown(10 * time.Second)

	machine := reset.NewMachine(prober, gate, locator, flasher, registry, term)
	start, _, err := machine.Register(ctx, manager)
	if err != nil {
		return errors.Wrap(err, "FSM register failed")
	}

	req := &reset.Request{RunID: runID, SlotSuffix: slotSuffix}
	resp := &reset.Response{}

	version, err := start(ctx, runID, fsm.NewRequest(req, resp))
	if err != nil {
		return errors.Wrap(err, "FSM start failed")
	}

	waitErr := manager.Wait(ctx, version)
	out := machine.Outcome(ctx, resp, waitErr)

	if err := journal.Finish(runID, out.Status, out.Reason, out.Warnings); err != nil {
		slog.Warn("journal_finish_failed", "error", err)
	}

	term.ShowOutcome(out.Message())
	slog.Info("reset_run_end",
		"run_id", runID,
		"status", out.Status,
		"reason", out.Reason,
		"warning_count", len(out.Warnings))

	if code := out.ExitCode(); code != 0 {
		return &exitCodeError{code: code}
	}
	return nil
}
