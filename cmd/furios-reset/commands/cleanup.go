package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/furilabs/furios-reset/internal/config"
	"github.com/furilabs/furios-reset/pkg/errors"
	"github.com/furilabs/furios-reset/pkg/mounts"
	"github.com/furilabs/furios-reset/pkg/subprocess"
)

var cleanupDeactivate bool

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Release scratch mounts left behind by an interrupted run",
	Long: `Unmounts the scratch mount points a reset uses to read payload images
(the system slot mount and the rootfs fallback mount). With --deactivate,
also removes the dynamic partition mappings activated from the super
partition.`,
	RunE: runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
	cleanupCmd.Flags().BoolVar(&cleanupDeactivate, "deactivate", false, "Remove activated dynamic partition mappings")
}

func runCleanup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config load failed")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config invalid")
	}

	mounter := mounts.NewMounter()

	fmt.Println("🧹 Releasing scratch mounts...")

	// Reverse of mount order: the rootfs fallback before the system slot.
	for _, target := range []string{cfg.RootfsMountPoint, cfg.SystemMountPoint} {
		if err := mounter.Unmount(target); err != nil {
			fmt.Printf("⚠️  Not unmounted %s: %v\n", target, err)
		} else {
			fmt.Printf("✅ Unmounted: %s\n", target)
		}
	}

	if cleanupDeactivate {
		runner := subprocess.NewRunner(cfg.CommandTimeout)
		ctx := cmd.Context()

		for _, device := range []string{cfg.SlotADevice, cfg.SlotBDevice} {
			if _, err := os.Stat(device); err != nil {
				continue
			}
			name := filepath.Base(device)
			if err := runner.Run(ctx, "dmsetup", "remove", name); err != nil {
				fmt.Printf("⚠️  Failed to remove mapping %s: %v\n", name, err)
			} else {
				fmt.Printf("🗑️  Removed mapping: %s\n", name)
			}
		}
	}

	return nil
}
