package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/furilabs/furios-reset/internal/config"
	"github.com/furilabs/furios-reset/pkg/cmdline"
	"github.com/furilabs/furios-reset/pkg/errors"
)

var slotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Show the active boot slot suffix",
	RunE:  runSlot,
}

func init() {
	rootCmd.AddCommand(slotCmd)
}

func runSlot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config load failed")
	}

	suffix := cmdline.NewResolver(cfg.CmdlinePath).Resolve()
	if suffix == "" {
		fmt.Println("(none)")
		return nil
	}

	fmt.Println(suffix)
	return nil
}
