package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "furios-reset",
	Short:         "FuriOS recovery - factory reset and data wipe",
	Long:          `Erases user data and restores the device to factory state from the payload images shipped on its system partition.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("cmdline-path", "/proc/cmdline", "Kernel command line path")
	rootCmd.PersistentFlags().String("reserved-volume", "/dev/droidian/droidian-reserved", "Volume probed for a LUKS header")
	rootCmd.PersistentFlags().String("database-path", "/var/lib/furios-reset/runs.db", "Run journal database path")
	rootCmd.PersistentFlags().String("fsm-db-path", "/var/lib/furios-reset/fsm", "FSM state directory")
	rootCmd.PersistentFlags().Duration("command-timeout", 0, "Timeout for external tools (0 disables)")

	viper.BindPFlag("cmdline-path", rootCmd.PersistentFlags().Lookup("cmdline-path"))
	viper.BindPFlag("reserved-volume", rootCmd.PersistentFlags().Lookup("reserved-volume"))
	viper.BindPFlag("database-path", rootCmd.PersistentFlags().Lookup("database-path"))
	viper.BindPFlag("fsm-db-path", rootCmd.PersistentFlags().Lookup("fsm-db-path"))
	viper.BindPFlag("command-timeout", rootCmd.PersistentFlags().Lookup("command-timeout"))
}
