package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/furilabs/furios-reset/pkg/security"
)

// Config holds all application configuration
type Config struct {
	// Device topology
	CmdlinePath    string `mapstructure:"cmdline-path"`
	SuperDevice    string `mapstructure:"super-device"`
	SlotADevice    string `mapstructure:"slot-a-device"`
	SlotBDevice    string `mapstructure:"slot-b-device"`
	PartlabelDir   string `mapstructure:"partlabel-dir"`
	ReservedVolume string `mapstructure:"reserved-volume"`
	RootfsDevice   string `mapstructure:"rootfs-device"`

	// Scratch mounts
	SystemMountPoint string `mapstructure:"system-mount-point"`
	RootfsMountPoint string `mapstructure:"rootfs-mount-point"`
	MountFstype      string `mapstructure:"mount-fstype"`

	// Flashing
	DropCachesPath string `mapstructure:"drop-caches-path"`
	BlockSize      string `mapstructure:"block-size"`

	// Encryption gate
	MaxPasswordAttempts int `mapstructure:"max-password-attempts"`

	// External tools
	CommandTimeout time.Duration `mapstructure:"command-timeout"`

	// Database paths
	DatabasePath string `mapstructure:"database-path"`
	FSMDBPath    string `mapstructure:"fsm-db-path"`
}

// Load reads configuration from environment, config file, and defaults
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("cmdline-path", "/proc/cmdline")
	viper.SetDefault("super-device", "/dev/disk/by-partlabel/super")
	viper.SetDefault("slot-a-device", "/dev/mapper/dynpart-system_a")
	viper.SetDefault("slot-b-device", "/dev/mapper/dynpart-system_b")
	viper.SetDefault("partlabel-dir", "/dev/disk/by-partlabel")
	viper.SetDefault("reserved-volume", "/dev/droidian/droidian-reserved")
	viper.SetDefault("rootfs-device", "/dev/mapper/droidian-droidian--rootfs")
	viper.SetDefault("system-mount-point", "/system_mnt")
	viper.SetDefault("rootfs-mount-point", "/rootfs_mnt")
	viper.SetDefault("mount-fstype", "ext4")
	viper.SetDefault("drop-caches-path", "/proc/sys/vm/drop_caches")
	viper.SetDefault("block-size", "4M")
	viper.SetDefault("max-password-attempts", 3)
	viper.SetDefault("command-timeout", time.Duration(0))
	viper.SetDefault("database-path", "/var/lib/furios-reset/runs.db")
	viper.SetDefault("fsm-db-path", "/var/lib/furios-reset/fsm")

	// Environment variables (will be FURIOS_RESET_CMDLINE_PATH, etc.)
	viper.SetEnvPrefix("FURIOS_RESET")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Config file (optional)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/furios-reset")
	viper.AddConfigPath(".")

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration for errors
func (c *Config) Validate() error {
	if c.CmdlinePath == "" {
		return fmt.Errorf("cmdline-path cannot be empty")
	}
	if c.SuperDevice == "" {
		return fmt.Errorf("super-device cannot be empty")
	}
	if c.SlotADevice == "" || c.SlotBDevice == "" {
		return fmt.Errorf("slot devices cannot be empty")
	}
	if c.PartlabelDir == "" {
		return fmt.Errorf("partlabel-dir cannot be empty")
	}
	if c.ReservedVolume == "" {
		return fmt.Errorf("reserved-volume cannot be empty")
	}
	if err := security.ValidateMountPoint(c.SystemMountPoint); err != nil {
		return fmt.Errorf("system-mount-point invalid: %w", err)
	}
	if err := security.ValidateMountPoint(c.RootfsMountPoint); err != nil {
		return fmt.Errorf("rootfs-mount-point invalid: %w", err)
	}
	if c.SystemMountPoint == c.RootfsMountPoint {
		return fmt.Errorf("system and rootfs mount points must differ")
	}
	if c.MountFstype == "" {
		return fmt.Errorf("mount-fstype cannot be empty")
	}
	if c.BlockSize == "" {
		return fmt.Errorf("block-size cannot be empty")
	}
	if c.MaxPasswordAttempts <= 0 {
		return fmt.Errorf("max-password-attempts must be positive")
	}
	if c.CommandTimeout < 0 {
		return fmt.Errorf("command-timeout must be non-negative")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database-path cannot be empty")
	}
	if c.FSMDBPath == "" {
		return fmt.Errorf("fsm-db-path cannot be empty")
	}
	return nil
}
