package security

import (
	"testing"
)

func TestValidateSlotSuffix(t *testing.T) {
	tests := []struct {
		suffix    string
		shouldErr bool
	}{
		{"", false},
		{"_a", false},
		{"_b", false},
		{"a", false},
		{"ab", false},
		{"_ab", true},
		{"..", true},
		{"/a", true},
		{" a", true},
		{"_a extra", true},
	}

	for _, tt := range tests {
		err := ValidateSlotSuffix(tt.suffix)
		if tt.shouldErr && err == nil {
			t.Errorf("expected error for suffix: %q", tt.suffix)
		}
		if !tt.shouldErr && err != nil {
			t.Errorf("unexpected error for suffix %q: %v", tt.suffix, err)
		}
	}
}

func TestValidatePartitionLabel(t *testing.T) {
	tests := []struct {
		label     string
		shouldErr bool
	}{
		{"userdata", false},
		{"boot_a", false},
		{"dtbo_b", false},
		{"system-boot.0", false},
		{"", true},
		{"..", true},
		{"boot/../userdata", true},
		{"boot a", true},
		{".hidden", true},
	}

	for _, tt := range tests {
		err := ValidatePartitionLabel(tt.label)
		if tt.shouldErr && err == nil {
			t.Errorf("expected error for label: %q", tt.label)
		}
		if !tt.shouldErr && err != nil {
			t.Errorf("unexpected error for label %q: %v", tt.label, err)
		}
	}
}

func TestValidateMountPoint(t *testing.T) {
	tests := []struct {
		path      string
		shouldErr bool
	}{
		{"/system_mnt", false},
		{"/rootfs_mnt", false},
		{"/mnt/scratch", false},
		{"", true},
		{"system_mnt", true},
		{"/", true},
		{"/system_mnt/", true},
		{"/mnt/../etc", true},
	}

	for _, tt := range tests {
		err := ValidateMountPoint(tt.path)
		if tt.shouldErr && err == nil {
			t.Errorf("expected error for mount point: %q", tt.path)
		}
		if !tt.shouldErr && err != nil {
			t.Errorf("unexpected error for mount point %q: %v", tt.path, err)
		}
	}
}
