package cmdline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSuffixFrom(t *testing.T) {
	tests := []struct {
		name     string
		cmdline  string
		expected string
	}{
		{
			name:     "slot b mid-line",
			cmdline:  "console=ttyMSM0,115200 androidboot.slot_suffix=_b androidboot.hardware=qcom quiet",
			expected: "_b",
		},
		{
			name:     "slot a at end of line",
			cmdline:  "quiet splash androidboot.slot_suffix=_a\n",
			expected: "_a",
		},
		{
			name:     "single character suffix",
			cmdline:  "androidboot.slot_suffix=a root=/dev/sda1",
			expected: "a",
		},
		{
			name:     "overlong value truncated",
			cmdline:  "androidboot.slot_suffix=_abc quiet",
			expected: "_a",
		},
		{
			name:     "parameter absent",
			cmdline:  "console=tty0 root=/dev/sda1 quiet",
			expected: "",
		},
		{
			name:     "empty value",
			cmdline:  "androidboot.slot_suffix= quiet",
			expected: "",
		},
		{
			name:     "invalid characters rejected",
			cmdline:  "androidboot.slot_suffix=./ quiet",
			expected: "",
		},
		{
			name:     "empty command line",
			cmdline:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		if got := SuffixFrom(tt.cmdline); got != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, got)
		}
	}
}

func TestResolveReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmdline")
	content := "console=ttyMSM0 androidboot.slot_suffix=_b quiet\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	r := NewResolver(path)
	if got := r.Resolve(); got != "_b" {
		t.Errorf("expected %q, got %q", "_b", got)
	}
}

func TestResolveMissingFile(t *testing.T) {
	r := NewResolver(filepath.Join(t.TempDir(), "does-not-exist"))
	if got := r.Resolve(); got != "" {
		t.Errorf("expected empty suffix for unreadable command line, got %q", got)
	}
}
