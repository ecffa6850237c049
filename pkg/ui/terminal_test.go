package ui

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/furilabs/furios-reset/pkg/errors"
)

// pipeTerminal builds a Terminal whose stdin is the read end of a pipe, so
// the non-terminal input path is exercised.
func pipeTerminal(t *testing.T, input string) (*Terminal, *bytes.Buffer) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	t.Cleanup(func() { r.Close() })

	if _, err := w.WriteString(input); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	w.Close()

	var out bytes.Buffer
	return NewTerminal(r, &out), &out
}

func TestRequestPasswordFromPipe(t *testing.T) {
	term, out := pipeTerminal(t, "hunter2\n")

	pass, err := term.RequestPassword(context.Background(), 3)
	if err != nil {
		t.Fatalf("RequestPassword failed: %v", err)
	}
	if pass != "hunter2" {
		t.Errorf("expected %q, got %q", "hunter2", pass)
	}
	if !strings.Contains(out.String(), "3 attempts remaining") {
		t.Errorf("prompt should mention attempts remaining: %q", out.String())
	}
}

func TestRequestPasswordWithoutNewline(t *testing.T) {
	term, _ := pipeTerminal(t, "hunter2")

	pass, err := term.RequestPassword(context.Background(), 1)
	if err != nil {
		t.Fatalf("RequestPassword failed: %v", err)
	}
	if pass != "hunter2" {
		t.Errorf("expected %q, got %q", "hunter2", pass)
	}
}

func TestRequestPasswordNoInput(t *testing.T) {
	term, _ := pipeTerminal(t, "")

	_, err := term.RequestPassword(context.Background(), 3)
	if !errors.Is(err, ErrNoPrompt) {
		t.Fatalf("expected ErrNoPrompt, got %v", err)
	}
}

func TestRequestPasswordCancelledContext(t *testing.T) {
	term, _ := pipeTerminal(t, "hunter2\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := term.RequestPassword(ctx, 3); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false},
		{"anything else\n", false},
	}

	for _, tt := range tests {
		term, out := pipeTerminal(t, tt.input)
		if got := term.Confirm("Factory reset device?"); got != tt.expected {
			t.Errorf("input %q: expected %v, got %v", tt.input, tt.expected, got)
		}
		if !strings.Contains(out.String(), "[y/N]") {
			t.Errorf("prompt should show the default: %q", out.String())
		}
	}
}

func TestShowMessages(t *testing.T) {
	term, out := pipeTerminal(t, "")

	term.ShowProgress("Resetting device...")
	term.ShowOutcome("Successfully reset to factory settings")

	expected := "Resetting device...\nSuccessfully reset to factory settings\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}
