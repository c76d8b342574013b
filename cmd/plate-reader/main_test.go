package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// runCommand executes the root command with args and returns its stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		for _, c := range rootCmd.Commands() {
			c.Flags().VisitAll(func(f *pflag.Flag) {
				f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCorrectCommand(t *testing.T) {
	out, err := runCommand(t, "correct", "KA01AG1234", "ZGI2")
	if err != nil {
		t.Fatalf("correct failed: %v", err)
	}

	want := "KA01AG1234\tKA01461234\tadmitted\nZGI2\t2612\trejected\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRegionCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"region", "MH12AB1234", "XX1"}, "MH12AB1234\tMaharashtra\nXX1\tUnknown\n"},
		{"corrected", []string{"region", "--correct", "cQ01"}, "CQ01\tUnknown\n"},
		{"shared code", []string{"region", "ld01"}, "ld01\tLadakh\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("region failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRegionCommand_List(t *testing.T) {
	out, err := runCommand(t, "region", "--list")
	if err != nil {
		t.Fatalf("region --list failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 34 {
		t.Errorf("got %d regions, want 34", len(lines))
	}
	if lines[0] != "AP\tAndhra Pradesh" {
		t.Errorf("first line: got %q", lines[0])
	}
}

func TestRegionCommand_RequiresText(t *testing.T) {
	if _, err := runCommand(t, "region"); err == nil {
		t.Error("region without text should fail")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "plate-reader dev\n") {
		t.Errorf("unexpected output: %q", out)
	}
}
