package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRunRounder(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3.14159\n", "3.14\n"},
		{"2", "2.00\n"},
		{"0", "0.00\n"},
		{"1.996", "2.00\n"},
		{"-3.14159", "-3.14\n"},
		{"", "0.00\n"},
		{"garbage", "0.00\n"},
		{"1e", "0.00\n"},
		{"2e+", "0.00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			if err := RunRounder(strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("RunRounder() returned unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("RunRounder(%q) wrote %q, want %q", tt.input, out.String(), tt.want)
			}
		})
	}

	t.Run("output is a fixed point of the rounder", func(t *testing.T) {
		var first, second bytes.Buffer
		if err := RunRounder(strings.NewReader("987.654321"), &first); err != nil {
			t.Fatalf("RunRounder() returned unexpected error: %v", err)
		}
		if err := RunRounder(strings.NewReader(first.String()), &second); err != nil {
			t.Fatalf("RunRounder() returned unexpected error: %v", err)
		}
		if first.String() != second.String() {
			t.Errorf("Expected %q on re-run, got %q", first.String(), second.String())
		}
	})
}

func TestRunFractionDigits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123.4", "40\n"},
		{"5.07", "7\n"},
		{"9", "0\n"},
		{"0", "0\n"},
		{"1.996", "0\n"},
		{"-1.25", "25\n"},
		{"", "0\n"},
		{"1e", "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			if err := RunFractionDigits(strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("RunFractionDigits() returned unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("RunFractionDigits(%q) wrote %q, want %q", tt.input, out.String(), tt.want)
			}
		})
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestRun_WriteErrors(t *testing.T) {
	t.Run("rounder reports write failures", func(t *testing.T) {
		err := RunRounder(strings.NewReader("1"), failingWriter{})
		if !errors.Is(err, errWrite) {
			t.Errorf("Expected write error, got %v", err)
		}
	})

	t.Run("fraction digits reports write failures", func(t *testing.T) {
		err := RunFractionDigits(strings.NewReader("1"), failingWriter{})
		if !errors.Is(err, errWrite) {
			t.Errorf("Expected write error, got %v", err)
		}
	})
}
