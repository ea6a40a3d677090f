package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in    string
		want  time.Duration
		label string
	}{
		{in: "30m", want: 30 * time.Minute, label: "30m"},
		{in: "2h", want: 2 * time.Hour, label: "2h"},
		{in: "1d12h", want: 36 * time.Hour, label: "1d12h"},
		{in: "90m", want: 90 * time.Minute, label: "1h30m"},
		{in: " 1w ", want: 7 * 24 * time.Hour, label: "1w"},
	}
	for _, tt := range tests {
		got, label, err := ParseWindow(tt.in)
		if err != nil {
			t.Errorf("ParseWindow(%q) returned %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWindow(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if label != tt.label {
			t.Errorf("ParseWindow(%q) label = %q, want %q", tt.in, label, tt.label)
		}
	}
}

func TestParseWindowRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"", "soon", "10", "5y", "0s"} {
		if _, _, err := ParseWindow(bad); err == nil {
			t.Errorf("ParseWindow(%q) succeeded, want error", bad)
		}
	}
}

func TestFormatWindowZero(t *testing.T) {
	if got := FormatWindow(0); got != "0s" {
		t.Errorf("FormatWindow(0) = %q, want 0s", got)
	}
}
