package util_test

import (
	"testing"
	"time"

	"github.com/rlbench/bsuite/internal/util"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"500", 500},
		{"10k", 10000},
		{"2.5k", 2500},
		{"1M", 1000000},
		{" 3K ", 3000},
	}

	for _, tt := range tests {
		got, err := util.ParseCount(tt.in)
		if err != nil {
			t.Errorf("ParseCount(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if _, err := util.ParseCount("lots"); err == nil {
		t.Error("ParseCount(\"lots\") should fail")
	}
	if _, err := util.ParseCount("10q"); err == nil {
		t.Error("ParseCount(\"10q\") should fail")
	}
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"500ms", 500 * time.Millisecond},
		{"10s", 10 * time.Second},
		{"1m30s", 90 * time.Second},
		{"2", 2 * time.Second},
		{"0.5", 500 * time.Millisecond},
	}

	for _, tt := range tests {
		got, err := util.ParseTimeout(tt.in)
		if err != nil {
			t.Errorf("ParseTimeout(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeout(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := util.ParseTimeout("soon"); err == nil {
		t.Error("ParseTimeout(\"soon\") should fail")
	}
}
