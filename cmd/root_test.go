package cmd

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Nimsara-Jayarathna/GreenStream-Prototype/internal/news"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{30 * 24 * time.Hour, "30d"},
		{36 * time.Hour, "1d"},
		{12 * time.Hour, "12h"},
		{0, "0h"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.input); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 << 20, "3.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.input); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStartFilter(t *testing.T) {
	got, err := startFilter([]string{"energy", "Policy"}, []string{"Reuters"}, "2025-10")
	if err != nil {
		t.Fatalf("startFilter: %v", err)
	}
	want := news.Filter{Categories: []string{"Energy", "Policy"}, Sources: []string{"Reuters"}, Date: "2025-10"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("startFilter mismatch (-want +got):\n%s", diff)
	}

	if _, err := startFilter([]string{"sports"}, nil, ""); err == nil {
		t.Error("expected error for unknown category")
	}

	empty, err := startFilter(nil, nil, "")
	if err != nil || !empty.IsZero() {
		t.Errorf("expected zero filter, got %+v (%v)", empty, err)
	}
}
