package ffmpeg

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseProbeDuration(t *testing.T) {
	cases := []struct {
		name    string
		probe   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "whole seconds",
			probe: `{"format":{"duration":"40.000000"}}`,
			want:  40 * time.Second,
		},
		{
			name:  "fractional seconds",
			probe: `{"format":{"duration":"12.500"}}`,
			want:  12500 * time.Millisecond,
		},
		{
			name:    "missing duration",
			probe:   `{"format":{}}`,
			wantErr: true,
		},
		{
			name:    "not json",
			probe:   "garbage",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseProbeDuration(tc.probe)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tc.want {
				t.Fatalf("parseProbeDuration = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestFmtSeconds(t *testing.T) {
	cases := map[time.Duration]string{
		12500 * time.Millisecond: "12.500",
		15 * time.Second:         "15.000",
		0:                        "0.000",
	}
	for d, want := range cases {
		if got := fmtSeconds(d); got != want {
			t.Fatalf("fmtSeconds(%s) = %q, want %q", d, got, want)
		}
	}
}

func TestTempOutputPath(t *testing.T) {
	out := filepath.Join("downloads", "instagram_clip.mp4")

	a := tempOutputPath(out)
	b := tempOutputPath(out)

	if filepath.Dir(a) != "downloads" {
		t.Fatalf("temp file must live next to the output: %s", a)
	}
	if !strings.HasPrefix(filepath.Base(a), ".instagram_clip.mp4.") || !strings.HasSuffix(a, ".tmp") {
		t.Fatalf("unexpected temp name: %s", a)
	}
	if a == b {
		t.Fatalf("temp names must not collide: %s", a)
	}
}

func TestExportClip_RejectsInvalidWindow(t *testing.T) {
	a := New()
	err := a.ExportClip(context.Background(), "in.mp4", 10*time.Second, 10*time.Second, "out.mp4")
	if err == nil {
		t.Fatalf("expected error for empty window")
	}
	err = a.ExportClip(context.Background(), "in.mp4", 20*time.Second, 10*time.Second, "out.mp4")
	if err == nil {
		t.Fatalf("expected error for inverted window")
	}
}
