package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsUnwrapToCause(t *testing.T) {
	cause := errors.New("connection refused")

	cases := []struct {
		name string
		err  error
	}{
		{"fetch", &FetchError{URL: "https://youtu.be/abc", Err: cause}},
		{"transcode", &TranscodeError{Path: "downloads/source_video.mp4", Err: cause}},
		{"caption", &CaptionError{Err: cause}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, cause) {
				t.Fatalf("expected %v to wrap cause", tc.err)
			}
			if msg := tc.err.Error(); msg == "" {
				t.Fatalf("expected non-empty message")
			}
		})
	}
}

func TestErrorsMatchByType(t *testing.T) {
	err := fmt.Errorf("run failed: %w", &FetchError{URL: "u", Err: errors.New("boom")})

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError through wrapping")
	}

	var transcodeErr *TranscodeError
	if errors.As(err, &transcodeErr) {
		t.Fatalf("did not expect TranscodeError")
	}
}
