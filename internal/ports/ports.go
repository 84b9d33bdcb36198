package ports

import (
	"context"
	"time"

	"github.com/am8-code/Video-Clipper/internal/types"
)

// MediaFetcher resolves a video URL to a locally stored, fully downloaded
// source file.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string) (types.SourceMedia, error)
}

// VideoTool reads and re-encodes local media files.
type VideoTool interface {
	ProbeDuration(ctx context.Context, path string) (time.Duration, error)
	ExportClip(ctx context.Context, inPath string, start, end time.Duration, outPath string) error
}

// CaptionModel is a loaded text-generation capability, stateless per call.
// It may fail on resource exhaustion or malformed input.
type CaptionModel interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Captioner produces a marketing caption. It never fails outward: on any
// model failure it substitutes a fixed default.
type Captioner interface {
	Caption(ctx context.Context) string
}
