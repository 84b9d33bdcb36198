// Package httpfetch fetches source media that already sits behind a direct
// media URL, with no extractor in between.
package httpfetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/am8-code/Video-Clipper/internal/types"
)

// sourceBaseName matches the fixed name the ytdlp adapter uses, so the rest
// of the pipeline sees the same layout regardless of fetcher.
const sourceBaseName = "source_video"

type Adapter struct {
	client  *resty.Client
	workDir string
	logger  *zap.Logger
}

func New(workDir string, logger *zap.Logger) *Adapter {
	// Videos can be large; the overall bound lives here, not in the core.
	client := resty.New().SetTimeout(30 * time.Minute)
	return &Adapter{client: client, workDir: workDir, logger: logger}
}

// IsDirectMediaURL reports whether rawURL points at a media file that plain
// HTTP can fetch.
func IsDirectMediaURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".mp4", ".mov", ".mkv", ".webm", ".avi":
		return true
	}
	return false
}

// Fetch downloads rawURL into the working directory under the fixed source
// file name, keeping the URL's extension.
func (a *Adapter) Fetch(ctx context.Context, rawURL string) (types.SourceMedia, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return types.SourceMedia{}, fmt.Errorf("parse url %s: %w", rawURL, err)
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		ext = ".mp4"
	}
	out := filepath.Join(a.workDir, sourceBaseName+ext)

	a.logger.Info("downloading source video over http",
		zap.String("url", rawURL), zap.String("path", out))

	resp, err := a.client.R().SetContext(ctx).SetOutput(out).Get(rawURL)
	if err != nil {
		return types.SourceMedia{}, fmt.Errorf("download %s: %w", rawURL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return types.SourceMedia{}, fmt.Errorf("download %s: unexpected status %d", rawURL, resp.StatusCode())
	}

	return types.SourceMedia{
		Path:      out,
		Container: strings.TrimPrefix(ext, "."),
	}, nil
}
