// Package ytdlp fetches source media by shelling out to the yt-dlp binary.
package ytdlp

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/am8-code/Video-Clipper/internal/types"
)

// Options configures the yt-dlp invocation. The zero value is not usable;
// start from DefaultOptions and override as needed.
type Options struct {
	BinaryPath     string `validate:"required"`
	Format         string `validate:"required"`
	OutputTemplate string `validate:"required"`
	NoOverwrites   bool
	NoColor        bool
	Proxy          string
	CookiesFile    string
}

// DefaultOptions downloads the best available mp4 into workDir under the
// fixed source file name. An already-downloaded source is reused.
func DefaultOptions(workDir string) Options {
	return Options{
		BinaryPath:     "yt-dlp",
		Format:         "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best",
		OutputTemplate: filepath.Join(workDir, "source_video.%(ext)s"),
		NoOverwrites:   true,
		NoColor:        true,
	}
}

func (o Options) Validate() error {
	return validator.New().Struct(o)
}

type Adapter struct {
	opts   Options
	logger *zap.Logger
}

func New(opts Options, logger *zap.Logger) (*Adapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("ytdlp options: %w", err)
	}
	return &Adapter{opts: opts, logger: logger}, nil
}

// Fetch downloads the video behind url and returns the local file. The file
// must be fully written before yt-dlp exits, so a nil error means the source
// is readable in full.
func (a *Adapter) Fetch(ctx context.Context, url string) (types.SourceMedia, error) {
	args := a.buildArgs(url)

	a.logger.Info("downloading source video",
		zap.String("url", url),
		zap.String("template", a.opts.OutputTemplate))

	cmd := exec.CommandContext(ctx, a.opts.BinaryPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return types.SourceMedia{}, fmt.Errorf("yt-dlp: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	path, err := locateDownload(a.opts.OutputTemplate)
	if err != nil {
		return types.SourceMedia{}, err
	}

	a.logger.Info("source video downloaded", zap.String("path", path))
	return types.SourceMedia{
		Path:      path,
		Container: strings.TrimPrefix(filepath.Ext(path), "."),
	}, nil
}

func (a *Adapter) buildArgs(url string) []string {
	args := []string{"-f", a.opts.Format, "-o", a.opts.OutputTemplate}
	if a.opts.NoOverwrites {
		args = append(args, "--no-overwrites")
	}
	if a.opts.NoColor {
		args = append(args, "--no-colors")
	}
	if a.opts.Proxy != "" {
		args = append(args, "--proxy", a.opts.Proxy)
	}
	if a.opts.CookiesFile != "" {
		args = append(args, "--cookies", a.opts.CookiesFile)
	}
	return append(args, url)
}

// locateDownload resolves the file yt-dlp produced for the output template.
// yt-dlp chooses the extension, so glob on the template stem and prefer the
// merged mp4 over leftover per-stream intermediates.
func locateDownload(template string) (string, error) {
	pattern := strings.ReplaceAll(template, "%(ext)s", "*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no downloaded file matches %s", pattern)
	}
	sort.Strings(matches)
	for _, m := range matches {
		if filepath.Ext(m) == ".mp4" {
			return m, nil
		}
	}
	return matches[0], nil
}
