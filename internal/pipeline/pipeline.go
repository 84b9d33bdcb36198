package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/am8-code/Video-Clipper/internal/caption"
	"github.com/am8-code/Video-Clipper/internal/ports"
	"github.com/am8-code/Video-Clipper/internal/ports/adapters/ffmpeg"
	"github.com/am8-code/Video-Clipper/internal/ports/adapters/httpfetch"
	"github.com/am8-code/Video-Clipper/internal/ports/adapters/openai"
	"github.com/am8-code/Video-Clipper/internal/ports/adapters/ytdlp"
	"github.com/am8-code/Video-Clipper/internal/types"
	"github.com/am8-code/Video-Clipper/internal/usecase"
)

// Output file names are fixed: a second run overwrites the first run's
// artifacts, there is no versioning.
const (
	outputFileName = "instagram_clip.mp4"
	resultFileName = "result.json"
)

type Config struct {
	URL          string
	WorkDir      string
	ClipDuration time.Duration

	YtdlpPath string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	Logger *zap.Logger
}

func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("url is empty")
	}
	if c.WorkDir == "" {
		return errors.New("work dir is empty")
	}
	if c.ClipDuration <= 0 {
		return fmt.Errorf("clip duration must be > 0, got %s", c.ClipDuration)
	}
	return nil
}

// Run wires the adapters, prepares the working directory, and executes one
// pipeline pass. On success the result record is also persisted next to the
// clip as result.json.
func Run(ctx context.Context, cfg Config) (types.PipelineResult, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return types.PipelineResult{}, fmt.Errorf("create work dir: %w", err)
	}

	fetcher, err := newFetcher(cfg, logger)
	if err != nil {
		return types.PipelineResult{}, err
	}

	model := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	uc := usecase.New(usecase.Deps{
		Fetcher:   fetcher,
		Video:     ffmpeg.New(),
		Captioner: caption.NewGenerator(model, logger),
		Logger:    logger,
	})

	res, err := uc.Run(ctx, usecase.Input{
		URL:          cfg.URL,
		ClipDuration: cfg.ClipDuration,
		OutputPath:   filepath.Join(cfg.WorkDir, outputFileName),
	})
	if err != nil {
		return types.PipelineResult{}, err
	}

	resultPath := filepath.Join(cfg.WorkDir, resultFileName)
	if err := writeResult(resultPath, res); err != nil {
		return types.PipelineResult{}, err
	}
	logger.Info("pipeline finished",
		zap.String("clip", res.OutputVideoPath),
		zap.String("result", resultPath))
	return res, nil
}

// newFetcher picks the fetch adapter: direct media URLs go over plain HTTP,
// everything else through yt-dlp.
func newFetcher(cfg Config, logger *zap.Logger) (ports.MediaFetcher, error) {
	if httpfetch.IsDirectMediaURL(cfg.URL) {
		return httpfetch.New(cfg.WorkDir, logger), nil
	}
	opts := ytdlp.DefaultOptions(cfg.WorkDir)
	if cfg.YtdlpPath != "" {
		opts.BinaryPath = cfg.YtdlpPath
	}
	return ytdlp.New(opts, logger)
}

func writeResult(path string, res types.PipelineResult) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

// ensure adapters implement ports
var _ ports.MediaFetcher = (*ytdlp.Adapter)(nil)
var _ ports.MediaFetcher = (*httpfetch.Adapter)(nil)
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.CaptionModel = (*openai.Adapter)(nil)
var _ ports.Captioner = (*caption.Generator)(nil)
