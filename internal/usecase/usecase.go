package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/am8-code/Video-Clipper/internal/domain/clipwindow"
	"github.com/am8-code/Video-Clipper/internal/ports"
	"github.com/am8-code/Video-Clipper/internal/types"
)

type Deps struct {
	Fetcher   ports.MediaFetcher
	Video     ports.VideoTool
	Captioner ports.Captioner
	Logger    *zap.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	URL          string
	ClipDuration time.Duration
	OutputPath   string
}

// Run executes one pipeline pass: fetch the source, generate the caption,
// cut and re-encode the centered clip window, and assemble the result.
// Fetch and transcode failures are fatal and typed; captioning cannot fail.
func (u Usecase) Run(ctx context.Context, in Input) (types.PipelineResult, error) {
	media, err := u.d.Fetcher.Fetch(ctx, in.URL)
	if err != nil {
		return types.PipelineResult{}, &types.FetchError{URL: in.URL, Err: err}
	}
	u.d.Logger.Info("source media ready",
		zap.String("path", media.Path),
		zap.String("container", media.Container))

	// Captioning does not depend on the source media and degrades to a
	// fixed fallback instead of failing.
	captionText := u.d.Captioner.Caption(ctx)

	total, err := u.d.Video.ProbeDuration(ctx, media.Path)
	if err != nil {
		return types.PipelineResult{}, &types.TranscodeError{Path: media.Path, Err: err}
	}
	media.TotalDuration = total

	// Clamp so the cut never reads past the end of a short source.
	win := clipwindow.Centered(total, in.ClipDuration).Clamp(total)
	u.d.Logger.Info("clip window selected",
		zap.Duration("start", win.Start),
		zap.Duration("end", win.End),
		zap.Duration("total", total))

	if err := u.d.Video.ExportClip(ctx, media.Path, win.Start, win.End, in.OutputPath); err != nil {
		return types.PipelineResult{}, &types.TranscodeError{Path: media.Path, Err: err}
	}

	return types.PipelineResult{
		OutputVideoPath: in.OutputPath,
		Caption:         captionText,
	}, nil
}
