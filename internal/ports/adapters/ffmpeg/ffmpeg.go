// Package ffmpeg implements the transcoder on top of the ffmpeg-go bindings.
package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Encoding parameters are a static platform contract, not data-dependent.
// The output keeps the source's native resolution: no scaling or cropping.
const (
	videoCodec = "libx264"
	audioCodec = "aac"
	frameRate  = 30
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration reads the container-level duration of a local media file.
func (a *Adapter) ProbeDuration(ctx context.Context, path string) (time.Duration, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, errors.Wrapf(err, "probe %s", path)
	}
	return parseProbeDuration(out)
}

func parseProbeDuration(probe string) (time.Duration, error) {
	var data probeOutput
	if err := json.Unmarshal([]byte(probe), &data); err != nil {
		return 0, errors.Wrap(err, "parse probe output")
	}
	sec, err := strconv.ParseFloat(data.Format.Duration, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse duration %q", data.Format.Duration)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

// ExportClip cuts [start, end) of both tracks from inPath and re-encodes it
// to outPath. The clip is written to a temporary file in the same directory
// and renamed into place, so a failed run never leaves a partial file at
// outPath; a complete previous output is overwritten by the rename.
func (a *Adapter) ExportClip(ctx context.Context, inPath string, start, end time.Duration, outPath string) error {
	if end <= start {
		return errors.Errorf("invalid clip window [%s, %s)", start, end)
	}

	tmp := tempOutputPath(outPath)
	err := ffmpeg.Input(inPath, ffmpeg.KwArgs{"ss": fmtSeconds(start)}).
		Output(tmp, ffmpeg.KwArgs{
			"t":        fmtSeconds(end - start),
			"c:v":      videoCodec,
			"c:a":      audioCodec,
			"r":        frameRate,
			"movflags": "+faststart",
			"f":        "mp4",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "export clip from %s", inPath)
	}

	if err := os.Rename(tmp, outPath); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "move clip into place")
	}
	return nil
}

// tempOutputPath stays on the same filesystem as outPath so the final rename
// is atomic.
func tempOutputPath(outPath string) string {
	dir := filepath.Dir(outPath)
	base := filepath.Base(outPath)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()[:8]))
}

func fmtSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
