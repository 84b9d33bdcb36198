package types

import "time"

// SourceMedia is the locally stored file produced by fetching a remote video.
// It is owned by a single pipeline run and discarded (not deleted from disk)
// when the run completes.
type SourceMedia struct {
	Path          string
	TotalDuration time.Duration
	Container     string
}

// PipelineResult is the record a successful run produces. Besides the clip
// on disk it is the only externally visible artifact of a run.
type PipelineResult struct {
	OutputVideoPath string `json:"output_video_path"`
	Caption         string `json:"caption"`
}
