package types

import "fmt"

// FetchError reports a failure while acquiring source media. Fetch failures
// are fatal: the run aborts and is not retried.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch %s: %v", e.URL, e.Err) }

func (e *FetchError) Unwrap() error { return e.Err }

// TranscodeError reports an unreadable source, an invalid clip window, or a
// failed write of the output clip. Transcode failures are fatal and leave no
// partial file at the output path.
type TranscodeError struct {
	Path string
	Err  error
}

func (e *TranscodeError) Error() string { return fmt.Sprintf("transcode %s: %v", e.Path, e.Err) }

func (e *TranscodeError) Unwrap() error { return e.Err }

// CaptionError reports a captioning failure. It never escapes the caption
// generator; it exists so log output can classify the cause before the run
// falls back to the default caption.
type CaptionError struct {
	Err error
}

func (e *CaptionError) Error() string { return fmt.Sprintf("caption: %v", e.Err) }

func (e *CaptionError) Unwrap() error { return e.Err }
