package ytdlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultOptionsAreValid(t *testing.T) {
	opts := DefaultOptions("downloads")
	require.NoError(t, opts.Validate())
	require.Equal(t, filepath.Join("downloads", "source_video.%(ext)s"), opts.OutputTemplate)
	require.True(t, opts.NoOverwrites)
}

func TestOptionsValidate_MissingFields(t *testing.T) {
	cases := map[string]Options{
		"no binary":   {Format: "best", OutputTemplate: "x.%(ext)s"},
		"no format":   {BinaryPath: "yt-dlp", OutputTemplate: "x.%(ext)s"},
		"no template": {BinaryPath: "yt-dlp", Format: "best"},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, opts.Validate())
		})
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	_, err := New(Options{}, zap.NewNop())
	require.Error(t, err)
}

func TestBuildArgs(t *testing.T) {
	opts := DefaultOptions("downloads")
	a, err := New(opts, zap.NewNop())
	require.NoError(t, err)

	args := a.buildArgs("https://youtu.be/abc")
	require.Equal(t, []string{
		"-f", opts.Format,
		"-o", opts.OutputTemplate,
		"--no-overwrites",
		"--no-colors",
		"https://youtu.be/abc",
	}, args)
}

func TestBuildArgs_ProxyAndCookies(t *testing.T) {
	opts := DefaultOptions("downloads")
	opts.Proxy = "http://127.0.0.1:7890"
	opts.CookiesFile = "cookies.txt"
	a, err := New(opts, zap.NewNop())
	require.NoError(t, err)

	args := a.buildArgs("https://youtu.be/abc")
	require.Contains(t, args, "--proxy")
	require.Contains(t, args, "http://127.0.0.1:7890")
	require.Contains(t, args, "--cookies")
	require.Contains(t, args, "cookies.txt")
	require.Equal(t, "https://youtu.be/abc", args[len(args)-1])
}

func TestLocateDownload_PrefersMergedMP4(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"source_video.m4a", "source_video.mp4", "source_video.webm"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	got, err := locateDownload(filepath.Join(dir, "source_video.%(ext)s"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "source_video.mp4"), got)
}

func TestLocateDownload_NoMatch(t *testing.T) {
	_, err := locateDownload(filepath.Join(t.TempDir(), "source_video.%(ext)s"))
	require.Error(t, err)
}
