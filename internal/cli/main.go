package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// DefaultURL is processed when no URL argument is given.
const DefaultURL = "https://youtu.be/TLKxdTmk-zc?si=vHXFEtw68Rg6ZR7X"

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "video-clipper [url]",
		Short:        "Turn an online video into a short promo clip with a marketing caption",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := DefaultURL
			if len(args) == 1 {
				url = args[0]
			}
			return run(cmd, url)
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("out", "downloads", "Working directory for the source and the exported clip")
	root.Flags().Int("duration", 15, "Clip duration in seconds")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
