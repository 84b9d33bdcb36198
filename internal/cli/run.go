package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/am8-code/Video-Clipper/internal/config"
	"github.com/am8-code/Video-Clipper/internal/pipeline"
)

func run(cmd *cobra.Command, url string) error {
	outDir, _ := cmd.Flags().GetString("out")
	durationSec, _ := cmd.Flags().GetInt("duration")

	appCfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}
	logger := appCfg.NewLogger()
	defer func() { _ = logger.Sync() }()

	cfg := pipeline.Config{
		URL:          url,
		WorkDir:      outDir,
		ClipDuration: time.Duration(durationSec) * time.Second,

		YtdlpPath: appCfg.YtdlpPath,

		OpenAIAPIKey:  appCfg.OpenAIAPIKey,
		OpenAIBaseURL: appCfg.OpenAIBaseURL,
		OpenAIModel:   appCfg.OpenAIModel,

		Logger: logger,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	res, err := pipeline.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Instagram Video: %s\n", res.OutputVideoPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Marketing Caption: %s\n", res.Caption)
	return nil
}
