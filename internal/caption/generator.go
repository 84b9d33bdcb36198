// Package caption generates the marketing caption paired with an exported
// clip. Captioning is best-effort: any model failure degrades to a fixed
// fallback string instead of aborting the run.
package caption

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/am8-code/Video-Clipper/internal/ports"
	"github.com/am8-code/Video-Clipper/internal/types"
)

const (
	// Prompt is the fixed creative prompt sent to the caption model.
	Prompt = "Create a catchy marketing caption for a viral video"

	// Fallback substitutes for the model output on any failure.
	Fallback = "Check out this amazing video!"

	// maxTokens bounds the single requested continuation.
	maxTokens = 100
)

type Generator struct {
	model  ports.CaptionModel
	logger *zap.Logger
}

func NewGenerator(model ports.CaptionModel, logger *zap.Logger) *Generator {
	return &Generator{model: model, logger: logger}
}

// Caption requests exactly one continuation of the fixed prompt and returns
// it with surrounding whitespace stripped. A model error or blank output is
// logged at warn level and replaced by Fallback; the returned string is
// never empty.
func (g *Generator) Caption(ctx context.Context) string {
	text, err := g.model.Generate(ctx, Prompt, maxTokens)
	if err != nil {
		g.logger.Warn("caption generation failed, using fallback",
			zap.Error(&types.CaptionError{Err: err}))
		return Fallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		g.logger.Warn("caption model returned empty text, using fallback")
		return Fallback
	}
	return text
}
