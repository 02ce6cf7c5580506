// Package diagnose runs the error-diagnosis pipeline: prompt build, one
// blocking gateway call, diagnosis parse.
package diagnose

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shellsage/shellsage/pkg/llm"
	"github.com/shellsage/shellsage/pkg/model"
	"github.com/shellsage/shellsage/pkg/parser"
	"github.com/shellsage/shellsage/pkg/prompts"
)

// Completion budget for one diagnosis call. Diagnoses run longer than
// generated commands.
const maxTokens = 1024

type Diagnoser struct {
	gateway llm.Gateway
	log     *zap.Logger
}

func New(gateway llm.Gateway, log *zap.Logger) *Diagnoser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Diagnoser{gateway: gateway, log: log}
}

// Diagnose asks the model to explain a failed command. The diagnosis
// vocabulary has no warning slot to absorb failures in-band, so gateway
// errors surface to the caller.
func (d *Diagnoser) Diagnose(ctx context.Context, ec model.ErrorContext) (*model.DiagnosisResult, error) {
	prompt := prompts.BuildDiagnosisPrompt(ec)

	raw, err := d.gateway.Generate(ctx, prompt, maxTokens)
	if err != nil {
		return nil, fmt.Errorf("model gateway: %w", err)
	}

	result := parser.ParseDiagnosisResponse(raw)
	d.log.Debug("parsed diagnosis",
		zap.Int("thoughts", len(result.Thoughts)),
		zap.Bool("has_fix", result.Sections.Fix != ""))
	return result, nil
}
