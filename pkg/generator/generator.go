// Package generator runs the command-generation pipeline: prompt build,
// one blocking gateway call, parse, safety filter.
package generator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shellsage/shellsage/pkg/llm"
	"github.com/shellsage/shellsage/pkg/model"
	"github.com/shellsage/shellsage/pkg/parser"
	"github.com/shellsage/shellsage/pkg/prompts"
	"github.com/shellsage/shellsage/pkg/safety"
)

// Completion budget for one generation call.
const maxTokens = 512

type Generator struct {
	gateway llm.Gateway
	log     *zap.Logger
}

func New(gateway llm.Gateway, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{gateway: gateway, log: log}
}

// Generate turns a natural-language query into presentation records.
// It never fails: a gateway error short-circuits to a warning record
// carrying the failure message plus an explicitly absent command, so
// downstream rendering always has something structurally valid. The
// parser is not invoked on the failure path.
func (g *Generator) Generate(ctx context.Context, query string, qctx model.QueryContext) []model.Item {
	prompt := prompts.BuildGenerationPrompt(query, qctx)

	raw, err := g.gateway.Generate(ctx, prompt, maxTokens)
	if err != nil {
		g.log.Debug("gateway call failed", zap.Error(err))
		return []model.Item{
			{Type: model.TypeWarning, Content: fmt.Sprintf("Error: %s", err)},
			{Type: model.TypeCommand},
		}
	}

	result := parser.ParseGenerationResponse(raw)
	g.log.Debug("parsed model response",
		zap.Int("thoughts", len(result.Thoughts)),
		zap.Bool("has_command", result.Sections.Command != ""))

	if verdict := safety.Apply(query, qctx.OS, result); verdict.Replaced {
		g.log.Debug("command replaced by safety filter",
			zap.String("command", verdict.NewCommand),
			zap.String("reason", verdict.Reason))
	}
	return result.Items()
}
