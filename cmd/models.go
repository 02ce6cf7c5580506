package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellsage/shellsage/pkg/config"
	"github.com/shellsage/shellsage/pkg/llm"
)

func NewModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List models installed in the local Ollama instance",
		Args:  cobra.NoArgs,
		RunE:  runModels,
	}
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	models, err := llm.NewOllama(cfg.OllamaHost, cfg.LocalModel).ListModels(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list local models: %w", err)
	}

	if len(models) == 0 {
		fmt.Println("No local models found. Is Ollama running?")
		return nil
	}

	fmt.Println("Installed Ollama models:")
	for _, name := range models {
		fmt.Printf("- %s\n", name)
	}
	return nil
}
