// Package formatter renders pipeline results for humans or machines.
package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/shellsage/shellsage/pkg/model"
)

// DisplayGeneration formats and displays command generation results
func DisplayGeneration(items []model.Item, format string) error {
	switch format {
	case "json":
		return displayJSON(items)
	case "yaml":
		return displayYAML(items)
	case "human":
		fallthrough
	default:
		displayGenerationHuman(items)
	}
	return nil
}

func displayJSON(v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayGenerationHuman(items []model.Item) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	fmt.Println()
	cyan.Println("COMMAND ANALYSIS")
	fmt.Println()

	for _, item := range items {
		if item.Type == model.TypeThinking {
			fmt.Printf("   %s\n", color.HiBlackString("› %s", item.Content))
		}
	}

	var commandItem *model.Item
	for i := range items {
		switch items[i].Type {
		case model.TypeWarning:
			fmt.Printf("   %s\n", color.RedString("⚠ %s", items[i].Content))
		case model.TypeAnalysis:
			fmt.Printf("   %s\n", color.CyanString("ⓘ %s", items[i].Content))
		case model.TypeDetails:
			fmt.Printf("   %s\n", color.HiBlackString(items[i].Content))
		case model.TypeCommand:
			if commandItem == nil {
				commandItem = &items[i]
			}
		}
	}

	fmt.Println()
	if commandItem != nil && commandItem.Content != "" {
		green.Println("Generated Command:")
		fmt.Printf("   %s\n", color.GreenString(CleanCommand(commandItem.Content)))
	} else {
		red.Println("No valid command generated")
	}

	fmt.Println()
	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

// CleanCommand strips markdown fences and backticks from a generated
// command so it can run as-is, including a leading language tag left
// over from a fenced code block.
func CleanCommand(raw string) string {
	cmd := strings.TrimSpace(raw)
	cmd = strings.Trim(cmd, "`")
	cmd = strings.TrimSpace(cmd)
	if first, rest, ok := strings.Cut(cmd, "\n"); ok {
		switch strings.ToLower(strings.TrimSpace(first)) {
		case "bash", "sh", "shell", "zsh", "powershell", "cmd", "batch":
			cmd = strings.TrimSpace(rest)
		}
	}
	return cmd
}
