package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/shellsage/shellsage/pkg/model"
)

// DisplayDiagnosis formats and displays error analysis results along
// with the context that informed them.
func DisplayDiagnosis(res *model.DiagnosisResult, ec model.ErrorContext, format string) error {
	switch format {
	case "json":
		return displayJSON(res.Items())
	case "yaml":
		return displayYAML(res.Items())
	case "human":
		fallthrough
	default:
		displayDiagnosisHuman(res, ec)
	}
	return nil
}

func displayDiagnosisHuman(res *model.DiagnosisResult, ec model.ErrorContext) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Println()
	cyan.Println("Error Analysis")

	for _, thought := range res.Thoughts {
		fmt.Printf("   %s\n", color.HiBlackString("› %s", thought))
	}

	if len(ec.History) > 0 {
		fmt.Println()
		fmt.Println(color.HiBlackString("Recent Commands:"))
		start := len(ec.History) - 3
		if start < 0 {
			start = 0
		}
		for _, cmd := range ec.History[start:] {
			fmt.Printf("   %s\n", color.HiBlackString("› %s", cmd))
		}
	}

	if len(ec.RelevantFiles) > 0 {
		fmt.Println()
		fmt.Println(color.HiBlackString("Related Files:"))
		for _, file := range ec.RelevantFiles {
			fmt.Printf("   %s\n", color.HiBlackString("› %s", file))
		}
	}

	if ec.ManExcerpt != "" && !strings.Contains(ec.ManExcerpt, "No manual entry") {
		fmt.Println()
		fmt.Println(color.HiBlackString("📘 Manual Reference:"))
		fmt.Println(indent(ec.ManExcerpt, "   "))
	}

	sections := res.Sections
	if sections.Cause != "" {
		fmt.Println()
		fmt.Printf("🔍 %s\n", color.CyanString("Root Cause:"))
		fmt.Println(indent(sections.Cause, "   "))
	}
	if sections.Explanation != "" {
		fmt.Println()
		fmt.Printf("📚 %s\n", color.CyanString("Technical Explanation:"))
		fmt.Println(indent(sections.Explanation, "   "))
	}
	if sections.Fix != "" {
		fmt.Println()
		green.Println("⚡ RECOMMENDED FIX:")
		fmt.Printf("   %s\n", color.GreenString(CleanCommand(sections.Fix)))
	}
	if sections.Risk != "" {
		fmt.Println()
		yellow.Println("⚠️  Potential Risks:")
		fmt.Println(indent(sections.Risk, "   "))
	}
	if sections.Prevention != "" {
		fmt.Println()
		yellow.Println("🔒 Prevention Tip:")
		fmt.Println(indent(sections.Prevention, "   "))
	}
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
