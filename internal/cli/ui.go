package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ispi-lubango/tuscaviz/pkg/pipeline"
	"github.com/ispi-lubango/tuscaviz/pkg/report"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached = lipgloss.NewStyle().Foreground(colorGreen)

	styleRule = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
)

// figureNames are the human-readable figure names used in status lines.
var figureNames = map[string]string{
	pipeline.FigureConfusionMatrix: "Confusion matrix",
	pipeline.FigureROCCurves:       "ROC curves",
	pipeline.FigureDashboard:       "Combined dashboard",
}

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string, cached bool) {
	line := "  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path)
	if cached {
		line += " " + styleCached.Render(iconCached)
	}
	fmt.Println(line)
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(18)
	fmt.Println("  " + keyStyle.Render(key) + " " + StyleNumber.Render(value))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// =============================================================================
// Report Output
// =============================================================================

// printBanner prints the report heading between two rules.
func printBanner(r report.Report) {
	rule := styleRule.Render(strings.Repeat("=", 70))
	fmt.Println(rule)
	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s %s - Performance Visualization", r.Title, r.Version)))
	fmt.Println(StyleDim.Render("Confusion matrix, ROC curves and dashboard"))
	fmt.Println(rule)
	printNewline()
}

// printResult prints one status line per rendered figure, the headline
// metrics, and the written files.
func printResult(figures []string, res *pipeline.Result, paths []string) {
	for _, figure := range figures {
		printSuccess("%s generated", figureNames[figure])
		switch figure {
		case pipeline.FigureConfusionMatrix:
			printKeyValue("Global accuracy:", formatAccuracy(res.Summary.GlobalAccuracy))
		case pipeline.FigureROCCurves:
			printKeyValue("Mean AUC:", formatAUC(res.Summary.MeanAUC))
		}
	}
	printNewline()

	printInfo("Generated files:")
	for i, p := range paths {
		printFile(p, res.Artifacts[i].Cached)
	}
}

// formatAccuracy formats a percentage with two decimals, e.g. "92.25%".
func formatAccuracy(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// formatAUC formats an AUC with three decimals, e.g. "0.960".
func formatAUC(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
