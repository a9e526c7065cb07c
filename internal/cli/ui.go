package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/blobposter/pkg/palette"
)

// =============================================================================
// Colors and Styles
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorBlue   = lipgloss.Color("75")  // commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // muted
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for names and emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning     = lipgloss.NewStyle().Foreground(colorYellow)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	swatchBlock = "█"
)

// =============================================================================
// Status Output
// =============================================================================

// status prints msg behind a styled icon. Results go to stdout, problems to
// stderr.
func status(w io.Writer, icon string, iconStyle lipgloss.Style, msg string) {
	fmt.Fprintln(w, iconStyle.Render(icon)+" "+msg)
}

func printSuccess(format string, args ...any) {
	status(os.Stdout, iconSuccess, styleIconSuccess, fmt.Sprintf(format, args...))
}

func printInfo(format string, args ...any) {
	status(os.Stdout, iconInfo, styleIconInfo, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	status(os.Stderr, iconError, styleIconError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	status(os.Stderr, iconWarning, styleIconWarning, styleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints one line of poster facts, e.g.
// "8 blobs · 3 colors · seed 42 · cached".
func printStats(layers, colors int, seed int64, cached bool) {
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d blobs", layers)),
		StyleDim.Render(fmt.Sprintf("%d colors", colors)),
		StyleDim.Render(fmt.Sprintf("seed %d", seed)),
	}
	if cached {
		parts = append(parts, styleCached.Render("cached"))
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests a command to run.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Swatches
// =============================================================================

// swatch renders width blocks in the entry's color.
func swatch(e palette.Entry, width int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(e.Hex())).
		Render(strings.Repeat(swatchBlock, width))
}

// swatchRow renders a short swatch per entry.
func swatchRow(entries []palette.Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = swatch(e, 2)
	}
	return strings.Join(parts, " ")
}
