package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/registry"
	"github.com/matzehuels/composite/pkg/shape"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleError for error messages.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleSection = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

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

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
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
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(16)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints figure statistics on a single line.
func printStats(filled, holes int, cached bool) {
	parts := []string{
		fmt.Sprintf("%d filled", filled),
		fmt.Sprintf("%d holes", holes),
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}
	parts = append(parts, statusStyle.Render(status))

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// =============================================================================
// Figure Output
// =============================================================================

const (
	headingFilled = "Composite Shape - Filled Parts"
	headingHoles  = "Holes (Cut-outs)"
	emptyFilled   = "No filled shapes added."
	emptyHoles    = "No holes added."
)

// resultMessage formats a successful computation the way both the form and
// the compute command report it.
func resultMessage(res composite.Result) string {
	return fmt.Sprintf("Composite centroid is at (X: %.2f, Y: %.2f) with total area %.2f.",
		res.Centroid.X(), res.Centroid.Y(), res.TotalArea)
}

// shapeListing renders the filled shapes and the holes of a registry as two
// headed tables.
func shapeListing(snap registry.Snapshot) string {
	var b strings.Builder
	b.WriteString(styleSection.Render(headingFilled))
	b.WriteString("\n")
	b.WriteString(shapeTable(snap.Filled, emptyFilled))
	b.WriteString("\n\n")
	b.WriteString(styleSection.Render(headingHoles))
	b.WriteString("\n")
	b.WriteString(shapeTable(snap.Holes, emptyHoles))
	return b.String()
}

// shapeTable renders one role's records, numbered from 1.
func shapeTable(recs []shape.Record, empty string) string {
	if len(recs) == 0 {
		return StyleDim.Render(empty)
	}

	rows := make([][]string, len(recs))
	for i, rec := range recs {
		c := rec.Centroid()
		rows[i] = []string{
			strconv.Itoa(i + 1),
			rec.Kind().String(),
			dimensionText(rec.Dimensions()),
			fmt.Sprintf("(%.2f, %.2f)", c.X(), c.Y()),
			fmt.Sprintf("%.2f", rec.Area()),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Kind", "Dimensions", "Centroid", "Area").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case col == 4:
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			case col == 0:
				return base.Foreground(colorDim).Align(lipgloss.Right)
			default:
				return base.Foreground(colorWhite)
			}
		})
	return t.Render()
}

// dimensionText prints dimensions as "length 4 × width 2".
func dimensionText(d shape.Dimensions) string {
	names := shape.DimensionNames(d.Kind())
	values := d.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = names[i] + " " + strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " × ")
}
