package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Styles used by the print helpers. fatih/color drops the escape codes when
// the stream is not a terminal or NO_COLOR is set.
var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	bulletColor  = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// stdout and stderr are looked up on every call so redirected streams are
// honored.
func stdout() io.Writer { return os.Stdout }
func stderr() io.Writer { return os.Stderr }

// PrintSection prints a section header surrounded by blank lines.
func PrintSection(title string) {
	w := stdout()
	fmt.Fprintln(w)
	_, _ = headerColor.Fprintf(w, "▸ %s\n", title)
	fmt.Fprintln(w)
}

// PrintSuccess prints a success message with a checkmark.
func PrintSuccess(msg string) {
	_, _ = successColor.Fprintf(stdout(), "✓ %s\n", msg)
}

// PrintWarning prints a warning to stderr.
func PrintWarning(msg string) {
	_, _ = warningColor.Fprintf(stderr(), "⚠ %s\n", msg)
}

// PrintError prints an error message to stderr.
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(stderr(), "✗ %s\n", msg)
}

// PrintInfo prints a plain progress line.
func PrintInfo(msg string) {
	fmt.Fprintln(stdout(), msg)
}

// PrintDetail prints an indented follow-up line, such as the artifact a
// step produced.
func PrintDetail(msg string) {
	_, _ = dimColor.Fprintf(stdout(), "  → %s\n", msg)
}

// PrintLabelValue prints "label: value" indented under a section.
func PrintLabelValue(label, value string) {
	w := stdout()
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	_, _ = dimColor.Fprintln(w, value)
}

// PrintList prints bullet items at the given indent level.
func PrintList(items []string, indent int) {
	w := stdout()
	prefix := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = bulletColor.Fprintf(w, "%s• %s\n", prefix, item)
	}
}

// PrintTable prints rows in left-aligned columns sized to their widest cell.
// Cells beyond the header count are dropped.
func PrintTable(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], len(row[i]))
		}
	}

	w := stdout()
	line := func(c *color.Color, cells []string) {
		parts := make([]string, 0, len(widths))
		for i := 0; i < len(cells) && i < len(widths); i++ {
			parts = append(parts, fmt.Sprintf("%-*s", widths[i], cells[i]))
		}
		_, _ = c.Fprintln(w, "  "+strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	rules := make([]string, len(widths))
	for i, width := range widths {
		rules[i] = strings.Repeat("-", width)
	}

	line(headerColor, headers)
	line(dimColor, rules)
	for _, row := range rows {
		line(color.New(color.Reset), row)
	}
}

// PrintEmptyState prints a dimmed placeholder when there is nothing to list.
func PrintEmptyState(msg string) {
	_, _ = dimColor.Fprintf(stdout(), "  %s\n", msg)
}

// PrintCount formats count with the singular or plural noun.
func PrintCount(count int, singular, plural string) string {
	noun := plural
	if count == 1 {
		noun = singular
	}
	return fmt.Sprintf("%d %s", count, noun)
}
