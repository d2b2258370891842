package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/girderloads/internal/status"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorOK      = lipgloss.Color("#2CD7C7")
	colorInfo    = lipgloss.Color("#20B9B4")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

var styles = struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	OK      lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorOK),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	OK:      lipgloss.NewStyle().Foreground(colorOK),
	Info:    lipgloss.NewStyle().Foreground(colorInfo),
	Warning: lipgloss.NewStyle().Foreground(colorWarning),
	Error:   lipgloss.NewStyle().Foreground(colorError),
}

func severityIcon(s status.Severity) string {
	switch s {
	case status.Error:
		return styles.Error.Render("✗")
	case status.Warning:
		return styles.Warning.Render("⚠")
	default:
		return styles.Info.Render("•")
	}
}

func severityText(s status.Severity) string {
	switch s {
	case status.Error:
		return styles.Error.Render(s.String())
	case status.Warning:
		return styles.Warning.Render(s.String())
	default:
		return styles.Info.Render(s.String())
	}
}

func success(format string, args ...interface{}) {
	fmt.Printf("  %s %s\n", styles.OK.Render("✓"), fmt.Sprintf(format, args...))
}

func warn(format string, args ...interface{}) {
	fmt.Printf("  %s %s\n", styles.Warning.Render("⚠"), fmt.Sprintf(format, args...))
}

// fail prints an error line and makes the process exit non-zero.
func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", styles.Error.Render("✗"), fmt.Sprintf(format, args...))
	exitCode = 1
}

func heading(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", styles.Title.Render(title))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func section(title string) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
}
