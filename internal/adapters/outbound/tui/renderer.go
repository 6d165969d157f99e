package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/validgen/validgen/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	faintStyle  = lipgloss.NewStyle().Foreground(faint)
	okStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	warnStyle   = lipgloss.NewStyle().Foreground(warning)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	schemaStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	fileStyle   = lipgloss.NewStyle().Foreground(dim)
)

// RenderReport renders an analysis report as a styled TUI string.
func RenderReport(report *domain.AnalysisReport) string {
	var b strings.Builder

	header := headerStyle.Render("validgen") + "  " +
		dimStyle.Render(fmt.Sprintf("%d schemas in %d files", report.SchemaCount(), len(report.Files)))
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n")

	for _, file := range report.Files {
		b.WriteString("\n  " + fileStyle.Render(file.Path) + "\n")
		for _, sd := range file.Schemas {
			renderSchema(&b, sd)
		}
	}

	renderPathList(&b, "Stale generated files (rerun validgen generate)", report.Stale, warnStyle)
	renderPathList(&b, "Orphaned generated files (source removed)", report.Orphans, failStyle)

	return b.String()
}

func renderSchema(b *strings.Builder, sd domain.SchemaDescriptor) {
	mode := dimStyle.Render(string(sd.Schema.Mode))
	b.WriteString(fmt.Sprintf("    %s %s\n", schemaStyle.Render(sd.Schema.Name), mode))

	for _, fd := range sd.Fields {
		if len(fd.Rules) == 0 && len(fd.Modifiers) == 0 {
			continue
		}

		var marks []string
		for _, r := range fd.Rules {
			marks = append(marks, okStyle.Render(string(r.Kind)))
		}
		for _, m := range fd.Modifiers {
			marks = append(marks, warnStyle.Render(string(m.Kind)))
		}

		b.WriteString(fmt.Sprintf("      %s %s  %s\n",
			titleStyle.Render(fd.Field.Name),
			faintStyle.Render(fd.Signature.Text),
			strings.Join(marks, " "),
		))
	}
}

func renderPathList(b *strings.Builder, title string, paths []string, style lipgloss.Style) {
	if len(paths) == 0 {
		return
	}
	b.WriteString("\n  " + style.Render(title) + "\n")
	for _, p := range paths {
		b.WriteString("    " + style.Render("●") + " " + p + "\n")
	}
}

// RenderGenerateResult renders a generation run summary.
func RenderGenerateResult(result *domain.GenerateResult) string {
	var b strings.Builder

	header := headerStyle.Render("validgen") + "  " +
		dimStyle.Render(fmt.Sprintf("generated %d files", len(result.Files)))
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n")

	for _, f := range result.Files {
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			okStyle.Render("●"),
			fileStyle.Render(f.Source),
			faintStyle.Render("→"),
			f.Output,
		))
		b.WriteString("    " + dimStyle.Render(strings.Join(f.Schemas, ", ")) + "\n")
	}

	if result.Commit != "" {
		short := result.Commit
		if len(short) > 12 {
			short = short[:12]
		}
		b.WriteString("  " + faintStyle.Render("commit "+short) + "\n")
	}

	return b.String()
}

// RenderAnalysisError renders a fatal analysis error with its span.
func RenderAnalysisError(err *domain.AnalysisError) string {
	return fmt.Sprintf("%s %s\n  %s\n",
		failStyle.Render("✗"),
		titleStyle.Render(err.Span.String()),
		err.Msg,
	)
}

// RenderVocabulary lists the rule and modifier keyword namespaces.
func RenderVocabulary() string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("validation rules") + "  " +
		dimStyle.Render("(validate tag)") + "\n")
	for _, k := range domain.RuleKinds() {
		b.WriteString("    " + okStyle.Render(string(k)) + "\n")
	}

	b.WriteString("\n  " + headerStyle.Render("modifiers") + "  " +
		dimStyle.Render("(modify tag)") + "\n")
	for _, k := range domain.ModifierKinds() {
		b.WriteString("    " + warnStyle.Render(string(k)) + "\n")
	}

	return b.String()
}
