package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo-manager/internal/config"
	"todo-manager/internal/domain"
	"todo-manager/internal/services"
)

// Renderer formats sections and rows for the terminal
type Renderer struct {
	display   config.DisplayConfig
	header    lipgloss.Style
	planned   lipgloss.Style
	completed lipgloss.Style
	muted     lipgloss.Style
}

// NewRenderer creates a renderer whose color profile follows out
func NewRenderer(display config.DisplayConfig, out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	renderer := &Renderer{
		display:   display,
		header:    r.NewStyle(),
		planned:   r.NewStyle(),
		completed: r.NewStyle(),
		muted:     r.NewStyle(),
	}
	if display.Color {
		renderer.header = renderer.header.Bold(true).Foreground(lipgloss.Color("62"))
		renderer.completed = renderer.completed.Faint(true).Foreground(lipgloss.Color("241"))
		renderer.muted = renderer.muted.Italic(true).Foreground(lipgloss.Color("244"))
	}
	return renderer
}

// Sections renders every section with 1-based row numbers
func (r *Renderer) Sections(sections []services.Section) string {
	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.header.Render(section.Title))
		b.WriteString("\n")
		if len(section.Tasks) == 0 {
			b.WriteString("  " + r.muted.Render("no tasks") + "\n")
			continue
		}
		for j, task := range section.Tasks {
			b.WriteString(r.Row(j+1, task))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Row renders one task line
func (r *Renderer) Row(number int, task domain.Task) string {
	line := fmt.Sprintf("%s %s", r.Symbol(task.Status), task.Title)
	style := r.planned
	if task.IsCompleted() {
		style = r.completed
	}
	return fmt.Sprintf("%3d. %s", number, style.Render(line))
}

// Symbol returns the status marker
func (r *Renderer) Symbol(status domain.Status) string {
	if status == domain.StatusCompleted {
		return r.display.CompletedSymbol
	}
	return r.display.PlannedSymbol
}

// SectionTitle returns the configured title for a priority
func (r *Renderer) SectionTitle(priority domain.Priority) string {
	if priority == domain.PriorityImportant {
		return r.display.ImportantTitle
	}
	return r.display.NormalTitle
}
