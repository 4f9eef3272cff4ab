package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"searchbox/internal/domain"
)

// maxDescriptionLines caps the inline description; the pager shows the rest
const maxDescriptionLines = 6

// DetailRenderer renders the selected-item region and the history region
type DetailRenderer struct {
	styles *Styles
}

// NewDetailRenderer creates a new detail renderer
func NewDetailRenderer(styles *Styles) *DetailRenderer {
	return &DetailRenderer{styles: styles}
}

// RenderSelected renders the selected-item region. text is the description
// already converted to plain text.
func (r *DetailRenderer) RenderSelected(item domain.ResultItem, text string, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.Section.Render("Selected Item"))
	b.WriteString("\n")

	body := []string{r.styles.ResultTitle.Render(truncateLine(item.DisplayTitle(), width-2))}
	if item.Subtitle != "" {
		body = append(body, r.styles.Subtitle.Render(truncateLine(item.Subtitle, width-2)))
	}

	if text == "" {
		body = append(body, r.styles.Dim.Render("No description."))
	} else {
		wrapped := lipgloss.NewStyle().Width(width - 2).Render(text)
		lines := strings.Split(wrapped, "\n")
		if len(lines) > maxDescriptionLines {
			lines = append(lines[:maxDescriptionLines],
				r.styles.Scroll.Render(fmt.Sprintf("… %d more lines, press o to read", len(lines)-maxDescriptionLines)))
		}
		body = append(body, lines...)
	}

	b.WriteString(r.styles.Selected.Render(strings.Join(body, "\n")))
	return b.String()
}

// RenderHistory renders the most recent limit history entries, oldest first
func (r *DetailRenderer) RenderHistory(history []domain.ResultItem, limit, width int) string {
	lines := []string{r.styles.Section.Render("Search History")}
	if len(history) == 0 {
		lines = append(lines, r.styles.Dim.Render("Nothing selected yet."))
		return strings.Join(lines, "\n")
	}

	start := 0
	if limit > 0 && len(history) > limit {
		start = len(history) - limit
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("… %d earlier", start)))
	}
	for _, item := range history[start:] {
		lines = append(lines, "  "+r.styles.HistoryEntry.Render(truncateLine(item.DisplayTitle(), width-2)))
	}
	return strings.Join(lines, "\n")
}

// SelectedHeight returns how many rows RenderSelected occupies for text
func SelectedHeight(item domain.ResultItem, text string, width int) int {
	rows := 2 // header + title
	if item.Subtitle != "" {
		rows++
	}
	if text == "" {
		return rows + 1
	}
	n := lipgloss.Height(lipgloss.NewStyle().Width(width - 2).Render(text))
	if n > maxDescriptionLines {
		n = maxDescriptionLines + 1
	}
	return rows + n
}

// HistoryHeight returns how many rows RenderHistory occupies
func HistoryHeight(count, limit int) int {
	if count == 0 {
		return 2
	}
	if limit > 0 && count > limit {
		return limit + 2
	}
	return count + 1
}
