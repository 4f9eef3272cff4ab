package views

import (
	"fmt"
	"strings"

	"searchbox/internal/domain"
	"searchbox/internal/textutil"
)

// ResultRenderer handles rendering of the result list
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{styles: styles}
}

// RenderList renders the visible window of results with scroll indicators
func (r *ResultRenderer) RenderList(state ViewState, width int) string {
	header := r.styles.Section.Render(fmt.Sprintf("Results (%d)", len(state.Results)))
	if len(state.Results) == 0 {
		hint := "Type to search."
		if state.Loading {
			hint = "Searching..."
		}
		return header + "\n" + r.styles.Dim.Render(hint)
	}

	height := state.ViewportHeight
	if height <= 0 || height > len(state.Results) {
		height = len(state.Results)
	}
	offset := state.ViewportOffset
	if offset < 0 {
		offset = 0
	}
	if offset > len(state.Results)-height {
		offset = len(state.Results) - height
	}
	end := offset + height

	lines := []string{header}
	if offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}
	for i := offset; i < end; i++ {
		isCurrent := state.ShowCursor && i == state.Cursor
		lines = append(lines, r.RenderResult(state.Results[i], isCurrent, state.ShowThumbnails, width))
	}
	if below := len(state.Results) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return strings.Join(lines, "\n")
}

// RenderResult renders one result as a single line: title, subtitle and
// optionally the thumbnail URL
func (r *ResultRenderer) RenderResult(item domain.ResultItem, isCurrent, showThumbnail bool, width int) string {
	marker := "  "
	if isCurrent {
		marker = r.styles.Cursor.Render("▸ ")
	}
	avail := width - 2

	title := truncateLine(item.DisplayTitle(), avail)
	avail -= cellWidth(title)
	parts := []string{r.styles.ResultTitle.Render(title)}

	if item.Subtitle != "" && avail > 4 {
		subtitle := truncateLine(item.Subtitle, avail-2)
		avail -= cellWidth(subtitle) + 2
		parts = append(parts, r.styles.Subtitle.Render(subtitle))
	}
	if showThumbnail && item.Thumbnail != "" && avail > 6 {
		thumb := truncateLine(item.Thumbnail, avail-2)
		parts = append(parts, r.styles.Thumbnail.Render(thumb))
	}

	line := strings.Join(parts, "  ")
	if isCurrent {
		line = r.styles.HighlightBg.Render(line)
	}
	return marker + line
}

// truncateLine flattens s to one escape-free row of at most width cells
func truncateLine(s string, width int) string {
	return textutil.Truncate(textutil.SingleLine(s), width)
}

func cellWidth(s string) int {
	return textutil.Width(s)
}
