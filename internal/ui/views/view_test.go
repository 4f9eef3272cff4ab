package views

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"searchbox/internal/domain"
)

func TestRenderResultFitsWidth(t *testing.T) {
	r := NewResultRenderer(NewStyles())
	item := domain.ResultItem{
		Title:     strings.Repeat("very long title ", 10),
		Subtitle:  "subtitle",
		Thumbnail: "https://example.com/thumb.png",
	}

	line := r.RenderResult(item, true, true, 40)
	assert.LessOrEqual(t, lipgloss.Width(line), 40)
	assert.Contains(t, line, "▸")
}

func TestRenderResultUntitledAndEscapes(t *testing.T) {
	r := NewResultRenderer(NewStyles())

	line := r.RenderResult(domain.ResultItem{}, false, false, 40)
	assert.Contains(t, line, domain.UntitledLabel)

	line = r.RenderResult(domain.ResultItem{Title: "evil\x1b]0;pwned\x07"}, false, false, 40)
	assert.NotContains(t, line, "\x07")
	assert.Contains(t, line, "evil")
}

func TestRenderListScrollIndicators(t *testing.T) {
	r := NewResultRenderer(NewStyles())
	var results []domain.ResultItem
	for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
		results = append(results, domain.ResultItem{Title: title})
	}

	out := r.RenderList(ViewState{Results: results, ViewportOffset: 2, ViewportHeight: 2}, 60)
	assert.Contains(t, out, "Results (6)")
	assert.Contains(t, out, "↑ 2 more above ↑")
	assert.Contains(t, out, "↓ 2 more below ↓")
	assert.Contains(t, out, "  c")
	assert.NotContains(t, out, "  f")
}

func TestRenderHistoryLimit(t *testing.T) {
	r := NewDetailRenderer(NewStyles())
	history := []domain.ResultItem{{Title: "one"}, {Title: "two"}, {Title: "three"}}

	out := r.RenderHistory(history, 2, 60)
	assert.Contains(t, out, "Search History")
	assert.Contains(t, out, "… 1 earlier")
	assert.NotContains(t, out, "one")
	assert.Contains(t, out, "three")
	assert.Equal(t, HistoryHeight(3, 2), strings.Count(out, "\n")+1)
}

func TestRenderSelectedTruncatesLongDescription(t *testing.T) {
	r := NewDetailRenderer(NewStyles())
	text := strings.Repeat("line\n", 20)

	out := r.RenderSelected(domain.ResultItem{Title: "t"}, strings.TrimSpace(text), 60)
	assert.Contains(t, out, "Selected Item")
	assert.Contains(t, out, "press o to read")
}

func TestRenderShowsErrorBanner(t *testing.T) {
	out := NewRenderer().Render(ViewState{Width: 80, Height: 24, Err: errors.New("search failed: boom")})
	assert.Contains(t, out, "search failed: boom")
	assert.Contains(t, out, "esc to dismiss")
}
