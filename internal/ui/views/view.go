package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"searchbox/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Input          string // rendered search box
	InputFocused   bool
	Loading        bool
	SpinnerFrame   string
	Err            error
	StatusMessage  string
	Results        []domain.ResultItem
	Cursor         int
	ShowCursor     bool
	ViewportOffset int
	ViewportHeight int
	ShowThumbnails bool
	Selected       *domain.ResultItem
	SelectedText   string // plain-text description of Selected
	History        []domain.ResultItem
	HistoryLimit   int
	ShowHelp       bool
	HelpView       string // footer key hints
	FullHelp       string // key reference for the help overlay
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	resultRender *ResultRenderer
	detailRender *DetailRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		resultRender: NewResultRenderer(styles),
		detailRender: NewDetailRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	// Account for main container padding
	innerWidth := termWidth - 4
	if innerWidth < 20 {
		innerWidth = 20
	}

	content.WriteString(r.renderTitleLine(state, innerWidth))
	content.WriteString("\n\n")

	prompt := r.styles.Prompt.Render("Search: ")
	if !state.InputFocused {
		prompt = r.styles.Dim.Render("Search: ")
	}
	content.WriteString(prompt + state.Input)
	content.WriteString("\n")

	if state.Err != nil {
		content.WriteString(r.renderErrorBanner(state.Err, innerWidth))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(r.resultRender.RenderList(state, innerWidth))

	if state.Selected != nil {
		content.WriteString("\n\n")
		content.WriteString(r.detailRender.RenderSelected(*state.Selected, state.SelectedText, innerWidth))
	}

	content.WriteString("\n\n")
	content.WriteString(r.detailRender.RenderHistory(state.History, state.HistoryLimit, innerWidth))

	// Push the footer to the bottom of the screen
	helpText := r.styles.Help.Render(state.HelpView)
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		return r.renderHelpOverlay(state.FullHelp, termWidth, state.Height)
	}
	return finalContent
}

// renderTitleLine renders the logo with right-aligned activity indicators
func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	logo := r.styles.Title.Render("searchbox")

	var indicators []string
	if state.Loading {
		indicators = append(indicators, r.styles.StatusLoading.Render(fmt.Sprintf("%s Searching", state.SpinnerFrame)))
	}
	if state.StatusMessage != "" {
		indicators = append(indicators, r.styles.StatusWarning.Render(state.StatusMessage))
	}
	if len(indicators) == 0 {
		return logo
	}

	rightContent := strings.Join(indicators, r.styles.Dim.Render(" | "))
	paddingWidth := width - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

// renderErrorBanner renders the dismissible error line
func (r *Renderer) renderErrorBanner(err error, width int) string {
	hint := " (esc to dismiss)"
	msg := truncateLine("✗ "+err.Error(), width-lipgloss.Width(hint))
	return r.styles.ErrorBanner.Render(msg) + r.styles.Dim.Render(hint)
}

// renderHelpOverlay centers the key reference on screen
func (r *Renderer) renderHelpOverlay(fullHelp string, width, height int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("searchbox help"))
	b.WriteString("\n\n")
	b.WriteString(fullHelp)
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("Press ? or esc to close"))

	box := r.styles.HelpBox.Render(b.String())
	if height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
