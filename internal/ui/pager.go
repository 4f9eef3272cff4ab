package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"searchbox/internal/domain"
)

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowItem opens the item's plain-text description in the pager
func (p *PagerOps) ShowItem(item domain.ResultItem, text string) error {
	return p.show(PagerDocument(item, text))
}

// PagerDocument is the text handed to the pager for item
func PagerDocument(item domain.ResultItem, text string) string {
	var b strings.Builder
	b.WriteString(item.DisplayTitle())
	b.WriteString("\n")
	if item.Subtitle != "" {
		b.WriteString(item.Subtitle)
		b.WriteString("\n")
	}
	if item.Thumbnail != "" {
		b.WriteString(item.Thumbnail)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(text)
	b.WriteString("\n")
	return b.String()
}

func (p *PagerOps) show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// openPager returns a command that runs the pager and reports back
func (p *PagerOps) openPager(item domain.ResultItem, text string) tea.Cmd {
	return func() tea.Msg {
		return pagerMsg{err: p.ShowItem(item, text)}
	}
}
