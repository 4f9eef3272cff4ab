package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchbox/internal/ui/input/types"
	"searchbox/internal/ui/keys"
)

// HelpMode swallows every key except the ones that close the overlay
type HelpMode struct {
	keys keys.KeyMap
}

func NewHelpMode(km keys.KeyMap) *HelpMode {
	return &HelpMode{keys: km}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Dismiss), key.Matches(msg, m.keys.Quit):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
	}
	return nil, true
}
