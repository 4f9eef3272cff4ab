package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchbox/internal/ui/input/types"
	"searchbox/internal/ui/keys"
)

// QueryMode feeds keystrokes to the search box. Keys it does not claim
// fall through to the shared text input.
type QueryMode struct {
	keys      keys.KeyMap
	textInput *textinput.Model
}

func NewQueryMode(ti *textinput.Model, km keys.KeyMap) *QueryMode {
	return &QueryMode{keys: km, textInput: ti}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Dismiss):
		if ctx.HasError() {
			return []types.Action{types.DismissErrorAction{}}, true
		}
		if m.textInput != nil && m.textInput.Value() != "" {
			return []types.Action{types.ClearQueryAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.FocusResults):
		// Consumed either way so tab and arrows never reach the text input
		if ctx.ResultCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
		}
		return nil, true
	}

	return nil, false
}
