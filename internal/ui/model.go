package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchbox/internal/config"
	"searchbox/internal/domain"
	"searchbox/internal/eventbus"
	"searchbox/internal/history"
	"searchbox/internal/searchapi"
	"searchbox/internal/textutil"
	"searchbox/internal/ui/input"
	inputtypes "searchbox/internal/ui/input/types"
	"searchbox/internal/ui/keys"
	"searchbox/internal/ui/logic"
	"searchbox/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	tracker *history.Tracker

	// Handlers
	dispatcher   *Dispatcher     // debounce and stale-response tracking
	inputHandler *input.Handler  // input handling
	renderer     *views.Renderer // view renderer
	pager        *PagerOps       // description pager
	navigator    *logic.Navigator
	help         help.Model
	keys         keys.KeyMap

	width  int
	height int

	// Search state
	query          string
	results        []domain.ResultItem
	cursor         int
	viewportOffset int
	viewportHeight int
	loading        bool
	spinnerFrame   int
	spinnerActive  bool
	statusMessage  string
	err            error

	// Selection and history
	selected     *domain.ResultItem
	selectedText string
	history      []domain.ResultItem
	// historyLoaded is false while the stored history could not be read.
	// Appends then stay in memory so the stored list is never overwritten.
	historyLoaded bool

	mounted           bool
	unsubscribeResize func()
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, searcher searchapi.Searcher, tracker *history.Tracker, bus eventbus.EventBus) *Model {
	return &Model{
		bus:            bus,
		config:         cfg,
		tracker:        tracker,
		dispatcher:     NewDispatcher(searcher, cfg.Debounce()),
		inputHandler:   input.New(cfg.UI.Placeholder, keys.Default),
		renderer:       views.NewRenderer(),
		pager:          NewPagerOps(),
		navigator:      logic.NewNavigator(),
		help:           help.New(),
		keys:           keys.Default,
		history:        []domain.ResultItem{},
		viewportHeight: 10, // Will be updated on first WindowSizeMsg
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init mounts the model: it loads the persisted history and subscribes the
// resize listener. A malformed history never fails the mount.
func (m *Model) Init() tea.Cmd {
	m.mount()
	return textinput.Blink
}

func (m *Model) mount() {
	if m.mounted {
		return
	}
	m.mounted = true
	m.unsubscribeResize = m.bus.Subscribe(eventbus.EventViewportResized, logResize)

	m.loadHistory()
	log.Printf("Mounted with %d history entries", len(m.history))
}

// loadHistory reads the stored history. Malformed data counts as loaded
// (empty); a read failure leaves historyLoaded false.
func (m *Model) loadHistory() error {
	items, err := m.tracker.Load()
	m.historyLoaded = err == nil || errors.Is(err, history.ErrMalformed)
	m.history = items
	m.bus.Publish(eventbus.HistoryLoadedEvent{Count: len(items)})
	if err != nil {
		m.setError(err)
	}
	return err
}

// Unmount releases the resize subscription and cancels in-flight searches.
// Safe to call more than once.
func (m *Model) Unmount() {
	m.dispatcher.Close()
	if m.unsubscribeResize != nil {
		m.unsubscribeResize()
		m.unsubscribeResize = nil
	}
	m.mounted = false
}

// logResize is the viewport resize listener
func logResize(event eventbus.DomainEvent) {
	if e, ok := event.(eventbus.ViewportResizedEvent); ok {
		log.Printf("Viewport resized: width=%d", e.Width)
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewport()
		m.bus.Publish(eventbus.ViewportResizedEvent{Width: msg.Width, Height: msg.Height})
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			Results:   len(m.results),
			Cursor:    m.cursor,
			Err:       m.err,
			Selection: m.selected != nil,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case searchDebounceMsg:
		return m, m.handleDebounce(msg)

	case searchResultsMsg:
		m.handleResults(msg)
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("pager failed: %w", msg.err))
		}
		return m, nil

	case spinnerTickMsg:
		if m.loading {
			m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
			return m, spinnerTick()
		}
		m.spinnerActive = false
		return m, nil

	default:
		// Non-keyboard messages such as the cursor blink
		return m, m.inputHandler.Update(msg)
	}
}

// processAction applies one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateQueryAction:
		m.query = a.Text
		return m.dispatcher.Schedule(a.Text)

	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SelectResultAction:
		m.selectResult(a.Index)

	case inputtypes.DismissErrorAction:
		m.err = nil
		m.updateViewport()

	case inputtypes.OpenPagerAction:
		if m.selected != nil {
			return m.pager.openPager(*m.selected, m.selectedText)
		}

	case inputtypes.QuitAction:
		m.Unmount()
		return tea.Quit
	}
	return nil
}

// handleDebounce fires the search if no keystroke arrived since msg was scheduled
func (m *Model) handleDebounce(msg searchDebounceMsg) tea.Cmd {
	cmd, ok := m.dispatcher.Fire(msg)
	if !ok {
		return nil
	}
	m.loading = true
	m.bus.Publish(eventbus.SearchRequestedEvent{Query: msg.query, RequestID: m.dispatcher.RequestID()})
	return tea.Batch(cmd, m.startSpinner())
}

// handleResults applies the latest search outcome and drops stale ones
func (m *Model) handleResults(msg searchResultsMsg) {
	if !m.dispatcher.Accept(msg) {
		log.Printf("Dropping stale results for %q (request %d, latest %d)", msg.query, msg.requestID, m.dispatcher.RequestID())
		return
	}
	m.loading = false

	if msg.err != nil {
		// Query and results stay as they were
		log.Printf("Search %q failed: %v", msg.query, msg.err)
		m.bus.Publish(eventbus.SearchFailedEvent{Query: msg.query, RequestID: msg.requestID, Err: msg.err})
		m.setError(fmt.Errorf("search failed: %w", msg.err))
		return
	}

	m.results = msg.items
	m.cursor = 0
	m.viewportOffset = 0
	m.err = nil
	m.statusMessage = ""
	if msg.dropped > 0 {
		m.statusMessage = fmt.Sprintf("%d malformed results skipped", msg.dropped)
	}
	m.updateViewport()
	m.bus.Publish(eventbus.SearchCompletedEvent{
		Query:     msg.query,
		RequestID: msg.requestID,
		Count:     len(msg.items),
		Dropped:   msg.dropped,
	})
}

// selectResult selects the result at index (-1 for the cursor), appends it
// to the history and persists the updated history
func (m *Model) selectResult(index int) {
	if index < 0 {
		index = m.cursor
	}
	if index >= len(m.results) {
		return
	}

	item := m.results[index]
	m.selected = &item
	m.selectedText = textutil.HTMLToText(item.Description)
	m.bus.Publish(eventbus.ItemSelectedEvent{Item: item})

	if !m.historyLoaded {
		unsaved := append([]domain.ResultItem(nil), m.history...)
		if err := m.loadHistory(); err != nil && !m.historyLoaded {
			m.history = append(unsaved, item)
			m.setError(fmt.Errorf("selection not saved, stored history is unreadable: %w", err))
			return
		}
		// Entries picked while storage was unreadable are kept too
		m.history = append(m.history, unsaved...)
	}

	updated, err := m.tracker.Append(m.history, item)
	m.history = updated
	if err != nil {
		m.setError(err)
	} else {
		m.bus.Publish(eventbus.HistoryPersistedEvent{Count: len(updated)})
	}
	m.updateViewport()
}

// setError shows err in the banner and publishes it
func (m *Model) setError(err error) {
	m.err = err
	m.bus.Publish(eventbus.ErrorEvent{Message: err.Error(), Err: err})
	m.updateViewport()
}

// navigate moves the cursor and keeps it inside the viewport
func (m *Model) navigate(direction string) {
	m.navigator.UpdateState(m.cursor, m.viewportOffset, m.viewportHeight, len(m.results))
	m.cursor, m.viewportOffset = m.navigator.Move(direction)
}

func (m *Model) ensureCursorVisible() {
	m.navigator.UpdateState(m.cursor, m.viewportOffset, m.viewportHeight, len(m.results))
	m.cursor, m.viewportOffset = m.navigator.SetSelectedIndex(m.cursor)
}

// updateViewport calculates the rows left for the result list
func (m *Model) updateViewport() {
	if m.height == 0 {
		return
	}
	innerWidth := m.width - 4

	// padding, title, input, blank, results header, scroll indicators, footer
	reserved := 2 + 2 + 1 + 1 + 1 + 2 + 2
	if m.err != nil {
		reserved++
	}
	if m.selected != nil {
		reserved += 2 + views.SelectedHeight(*m.selected, m.selectedText, innerWidth)
	}
	reserved += 2 + views.HistoryHeight(len(m.history), m.config.UI.HistoryDisplayLimit)

	m.viewportHeight = m.height - reserved
	if m.viewportHeight < 3 {
		m.viewportHeight = 3
	}
	m.ensureCursorVisible()
}

// startSpinner returns a spinnerTick command if the spinner isn't already active
func (m *Model) startSpinner() tea.Cmd {
	if m.spinnerActive {
		return nil
	}
	m.spinnerActive = true
	m.spinnerFrame = 0
	return spinnerTick()
}

// spinnerTick returns a command that fires a spinnerTickMsg after the spinner interval
func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	mode := m.inputHandler.CurrentMode()
	var helpView string
	if mode == inputtypes.ModeQuery {
		helpView = m.help.View(keys.QueryKeys{KeyMap: m.keys})
	} else {
		helpView = m.help.View(keys.BrowseKeys{KeyMap: m.keys})
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Input:          m.inputHandler.TextInput().View(),
		InputFocused:   mode == inputtypes.ModeQuery,
		Loading:        m.loading,
		SpinnerFrame:   spinnerFrames[m.spinnerFrame],
		Err:            m.err,
		StatusMessage:  m.statusMessage,
		Results:        m.results,
		Cursor:         m.cursor,
		ShowCursor:     mode == inputtypes.ModeBrowse,
		ViewportOffset: m.viewportOffset,
		ViewportHeight: m.viewportHeight,
		ShowThumbnails: m.config.UI.ShowThumbnails,
		Selected:       m.selected,
		SelectedText:   m.selectedText,
		History:        m.history,
		HistoryLimit:   m.config.UI.HistoryDisplayLimit,
		ShowHelp:       mode == inputtypes.ModeHelp,
		HelpView:       helpView,
		FullHelp:       m.help.FullHelpView(keys.BrowseKeys{KeyMap: m.keys}.FullHelp()),
	}
	return m.renderer.Render(state)
}
