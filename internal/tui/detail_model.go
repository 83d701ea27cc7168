package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/loader"
)

// DetailModel is the detail screen of one character.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DetailModel struct {
	id     int64
	ctx    context.Context
	loader *loader.Detail
	assets *Assets

	state  ViewState
	detail character.Detail

	width  int
	height int

	loadingState *LoadingState
}

// NewDetailModel mounts a detail screen for characterID and starts its fetch.
func NewDetailModel(
	ctx context.Context,
	source loader.DetailSource,
	characterID character.ID,
	assets *Assets,
) (DetailModel, tea.Cmd) {
	m := DetailModel{
		id:           nextScreenID(),
		ctx:          ctx,
		loader:       loader.NewDetail(source, characterID),
		assets:       assets,
		state:        ViewStateLoading,
		width:        defaultWidth,
		height:       defaultHeight,
		loadingState: NewLoadingState("Loading character...", assets.Styles(character.ThemeHuman).Spinner),
	}
	return m, m.Init()
}

// ScreenID identifies the screen for result routing.
func (m DetailModel) ScreenID() int64 {
	return m.id
}

// CharacterID returns the id the screen was mounted with.
func (m DetailModel) CharacterID() character.ID {
	return m.loader.ID()
}

// Quitting reports whether the screen asked the program to exit.
func (m DetailModel) Quitting() bool {
	return m.state == ViewStateQuitting
}

// Unmount detaches the loader so a late result is ignored.
func (m DetailModel) Unmount() {
	m.loader.Unmount()
}

// State returns the loader state the screen renders.
func (m DetailModel) State() loader.DetailState {
	return m.loader.State()
}

// Init starts the spinner and the single fetch of this mount.
func (m DetailModel) Init() tea.Cmd {
	return tea.Batch(m.loadingState.Init(), m.fetch())
}

func (m DetailModel) fetch() tea.Cmd {
	ctx, d, id := m.ctx, m.loader, m.id
	return func() tea.Msg {
		return DetailLoadedMsg{ScreenID: id, State: d.Fetch(ctx)}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case DetailLoadedMsg:
		return m.handleLoaded(msg)
	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		return m, m.loadingState.Update(msg)
	case tea.KeyMsg:
		return m.handleKeypress(msg)
	}
	return m, nil
}

func (m DetailModel) handleLoaded(msg DetailLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.ScreenID != m.id || !m.loader.Apply(msg.State) {
		return m, nil
	}
	state := m.loader.State()
	if state.Status == loader.DetailFound {
		m.state = ViewStateDetail
		m.detail = state.Character
	} else {
		m.state = ViewStateNotFound
	}
	return m, nil
}

func (m DetailModel) handleKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc, keyBackspace:
		return m, func() tea.Msg { return BackMsg{} }
	}
	return m, nil
}

// Theme returns the theme of the found character, or ThemeHuman before then.
func (m DetailModel) Theme() character.Theme {
	if m.state != ViewStateDetail {
		return character.ThemeHuman
	}
	return m.detail.Theme()
}

// View renders the current view (Bubble Tea interface).
func (m DetailModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	styles := m.assets.Styles(m.Theme())
	title := styles.Title.Render("Details")
	help := HelpStyle.Render("esc back • q quit")

	var body string
	switch m.state {
	case ViewStateLoading:
		body = RenderLoading(m.loadingState)
	case ViewStateNotFound:
		body = MutedStyle.Render(NotFoundMessage)
	case ViewStateDetail:
		card := RenderDetailCard(m.detail, styles, min(m.width, 72)) //nolint:mnd // Readable card width.
		backdrop := m.assets.Backdrop(m.Theme())
		body = backdrop.Render(m.width, m.height-4, card) //nolint:mnd // Title, blanks and help.
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, help)
}
