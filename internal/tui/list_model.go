package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/loader"
	listview "github.com/rshade/slayerdex/internal/tui/list"
)

// listChromeHeight is the number of lines around the list: title, subtitle,
// blank, filter, blank, help.
const listChromeHeight = 6

// rowLayout renders list rows at the current screen width.
type rowLayout struct {
	styles Styles
	width  int
}

func (r *rowLayout) render(item character.Summary, selected bool) string {
	imgWidth := r.width - nameColumnWidth - borderPadding
	name := pad(item.Name, nameColumnWidth)
	img := MutedStyle.Render(truncate(item.Img, imgWidth))
	if selected {
		return r.styles.RowSelected.Render("▸ "+name) + " " + img
	}
	return r.styles.Row.Render(name) + " " + img
}

// ListModel is the listing screen.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type ListModel struct {
	id     int64
	ctx    context.Context
	loader *loader.Listing
	styles Styles

	state    ViewState
	allItems []character.Summary
	rows     *rowLayout
	list     *listview.Model[character.Summary]

	textInput  textinput.Model
	showFilter bool

	width  int
	height int

	loadingState *LoadingState
}

// NewListModel mounts a listing screen over source and starts its fetch.
func NewListModel(ctx context.Context, source loader.ListingSource, limit int, styles Styles) (ListModel, tea.Cmd) {
	rows := &rowLayout{styles: styles, width: defaultWidth}
	m := ListModel{
		id:           nextScreenID(),
		ctx:          ctx,
		loader:       loader.NewListing(source, limit),
		styles:       styles,
		state:        ViewStateLoading,
		rows:         rows,
		list:         listview.New([]character.Summary{}, defaultHeight-listChromeHeight, rows.render),
		textInput:    newFilterInput(),
		width:        defaultWidth,
		height:       defaultHeight,
		loadingState: NewLoadingState("Loading characters...", styles.Spinner),
	}
	return m, m.Init()
}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter by name"
	ti.CharLimit = 64 //nolint:mnd // Longer names do not exist.
	return ti
}

// ScreenID identifies the screen for result routing.
func (m ListModel) ScreenID() int64 {
	return m.id
}

// Quitting reports whether the screen asked the program to exit.
func (m ListModel) Quitting() bool {
	return m.state == ViewStateQuitting
}

// Unmount detaches the loader so a late result is ignored.
func (m ListModel) Unmount() {
	m.loader.Unmount()
}

// State returns the loader state the screen renders.
func (m ListModel) State() loader.ListingState {
	return m.loader.State()
}

// Init starts the spinner and the single fetch of this mount.
func (m ListModel) Init() tea.Cmd {
	return tea.Batch(m.loadingState.Init(), m.fetch())
}

func (m ListModel) fetch() tea.Cmd {
	ctx, l, id := m.ctx, m.loader, m.id
	return func() tea.Msg {
		return ListingLoadedMsg{ScreenID: id, State: l.Fetch(ctx)}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case ListingLoadedMsg:
		return m.handleLoaded(msg)
	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		return m, m.loadingState.Update(msg)
	}

	if m.showFilter {
		return m.handleFilterInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingKeypress(keyMsg)
	case ViewStateList:
		return m.handleListKeypress(keyMsg)
	default:
		return m, nil
	}
}

func (m *ListModel) resize(width, height int) {
	m.width, m.height = width, height
	m.rows.width = width
	m.list.SetHeight(height - listChromeHeight)
	m.textInput.Width = max(width-borderPadding, 1)
}

func (m ListModel) handleLoaded(msg ListingLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.ScreenID != m.id || !m.loader.Apply(msg.State) {
		return m, nil
	}
	m.state = ViewStateList
	m.allItems = m.loader.State().Items
	m.applyFilter()
	return m, nil
}

func (m ListModel) handleLoadingKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	}
	return m, nil
}

func (m ListModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showFilter = false
			m.textInput.Blur()
			m.applyFilter()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m ListModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEnter:
		selected := m.list.Selected()
		if selected == nil {
			return m, nil
		}
		id := selected.ID
		return m, func() tea.Msg { return NavigateMsg{ID: id} }
	case keySlash:
		m.showFilter = true
		m.textInput.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.textInput.Value() != "" {
			m.textInput.SetValue("")
			m.applyFilter()
		}
		return m, nil
	default:
		m.list.Update(keyMsg)
		return m, nil
	}
}

func (m *ListModel) applyFilter() {
	m.list.SetItems(filterSummaries(m.allItems, m.textInput.Value()))
}

// View renders the current view (Bubble Tea interface).
func (m ListModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Demon Slayer"),
		m.styles.Subtitle.Render("Choose your character below"),
	)

	var body string
	switch m.state {
	case ViewStateLoading:
		body = RenderLoading(m.loadingState)
	case ViewStateList:
		body = m.renderList()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

func (m ListModel) renderList() string {
	if len(m.allItems) == 0 {
		return MutedStyle.Render(EmptyListingMessage)
	}

	sections := make([]string, 0, 4) //nolint:mnd // filter, list, blank, help.
	switch {
	case m.showFilter:
		sections = append(sections, m.textInput.View())
	case m.textInput.Value() != "":
		sections = append(sections, MutedStyle.Render("filter: "+m.textInput.Value()+"  (esc to clear)"))
	}

	if m.list.Len() == 0 {
		sections = append(sections, MutedStyle.Render("No characters match."))
	} else {
		sections = append(sections, m.list.View())
	}

	sections = append(sections, "", HelpStyle.Render("↑/↓ navigate • enter details • / filter • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
