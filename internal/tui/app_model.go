package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/loader"
	"github.com/rshade/slayerdex/internal/logging"
)

// Screen is a mounted view owned by the navigation host.
type Screen interface {
	tea.Model
	ScreenID() int64
	Unmount()
	Quitting() bool
}

// AppModel is the navigation host. The listing screen sits at the bottom of
// the stack and each selection pushes a detail screen.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type AppModel struct {
	ctx    context.Context
	source loader.Source
	assets *Assets

	stack    []Screen
	width    int
	height   int
	quitting bool
}

// NewAppModel mounts the listing screen.
func NewAppModel(ctx context.Context, source loader.Source, limit int, assets *Assets) (AppModel, tea.Cmd) {
	list, cmd := NewListModel(ctx, source, limit, assets.Styles(character.ThemeHuman))
	return AppModel{
		ctx:    ctx,
		source: source,
		assets: assets,
		stack:  []Screen{list},
		width:  defaultWidth,
		height: defaultHeight,
	}, cmd
}

// Init starts the visible screen. A fetch already started through the
// constructor's command is not repeated.
func (m AppModel) Init() tea.Cmd {
	return m.Top().Init()
}

// Top returns the visible screen.
func (m AppModel) Top() Screen {
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of mounted screens.
func (m AppModel) Depth() int {
	return len(m.stack)
}

// Update routes messages to screens and handles navigation.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.broadcast(msg)
	case spinner.TickMsg:
		return m.broadcast(msg)
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			return m.quit()
		}
	case NavigateMsg:
		return m.push(msg.ID)
	case BackMsg:
		return m.pop(), nil
	case ListingLoadedMsg:
		return m.route(msg.ScreenID, msg)
	case DetailLoadedMsg:
		return m.route(msg.ScreenID, msg)
	}

	idx := len(m.stack) - 1
	next, cmd := m.stack[idx].Update(msg)
	m.stack[idx] = next.(Screen)
	if m.stack[idx].Quitting() {
		m.quitting = true
	}
	return m, cmd
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	for _, s := range m.stack {
		s.Unmount()
	}
	m.quitting = true
	return m, tea.Quit
}

func (m AppModel) push(id character.ID) (tea.Model, tea.Cmd) {
	detail, cmd := NewDetailModel(m.ctx, m.source, id, m.assets)
	sized, _ := detail.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})

	stack := make([]Screen, len(m.stack), len(m.stack)+1)
	copy(stack, m.stack)
	m.stack = append(stack, sized.(Screen))

	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Str("character_id", id.String()).
		Int("depth", len(m.stack)).
		Msg("pushed detail screen")
	return m, cmd
}

// pop unmounts the top screen. The listing screen is never popped.
func (m AppModel) pop() AppModel {
	if len(m.stack) <= 1 {
		return m
	}
	m.Top().Unmount()
	m.stack = m.stack[: len(m.stack)-1 : len(m.stack)-1]
	return m
}

// route delivers a loader result to its screen. Results for screens that are
// no longer mounted are dropped.
func (m AppModel) route(screenID int64, msg tea.Msg) (tea.Model, tea.Cmd) {
	for i, s := range m.stack {
		if s.ScreenID() != screenID {
			continue
		}
		next, cmd := s.Update(msg)
		m.stack[i] = next.(Screen)
		return m, cmd
	}
	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Int64("screen_id", screenID).
		Msg("dropped result for unmounted screen")
	return m, nil
}

func (m AppModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.stack))
	for i, s := range m.stack {
		next, cmd := s.Update(msg)
		m.stack[i] = next.(Screen)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View renders the top screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	return m.Top().View()
}
