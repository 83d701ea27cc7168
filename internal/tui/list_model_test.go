package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/loader"
)

func loadedListModel(t *testing.T, src *fakeSource) ListModel {
	t.Helper()
	m, cmd := NewListModel(context.Background(), src, 45, testAssets().Styles(character.ThemeHuman))
	require.NotNil(t, cmd)

	updated, _ := m.Update(m.fetch()())
	return updated.(ListModel)
}

func TestNewListModel(t *testing.T) {
	m, cmd := NewListModel(context.Background(), newFakeSource(), 45, testAssets().Styles(character.ThemeHuman))

	assert.NotNil(t, cmd)
	assert.Equal(t, ViewStateLoading, m.state)
	assert.Equal(t, loader.ListingLoading, m.State().Status)

	view := m.View()
	assert.Contains(t, view, "Demon Slayer")
	assert.Contains(t, view, "Choose your character below")
	assert.Contains(t, view, "Loading characters...")
}

func TestListModel_Loaded(t *testing.T) {
	src := newFakeSource()
	m := loadedListModel(t, src)

	assert.Equal(t, ViewStateList, m.state)
	assert.Len(t, m.allItems, 3)
	assert.Equal(t, int64(1), src.listCalls.Load())

	view := m.View()
	assert.Contains(t, view, "Tanjiro Kamado")
	assert.Contains(t, view, "Nezuko Kamado")
	assert.NotContains(t, view, EmptyListingMessage)
}

func TestListModel_FailureRendersEmpty(t *testing.T) {
	m := loadedListModel(t, failingSource())

	assert.Equal(t, ViewStateList, m.state)
	assert.Equal(t, loader.ListingReady, m.State().Status)
	assert.Empty(t, m.State().Items)
	assert.Contains(t, m.View(), EmptyListingMessage)
}

func TestListModel_IgnoresForeignResult(t *testing.T) {
	m, _ := NewListModel(context.Background(), newFakeSource(), 45, testAssets().Styles(character.ThemeHuman))

	updated, _ := m.Update(ListingLoadedMsg{
		ScreenID: m.id + 1000,
		State:    loader.ListingState{Status: loader.ListingReady, Items: []character.Summary{tanjiro.Summary}},
	})
	m = updated.(ListModel)

	assert.Equal(t, ViewStateLoading, m.state)
	assert.Equal(t, loader.ListingLoading, m.State().Status)
}

func TestListModel_ResultAfterUnmountIsNoOp(t *testing.T) {
	m, _ := NewListModel(context.Background(), newFakeSource(), 45, testAssets().Styles(character.ThemeHuman))
	msg := m.fetch()()
	m.Unmount()

	updated, _ := m.Update(msg)
	m = updated.(ListModel)

	assert.Equal(t, ViewStateLoading, m.state)
	assert.Equal(t, loader.ListingLoading, m.State().Status)
}

func TestListModel_EnterNavigates(t *testing.T) {
	m := loadedListModel(t, newFakeSource())

	updated, _ := m.Update(keyRunes("j"))
	m = updated.(ListModel)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{ID: nezuko.ID}, cmd())
}

func TestListModel_EnterOnEmptyListDoesNothing(t *testing.T) {
	m := loadedListModel(t, failingSource())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestListModel_Filter(t *testing.T) {
	src := newFakeSource()
	m := loadedListModel(t, src)

	updated, _ := m.Update(keyRunes("/"))
	m = updated.(ListModel)
	require.True(t, m.showFilter)

	updated, _ = m.Update(keyRunes("KYO"))
	m = updated.(ListModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(ListModel)

	assert.False(t, m.showFilter)
	assert.Equal(t, 1, m.list.Len())
	view := m.View()
	assert.Contains(t, view, "Kyōjurō Rengoku")
	assert.NotContains(t, view, "Tanjiro Kamado")
	assert.Equal(t, int64(1), src.listCalls.Load(), "filtering never re-fetches")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{ID: rengoku.ID}, cmd())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(ListModel)
	assert.Equal(t, 3, m.list.Len())
}

func TestListModel_Quit(t *testing.T) {
	m := loadedListModel(t, newFakeSource())

	updated, cmd := m.Update(keyRunes("q"))
	m = updated.(ListModel)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestListModel_WindowSize(t *testing.T) {
	m := loadedListModel(t, newFakeSource())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(ListModel)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 120, m.rows.width)
	from, to := m.list.VisibleRange()
	assert.Equal(t, 3, to-from)
}
