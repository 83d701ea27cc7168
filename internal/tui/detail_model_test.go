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

func loadedDetailModel(t *testing.T, src *fakeSource, id character.ID) DetailModel {
	t.Helper()
	m, cmd := NewDetailModel(context.Background(), src, id, testAssets())
	require.NotNil(t, cmd)

	updated, _ := m.Update(m.fetch()())
	return updated.(DetailModel)
}

func TestNewDetailModel(t *testing.T) {
	m, cmd := NewDetailModel(context.Background(), newFakeSource(), "1", testAssets())

	assert.NotNil(t, cmd)
	assert.Equal(t, ViewStateLoading, m.state)
	assert.Equal(t, character.ID("1"), m.CharacterID())
	assert.Contains(t, m.View(), "Details")
	assert.Contains(t, m.View(), "Loading character...")
}

func TestDetailModel_Found(t *testing.T) {
	tests := []struct {
		name  string
		id    character.ID
		theme character.Theme
	}{
		{name: "human", id: tanjiro.ID, theme: character.ThemeHuman},
		{name: "demon", id: nezuko.ID, theme: character.ThemeDemon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			m := loadedDetailModel(t, src, tt.id)

			assert.Equal(t, ViewStateDetail, m.state)
			assert.Equal(t, loader.DetailFound, m.State().Status)
			assert.Equal(t, tt.theme, m.Theme())
			assert.Equal(t, int64(1), src.getCalls.Load())

			view := m.View()
			want := src.details[tt.id]
			assert.Contains(t, view, want.Name)
			assert.Contains(t, view, "Age")
			assert.Contains(t, view, want.Race)
			assert.Contains(t, view, want.Gender)
			assert.Contains(t, view, want.Quote)
			assert.NotContains(t, view, NotFoundMessage)
		})
	}
}

func TestDetailModel_NotFound(t *testing.T) {
	m := loadedDetailModel(t, newFakeSource(), "999")

	assert.Equal(t, ViewStateNotFound, m.state)
	assert.Equal(t, loader.DetailNotFound, m.State().Status)
	assert.Equal(t, character.ThemeHuman, m.Theme())
	assert.Contains(t, m.View(), NotFoundMessage)
}

func TestDetailModel_ResultAfterUnmountIsNoOp(t *testing.T) {
	m, _ := NewDetailModel(context.Background(), newFakeSource(), tanjiro.ID, testAssets())
	msg := m.fetch()()
	m.Unmount()

	updated, cmd := m.Update(msg)
	m = updated.(DetailModel)

	assert.Nil(t, cmd)
	assert.Equal(t, ViewStateLoading, m.state)
	assert.Equal(t, loader.DetailLoading, m.State().Status)
}

func TestDetailModel_Back(t *testing.T) {
	m := loadedDetailModel(t, newFakeSource(), tanjiro.ID)

	for _, key := range []tea.KeyMsg{{Type: tea.KeyEscape}, {Type: tea.KeyBackspace}} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, BackMsg{}, cmd())
	}
}

func TestDetailModel_Quit(t *testing.T) {
	m := loadedDetailModel(t, newFakeSource(), tanjiro.ID)

	updated, cmd := m.Update(keyRunes("q"))
	m = updated.(DetailModel)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
