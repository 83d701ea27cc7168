package tui

import (
	"context"
	"errors"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/slayerdex/internal/api"
	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/config"
)

type fakeSource struct {
	list      []character.Summary
	listErr   error
	details   map[character.ID]character.Detail
	listCalls atomic.Int64
	getCalls  atomic.Int64
}

func (f *fakeSource) ListCharacters(_ context.Context, _ int) ([]character.Summary, error) {
	f.listCalls.Add(1)
	return f.list, f.listErr
}

func (f *fakeSource) GetCharacter(_ context.Context, id character.ID) (character.Detail, error) {
	f.getCalls.Add(1)
	d, ok := f.details[id]
	if !ok {
		return character.Detail{}, api.ErrEmptyResult
	}
	return d, nil
}

var (
	tanjiro = character.Detail{
		Summary:     character.Summary{ID: "1", Name: "Tanjiro Kamado", Img: "https://img.example/tanjiro.png"},
		Age:         "15",
		Race:        "Human",
		Gender:      "Male",
		Description: "A kind demon slayer.",
		Quote:       "Set your heart ablaze.",
	}
	nezuko = character.Detail{
		Summary:     character.Summary{ID: "2", Name: "Nezuko Kamado", Img: "https://img.example/nezuko.png"},
		Age:         "14",
		Race:        "Demon",
		Gender:      "Female",
		Description: "Tanjiro's sister.",
		Quote:       "Mmm!",
	}
	rengoku = character.Detail{
		Summary: character.Summary{ID: "3", Name: "Kyōjurō Rengoku", Img: "https://img.example/rengoku.png"},
		Age:     "20",
		Race:    "Human",
		Gender:  "Male",
	}
)

func newFakeSource() *fakeSource {
	return &fakeSource{
		list: []character.Summary{tanjiro.Summary, nezuko.Summary, rengoku.Summary},
		details: map[character.ID]character.Detail{
			tanjiro.ID: tanjiro,
			nezuko.ID:  nezuko,
			rengoku.ID: rengoku,
		},
	}
}

func failingSource() *fakeSource {
	return &fakeSource{listErr: errors.Join(api.ErrNetwork, errors.New("connection refused"))}
}

func testAssets() *Assets {
	return NewAssets(config.DefaultThemeConfig())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
