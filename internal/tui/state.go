package tui

import (
	"sync/atomic"

	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/loader"
)

// ViewState is the rendering phase of a screen.
type ViewState int

const (
	// ViewStateLoading shows the spinner while the request is outstanding.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the settled listing.
	ViewStateList
	// ViewStateDetail shows a found character.
	ViewStateDetail
	// ViewStateNotFound shows the not-found indicator.
	ViewStateNotFound
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateDetail:
		return "detail"
	case ViewStateNotFound:
		return "not_found"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

const (
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"
	keyEnter     = "enter"
	keyEsc       = "esc"
	keyBackspace = "backspace"
	keySlash     = "/"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ListingLoadedMsg carries the settled listing for the screen with ScreenID.
type ListingLoadedMsg struct {
	ScreenID int64
	State    loader.ListingState
}

// DetailLoadedMsg carries the settled detail for the screen with ScreenID.
type DetailLoadedMsg struct {
	ScreenID int64
	State    loader.DetailState
}

// NavigateMsg asks the host to push a detail screen for ID.
type NavigateMsg struct {
	ID character.ID
}

// BackMsg asks the host to pop the top screen.
type BackMsg struct{}

var screenIDs atomic.Int64

func nextScreenID() int64 {
	return screenIDs.Add(1)
}
