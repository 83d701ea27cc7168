// Package tui implements the interactive character browser.
//
// AppModel is the navigation host: it mounts the listing screen first and
// pushes a detail screen for the selected character. Every screen owns a
// fresh loader, renders a spinner while the request is outstanding and
// drops results that arrive after it was popped.
//
// The package also provides the lipgloss theme layer (palettes, backdrops,
// cards) and the plain renderers used by non-interactive commands.
package tui
