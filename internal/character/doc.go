// Package character defines the character records served by the character API
// and the race-driven theme selection used by the detail screen.
//
// Records are created fresh from every API response and are never mutated
// afterwards. The only normalization performed here is on identifiers: the
// API has served ids both as JSON strings and as JSON numbers, and both decode
// into the same string-backed ID so that an id taken from the listing can be
// handed unchanged to the detail endpoint.
package character
