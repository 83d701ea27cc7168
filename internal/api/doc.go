// Package api is the HTTP data source for the public character API.
//
// The API has shipped two response shapes for the same endpoints: a bare JSON
// array, and an object wrapping the array under "content". Both are reduced to
// a plain slice by decodeCollection before anything else sees the payload.
//
// Failures are reported through a small error taxonomy (ErrNetwork,
// ErrUnexpectedStatus, ErrMalformedResponse, ErrEmptyResult) so callers can
// log the kind even when, like the loaders, they collapse every failure into
// the same outcome.
package api
