// Package preview serves a live HTML preview of a markup build during
// development. Every request re-runs the supplied source function, so
// the page always reflects current data; connected browsers are told
// to reload over a WebSocket when a watched path changes.
//
// The package is tooling around the markup engine. The engine's output
// contract is unchanged: a source is just anything that returns
// exported chunks, typically a markup.Fragment call.
package preview
