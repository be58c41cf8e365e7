// Package library manages the ordered track list that feeds the carousel.
//
// A [Service] wraps a [Store] (normally [repositories.TrackRepository]) with
// duplicate handling, TOML imports and fuzzy lookup.
package library
