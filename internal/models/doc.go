// Package models defines the data types shared by the library, player and carousel UI.
//
//   - [Track] : a song in the local library, ordered by Position
//   - [Library] : a named, ordered list of tracks used for import and export
//
// Types here are plain values. Persistence lives in repositories, and the
// carousel sees tracks through the ui package's item adapter.
package models
