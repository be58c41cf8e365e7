// Package ui implements the carousel terminal interface using bubbletea's Elm architecture.
//
// The [Model] shows a strip of slots from the display sequence of a [carousel.Controller],
// centered on the focused slot. Moving left or right advances the carousel and plays the
// chosen track; the simulated [player.Player] in turn pushes its now-playing track back as
// an external selection.
//
// Deferred wrap corrections are delivered as tick messages by a bubbletea-backed
// [carousel.Scheduler], so every controller write happens inside Update. Animated moves
// step the shown slot toward the controller index in a few frames that end before the
// settle delay; corrections jump without animation.
//
// Keyboard navigation uses vim-style bindings (h/l, enter, space, n/p, r, ?, q) with help
// rendered by charmbracelet/bubbles/help.
package ui
