// Package carousel keeps the position of an infinite-loop carousel.
//
// A finite source list of N items is rendered as a display sequence of 3N slots
// (the list repeated three times). The display index rests in the middle copy,
// [N, 2N). A user advance may move it into the first or last copy so the strip
// keeps scrolling in the direction of travel; once the render layer's transition
// has settled, a wrap correction silently moves it back by N slots.
//
// The [Controller] is the only mutable state. It reacts to four triggers:
//   - [Controller.SetItems] : the source list was replaced
//   - [Controller.Select] : an item became active outside the carousel (e.g. playback)
//   - [Controller.Advance] : the user picked a slot of the display sequence
//   - a wrap correction firing after [Options.SettleDelay]
//
// At most one wrap correction is pending. Every trigger cancels it before
// applying its own write, so the most recent request always wins.
//
// Deferred work goes through a [Scheduler]. [TimerScheduler] uses the runtime
// timer; UIs with their own event loop (see internal/ui) can supply a scheduler
// that delivers the callback on that loop instead.
package carousel
