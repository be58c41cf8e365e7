package carousel

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultSettleDelay matches the transition length of the TUI strip.
const DefaultSettleDelay = 500 * time.Millisecond

// ErrIndexOutOfRange is returned by [Controller.Advance] for a slot outside the display sequence.
var ErrIndexOutOfRange = errors.New("display index out of range")

// Item is anything with a stable identifier that can sit in a carousel.
type Item interface {
	ID() string
}

// Cause identifies which trigger produced a [Move].
type Cause int

const (
	CauseReset      Cause = iota // source list replaced
	CauseSelect                  // external selection synchronized
	CauseAdvance                 // user picked a slot
	CauseCorrection              // wrap correction fired
)

func (c Cause) String() string {
	switch c {
	case CauseReset:
		return "reset"
	case CauseSelect:
		return "select"
	case CauseAdvance:
		return "advance"
	case CauseCorrection:
		return "correction"
	default:
		return "unknown"
	}
}

// Move describes a write to the display index.
//
// When Animate is false the render layer must jump to Index without a transition.
type Move struct {
	Index   int
	Animate bool
	Cause   Cause
}

// Options configures a [Controller]. The zero value is usable.
type Options struct {
	SettleDelay time.Duration      // delay before a wrap correction (default [DefaultSettleDelay])
	Scheduler   Scheduler          // deferred callbacks (default [TimerScheduler])
	OnAdvance   func(original int) // called with the source position of an advanced slot
	OnMove      func(Move)         // called after every display index write
	Logger      *log.Logger
}

// correction is the single pending wrap correction.
type correction struct {
	gen    uint64
	target int
	timer  Timer
}

// Controller tracks the display index of an infinite-loop carousel over items of type T.
//
// It is safe for concurrent use, so corrections fired by [TimerScheduler] on
// another goroutine are fine. OnAdvance and OnMove are never called while the
// controller's lock is held and may call back into the controller.
type Controller[T Item] struct {
	mu        sync.Mutex
	items     []T
	seq       []T
	index     int
	selection string
	gen       uint64
	pending   *correction

	delay     time.Duration
	scheduler Scheduler
	onAdvance func(int)
	onMove    func(Move)
	logger    *log.Logger
}

// New creates an empty Controller.
func New[T Item](opts Options) *Controller[T] {
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Controller[T]{
		delay:     opts.SettleDelay,
		scheduler: opts.Scheduler,
		onAdvance: opts.OnAdvance,
		onMove:    opts.OnMove,
		logger:    opts.Logger,
	}
}

// SetItems replaces the source list and re-derives the display sequence.
//
// Any pending correction is dropped. A list that was empty starts at N and
// forgets the selection. Otherwise the index is re-aligned, in order of
// preference, to:
//  1. the middle-copy slot of the item that had focus
//  2. the middle-copy slot of the current selection
//  3. the old source position clamped into the new list
func (c *Controller[T]) SetItems(items []T) {
	c.mu.Lock()
	c.cancelLocked()

	var focused string
	if len(c.seq) > 0 {
		focused = c.seq[c.index].ID()
	}
	oldN, oldIndex := len(c.items), c.index

	c.items = slices.Clone(items)
	c.seq = Triple(c.items)
	n := len(c.items)
	selected, kept := c.positionLocked(c.selection), c.positionLocked(focused)

	switch {
	case n == 0:
		c.index = 0
		c.selection = ""
	case oldN == 0:
		c.index = n
		c.selection = ""
	case kept >= 0:
		c.index = n + kept
	case selected >= 0:
		c.index = n + selected
	default:
		c.index = n + min(oldIndex%oldN, n-1)
	}

	mv := Move{Index: c.index, Cause: CauseReset}
	c.mu.Unlock()

	c.logger.Debug("source list replaced", "items", n, "index", mv.Index)
	c.emit(mv)
}

// Select synchronizes the carousel with an item made active elsewhere.
//
// It only acts when id differs from the current selection. A known id moves the
// index to the item's middle-copy slot and cancels any pending correction. An
// unknown id, or any id while the list is empty, changes nothing and is not
// recorded. Select reports whether id is in the source list.
func (c *Controller[T]) Select(id string) bool {
	if id == "" {
		return false
	}

	c.mu.Lock()
	p := c.positionLocked(id)
	if p < 0 {
		c.mu.Unlock()
		c.logger.Debug("ignoring stale selection", "id", id)
		return false
	}
	if id == c.selection {
		c.mu.Unlock()
		return true
	}
	c.selection = id

	c.cancelLocked()
	c.index = len(c.items) + p
	mv := Move{Index: c.index, Animate: true, Cause: CauseSelect}
	c.mu.Unlock()

	c.emit(mv)
	return true
}

// Advance moves the display index to slot k as the result of user interaction.
//
// OnAdvance receives k mod N before the index changes. When k is outside the
// middle copy a wrap correction is scheduled to run after the settle delay.
// The advance supersedes the current selection, so the next Select always acts.
// Advance is a no-op on an empty list.
func (c *Controller[T]) Advance(k int) error {
	c.mu.Lock()
	n := len(c.items)
	if n == 0 {
		c.mu.Unlock()
		return nil
	}
	if k < 0 || k >= copies*n {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, k, copies*n)
	}
	original := k % n
	c.selection = ""
	onAdvance := c.onAdvance
	c.mu.Unlock()

	if onAdvance != nil {
		onAdvance(original)
	}

	c.mu.Lock()
	if len(c.items) != n {
		c.mu.Unlock()
		c.logger.Debug("source list changed during advance", "slot", k)
		return nil
	}
	c.cancelLocked()
	c.index = k

	var gen uint64
	if !canonical(k, n) {
		c.gen++
		gen = c.gen
		c.pending = &correction{gen: gen, target: wrap(k, n)}
	}
	mv := Move{Index: k, Animate: true, Cause: CauseAdvance}
	c.mu.Unlock()

	c.emit(mv)
	if gen != 0 {
		c.schedule(gen)
	}
	return nil
}

// Close cancels any pending correction.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// Sequence returns a copy of the display sequence.
func (c *Controller[T]) Sequence() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.seq)
}

// Index returns the display index.
func (c *Controller[T]) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the length of the source list.
func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Original returns the source position of the focused slot, or 0 for an empty list.
func (c *Controller[T]) Original() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return 0
	}
	return c.index % len(c.items)
}

// Current returns the focused item.
func (c *Controller[T]) Current() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.seq) == 0 {
		var zero T
		return zero, false
	}
	return c.seq[c.index], true
}

// Selection returns the id of the last applied external selection, or "" after an advance.
func (c *Controller[T]) Selection() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Pending reports whether a wrap correction is scheduled.
func (c *Controller[T]) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// SettleDelay returns the delay between an advance and its wrap correction.
func (c *Controller[T]) SettleDelay() time.Duration {
	return c.delay
}

// schedule installs the timer for correction gen unless it was superseded meanwhile.
func (c *Controller[T]) schedule(gen uint64) {
	timer := c.scheduler.Schedule(c.delay, func() { c.correct(gen) })

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil && c.pending.gen == gen {
		c.pending.timer = timer
		return
	}
	timer.Stop()
}

// correct applies correction gen if it is still the pending one.
func (c *Controller[T]) correct(gen uint64) {
	c.mu.Lock()
	p := c.pending
	if p == nil || p.gen != gen {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.index = p.target
	c.mu.Unlock()

	c.emit(Move{Index: p.target, Cause: CauseCorrection})
}

func (c *Controller[T]) cancelLocked() {
	if c.pending == nil {
		return
	}
	if c.pending.timer != nil {
		c.pending.timer.Stop()
	}
	c.pending = nil
}

// positionLocked returns the source position of id, or -1.
func (c *Controller[T]) positionLocked(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(c.items, func(it T) bool { return it.ID() == id })
}

func (c *Controller[T]) emit(mv Move) {
	if c.onMove != nil {
		c.onMove(mv)
	}
}
