package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/reel/internal/carousel"
)

var _ carousel.Scheduler = (*tickScheduler)(nil)

// tickScheduler runs deferred carousel callbacks on the bubbletea Update loop.
//
// Schedule queues a [tea.Tick] command that the model collects with drain; the
// resulting [correctionMsg] runs the callback unless its timer was stopped.
type tickScheduler struct {
	next uint64
	fns  map[uint64]func()
	cmds []tea.Cmd
}

type tickTimer struct {
	s   *tickScheduler
	gen uint64
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{fns: make(map[uint64]func())}
}

func (s *tickScheduler) Schedule(delay time.Duration, fn func()) carousel.Timer {
	s.next++
	gen := s.next
	s.fns[gen] = fn
	s.cmds = append(s.cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return correctionMsg{gen: gen}
	}))
	return tickTimer{s: s, gen: gen}
}

func (t tickTimer) Stop() bool {
	if _, ok := t.s.fns[t.gen]; !ok {
		return false
	}
	delete(t.s.fns, t.gen)
	return true
}

// fire runs the callback for gen and reports whether one was waiting.
func (s *tickScheduler) fire(gen uint64) bool {
	fn, ok := s.fns[gen]
	if !ok {
		return false
	}
	delete(s.fns, gen)
	fn()
	return true
}

// drain returns the queued tick commands.
func (s *tickScheduler) drain() tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

func (s *tickScheduler) live() int {
	return len(s.fns)
}
