package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/desertthunder/reel/internal/carousel"
	"github.com/desertthunder/reel/internal/models"
	"github.com/desertthunder/reel/internal/player"
	"github.com/desertthunder/reel/internal/shared"
)

const (
	animationFrames = 4
	playerTick      = time.Second
	defaultVisible  = 5
	slotWidth       = 20
)

// Loader provides the ordered source list.
type Loader interface {
	Tracks(ctx context.Context) ([]models.Track, error)
}

// Options configures a [Model].
type Options struct {
	SettleDelay time.Duration
	Visible     int     // slots shown at once, odd
	AdvanceRate float64 // advances per second, 0 for unlimited
	Player      *player.Player
	Logger      *log.Logger
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	library Loader
	player  *player.Player
	ctrl    *carousel.Controller[trackItem]
	sched   *tickScheduler
	limiter *rate.Limiter
	logger  *log.Logger

	playing    string // track id the carousel already reflects
	visible    int
	shown      int
	target     int
	framesLeft int
	frameGen   uint64
	frameEvery time.Duration
	cmds       []tea.Cmd

	loaded bool
	width  int
	err    error
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model that reads its tracks from library.
func NewModel(ctx context.Context, library Loader, opts Options) *Model {
	if opts.Visible < 1 {
		opts.Visible = defaultVisible
	}
	if opts.Player == nil {
		opts.Player = player.New(player.Options{Autoplay: true})
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	limit := rate.Inf
	if opts.AdvanceRate > 0 {
		limit = rate.Limit(opts.AdvanceRate)
	}

	m := &Model{
		ctx:     ctx,
		library: library,
		player:  opts.Player,
		sched:   newTickScheduler(),
		limiter: rate.NewLimiter(limit, 1),
		logger:  opts.Logger,
		visible: opts.Visible,
		help:    help.New(),
		keys:    newKeyMap(),
	}
	m.ctrl = carousel.New[trackItem](carousel.Options{
		SettleDelay: opts.SettleDelay,
		Scheduler:   m.sched,
		OnAdvance:   m.playAdvanced,
		OnMove:      m.applyMove,
		Logger:      shared.WithLogger(opts.Logger, "component", "carousel"),
	})
	m.frameEvery = m.ctrl.SettleDelay() / (animationFrames + 1)
	return m
}

// Init loads the library and starts the player clock.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadLibrary(), m.tickPlayer())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKeys(msg)

	case libraryLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			break
		}
		m.err = nil
		m.loaded = true
		m.player.Load(msg.tracks)
		m.ctrl.SetItems(trackItems(msg.tracks))
		m.playing = ""
		m.syncSelection()

	case correctionMsg:
		m.sched.fire(msg.gen)

	case frameMsg:
		cmd = m.stepFrame(msg)

	case playerTickMsg:
		if m.player.Tick(playerTick) {
			m.syncSelection()
		}
		cmd = m.tickPlayer()
	}

	return m, m.flush(cmd)
}

func (m *Model) handleKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.ctrl.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.left):
		m.advance(m.ctrl.Index() - 1)
	case key.Matches(msg, m.keys.right):
		m.advance(m.ctrl.Index() + 1)
	case key.Matches(msg, m.keys.enter):
		m.advance(m.ctrl.Index())
	case key.Matches(msg, m.keys.pause):
		m.player.TogglePause()
	case key.Matches(msg, m.keys.next):
		m.player.Next()
		m.syncSelection()
	case key.Matches(msg, m.keys.prev):
		m.player.Prev()
		m.syncSelection()
	case key.Matches(msg, m.keys.reload):
		return m.loadLibrary()
	}
	return nil
}

// advance moves the carousel to slot k. Presses past the edge of the display
// sequence before a correction lands are dropped.
func (m *Model) advance(k int) {
	if m.ctrl.Len() == 0 || !m.limiter.Allow() {
		return
	}
	if err := m.ctrl.Advance(k); err != nil {
		if errors.Is(err, carousel.ErrIndexOutOfRange) {
			m.logger.Debug("advance dropped", "slot", k)
			return
		}
		m.err = err
	}
}

// playAdvanced is the carousel's OnAdvance hook. The track it starts is
// already on screen, so it is not synchronized back as a selection.
func (m *Model) playAdvanced(original int) {
	m.player.Play(original)
	if t, ok := m.player.Current(); ok {
		m.playing = t.ID
	}
}

// syncSelection pushes the now-playing track to the carousel when it changed.
func (m *Model) syncSelection() {
	t, ok := m.player.Current()
	if !ok || t.ID == m.playing {
		return
	}
	m.playing = t.ID
	m.ctrl.Select(t.ID)
}

// applyMove is the carousel's OnMove hook.
func (m *Model) applyMove(mv carousel.Move) {
	m.target = mv.Index
	m.frameGen++

	if !mv.Animate || m.shown == mv.Index {
		m.shown = mv.Index
		m.framesLeft = 0
		return
	}

	m.framesLeft = animationFrames
	m.cmds = append(m.cmds, m.frame())
}

func (m *Model) stepFrame(msg frameMsg) tea.Cmd {
	if msg.gen != m.frameGen || m.framesLeft == 0 {
		return nil
	}

	remaining := m.target - m.shown
	step := (abs(remaining) + m.framesLeft - 1) / m.framesLeft
	if remaining < 0 {
		step = -step
	}
	m.shown += step
	m.framesLeft--

	if m.framesLeft > 0 && m.shown != m.target {
		return m.frame()
	}
	m.shown, m.framesLeft = m.target, 0
	return nil
}

func (m *Model) frame() tea.Cmd {
	gen := m.frameGen
	return tea.Tick(m.frameEvery, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(m.cmds, cmd, m.sched.drain())
	m.cmds = nil
	return tea.Batch(cmds...)
}

func (m *Model) loadLibrary() tea.Cmd {
	return func() tea.Msg {
		tracks, err := m.library.Tracks(m.ctx)
		return libraryLoadedMsg{tracks: tracks, err: err}
	}
}

func (m *Model) tickPlayer() tea.Cmd {
	return tea.Tick(playerTick, func(t time.Time) tea.Msg { return playerTickMsg(t) })
}

// View renders the strip, the status line and help.
func (m *Model) View() string {
	title := styles.title.Render("reel")

	if m.err != nil {
		return fmt.Sprintf("%s\n%s\n\n%s", title, styles.err.Render(fmt.Sprintf("Error: %v", m.err)), m.help.View(m.keys))
	}
	if !m.loaded {
		return fmt.Sprintf("%s\nLoading library...", title)
	}

	seq := m.ctrl.Sequence()
	if len(seq) == 0 {
		msg := styles.help.Render("Library is empty. Add tracks with `reel library add`.")
		return fmt.Sprintf("%s\n%s\n\n%s", title, msg, m.help.View(m.keys))
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, m.renderStrip(seq), m.renderStatus(), m.help.View(m.keys))
}

func (m *Model) renderStrip(seq []trackItem) string {
	width := slotWidth
	if m.width > 0 {
		width = max(8, min(slotWidth, m.width/m.visible-4))
	}

	var playing string
	if t, ok := m.player.Current(); ok {
		playing = t.ID
	}

	half := m.visible / 2
	slots := make([]string, 0, m.visible)
	for offset := -half; offset <= half; offset++ {
		item := seq[mod(m.shown+offset, len(seq))]

		style := styles.slot
		if offset == 0 {
			style = styles.focus
		}

		name := truncate(item.Title(), width)
		if item.ID() == playing {
			name = styles.playing.Render(truncate("♪ "+item.Title(), width))
		}
		body := lipgloss.JoinVertical(lipgloss.Left, name, truncate(item.Description(), width))
		slots = append(slots, style.Width(width).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, slots...)
}

func (m *Model) renderStatus() string {
	state := "⏸"
	if m.player.Playing() {
		state = "▶"
	}

	var now string
	if t, ok := m.player.Current(); ok {
		now = fmt.Sprintf("%s %s  %s / %s", state, t.Label(),
			shared.FormatDuration(int(m.player.Elapsed()/time.Second)),
			shared.FormatDuration(int(m.player.Length()/time.Second)))
	}

	position := fmt.Sprintf("slot %d · track %d/%d", m.ctrl.Index(), m.ctrl.Original()+1, m.ctrl.Len())
	if m.ctrl.Pending() {
		position += " · wrapping"
	}
	return lipgloss.JoinVertical(lipgloss.Left, now, styles.help.Render(position))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return strings.TrimSpace(string(r[:width-1])) + "…"
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
