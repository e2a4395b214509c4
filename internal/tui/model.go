// Package tui is the terminal host for a segcut editing session. It owns
// the presentation glue the session core deliberately knows nothing
// about: drawing marker ticks, running the simulated playback clocks,
// applying requested splits/combines to the cut-list file, and scrolling
// the preview. All session state lives in session.Controller; the TUI
// reads it and forwards key presses.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avkit/segcut/internal/config"
	"github.com/avkit/segcut/internal/cutlist"
	"github.com/avkit/segcut/internal/event"
	"github.com/avkit/segcut/internal/logging"
	"github.com/avkit/segcut/internal/session"
	"github.com/avkit/segcut/internal/tui/styles"
)

// stripCols is the column width of a segment's marker canvas strip.
const stripCols = 32

// hostState is shared by reference across bubbletea's Model copies: the
// synchronous bus handlers write to it and Update consumes it.
type hostState struct {
	file           *cutlist.File
	pendingRefresh bool
	scrollTo       int // -1 when no scroll is requested
	err            error
}

// Model holds the TUI application state.
type Model struct {
	ctrl *session.Controller
	cfg  *config.Config
	log  *logging.Logger
	host *hostState
	path string

	watcher  *cutlist.Watcher
	reloads  chan reloadEvent
	deferred chan func()

	strips  map[string]*Strip
	players map[string]*Player

	cursor    int
	top       int // first visible row
	width     int
	height    int
	globbing  bool
	globInput textinput.Model
	status    string
	statusErr bool
	quitting  bool
}

// NewModel builds the TUI over a loaded cut list.
func NewModel(path string, file *cutlist.File, cfg *config.Config, log *logging.Logger) (Model, error) {
	if err := styles.LoadTheme(cfg.TUI.Theme, config.ThemesDir()); err != nil {
		return Model{}, fmt.Errorf("loading theme %q: %w", cfg.TUI.Theme, err)
	}

	deferred := make(chan func(), 8)
	host := &hostState{file: file, scrollTo: -1}

	ctrl := session.NewController(file.SessionSegments(), session.Options{
		Bus:            event.NewBus(),
		Logger:         log,
		CanvasWidthPx:  float64(cfg.Editor.CanvasWidthPx),
		SettleDelay:    cfg.Editor.SettleDelay(),
		AllowSelection: cfg.Editor.AllowSelection,
		AllowDrag:      cfg.Editor.AllowDrag,
		Defer: func(d time.Duration, fn func()) {
			time.AfterFunc(d, func() {
				select {
				case deferred <- fn:
				default:
				}
			})
		},
	})

	m := Model{
		ctrl:      ctrl,
		cfg:       cfg,
		log:       log,
		host:      host,
		path:      path,
		reloads:   make(chan reloadEvent, 4),
		deferred:  deferred,
		strips:    make(map[string]*Strip),
		players:   make(map[string]*Player),
		globInput: newGlobInput(),
	}
	m.mountSurfaces()
	m.ctrl.Markers().Replace(file.MarkerMap())
	m.ctrl.Markers().Restore()
	m.subscribeHost()
	// Editing starts in segments mode; tab switches to preview.
	m.ctrl.SetMode(session.ModeSegments)

	if cfg.Editor.WatchCutList && path != "" {
		w, err := cutlist.NewWatcher(path)
		if err != nil {
			return Model{}, fmt.Errorf("watching cut list: %w", err)
		}
		w.SetReloadCallback(func(f *cutlist.File) {
			m.reloads <- reloadEvent{file: f}
		})
		w.SetErrorCallback(func(err error) {
			m.reloads <- reloadEvent{err: err}
		})
		w.Start()
		m.watcher = w
	}

	return m, nil
}

func newGlobInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "glob, e.g. 4.*"
	ti.Prompt = "select: "
	ti.CharLimit = 64
	return ti
}

// mountSurfaces registers a strip and a player for every segment in the
// current order, dropping surfaces for segments that no longer exist.
func (m *Model) mountSurfaces() {
	seen := make(map[string]bool)
	for _, seg := range m.ctrl.Order().Segments() {
		seen[seg.ID] = true
		if _, ok := m.strips[seg.ID]; !ok {
			m.strips[seg.ID] = NewStrip(float64(m.cfg.Editor.CanvasWidthPx), stripCols)
		}
		if _, ok := m.players[seg.ID]; !ok {
			m.players[seg.ID] = NewPlayer(seg.Duration())
		}
		m.ctrl.Markers().SetSurface(seg.ID, m.strips[seg.ID])
		m.ctrl.Playback().Set(seg.ID, m.players[seg.ID])
	}
	for id := range m.strips {
		if !seen[id] {
			delete(m.strips, id)
			m.ctrl.Markers().SetSurface(id, nil)
		}
	}
	for id := range m.players {
		if !seen[id] {
			delete(m.players, id)
			m.ctrl.Playback().Set(id, nil)
		}
	}
}

// subscribeHost wires the host side of the session contract: the
// controller emits intents, these handlers perform the authoritative
// mutations. The bus is synchronous, so they run inline with the
// controller call that triggered them.
func (m Model) subscribeHost() {
	bus := m.ctrl.Bus()
	host := m.host

	bus.Subscribe("split.requested", func(e event.Event) {
		split := e.(event.SplitRequestedEvent)
		cuts := make([]float64, len(split.Markers))
		for i, mk := range split.Markers {
			cuts[i] = mk.CutTimeS
		}
		if err := host.file.ApplySplit(split.SegmentID, cuts); err != nil {
			host.err = err
			return
		}
		host.pendingRefresh = true
	})

	bus.Subscribe("combine.requested", func(e event.Event) {
		combine := e.(event.CombineRequestedEvent)
		if err := host.file.ApplyCombine(combine.Groups); err != nil {
			host.err = err
			return
		}
		host.pendingRefresh = true
	})

	bus.Subscribe("scroll.requested", func(e event.Event) {
		host.scrollTo = e.(event.ScrollRequestedEvent).Index
	})
}

// Init starts the playback clock.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tick(m.cfg.TUI.TickInterval()),
		waitForDeferred(m.deferred),
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.reloads))
	}
	return tea.Batch(cmds...)
}

// Close releases the watcher and flushes the session log.
func (m Model) Close() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

// waitForDeferred drains the settle-delay channel: deferred marker
// restorations run on the update goroutine, never concurrently with
// rendering.
func waitForDeferred(ch <-chan func()) tea.Cmd {
	return func() tea.Msg {
		fn, ok := <-ch
		if !ok {
			return nil
		}
		return deferredMsg{fn: fn}
	}
}

// deferredMsg carries a settled marker restoration.
type deferredMsg struct {
	fn func()
}

// cursorSegment returns the id under the cursor, or "" with an empty
// list.
func (m Model) cursorSegment() string {
	seg := m.ctrl.Order().At(m.cursor)
	if seg == nil {
		return ""
	}
	return seg.ID
}
