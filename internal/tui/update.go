package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avkit/segcut/internal/session"
)

const statusTTL = 3 * time.Second

// Update is the bubbletea message loop. Every controller call runs here,
// on the update goroutine; the synchronous bus means host-side mutations
// land before the call returns, so consumeHost can pick them up
// immediately.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		cmd := m.advanceClocks()
		return m, tea.Batch(tick(m.cfg.TUI.TickInterval()), cmd)

	case deferredMsg:
		msg.fn()
		return m, waitForDeferred(m.deferred)

	case cutListReloadedMsg:
		m.host.file = msg.file
		m.refreshFromFile()
		m.setStatus("cut list reloaded", false)
		return m, tea.Batch(waitForReload(m.reloads), clearStatusAfter(statusTTL))

	case watchErrMsg:
		m.setStatus(msg.err.Error(), true)
		return m, tea.Batch(waitForReload(m.reloads), clearStatusAfter(statusTTL))

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		if m.globbing {
			return m.updateGlob(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// updateGlob routes keys to the pattern prompt until it is confirmed or
// cancelled.
func (m Model) updateGlob(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		pattern := m.globInput.Value()
		m.globbing = false
		m.globInput.Blur()
		m.globInput.SetValue("")
		if pattern == "" {
			return m, nil
		}
		n, err := m.ctrl.SelectPattern(pattern)
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, clearStatusAfter(statusTTL)
		}
		m.setStatus(fmt.Sprintf("%d segment(s) matched %q", n, pattern), false)
		return m, clearStatusAfter(statusTTL)
	case "esc":
		m.globbing = false
		m.globInput.Blur()
		m.globInput.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.globInput, cmd = m.globInput.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < m.ctrl.Order().Len()-1 {
			m.cursor++
		}
		return m, nil

	case "K":
		if m.cursor > 0 {
			m.ctrl.Reorder(m.cursor, m.cursor-1)
			m.cursor--
		}
		return m, nil

	case "J":
		if m.cursor < m.ctrl.Order().Len()-1 {
			m.ctrl.Reorder(m.cursor, m.cursor+1)
			m.cursor++
		}
		return m, nil

	case "tab":
		if m.ctrl.Mode() == session.ModeSegments {
			m.ctrl.SetMode(session.ModePreview)
		} else {
			m.ctrl.SetMode(session.ModeSegments)
		}
		return m, nil

	case "enter":
		if id := m.cursorSegment(); id != "" {
			m.ctrl.SetCurrentIndex(m.cursor)
			m.ctrl.Seek(id)
			m.followScroll()
		}
		return m, nil

	case " ":
		if id := m.cursorSegment(); id != "" {
			m.ctrl.ToggleCombine(id)
		}
		return m, nil

	case "v":
		if id := m.cursorSegment(); id != "" {
			m.ctrl.ToggleSelection(id)
		}
		return m, nil

	case "/":
		m.globbing = true
		m.globInput.Focus()
		return m, nil

	case "p":
		return m.togglePlayback()

	case "m":
		if id := m.cursorSegment(); id != "" {
			m.ctrl.AddMarker(id)
		}
		return m, nil

	case "x":
		if id := m.cursorSegment(); id != "" {
			m.ctrl.ClearMarkers(id)
		}
		return m, nil

	case "s":
		if id := m.cursorSegment(); id != "" {
			m.ctrl.Split(id)
			return m.consumeHost()
		}
		return m, nil

	case "c":
		m.ctrl.Combine()
		return m.consumeHost()
	}
	return m, nil
}

// togglePlayback flips the clock of the segment under the cursor and
// makes it the current segment when it starts playing.
func (m Model) togglePlayback() (tea.Model, tea.Cmd) {
	id := m.cursorSegment()
	if id == "" {
		return m, nil
	}
	player, ok := m.players[id]
	if !ok {
		return m, nil
	}
	if player.Playing() {
		player.Pause()
		return m, nil
	}
	m.ctrl.SetCurrentIndex(m.cursor)
	m.followScroll()
	player.Play()
	return m, nil
}

// advanceClocks steps every playing segment. In preview mode a finished
// segment hands playback to the next one in order, so the whole cut
// plays through.
func (m *Model) advanceClocks() tea.Cmd {
	dt := m.cfg.TUI.TickInterval()
	for id, player := range m.players {
		if !player.Advance(dt) {
			continue
		}
		if m.ctrl.Mode() != session.ModePreview {
			continue
		}
		idx := m.ctrl.Order().IndexOf(id)
		if idx < 0 || idx != m.ctrl.CurrentIndex() {
			continue
		}
		next := idx + 1
		if next >= m.ctrl.Order().Len() {
			continue
		}
		m.ctrl.SetCurrentIndex(next)
		m.followScroll()
		if seg := m.ctrl.Order().At(next); seg != nil {
			if p, ok := m.players[seg.ID]; ok {
				p.SeekTo(0)
				p.Play()
			}
		}
	}
	return nil
}

// consumeHost applies the outcome of a split or combine request: the
// host handlers have already mutated the cut-list file, so rebuild the
// session from it and persist the result.
func (m Model) consumeHost() (tea.Model, tea.Cmd) {
	if m.host.err != nil {
		err := m.host.err
		m.host.err = nil
		m.setStatus(err.Error(), true)
		return m, clearStatusAfter(statusTTL)
	}
	if !m.host.pendingRefresh {
		return m, nil
	}
	m.host.pendingRefresh = false
	m.refreshFromFile()
	if err := m.host.file.Save(m.path); err != nil {
		m.log.Error("cut list save failed", "path", m.path, "error", err)
		m.setStatus(err.Error(), true)
		return m, clearStatusAfter(statusTTL)
	}
	return m, nil
}

// refreshFromFile rebuilds surfaces and players for the file's current
// segments and reconciles the session against them.
func (m *Model) refreshFromFile() {
	m.ctrl.Refresh(m.host.file.SessionSegments(), m.host.file.MarkerMap())
	m.mountSurfaces()
	if m.cursor >= m.ctrl.Order().Len() {
		m.cursor = m.ctrl.Order().Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// followScroll moves the cursor to wherever the session asked the view
// to scroll. Preview mode emits these as the current segment advances.
func (m *Model) followScroll() {
	if m.host.scrollTo < 0 {
		return
	}
	m.cursor = m.host.scrollTo
	m.host.scrollTo = -1
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}
