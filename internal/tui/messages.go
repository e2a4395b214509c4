package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avkit/segcut/internal/cutlist"
)

// tickMsg drives the simulated playback clock.
type tickMsg time.Time

// cutListReloadedMsg carries fresh cut-list contents from the file
// watcher.
type cutListReloadedMsg struct {
	file *cutlist.File
}

// watchErrMsg reports a watcher or reload failure.
type watchErrMsg struct {
	err error
}

// clearStatusMsg expires a transient status line.
type clearStatusMsg struct{}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// waitForReload blocks on the watcher channel and turns arrivals into
// messages.
func waitForReload(ch <-chan reloadEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		if ev.err != nil {
			return watchErrMsg{err: ev.err}
		}
		return cutListReloadedMsg{file: ev.file}
	}
}

// reloadEvent is what the watcher callbacks push onto the channel the
// bubbletea loop drains.
type reloadEvent struct {
	file *cutlist.File
	err  error
}
