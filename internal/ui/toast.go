package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 3 * time.Second

// toast is the transient status line reporting the outcome of the last
// operation. Each new toast gets a fresh id so a stale expiry tick cannot
// dismiss a newer message.
type toast struct {
	id      int
	text    string
	isError bool
}

type toastExpiredMsg struct {
	id int
}

func (m *Model) showToast(text string, isError bool) tea.Cmd {
	m.toast = toast{id: m.toast.id + 1, text: text, isError: isError}
	id := m.toast.id
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) clearToast(id int) {
	if m.toast.id == id {
		m.toast.text = ""
	}
}

func (m Model) toastView() string {
	if m.toast.text == "" {
		return ""
	}
	if m.toast.isError {
		return m.styles.ToastError.Render(m.toast.text)
	}
	return m.styles.ToastSuccess.Render(m.toast.text)
}
