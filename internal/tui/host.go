package tui

import tea "github.com/charmbracelet/bubbletea"

// Host runs a Screen as a whole program and quits once onboarding finishes.
type Host struct {
	screen   *Screen
	finished bool
}

func NewHost(screen *Screen) *Host {
	return &Host{screen: screen}
}

// Finished reports whether the user pressed next on the last slide.
func (h *Host) Finished() bool {
	return h.finished
}

// Page is the slide the user was on when the program ended.
func (h *Host) Page() int {
	return h.screen.ctrl.CurrentPage()
}

func (h *Host) Init() tea.Cmd {
	return h.screen.Init()
}

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(FinishedMsg); ok {
		h.finished = true
		return h, tea.Quit
	}
	_, cmd := h.screen.Update(msg)
	return h, cmd
}

func (h *Host) View() string {
	if h.finished {
		return ""
	}
	return h.screen.View()
}
