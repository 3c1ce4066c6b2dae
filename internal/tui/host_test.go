package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestHostQuitsWhenFinished(t *testing.T) {
	t.Parallel()

	s := newTestScreen(t, testUI())
	h := NewHost(s)
	require.False(t, h.Finished())
	require.NotEmpty(t, h.View())

	_, cmd := h.Update(keyPress("enter"))
	require.Equal(t, 1, h.Page())
	for _, msg := range collect(cmd) {
		require.NotEqual(t, tea.QuitMsg{}, msg)
	}

	_, cmd = h.Update(FinishedMsg{})
	require.True(t, h.Finished())
	require.Equal(t, []tea.Msg{tea.QuitMsg{}}, collect(cmd))
	require.Empty(t, h.View())
}
