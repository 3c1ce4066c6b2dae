package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:  key.NewBinding(key.WithKeys("enter", "n", " "), key.WithHelp("enter", "next")),
		Prev:  key.NewBinding(key.WithKeys("p", "backspace", "shift+tab"), key.WithHelp("p", "back")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "swipe back")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "swipe on")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// setLastPage relabels the next binding; on the last page it finishes.
func (k *keyMap) setLastPage(last bool) {
	if last {
		k.Next.SetHelp("enter", "finish")
		return
	}
	k.Next.SetHelp("enter", "next")
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Right, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Left, k.Right},
		{k.Quit},
	}
}
