package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	lines := []string{"help:"}
	for _, kb := range m.keyBindings() {
		lines = append(lines, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	lines = append(lines, m.helpModel.View(helpKeyMap{
		short: bindings,
		full:  [][]key.Binding{bindings},
	}))
	return strings.Join(lines, "\n")
}

func (m Model) keyBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Down + "/" + m.Keys.Up, Action: "move focus"},
		{Key: "space", Action: "toggle focused checkbox"},
		{Key: m.Keys.Hide, Action: "hide completed"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.keyBindings()))
	for _, kb := range m.keyBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
