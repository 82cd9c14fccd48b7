package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todolist/internal/host"
	"github.com/sandeepkv93/todolist/internal/views"
)

func (m Model) Init() tea.Cmd {
	m.Component.Connect()
	return waitForFlushCmd(m.Component.Queue().Ready())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case FlushMsg:
		m.Component.Queue().Flush()
		m.syncFocus()
		return m, waitForFlushCmd(m.Component.Queue().Ready())
	case SetHideCompletedMsg:
		if typed.Value {
			m.Component.Host().SetAttribute(host.AttrHideCompleted, "")
		} else {
			m.Component.Host().RemoveAttribute(host.AttrHideCompleted)
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyStr := msg.String(); keyStr {
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		m.Component.Disconnect()
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "up", m.Keys.Up:
		m.moveFocus(-1)
		return m, nil
	case "down", m.Keys.Down:
		m.moveFocus(1)
		return m, nil
	case "space", "enter", m.Keys.Toggle:
		if focused := m.Component.Surface().Focused(); focused != nil {
			return m.click(focused.Key)
		}
		return m, nil
	case m.Keys.Hide:
		return m.click(views.HideCompletedKey)
	}
	return m, nil
}

func (m Model) click(key string) (tea.Model, tea.Cmd) {
	if err := m.Component.Click(key); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{}
	return m, nil
}

func waitForFlushCmd(ready <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ready
		return FlushMsg{}
	}
}

// moveFocus steps focus through the checkboxes, clamping at both ends.
func (m *Model) moveFocus(delta int) {
	boxes := m.Component.Checkboxes()
	if len(boxes) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(boxes)-1 {
		next = len(boxes) - 1
	}
	m.cursor = next
	m.Component.Surface().Focus(boxes[next])
}

// syncFocus keeps the cursor on the focused checkbox, or refocuses by
// position when the focused element was removed by the last pass.
func (m *Model) syncFocus() {
	boxes := m.Component.Checkboxes()
	if len(boxes) == 0 {
		m.cursor = 0
		return
	}
	surface := m.Component.Surface()
	if focused := surface.Focused(); focused != nil {
		for i, el := range boxes {
			if el == focused {
				m.cursor = i
				return
			}
		}
	}
	if m.cursor > len(boxes)-1 {
		m.cursor = len(boxes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	surface.Focus(boxes[m.cursor])
}
