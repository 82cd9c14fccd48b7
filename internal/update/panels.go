package update

import (
	"fmt"

	"github.com/sandeepkv93/todolist/internal/reconcile"
	"github.com/sandeepkv93/todolist/internal/views"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	items, toggle := m.surfaceItems()
	return views.RenderApp(views.AppData{
		Header:     m.header,
		Items:      items,
		HideToggle: toggle,
		HostAttrs:  m.Component.Host().String(),
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Help:       m.renderHelpIfVisible(),
		Footer:     fmt.Sprintf("keys: %s/%s move | space toggle | %s hide completed | %s help | %s quit", m.Keys.Down, m.Keys.Up, m.Keys.Hide, m.Keys.Help, m.Keys.Quit),
	})
}

// surfaceItems reads rows straight from the live surface, so the frame
// shows exactly what the last render pass applied.
func (m Model) surfaceItems() ([]views.ItemData, views.ItemData) {
	surface := m.Component.Surface()
	focused := surface.Focused()
	toggle := views.ItemData{Key: views.HideCompletedKey, Label: views.HideCompletedLabel}
	if box := surface.Find(views.HideCompletedKey); box != nil {
		toggle.Checked = box.IsChecked()
		toggle.Focused = box == focused
	}

	list := surface.Find(views.ListKey)
	if list == nil {
		return nil, toggle
	}
	items := make([]views.ItemData, 0, len(list.Children))
	for _, li := range list.Children {
		item := views.ItemData{
			Key:       li.Key,
			Label:     li.TextContent(),
			Completed: li.HasClass(views.CompletedClass),
		}
		if box := checkboxIn(li); box != nil {
			item.Checked = box.IsChecked()
			item.Focused = box == focused
		}
		items = append(items, item)
	}
	return items, toggle
}

func checkboxIn(el *reconcile.Element) *reconcile.Element {
	var found *reconcile.Element
	el.Walk(func(e *reconcile.Element) bool {
		if e.ControlKind() == "checkbox" {
			found = e
			return false
		}
		return true
	})
	return found
}
