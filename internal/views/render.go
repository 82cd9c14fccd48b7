package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Items      []ItemData
	HideToggle ItemData
	HostAttrs  string
	StatusLine string
	StatusErr  bool
	Help       string
	Footer     string
}

// ItemData is one checkbox row as it currently exists on the live surface.
type ItemData struct {
	Key       string
	Label     string
	Checked   bool
	Completed bool
	Focused   bool
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	focusStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

func RenderApp(data AppData) string {
	var list strings.Builder
	if len(data.Items) == 0 {
		list.WriteString("(nothing to show)")
	}
	for i, item := range data.Items {
		if i > 0 {
			list.WriteString("\n")
		}
		list.WriteString(RenderItem(item))
	}
	body := panelStyle.Width(58).Render(list.String() + "\n\n" + RenderItem(data.HideToggle))

	lines := []string{headerStyle.Render(data.Header), body}
	if data.HostAttrs != "" {
		lines = append(lines, footerStyle.Render("host: "+data.HostAttrs))
	}
	if data.StatusLine != "" {
		status := statusStyle.Render(data.StatusLine)
		if data.StatusErr {
			status = errorStyle.Render(data.StatusLine)
		}
		lines = append(lines, status)
	}
	if data.Help != "" {
		lines = append(lines, panelStyle.Render(data.Help))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderItem(item ItemData) string {
	cursor := "  "
	if item.Focused {
		cursor = focusStyle.Render("> ")
	}
	box := "[ ]"
	if item.Checked {
		box = "[x]"
	}
	label := item.Label
	if item.Completed {
		label = completedStyle.Render(label)
	}
	return cursor + box + " " + label
}

func RenderMarkdown(md, style string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if style == "" {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
