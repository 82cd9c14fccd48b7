package views

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todolist/internal/model"
)

const (
	RootTag            = "todo-list"
	Heading            = "ToDo List"
	CompletedClass     = "completed"
	ListKey            = "list"
	HideCompletedKey   = "hide-completed"
	HideCompletedLabel = "Hide completed"

	taskItemPrefix   = "task-"
	taskTogglePrefix = "toggle-"
)

type EventType string

const (
	EventClick  EventType = "click"
	EventChange EventType = "change"
)

type Action int

const (
	ActionToggleTask Action = iota + 1
	ActionHideCompleted
)

func (a Action) String() string {
	switch a {
	case ActionToggleTask:
		return "toggle-task"
	case ActionHideCompleted:
		return "hide-completed"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Binding ties an element key to the event it listens for and the store
// mutation that event requests.
type Binding struct {
	Event  EventType
	Action Action
	TaskID int
}

type State struct {
	Tasks         iter.Seq[model.Task]
	HideCompleted bool
}

type View struct {
	Tree     *Node
	Bindings map[string]Binding
}

func TaskItemKey(id int) string   { return taskItemPrefix + strconv.Itoa(id) }
func TaskToggleKey(id int) string { return taskTogglePrefix + strconv.Itoa(id) }

// TaskIDFromKey parses an item or toggle key back into a task id.
func TaskIDFromKey(key string) (int, bool) {
	for _, prefix := range []string{taskTogglePrefix, taskItemPrefix} {
		if rest, ok := strings.CutPrefix(key, prefix); ok {
			id, err := strconv.Atoi(rest)
			return id, err == nil
		}
	}
	return 0, false
}

// Build describes the checklist for state. It has no side effects and
// returns structurally equal output for equal state.
func Build(state State) View {
	bindings := make(map[string]Binding)
	items := make([]*Node, 0)
	if state.Tasks != nil {
		for task := range state.Tasks {
			items = append(items, taskItem(task))
			bindings[TaskToggleKey(task.ID)] = Binding{Event: EventClick, Action: ActionToggleTask, TaskID: task.ID}
		}
	}
	bindings[HideCompletedKey] = Binding{Event: EventChange, Action: ActionHideCompleted}

	tree := El(RootTag, "", nil,
		El("h1", "", nil, Text(Heading)),
		El("ul", ListKey, nil, items...),
		El("label", HideCompletedKey+"-label", nil,
			El("input", HideCompletedKey, checkboxAttrs(state.HideCompleted)),
			Text(HideCompletedLabel),
		),
	)
	return View{Tree: tree, Bindings: bindings}
}

func taskItem(task model.Task) *Node {
	var attrs []Attr
	if task.Completed {
		attrs = append(attrs, Attr{Name: "class", Value: CompletedClass})
	}
	return El("li", TaskItemKey(task.ID), attrs,
		El("label", "", nil,
			El("input", TaskToggleKey(task.ID), checkboxAttrs(task.Completed)),
			Text(task.Label),
		),
	)
}

func checkboxAttrs(checked bool) []Attr {
	attrs := []Attr{{Name: "type", Value: "checkbox"}}
	if checked {
		attrs = append(attrs, Attr{Name: "checked"})
	}
	return attrs
}
