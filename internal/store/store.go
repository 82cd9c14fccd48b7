package store

import (
	"iter"

	"github.com/sandeepkv93/todolist/internal/model"
	"go.trai.ch/zerr"
)

var ErrAlreadyInitialized = zerr.New("store: already initialized")

type Field string

const (
	FieldTasks         Field = "tasks"
	FieldHideCompleted Field = "hideCompleted"
)

// Change describes a single accepted mutation. TaskID is set only for
// FieldTasks changes.
type Change struct {
	Field  Field
	TaskID int
}

type Listener func(Change)

// Store owns the checklist state. All writes go through its setters, which
// notify listeners only when a value actually changes.
type Store struct {
	tasks         []model.Task
	index         map[int]int
	hideCompleted bool
	initialized   bool
	listeners     []Listener
}

func New() *Store {
	return &Store{index: make(map[int]int)}
}

func (s *Store) Initialize(seed []model.Task) error {
	if s.initialized {
		return ErrAlreadyInitialized
	}
	if err := model.ValidateList(seed); err != nil {
		return err
	}
	s.tasks = make([]model.Task, len(seed))
	copy(s.tasks, seed)
	for i, t := range s.tasks {
		s.index[t.ID] = i
	}
	s.initialized = true
	return nil
}

// Subscribe registers fn to run synchronously after every accepted
// mutation, in registration order.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// SetCompleted is a no-op for unknown ids.
func (s *Store) SetCompleted(id int, value bool) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	if s.tasks[i].Completed == value {
		return
	}
	s.tasks[i].Completed = value
	s.notify(Change{Field: FieldTasks, TaskID: id})
}

func (s *Store) SetHideCompleted(value bool) {
	if s.hideCompleted == value {
		return
	}
	s.hideCompleted = value
	s.notify(Change{Field: FieldHideCompleted})
}

func (s *Store) HideCompleted() bool {
	return s.hideCompleted
}

func (s *Store) Task(id int) (model.Task, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Store) Len() int {
	return len(s.tasks)
}

// VisibleTasks yields tasks in stored order, skipping completed ones while
// hideCompleted is set. The filter flag is read when iteration starts.
func (s *Store) VisibleTasks() iter.Seq[model.Task] {
	return func(yield func(model.Task) bool) {
		hide := s.hideCompleted
		for _, t := range s.tasks {
			if hide && t.Completed {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

func (s *Store) notify(c Change) {
	for _, fn := range s.listeners {
		fn(c)
	}
}
