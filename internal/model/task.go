package model

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	ErrDuplicateID = zerr.New("model: duplicate task id")
	ErrEmptyLabel  = zerr.New("model: task label is required")
)

// Task is a single checklist entry. ID and Label never change after the
// list is seeded; only Completed is mutated.
type Task struct {
	ID        int
	Label     string
	Completed bool
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Label) == "" {
		return fmt.Errorf("%w: id %d", ErrEmptyLabel, t.ID)
	}
	return nil
}

// ValidateList checks every task and the uniqueness of ids across the list.
func ValidateList(tasks []Task) error {
	seen := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// DefaultSeed is the dataset a freshly constructed checklist starts with.
func DefaultSeed() []Task {
	return []Task{
		{ID: 1, Label: "Learn about encapsulation and reusability", Completed: true},
		{ID: 2, Label: "Learn the Web Components APIs", Completed: true},
		{ID: 3, Label: "Learn the basic Lit APIs", Completed: true},
		{ID: 4, Label: "Learn practical Lit usage", Completed: false},
	}
}
