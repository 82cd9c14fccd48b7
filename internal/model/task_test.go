package model

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateListSuccess(t *testing.T) {
	if err := ValidateList(DefaultSeed()); err != nil {
		t.Fatalf("expected default seed to be valid, got: %v", err)
	}
}

func TestValidateListDuplicateID(t *testing.T) {
	tasks := []Task{
		{ID: 1, Label: "A"},
		{ID: 2, Label: "B"},
		{ID: 1, Label: "C", Completed: true},
	}
	err := ValidateList(tasks)
	if err == nil || !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got: %v", err)
	}
}

func TestValidateEmptyLabel(t *testing.T) {
	err := Task{ID: 7, Label: "   "}.Validate()
	if err == nil || !errors.Is(err, ErrEmptyLabel) {
		t.Fatalf("expected ErrEmptyLabel, got: %v", err)
	}
	if !strings.Contains(err.Error(), "id 7") {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestDefaultSeedOrderAndCompletion(t *testing.T) {
	seed := DefaultSeed()
	if len(seed) != 4 {
		t.Fatalf("expected 4 seeded tasks, got %d", len(seed))
	}
	for i, task := range seed {
		if task.ID != i+1 {
			t.Fatalf("seed[%d].ID = %d, want %d", i, task.ID, i+1)
		}
		if want := i < 3; task.Completed != want {
			t.Fatalf("seed[%d].Completed = %v, want %v", i, task.Completed, want)
		}
	}
}
