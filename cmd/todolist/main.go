// Package main is the entry point for the todolist checklist.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todolist/internal/update"
)

func main() {
	cmd := newRootCmd(runProgram)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "todolist failed: %+v\n", err)
		os.Exit(1)
	}
}

func runProgram(ctx context.Context, m update.Model) error {
	program := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
