package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"lotview/internal/domain"
)

// RenderHistory formats the full search history for the pager
func RenderHistory(owner string, items []domain.SearchHistoryItem) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	queryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Search history of %s (%d)", owner, len(items))))
	b.WriteString("\n\n")
	if len(items) == 0 {
		b.WriteString("  no searches yet\n")
		return b.String()
	}
	for _, item := range items {
		query := item.Query
		if query == "" {
			query = "(everything)"
		}
		b.WriteString("  ")
		b.WriteString(queryStyle.Render(query))
		if item.IsUsersSearch {
			login := item.UserLogin
			if login == "" {
				login = owner
			}
			b.WriteString(tagStyle.Render("  @" + login))
		}
		if item.IsFinished {
			b.WriteString(tagStyle.Render("  finished"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// HistoryPager shows long content in ov while the program has released the terminal
type HistoryPager struct {
	program *tea.Program
}

// NewHistoryPager creates a pager bound to program
func NewHistoryPager(program *tea.Program) *HistoryPager {
	return &HistoryPager{program: program}
}

// Show runs ov over content and blocks until it exits
func (h *HistoryPager) Show(content string) error {
	if h == nil || h.program == nil {
		return errors.New("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write on exit, the program repaints its own screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
