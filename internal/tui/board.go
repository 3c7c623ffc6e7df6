package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"hunterline/internal/engine"
)

// RunBoard runs the interactive board until the user quits. rec must be
// registered as one of svc's notifiers so the footer can show system messages.
func RunBoard(ctx context.Context, svc *engine.Service, rec *engine.Recorder, out io.Writer) error {
	m := newBoardModel(ctx, svc, rec)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
