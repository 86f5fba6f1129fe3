package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/stefanpenner/wrangle/pkg/tui"
)

// BoardCmd returns the board command.
func BoardCmd(a *app) *Command {
	fs := flag.NewFlagSet("board", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "board",
		Short: "Interactive board of ready, in-progress, and blocked items",
		Long: `Open the interactive board. Items are grouped by readiness and
refresh automatically when task files change on disk.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			m := tui.NewModel(a.store)
			p := tea.NewProgram(m, tea.WithAltScreen())

			cleanup, err := tui.StartWatcher(a.store.Root, p)
			if err != nil {
				o.Warn("file watcher failed: %v", err)
			} else {
				defer cleanup()
			}

			_, err = p.Run()
			return err
		},
	}
}
