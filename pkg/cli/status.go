package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/stefanpenner/wrangle/pkg/item"
)

// StartCmd returns the start command.
func StartCmd(a *app) *Command {
	return statusCmd(a, "start", "Mark a local task in progress", item.StatusInProgress)
}

// DoneCmd returns the done command.
func DoneCmd(a *app) *Command {
	return statusCmd(a, "done", "Mark a local task closed", item.StatusClosed)
}

func statusCmd(a *app, name, short string, status item.Status) *Command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Bool("json", false, "Output the updated task as JSON")

	return &Command{
		Flags: fs,
		Usage: name + " <id>",
		Short: short,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("usage: wrangle %s <id>", name)
			}

			task, err := a.store.SetStatus(args[0], status)
			if err != nil {
				return err
			}

			jsonOutput, _ := fs.GetBool("json")
			if jsonOutput {
				return o.OutputJSON(task)
			}
			o.Printf("%s → %s\n", task.ID, task.Status)
			return nil
		},
	}
}
