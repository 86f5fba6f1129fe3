package cli

import (
	"context"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// ShowCmd returns the show command.
func ShowCmd(a *app) *Command {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON")

	return &Command{
		Flags: fs,
		Usage: "show <id>",
		Short: "Show one local task in full",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("usage: wrangle show <id>")
			}

			task, err := a.store.Load(args[0])
			if err != nil {
				return err
			}

			jsonOutput, _ := fs.GetBool("json")
			if jsonOutput {
				return o.OutputJSON(task)
			}

			o.Printf("%s: %s\n", task.ID, task.Title)
			o.Printf("Status: %s\n", task.Status)
			if task.Type != "" {
				o.Printf("Type: %s\n", task.Type)
			}
			if task.Priority > 0 {
				o.Printf("Priority: P%d\n", task.Priority)
			}
			if task.Remaining > 0 {
				o.Printf("Remaining: %.1fh\n", task.Remaining)
			}
			if len(task.DependsOn) > 0 {
				o.Printf("Depends on: %s\n", strings.Join(task.DependsOn, ", "))
			}
			if len(task.Tags) > 0 {
				o.Printf("Tags: %s\n", strings.Join(task.Tags, ", "))
			}
			if task.Parallel {
				o.Println("Parallel: yes")
			}
			if task.Body != "" {
				o.Println()
				o.Println(task.Body)
			}
			return nil
		},
	}
}
