package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/stefanpenner/wrangle/pkg/store"
)

// AddCmd returns the add command.
func AddCmd(a *app) *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.StringP("title", "t", "", "Task title (required)")
	fs.String("type", "task", "Work-item type (task|bug|user_story|feature|epic)")
	fs.IntP("priority", "p", 0, "Priority, 1 = highest (default: lowest tier)")
	fs.Float64("remaining", 0, "Remaining work in hours")
	fs.StringSlice("depends", nil, "Ids this task depends on")
	fs.StringSlice("tags", nil, "Free-text tags")
	fs.Bool("parallel", false, "Mark as workable in parallel with siblings")
	fs.Bool("json", false, "Output the created task as JSON")

	return &Command{
		Flags: fs,
		Usage: "add -t <title> [flags]",
		Short: "Create a new local task",
		Long: `Create a task file under tasks/ in the data directory.

The task id is derived from the title.

Examples:
  wrangle add -t "Fix login crash" --type bug -p 1 --tags critical
  wrangle add -t "Ship importer" --depends fix-login-crash --remaining 4`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			title, _ := fs.GetString("title")
			if title == "" {
				return fmt.Errorf("a title is required (-t)")
			}

			taskType, _ := fs.GetString("type")
			priority, _ := fs.GetInt("priority")
			remaining, _ := fs.GetFloat64("remaining")
			depends, _ := fs.GetStringSlice("depends")
			tags, _ := fs.GetStringSlice("tags")
			parallel, _ := fs.GetBool("parallel")
			jsonOutput, _ := fs.GetBool("json")

			task, err := a.store.Create(&store.Task{
				Title:     title,
				Type:      taskType,
				Priority:  priority,
				Remaining: remaining,
				DependsOn: depends,
				Tags:      tags,
				Parallel:  parallel,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return o.OutputJSON(task)
			}
			o.Println("Created:", task.ID)
			return nil
		},
	}
}
