package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/stefanpenner/wrangle/pkg/item"
	"github.com/stefanpenner/wrangle/pkg/render"
)

// ListCmd returns the list command.
func ListCmd(a *app) *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON array")
	fs.String("status", "", "Filter by status (open|in_progress|closed)")
	fs.String("remote", "", "Source items from a configured remote instead of the local store")

	return &Command{
		Flags: fs,
		Usage: "list [flags]",
		Short: "List all work items",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			jsonOutput, _ := fs.GetBool("json")
			statusFilter, _ := fs.GetString("status")
			remoteName, _ := fs.GetString("remote")

			items, _, err := a.snapshot(ctx, o, remoteName)
			if err != nil {
				return err
			}

			if statusFilter != "" {
				want := item.CanonicalStatus(statusFilter)
				var filtered []item.WorkItem
				for _, it := range items {
					if it.Status == want {
						filtered = append(filtered, it)
					}
				}
				items = filtered
			}

			if jsonOutput {
				return o.OutputJSON(items)
			}

			if len(items) == 0 {
				o.Println("No work items.")
				return nil
			}

			for _, it := range items {
				o.Println(render.Line(it))
			}
			return nil
		},
	}
}
