package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/stefanpenner/wrangle/pkg/engine"
	"github.com/stefanpenner/wrangle/pkg/render"
)

// ReadyCmd returns the ready command.
func ReadyCmd(a *app) *Command {
	fs := flag.NewFlagSet("ready", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON array")
	fs.Int("limit", 0, "Maximum items to show (0 = no limit)")
	fs.String("remote", "", "Source items from a configured remote instead of the local store")

	return &Command{
		Flags: fs,
		Usage: "ready [flags]",
		Short: "List actionable items, best first",
		Long: `List items that can be started now, sorted by rank score.

An item is ready if its status is open and every dependency it declares
is closed. Ties keep snapshot order.

Examples:
  wrangle ready
  wrangle ready --limit 5
  wrangle ready --json`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			jsonOutput, _ := fs.GetBool("json")
			limit, _ := fs.GetInt("limit")
			remoteName, _ := fs.GetString("remote")

			items, _, err := a.snapshot(ctx, o, remoteName)
			if err != nil {
				return err
			}

			ranked := engine.ScoreAndRank(items)
			if limit > 0 && len(ranked) > limit {
				ranked = ranked[:limit]
			}

			if jsonOutput {
				return o.OutputJSON(ranked)
			}

			if len(ranked) == 0 {
				o.Println("No available tasks found.")
				return nil
			}

			for _, c := range ranked {
				o.Println(render.Line(c.Item))
			}
			return nil
		},
	}
}
