package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/stefanpenner/wrangle/pkg/engine"
	"github.com/stefanpenner/wrangle/pkg/render"
)

// NextCmd returns the next command.
func NextCmd(a *app) *Command {
	fs := flag.NewFlagSet("next", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON")
	fs.String("remote", "", "Source items from a configured remote instead of the local store")

	return &Command{
		Flags: fs,
		Usage: "next [flags]",
		Short: "Recommend the single best task to work on now",
		Long: `Recommend the single best next task.

Only ready items are considered: open status, every dependency closed.
The pick is the lowest-scored ready item (priority first, then bug /
quick-win / critical-tag bonuses), with up to three runners-up.

With --remote, each candidate's dependency links are re-checked against
the tracker; a failed check never blocks a recommendation.

Examples:
  wrangle next
  wrangle next --remote work
  wrangle next --json`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			jsonOutput, _ := fs.GetBool("json")
			remoteName, _ := fs.GetString("remote")

			items, checker, err := a.snapshot(ctx, o, remoteName)
			if err != nil {
				return err
			}

			rec := engine.RecommendNextChecked(ctx, items, checker)

			if jsonOutput {
				return o.OutputJSON(map[string]any{
					"best":         rec.Best,
					"reasons":      rec.Reasons,
					"alternatives": rec.Alternatives,
				})
			}

			for _, w := range rec.Warnings {
				o.Warn("%s", w)
			}
			rec.Warnings = nil
			o.Print(render.Recommendation(rec))
			return nil
		},
	}
}
