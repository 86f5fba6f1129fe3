package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/stefanpenner/wrangle/pkg/engine"
	"github.com/stefanpenner/wrangle/pkg/render"
)

// BlockedCmd returns the blocked command.
func BlockedCmd(a *app) *Command {
	fs := flag.NewFlagSet("blocked", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON")
	fs.String("remote", "", "Source items from a configured remote instead of the local store")

	return &Command{
		Flags: fs,
		Usage: "blocked [flags]",
		Short: "List blocked items and why",
		Long: `List open items that cannot be started.

Two sections: items blocked by unresolved or missing dependencies (with
the ids holding them back), and items manually tagged "blocked"
regardless of the dependency graph.`,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			jsonOutput, _ := fs.GetBool("json")
			remoteName, _ := fs.GetString("remote")

			items, _, err := a.snapshot(ctx, o, remoteName)
			if err != nil {
				return err
			}

			_, blocked := engine.ResolveReadiness(items)
			tagged := engine.TaggedBlocked(items)

			if jsonOutput {
				return o.OutputJSON(map[string]any{
					"blocked": blocked,
					"tagged":  tagged,
				})
			}

			o.Print(render.BlockedReport(blocked, tagged))
			return nil
		},
	}
}
