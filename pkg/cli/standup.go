package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/stefanpenner/wrangle/pkg/engine"
	"github.com/stefanpenner/wrangle/pkg/render"
)

// StandupCmd returns the standup command.
func StandupCmd(a *app) *Command {
	fs := flag.NewFlagSet("standup", flag.ContinueOnError)
	fs.Bool("json", false, "Output as JSON")
	fs.String("remote", "", "Source items from a configured remote instead of the local store")

	return &Command{
		Flags: fs,
		Usage: "standup [flags]",
		Short: "Daily digest: in progress, ready, blocked, and a recommendation",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			jsonOutput, _ := fs.GetBool("json")
			remoteName, _ := fs.GetString("remote")

			items, _, err := a.snapshot(ctx, o, remoteName)
			if err != nil {
				return err
			}

			d := engine.BuildDigest(items)

			if jsonOutput {
				return o.OutputJSON(d)
			}

			o.Print(render.Standup(d))
			return nil
		},
	}
}
