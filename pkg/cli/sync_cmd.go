package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	gsync "github.com/stefanpenner/wrangle/pkg/sync"
)

// SyncCmd returns the sync command.
func SyncCmd(a *app) *Command {
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "sync",
		Short: "Sync the data directory with its git remote",
		Long: `Synchronize the data directory: commit local changes, pull with
rebase (falling back to merge), then push.`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return gsync.SyncRepo(o.Out, a.store.Root)
		},
	}
}

// InitCmd returns the init command.
func InitCmd(a *app) *Command {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.String("remote", "", "Git remote URL for the data directory")

	return &Command{
		Flags: fs,
		Usage: "init [--remote <url>]",
		Short: "Initialize the data directory and optional git remote",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			remote, _ := fs.GetString("remote")

			if err := gsync.EnsureRepo(o.Out, a.store.Root); err != nil {
				return err
			}
			if remote != "" {
				return gsync.SetRemote(o.Out, a.store.Root, remote)
			}
			o.Println("Initialized:", a.store.Root)
			return nil
		},
	}
}
