package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/stefanpenner/wrangle/pkg/config"
	"github.com/stefanpenner/wrangle/pkg/engine"
	"github.com/stefanpenner/wrangle/pkg/item"
	"github.com/stefanpenner/wrangle/pkg/remote"
	"github.com/stefanpenner/wrangle/pkg/store"
)

// app holds the dependencies shared by all commands.
type app struct {
	cfg   *config.Config
	store *store.Store
	env   map[string]string
}

// Run is the CLI entry point. It returns the process exit code.
func Run(ctx context.Context, in io.Reader, out, errOut io.Writer, args []string, env map[string]string) int {
	o := &IO{In: in, Out: out, Err: errOut}

	if len(args) < 2 {
		printUsage(o, commandList(&app{}))
		return 1
	}

	// --dir is the only global flag; strip it before command dispatch.
	rest, dataDirFlag := extractDirFlag(args[1:])

	workDir, err := os.Getwd()
	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDir:         workDir,
		DataDirOverride: dataDirFlag,
		Env:             env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = store.DefaultDataDir()
	}
	s, err := store.NewStore(dataDir)
	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}

	a := &app{cfg: cfg, store: s, env: env}
	commands := commandList(a)

	name := rest[0]
	if name == "help" || name == "--help" || name == "-h" {
		printUsage(o, commands)
		return 0
	}

	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(ctx, o, rest[1:])
		}
	}

	o.ErrPrintln("unknown command:", name)
	o.ErrPrintln()
	printUsage(o, commands)
	return 1
}

func commandList(a *app) []*Command {
	return []*Command{
		NextCmd(a),
		ReadyCmd(a),
		BlockedCmd(a),
		StandupCmd(a),
		ListCmd(a),
		ShowCmd(a),
		AddCmd(a),
		StartCmd(a),
		DoneCmd(a),
		BoardCmd(a),
		SyncCmd(a),
		InitCmd(a),
	}
}

func printUsage(o *IO, commands []*Command) {
	o.Println("wrangle — work-item wrangling for the terminal")
	o.Println()
	o.Println("Usage: wrangle [--dir <path>] <command> [flags]")
	o.Println()
	o.Println("Commands:")
	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}
	o.Println()
	o.Println("Data directory resolution: --dir flag, WRANGLE_DIR, config file, OS default.")
}

func extractDirFlag(args []string) ([]string, string) {
	var rest []string
	dir := ""
	for i := 0; i < len(args); i++ {
		if args[i] == "--dir" && i+1 < len(args) {
			dir = args[i+1]
			i++
			continue
		}
		rest = append(rest, args[i])
	}
	if len(rest) == 0 {
		rest = []string{"help"}
	}
	return rest, dir
}

// snapshot loads the work-item snapshot from the local store or, when a
// remote name is given, from that tracker. The returned checker is non-nil
// only for remotes that support dependency-link confirmation.
func (a *app) snapshot(ctx context.Context, o *IO, remoteName string) ([]item.WorkItem, engine.DependencyChecker, error) {
	if remoteName == "" {
		items, err := a.store.List()
		if err != nil {
			return nil, nil, err
		}
		for _, w := range a.store.Warnings() {
			o.Warn("%s", w)
		}
		return items, nil, nil
	}

	r, err := a.cfg.Remote(remoteName)
	if err != nil {
		return nil, nil, err
	}

	switch r.Kind {
	case config.KindHub:
		client := remote.NewHubClient(remote.HubConfig{
			BaseURL: r.BaseURL,
			Owner:   r.Org,
			Repo:    r.Project,
			Token:   r.Token(a.env),
		})
		items, err := client.ListCandidates(ctx)
		return items, client, err
	case config.KindBoard:
		client := remote.NewBoardClient(remote.BoardConfig{
			BaseURL: r.BaseURL,
			Org:     r.Org,
			Project: r.Project,
			Token:   r.Token(a.env),
		})
		items, err := client.ListCandidates(ctx, remote.WIQLFilter{})
		return items, client, err
	default:
		return nil, nil, fmt.Errorf("remote %q has unknown kind %q", r.Name, r.Kind)
	}
}
