// Package sync shells out to git to synchronize the data directory with a
// remote.
package sync

import (
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"time"
)

func git(dir string, args ...string) *exec.Cmd {
	return exec.Command("git", append([]string{"-C", dir}, args...)...)
}

func isRepo(dir string) bool {
	_, err := exec.Command("git", "-C", dir, "rev-parse", "--git-dir").Output()
	return err == nil
}

// EnsureRepo initializes a git repository in the data directory if one does
// not exist yet.
func EnsureRepo(out io.Writer, dir string) error {
	if isRepo(dir) {
		return nil
	}
	cmd := git(dir, "init")
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("initializing repository in %s: %w", dir, err)
	}
	return nil
}

// SetRemote configures origin for the data directory's git repo.
func SetRemote(out io.Writer, dir, remote string) error {
	if !isRepo(dir) {
		return fmt.Errorf("%s is not a git repository — run 'wrangle init' first", dir)
	}

	// Remove existing origin first (ignore error if doesn't exist)
	git(dir, "remote", "remove", "origin").Run()

	cmd := git(dir, "remote", "add", "origin", remote)
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("setting remote: %w", err)
	}
	fmt.Fprintf(out, "Remote set to: %s\n", remote)
	return nil
}

// SyncRepo synchronizes the data directory with the remote.
// Strategy: commit local changes, rebase, fallback to merge, push.
func SyncRepo(out io.Writer, dir string) error {
	if !isRepo(dir) {
		return fmt.Errorf("%s is not a git repository — run 'wrangle init' first", filepath.Clean(dir))
	}

	// 1. Stage and commit any uncommitted local changes
	fmt.Fprintln(out, "Staging changes...")
	git(dir, "add", "-A").Run()
	if err := git(dir, "diff", "--cached", "--quiet").Run(); err != nil {
		msg := "sync " + time.Now().Format("2006-01-02 15:04:05")
		cmd := git(dir, "commit", "-m", msg)
		cmd.Stdout = out
		cmd.Stderr = out
		cmd.Run()
	}

	// 2. Try pull --rebase
	fmt.Fprintln(out, "Pulling...")
	rebaseCmd := git(dir, "pull", "--rebase")
	rebaseCmd.Stdout = out
	rebaseCmd.Stderr = out
	if err := rebaseCmd.Run(); err != nil {
		// 3. Rebase failed — abort and try merge
		fmt.Fprintln(out, "Rebase failed, trying merge...")
		git(dir, "rebase", "--abort").Run()

		mergeCmd := git(dir, "pull", "--no-rebase")
		mergeCmd.Stdout = out
		mergeCmd.Stderr = out
		if err := mergeCmd.Run(); err != nil {
			// 4. Merge also failed — abort and report
			git(dir, "merge", "--abort").Run()
			return fmt.Errorf("sync failed: could not rebase or merge. Resolve conflicts manually")
		}
	}

	// 5. Push
	fmt.Fprintln(out, "Pushing...")
	pushCmd := git(dir, "push")
	pushCmd.Stdout = out
	pushCmd.Stderr = out
	if err := pushCmd.Run(); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	fmt.Fprintln(out, "Sync complete.")
	return nil
}
