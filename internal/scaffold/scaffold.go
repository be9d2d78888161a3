// Package scaffold creates a small sample project for trying the tool on.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const sampleMain = `"""Sample application for trying QoderCLI on a real project."""


class TaskManager:
    """A minimal task list."""

    def __init__(self):
        self.tasks = []

    def add_task(self, title, description=""):
        task = {
            "id": len(self.tasks) + 1,
            "title": title,
            "description": description,
            "completed": False,
        }
        self.tasks.append(task)
        return task

    def complete_task(self, task_id):
        for task in self.tasks:
            if task["id"] == task_id:
                task["completed"] = True
                return True
        return False


if __name__ == "__main__":
    tm = TaskManager()
    tm.add_task("try qoderbridge", "run an analysis prompt against this project")
    for task in tm.tasks:
        marker = "x" if task["completed"] else " "
        print(f"[{marker}] {task['id']}: {task['title']}")
`

const sampleReadme = `# Sample project

A tiny project for exercising directory-scoped prompts, e.g.:

    qoderbridge run -d . "describe the structure of this project"
    qoderbridge task -d . "add a remove_task method to TaskManager"
`

// Create writes a sample project into dir and initializes a git repository
// with an initial commit, so workflow runs against it get HEAD snapshots.
// dir must not already contain a project; existing files are not touched,
// but an existing git repository is an error.
func Create(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return fmt.Errorf("%s is already a git repository", dir)
	}

	for _, sub := range []string{"src", "tests"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", sub, err)
		}
	}

	files := map[string]string{
		"src/main.py":      sampleMain,
		"README.md":        sampleReadme,
		"requirements.txt": "# sample project, no dependencies\n",
		"tests/.gitkeep":   "",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	return initRepo(dir)
}

// initRepo creates a git repository in dir and commits everything in it.
func initRepo(dir string) error {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("get worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("stage files: %w", err)
	}

	_, err = wt.Commit("scaffold sample project", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "qoderbridge",
			Email: "qoderbridge@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
