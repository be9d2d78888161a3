package workflow

import (
	"github.com/go-git/go-git/v5"
)

// headRef returns the abbreviated HEAD commit of the repository containing
// dir, or "" when dir is not inside a git repository (or has no commits).
// The execute phase may rewrite the project directory, so the orchestrator
// snapshots HEAD on both sides of it.
func headRef(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	return head.Hash().String()[:7]
}
