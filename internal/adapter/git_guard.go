package adapter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	git "github.com/go-git/go-git/v6"
	m "github.com/mouse-blink/alertmigrate/internal/model"
)

// ErrNotRepository is returned when the worktree guard is requested outside
// a git repository.
var ErrNotRepository = errors.New("not a git repository")

// WorktreeGuard reports files with uncommitted changes, so a rewrite never
// mixes with edits that cannot be reviewed separately.
type WorktreeGuard interface {
	Modified(ctx context.Context, path m.Path) (bool, error)
}

// GitWorktreeGuard implements WorktreeGuard with go-git. The worktree status
// is computed once, on first use.
type GitWorktreeGuard struct {
	worktree *git.Worktree
	root     string

	once      sync.Once
	status    git.Status
	statusErr error
}

// NewGitWorktreeGuard opens the repository containing dir.
func NewGitWorktreeGuard(dir m.Path) (*GitWorktreeGuard, error) {
	repo, err := git.PlainOpenWithOptions(string(dir), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
		}

		return nil, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &GitWorktreeGuard{
		worktree: worktree,
		root:     resolvePath(worktree.Filesystem.Root()),
	}, nil
}

// Modified reports whether path is untracked or differs from HEAD in the
// index or the worktree.
func (g *GitWorktreeGuard) Modified(_ context.Context, path m.Path) (bool, error) {
	g.once.Do(func() {
		g.status, g.statusErr = g.worktree.Status()
	})

	if g.statusErr != nil {
		return false, fmt.Errorf("failed to read worktree status: %w", g.statusErr)
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	rel, err := filepath.Rel(g.root, resolvePath(abs))
	if err != nil {
		return false, fmt.Errorf("failed to locate %s in worktree: %w", path, err)
	}

	fileStatus, ok := g.status[filepath.ToSlash(rel)]
	if !ok {
		return false, nil
	}

	return fileStatus.Worktree != git.Unmodified || fileStatus.Staging != git.Unmodified, nil
}

// resolvePath follows symlinks so temp directories compare equal on systems
// where they live behind a link.
func resolvePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}

	return path
}
