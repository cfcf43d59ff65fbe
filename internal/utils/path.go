package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultWorktreeSubdir is where managed worktrees live, relative to the
// repository root. It sits inside git's metadata directory but is distinct
// from git's own .git/worktrees bookkeeping.
var DefaultWorktreeSubdir = []string{".git", "worktree"}

// WorktreeDir returns the directory that holds managed worktrees.
// An absolute customDir is returned unchanged, a relative one is joined onto
// currentDir, and an empty one selects the default location.
func WorktreeDir(currentDir, customDir string) string {
	if customDir != "" {
		if filepath.IsAbs(customDir) {
			return customDir
		}
		return filepath.Join(currentDir, customDir)
	}
	return filepath.Join(append([]string{currentDir}, DefaultWorktreeSubdir...)...)
}

// IsWithin reports whether path lies strictly inside dir.
func IsWithin(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// FolderName returns the folder, relative to the managed directory, for a
// worktree of branch. The branch is used as is, so "feature/login" nests one
// level down. With prefix set, the repository folder name is prepended.
func FolderName(repoRoot, branch string, prefix bool) string {
	if prefix {
		return filepath.Base(repoRoot) + "-" + branch
	}
	return branch
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
