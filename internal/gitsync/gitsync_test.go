package gitsync

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func initRepo(t *testing.T, dir string) {
	t.Helper()
	for _, args := range [][]string{
		{"init"},
		{"config", "user.name", "test"},
		{"config", "user.email", "test@example.com"},
		{"config", "commit.gpgsign", "false"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
}

func TestSetupExistingRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	initRepo(t, dir)

	c := New(Config{Path: dir})
	if err := c.Setup(); err != nil {
		t.Fatalf("Setup on existing repo failed: %v", err)
	}
}

func TestStageAndCommit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	initRepo(t, dir)

	file := filepath.Join(dir, "lexicon.md")
	if err := os.WriteFile(file, []byte("# Lexicon\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	c := New(Config{Path: dir})
	if err := c.Stage("lexicon.md"); err != nil {
		t.Fatalf("Stage failed: %v", err)
	}
	if err := c.Commit("Add lexicon"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	// Committing with nothing staged fails
	if err := c.Commit("empty"); err == nil {
		t.Error("expected error committing with clean tree")
	}
}
