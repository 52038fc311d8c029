// Package gitsync publishes the lexicon export through a git
// repository by shelling out to the git binary.
package gitsync

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Config holds the repository location and the identity used for
// commits. Password is embedded into the clone URL, never written to
// disk elsewhere.
type Config struct {
	Username string
	Email    string
	Password string
	URL      string
	Path     string
}

// Client runs git commands against one work tree.
type Client struct {
	cfg Config
}

// New creates a client for the given configuration.
func New(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// run executes a git command in the work tree, discarding its output.
// Only the exit status is observed.
func (c *Client) run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.cfg.Path
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}

// Setup ensures the work tree exists and holds a usable clone. A fresh
// directory is cloned from the configured URL and the commit identity
// is written into the repository config.
func (c *Client) Setup() error {
	if err := os.MkdirAll(c.cfg.Path, 0755); err != nil {
		return fmt.Errorf("create repository directory: %w", err)
	}
	if c.run("status") == nil {
		return nil
	}
	if err := c.clone(); err != nil {
		return err
	}
	if err := c.login(); err != nil {
		return err
	}
	if err := c.run("status"); err != nil {
		return fmt.Errorf("repository not usable after clone: %w", err)
	}
	return nil
}

func (c *Client) clone() error {
	url := fmt.Sprintf("https://%s:%s@%s",
		c.cfg.Username, c.cfg.Password, strings.TrimPrefix(c.cfg.URL, "https://"))
	return c.run("clone", url, ".")
}

func (c *Client) login() error {
	if err := c.run("config", "user.name", c.cfg.Username); err != nil {
		return err
	}
	if err := c.run("config", "user.email", c.cfg.Email); err != nil {
		return err
	}
	return c.run("config", "commit.gpgsign", "false")
}

// Stage adds a path to the index.
func (c *Client) Stage(path string) error {
	return c.run("add", path)
}

// Commit records the staged changes.
func (c *Client) Commit(message string) error {
	return c.run("commit", "-m", message)
}

// Push publishes the current branch.
func (c *Client) Push() error {
	return c.run("push")
}

// Publish stages the given path, commits, and pushes in one step.
func (c *Client) Publish(path, message string) error {
	if err := c.Stage(path); err != nil {
		return err
	}
	if err := c.Commit(message); err != nil {
		return err
	}
	return c.Push()
}
