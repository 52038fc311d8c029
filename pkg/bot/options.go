// Package bot provides the public API for the sqyyy-bot runtime.
package bot

import (
	"github.com/sqyyy-jar/sqyyy-bot/internal/commands"
	"github.com/sqyyy-jar/sqyyy-bot/internal/gitsync"
	"github.com/sqyyy-jar/sqyyy-bot/internal/lexicon"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithSQLiteLexicon configures SQLite persistence at the given path.
func WithSQLiteLexicon(path string) Option {
	return func(r *Runtime) {
		s, err := lexicon.NewSQLite(path)
		if err == nil {
			r.store = s
		}
	}
}

// WithMemoryLexicon configures an in-memory lexicon (for testing).
func WithMemoryLexicon() Option {
	return func(r *Runtime) {
		r.store = lexicon.NewMemory()
	}
}

// WithStore sets a custom lexicon store.
func WithStore(s Store) Option {
	return func(r *Runtime) {
		r.store = s
	}
}

// WithGitSync publishes lexicon exports through the configured git
// repository.
func WithGitSync(cfg GitConfig) Option {
	return func(r *Runtime) {
		r.sync = gitsync.New(cfg)
	}
}

// WithExportFile sets the markdown file the lexicon is rendered to on
// every mutation.
func WithExportFile(path string) Option {
	return func(r *Runtime) {
		r.exportPath = path
	}
}

// Store interface for custom lexicon stores.
type Store = lexicon.Store

// Entry is one lexicon record.
type Entry = lexicon.Entry

// GitConfig holds git sync settings.
type GitConfig = gitsync.Config

// Response is the outcome of one command.
type Response = commands.Response
