package bot

import (
	"github.com/sqyyy-jar/sqyyy-bot/internal/commands"
	"github.com/sqyyy-jar/sqyyy-bot/internal/gitsync"
	"github.com/sqyyy-jar/sqyyy-bot/internal/lexicon"
)

// Runtime wires the circuit front end, the emulator, and the lexicon
// store behind one API.
type Runtime struct {
	store      lexicon.Store
	sync       *gitsync.Client
	exportPath string
	env        *commands.Env
}

// New creates a new runtime with the given options. Without a lexicon
// option the runtime falls back to an in-memory store.
func New(opts ...Option) *Runtime {
	r := &Runtime{}

	for _, opt := range opts {
		opt(r)
	}

	if r.store == nil {
		r.store = lexicon.NewMemory()
	}
	r.env = &commands.Env{
		Store:      r.store,
		Sync:       r.sync,
		ExportPath: r.exportPath,
	}

	return r
}

// SetupSync prepares the git work tree. Call once at startup when git
// sync is configured.
func (r *Runtime) SetupSync() error {
	if r.sync == nil {
		return nil
	}
	return r.sync.Setup()
}

// Emulate parses and emulates a batch of circuit lines, one circuit
// per line.
func (r *Runtime) Emulate(source string) Response {
	return commands.Emulate(source)
}

// LexiconAdd creates a new lexicon entry.
func (r *Runtime) LexiconAdd(word, description string) Response {
	return r.env.LexiconAdd(word, description)
}

// LexiconQuery looks up a word.
func (r *Runtime) LexiconQuery(word string) Response {
	return r.env.LexiconQuery(word)
}

// LexiconUpdate replaces the description of an existing word.
func (r *Runtime) LexiconUpdate(word, description string) Response {
	return r.env.LexiconUpdate(word, description)
}

// LexiconRemove deletes an existing word.
func (r *Runtime) LexiconRemove(word string) Response {
	return r.env.LexiconRemove(word)
}

// LexiconSearch finds words whose entry matches the query.
func (r *Runtime) LexiconSearch(query string) Response {
	return r.env.LexiconSearch(query)
}

// LexiconHistory lists the stored versions of a word, newest first.
func (r *Runtime) LexiconHistory(word string, limit int) Response {
	return r.env.LexiconHistory(word, limit)
}

// Test is the liveness check command.
func (r *Runtime) Test() Response {
	return commands.Test()
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}
