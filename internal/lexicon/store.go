// Package lexicon provides persistence for the bot's word lexicon.
package lexicon

// Entry is one lexicon record.
type Entry struct {
	Word        string
	Description string
}

// Store is the interface for lexicon persistence.
type Store interface {
	// Get retrieves an entry by word. Returns nil if not found.
	Get(word string) (*Entry, error)
	// Put stores an entry, overwriting if it exists.
	Put(word, description string) error
	// Delete removes an entry by word.
	Delete(word string) error
	// List returns all entries ordered by word.
	List() ([]Entry, error)
	// Close releases resources.
	Close() error
}

// VersionEntry represents a single version of a persisted entry.
type VersionEntry struct {
	Version     int
	Description string
	Ts          string
}

// HistoryStore extends Store with version history queries.
type HistoryStore interface {
	GetHistory(word string, limit int) ([]VersionEntry, error)
}

// Searcher extends Store with full-text search over words and
// descriptions.
type Searcher interface {
	Search(query string, limit int) ([]string, error)
}
