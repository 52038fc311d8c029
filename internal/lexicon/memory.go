package lexicon

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Memory is an in-memory store for testing.
type Memory struct {
	mu       sync.RWMutex
	data     map[string]string
	history  map[string][]VersionEntry
	metadata map[string]string
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data:     make(map[string]string),
		history:  make(map[string][]VersionEntry),
		metadata: make(map[string]string),
	}
}

// Get retrieves an entry by word.
func (m *Memory) Get(word string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if desc, ok := m.data[word]; ok {
		return &Entry{Word: word, Description: desc}, nil
	}
	return nil, nil
}

// Put stores an entry by word and appends a history version.
func (m *Memory) Put(word, description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[word] = description
	m.history[word] = append(m.history[word], VersionEntry{
		Version:     len(m.history[word]) + 1,
		Description: description,
		Ts:          time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

// Delete removes an entry by word.
func (m *Memory) Delete(word string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, word)
	return nil
}

// List returns all entries ordered by word.
func (m *Memory) List() ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]Entry, 0, len(m.data))
	for word, desc := range m.data {
		entries = append(entries, Entry{Word: word, Description: desc})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })
	return entries, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}

// GetHistory returns the newest versions of a word, newest first.
func (m *Memory) GetHistory(word string, limit int) ([]VersionEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	versions := m.history[word]
	out := make([]VersionEntry, 0, len(versions))
	for i := len(versions) - 1; i >= 0; i-- {
		out = append(out, versions[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Search returns words whose word or description contains the query,
// case-insensitive. A substring stand-in for the SQLite FTS search.
func (m *Memory) Search(query string, limit int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	query = strings.ToLower(query)
	var words []string
	for word, desc := range m.data {
		if strings.Contains(strings.ToLower(word), query) ||
			strings.Contains(strings.ToLower(desc), query) {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words, nil
}

// GetMetadata retrieves a metadata value by key.
func (m *Memory) GetMetadata(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metadata[key], nil
}

// SetMetadata stores a metadata value by key.
func (m *Memory) SetMetadata(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata[key] = value
	return nil
}
