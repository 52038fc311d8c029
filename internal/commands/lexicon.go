package commands

import (
	"fmt"
	"strings"

	"github.com/sqyyy-jar/sqyyy-bot/internal/gitsync"
	"github.com/sqyyy-jar/sqyyy-bot/internal/lexicon"
)

// searchLimit bounds lexicon search results.
const searchLimit = 10

// Env holds the collaborators lexicon commands operate on. Sync may be
// nil, in which case mutations are not published.
type Env struct {
	Store      lexicon.Store
	Sync       *gitsync.Client
	ExportPath string
}

// publish exports the lexicon and pushes it through git after a
// mutation. Failures surface to the user since the store has already
// changed.
func (e *Env) publish(message string) error {
	if e.ExportPath == "" {
		return nil
	}
	if err := lexicon.Export(e.Store, e.ExportPath); err != nil {
		return fmt.Errorf("export lexicon: %w", err)
	}
	if e.Sync == nil {
		return nil
	}
	return e.Sync.Publish(e.ExportPath, message)
}

// LexiconAdd creates a new entry. Adding a word that already exists
// fails.
func (e *Env) LexiconAdd(word, description string) Response {
	if word == "" || description == "" {
		return InvalidCommand()
	}
	existing, err := e.Store.Get(word)
	if err != nil {
		return Failure("Lexicon error", err.Error())
	}
	if existing != nil {
		return Failure("Lexicon error", fmt.Sprintf("The word %q already exists.", word))
	}
	if err := e.Store.Put(word, description); err != nil {
		return Failure("Lexicon error", err.Error())
	}
	if err := e.publish(fmt.Sprintf("Add lexicon entry %q", word)); err != nil {
		return Failure("Sync error", err.Error())
	}
	return Success("Lexicon", fmt.Sprintf("Added %q.", word))
}

// LexiconQuery looks up a word.
func (e *Env) LexiconQuery(word string) Response {
	if word == "" {
		return InvalidCommand()
	}
	entry, err := e.Store.Get(word)
	if err != nil {
		return Failure("Lexicon error", err.Error())
	}
	if entry == nil {
		return Failure("Lexicon error", fmt.Sprintf("The word %q is unknown.", word))
	}
	return Success(entry.Word, entry.Description)
}

// LexiconUpdate replaces the description of an existing word.
func (e *Env) LexiconUpdate(word, description string) Response {
	if word == "" || description == "" {
		return InvalidCommand()
	}
	existing, err := e.Store.Get(word)
	if err != nil {
		return Failure("Lexicon error", err.Error())
	}
	if existing == nil {
		return Failure("Lexicon error", fmt.Sprintf("The word %q is unknown.", word))
	}
	if err := e.Store.Put(word, description); err != nil {
		return Failure("Lexicon error", err.Error())
	}
	if err := e.publish(fmt.Sprintf("Update lexicon entry %q", word)); err != nil {
		return Failure("Sync error", err.Error())
	}
	return Success("Lexicon", fmt.Sprintf("Updated %q.", word))
}

// LexiconRemove deletes an existing word.
func (e *Env) LexiconRemove(word string) Response {
	if word == "" {
		return InvalidCommand()
	}
	existing, err := e.Store.Get(word)
	if err != nil {
		return Failure("Lexicon error", err.Error())
	}
	if existing == nil {
		return Failure("Lexicon error", fmt.Sprintf("The word %q is unknown.", word))
	}
	if err := e.Store.Delete(word); err != nil {
		return Failure("Lexicon error", err.Error())
	}
	if err := e.publish(fmt.Sprintf("Remove lexicon entry %q", word)); err != nil {
		return Failure("Sync error", err.Error())
	}
	return Success("Lexicon", fmt.Sprintf("Removed %q.", word))
}

// LexiconSearch finds words whose entry matches the query.
func (e *Env) LexiconSearch(query string) Response {
	if query == "" {
		return InvalidCommand()
	}
	searcher, ok := e.Store.(lexicon.Searcher)
	if !ok {
		return Unimplemented()
	}
	words, err := searcher.Search(query, searchLimit)
	if err != nil {
		return Failure("Lexicon error", err.Error())
	}
	if len(words) == 0 {
		return Success("Lexicon search", "No matches.")
	}
	return Success("Lexicon search", strings.Join(words, "\n"))
}

// LexiconHistory lists the stored versions of a word, newest first.
func (e *Env) LexiconHistory(word string, limit int) Response {
	if word == "" {
		return InvalidCommand()
	}
	hs, ok := e.Store.(lexicon.HistoryStore)
	if !ok {
		return Unimplemented()
	}
	versions, err := hs.GetHistory(word, limit)
	if err != nil {
		return Failure("Lexicon error", err.Error())
	}
	if len(versions) == 0 {
		return Failure("Lexicon error", fmt.Sprintf("The word %q has no history.", word))
	}
	var sb strings.Builder
	for _, v := range versions {
		fmt.Fprintf(&sb, "v%d (%s): %s\n", v.Version, v.Ts, v.Description)
	}
	return Success(fmt.Sprintf("History of %q", word), sb.String())
}
