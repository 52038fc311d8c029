package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()

	// Test Put and Get
	err := s.Put("nand", "an AND gate with inverted output")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("nand")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Description != "an AND gate with inverted output" {
		t.Errorf("unexpected entry: %+v", got)
	}

	// Test Delete
	err = s.Delete("nand")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err = s.Get("nand")
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
}

func TestMemoryList(t *testing.T) {
	s := NewMemory()
	s.Put("or", "a disjunction gate")
	s.Put("and", "a conjunction gate")

	entries, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Word != "and" || entries[1].Word != "or" {
		t.Errorf("expected sorted order, got %+v", entries)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}

	// Test Put and Get
	err = s.Put("xor", "exclusive or, not supported by the parser")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("xor")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Description != "exclusive or, not supported by the parser" {
		t.Errorf("unexpected entry: %+v", got)
	}

	// Close and reopen to verify persistence
	s.Close()

	s2, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to reopen SQLite store: %v", err)
	}
	defer s2.Close()

	got, err = s2.Get("xor")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected entry after reopen, got nil")
	}

	version, err := s2.GetMetadata("schema_version")
	if err != nil {
		t.Fatalf("GetMetadata failed: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("expected schema version %s, got %s", SchemaVersion, version)
	}
}

func TestSQLiteHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}
	defer s.Close()

	s.Put("latch", "first")
	s.Put("latch", "second")
	s.Put("latch", "third")

	versions, err := s.GetHistory("latch", 0)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("expected 3 versions, got %d", len(versions))
	}
	// Newest first
	if versions[0].Version != 3 || versions[0].Description != "third" {
		t.Errorf("unexpected newest version: %+v", versions[0])
	}
	if versions[2].Version != 1 || versions[2].Description != "first" {
		t.Errorf("unexpected oldest version: %+v", versions[2])
	}

	limited, err := s.GetHistory("latch", 2)
	if err != nil {
		t.Fatalf("GetHistory with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 versions with limit, got %d", len(limited))
	}
}

func TestSQLiteSearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}
	defer s.Close()

	s.Put("multiplexer", "selects one of several inputs")
	s.Put("decoder", "activates one output per input combination")

	words, err := s.Search("inputs", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(words) != 1 || words[0] != "multiplexer" {
		t.Errorf("expected [multiplexer], got %v", words)
	}

	// Updating an entry replaces its search document
	s.Put("multiplexer", "a data selector")
	words, err = s.Search("inputs", 10)
	if err != nil {
		t.Fatalf("Search after update failed: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("expected no matches after update, got %v", words)
	}
}

func TestMemoryHistoryAndSearch(t *testing.T) {
	s := NewMemory()
	s.Put("adder", "adds two bits")
	s.Put("adder", "adds two bits with carry")

	versions, err := s.GetHistory("adder", 0)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(versions) != 2 || versions[0].Version != 2 {
		t.Errorf("unexpected history: %+v", versions)
	}

	words, err := s.Search("carry", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(words) != 1 || words[0] != "adder" {
		t.Errorf("expected [adder], got %v", words)
	}
}

func TestExport(t *testing.T) {
	s := NewMemory()
	s.Put("or", "a disjunction gate")
	s.Put("and", "a conjunction gate")

	path := filepath.Join(t.TempDir(), "lexicon.md")
	if err := Export(s, path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export failed: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "# Lexicon\n") {
		t.Errorf("missing header: %q", text)
	}
	// Entries appear in sorted order
	andIdx := strings.Index(text, "## and")
	orIdx := strings.Index(text, "## or")
	if andIdx < 0 || orIdx < 0 || andIdx > orIdx {
		t.Errorf("unexpected export layout: %q", text)
	}
}
