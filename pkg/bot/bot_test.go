package bot

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestEmulateThroughRuntime(t *testing.T) {
	r := New(WithMemoryLexicon())
	defer r.Close()

	resp := r.Emulate("and(.0,.1)\n!.0")
	if !resp.Success {
		t.Fatalf("unexpected failure: %s: %s", resp.Title, resp.Text)
	}
	if !strings.Contains(resp.Text, "[0]:") || !strings.Contains(resp.Text, "[1]:") {
		t.Errorf("expected labeled batch output, got %q", resp.Text)
	}
}

func TestEmulateErrorSurfaced(t *testing.T) {
	r := New(WithMemoryLexicon())
	defer r.Close()

	resp := r.Emulate("and(.0,.1")
	if resp.Success {
		t.Fatal("expected failure for unclosed call")
	}
	if resp.Title != "[0] Parsing error" {
		t.Errorf("unexpected title %q", resp.Title)
	}
	if resp.Text != "Invalid parentheses in code" {
		t.Errorf("unexpected message %q", resp.Text)
	}
}

func TestLexiconLifecycle(t *testing.T) {
	r := New(
		WithMemoryLexicon(),
		WithExportFile(filepath.Join(t.TempDir(), "lexicon.md")),
	)
	defer r.Close()

	if resp := r.LexiconAdd("nand", "inverted and"); !resp.Success {
		t.Fatalf("add failed: %s", resp.Text)
	}
	if resp := r.LexiconQuery("nand"); !resp.Success || resp.Text != "inverted and" {
		t.Fatalf("query failed: %+v", resp)
	}
	if resp := r.LexiconUpdate("nand", "NAND gate"); !resp.Success {
		t.Fatalf("update failed: %s", resp.Text)
	}
	if resp := r.LexiconHistory("nand", 0); !resp.Success || !strings.Contains(resp.Text, "v2") {
		t.Fatalf("history failed: %+v", resp)
	}
	if resp := r.LexiconRemove("nand"); !resp.Success {
		t.Fatalf("remove failed: %s", resp.Text)
	}
}

func TestSQLiteLexiconOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.db")
	r := New(WithSQLiteLexicon(path))

	if resp := r.LexiconAdd("latch", "holds a bit"); !resp.Success {
		t.Fatalf("add failed: %s", resp.Text)
	}
	r.Close()

	// Reopen and verify persistence
	r2 := New(WithSQLiteLexicon(path))
	defer r2.Close()
	if resp := r2.LexiconQuery("latch"); !resp.Success || resp.Text != "holds a bit" {
		t.Fatalf("query after reopen failed: %+v", resp)
	}
}

func TestTestCommand(t *testing.T) {
	r := New()
	defer r.Close()

	resp := r.Test()
	if !resp.Success || resp.Text != "Hello world!" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
