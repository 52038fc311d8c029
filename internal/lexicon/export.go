package lexicon

import (
	"os"
	"strings"
)

// Export renders the whole lexicon as a markdown document and writes it
// to path. This is the file the git sync publishes.
func Export(s Store, path string) error {
	entries, err := s.List()
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("# Lexicon\n")
	for _, e := range entries {
		sb.WriteString("\n## ")
		sb.WriteString(e.Word)
		sb.WriteString("\n\n")
		sb.WriteString(e.Description)
		sb.WriteString("\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}
