package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sqyyy-jar/sqyyy-bot/pkg/bot"
)

var emulateCmd = &cobra.Command{
	Use:   "emulate [source]",
	Short: "Emulate circuits into truth tables",
	Long:  "Parse one circuit per line and print each truth table. Reads from stdin when no source argument is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEmulate,
}

func init() {
	rootCmd.AddCommand(emulateCmd)
}

func runEmulate(cmd *cobra.Command, args []string) error {
	var source string
	if len(args) == 1 {
		source = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		source = strings.TrimRight(string(data), "\n")
	}

	// Emulation touches neither the lexicon store nor git.
	r := bot.New()
	defer r.Close()
	return respond(r.Emulate(source))
}
