package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sqyyy-jar/sqyyy-bot/internal/circuit"
	"github.com/sqyyy-jar/sqyyy-bot/internal/emulator"
)

const historyFile = ".sqyyy-bot_history"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate circuits interactively",
	Long:  "Read one circuit per line and print its truth table. Ctrl+D exits.",
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// evalLine runs one REPL line through the full pipeline.
func evalLine(line string) (string, error) {
	tokens, err := circuit.Tokenize(line)
	if err != nil {
		return "", err
	}
	inputs, component, err := circuit.Parse(tokens)
	if err != nil {
		return "", err
	}
	em, err := emulator.New(inputs, component)
	if err != nil {
		return "", err
	}
	return em.EmulateAll().String(), nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Not a TTY, fall back to basic mode
		runBasicREPL()
		return nil
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyFile
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Println("sqyyy-bot circuit REPL (Ctrl+D to exit)")
	for {
		line, err := ln.Prompt(">>> ")
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		table, err := evalLine(line)
		if err != nil {
			fmt.Println(red(err.Error()))
			continue
		}
		fmt.Println(table)
	}
}

// runBasicREPL handles non-TTY input (piped input)
func runBasicREPL() {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(">>> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		table, err := evalLine(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(table)
	}
}
