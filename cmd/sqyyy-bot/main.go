// Command sqyyy-bot is the circuit emulator and lexicon CLI.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
