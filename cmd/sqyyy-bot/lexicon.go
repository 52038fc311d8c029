package main

import (
	"github.com/spf13/cobra"

	"github.com/sqyyy-jar/sqyyy-bot/pkg/bot"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Interact with the lexicon",
}

var lexiconAddCmd = &cobra.Command{
	Use:   "add <word> <description>",
	Short: "Add a lexicon entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(func(r *bot.Runtime) bot.Response {
			return r.LexiconAdd(args[0], args[1])
		})
	},
}

var lexiconQueryCmd = &cobra.Command{
	Use:   "query <word>",
	Short: "Query a lexicon entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(func(r *bot.Runtime) bot.Response {
			return r.LexiconQuery(args[0])
		})
	},
}

var lexiconUpdateCmd = &cobra.Command{
	Use:   "update <word> <description>",
	Short: "Update a lexicon entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(func(r *bot.Runtime) bot.Response {
			return r.LexiconUpdate(args[0], args[1])
		})
	},
}

var lexiconRemoveCmd = &cobra.Command{
	Use:   "remove <word>",
	Short: "Remove a lexicon entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(func(r *bot.Runtime) bot.Response {
			return r.LexiconRemove(args[0])
		})
	},
}

var lexiconSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search words and descriptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRuntime(func(r *bot.Runtime) bot.Response {
			return r.LexiconSearch(args[0])
		})
	},
}

var lexiconHistoryCmd = &cobra.Command{
	Use:   "history <word>",
	Short: "Show the stored versions of a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withRuntime(func(r *bot.Runtime) bot.Response {
			return r.LexiconHistory(args[0], limit)
		})
	},
}

func init() {
	lexiconHistoryCmd.Flags().Int("limit", 0, "Maximum versions to show (0 = all)")

	lexiconCmd.AddCommand(
		lexiconAddCmd,
		lexiconQueryCmd,
		lexiconUpdateCmd,
		lexiconRemoveCmd,
		lexiconSearchCmd,
		lexiconHistoryCmd,
	)
	rootCmd.AddCommand(lexiconCmd)
}

func withRuntime(f func(*bot.Runtime) bot.Response) error {
	r, err := newRuntime()
	if err != nil {
		return err
	}
	defer r.Close()
	return respond(f(r))
}
