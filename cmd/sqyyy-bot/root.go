package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sqyyy-jar/sqyyy-bot/pkg/bot"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "sqyyy-bot",
	Short:        "Circuit emulator and lexicon bot",
	Long:         "sqyyy-bot evaluates boolean gate circuits into truth tables and maintains a git-published word lexicon.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: .config.toml)")
	rootCmd.PersistentFlags().String("db", "sqyyy-bot.db", "SQLite lexicon database path")
	rootCmd.PersistentFlags().Bool("no-sync", false, "Disable git sync for lexicon changes")

	_ = viper.BindPFlag("lexicon.db", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("no_sync", rootCmd.PersistentFlags().Lookup("no-sync"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".config")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("SQYYY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Could not read config file: %v\n", err)
		os.Exit(1)
	}
}

// newRuntime builds the bot runtime from config and flags.
func newRuntime() (*bot.Runtime, error) {
	opts := []bot.Option{
		bot.WithSQLiteLexicon(viper.GetString("lexicon.db")),
	}
	if path := viper.GetString("lexicon.target-file"); path != "" {
		opts = append(opts, bot.WithExportFile(path))
	}
	if !viper.GetBool("no_sync") && viper.GetString("git.url") != "" {
		opts = append(opts, bot.WithGitSync(bot.GitConfig{
			Username: viper.GetString("git.username"),
			Email:    viper.GetString("git.email"),
			Password: viper.GetString("git.password"),
			URL:      viper.GetString("git.url"),
			Path:     viper.GetString("git.path"),
		}))
	}
	r := bot.New(opts...)
	if err := r.SetupSync(); err != nil {
		r.Close()
		return nil, fmt.Errorf("could not setup git repository: %w", err)
	}
	return r, nil
}

// respond prints a command response; failures become the command's
// error so the process exits non-zero.
func respond(resp bot.Response) error {
	if !resp.Success {
		return fmt.Errorf("%s: %s", resp.Title, resp.Text)
	}
	fmt.Println(resp.Title)
	if resp.Text != "" {
		fmt.Println(resp.Text)
	}
	return nil
}
