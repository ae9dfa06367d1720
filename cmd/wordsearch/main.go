package main

import (
	"log"

	"wordsearch/internal/menu"

	"github.com/spf13/cobra"
)

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

var rootCmd = &cobra.Command{
	Use:   "wordsearch [command]",
	Short: "wordsearch: small word search generator",
	Long: `wordsearch builds word search puzzles from a list of words, one word per row,
padded with random letters. Without a subcommand it starts the interactive menu.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		return menu.Run(controller(cfg), cmd.InOrStdin(), cmd.OutOrStdout(), menu.Options{Color: cfg.Color})
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
