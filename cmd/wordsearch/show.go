package main

import (
	"fmt"

	"wordsearch/internal/gridfile"

	"github.com/spf13/cobra"
)

var showQuiet bool

func init() {
	rootCmd.AddCommand(cmdShow)
	cmdShow.Flags().BoolVarP(&showQuiet, "quiet", "q", false, "Print only the grid, without the size header")
}

var cmdShow = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a saved puzzle or solution file",
	Long:  "Parses a grid written by the save commands, checks that it is rectangular and prints it with its dimensions.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := gridfile.Read(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !showQuiet {
			fmt.Fprintf(out, "%s: %d rows x %d columns\n", args[0], g.Rows(), g.Cols())
		}
		return gridfile.Format(out, g)
	},
}
