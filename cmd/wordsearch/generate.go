package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"wordsearch/internal/app"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	generateFile         string
	generateOut          string
	generateSolutionOut  string
	generateShowSolution bool
	generateSeed         uint64
)

func init() {
	rootCmd.AddCommand(cmdGenerate)

	cmdGenerate.Flags().StringVarP(&generateFile, "file", "f", "", "Read words from the first line of this file")
	cmdGenerate.Flags().StringVarP(&generateOut, "out", "o", "", "Save the puzzle to this path instead of printing it")
	cmdGenerate.Flags().StringVar(&generateSolutionOut, "solution-out", "", "Save the solution to this path")
	cmdGenerate.Flags().BoolVarP(&generateShowSolution, "show-solution", "s", false, "Print the solution after the puzzle")
	cmdGenerate.Flags().Uint64Var(&generateSeed, "seed", 0, "Seed for the padding letters (0 = random)")
}

var cmdGenerate = &cobra.Command{
	Use:   "generate [word...]",
	Short: "Build a word search without the interactive menu",
	Long:  "Builds a puzzle from the given words or from --file, then prints it or saves it to --out / --solution-out.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateFile != "" && len(args) > 0 {
			return errors.New("pass words as arguments or --file, not both")
		}
		if generateFile == "" && len(args) == 0 {
			return errors.New("no words given")
		}

		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if generateSeed != 0 {
			cfg.Seed = generateSeed
		}
		ctrl := controller(cfg)

		var res app.GenerateResult
		if generateFile != "" {
			res, err = ctrl.GenerateFromFile(generateFile)
		} else {
			res, err = ctrl.Generate(app.GenerateParams{Words: args})
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if generateOut == "" {
			if err := ctrl.Render(out, app.KindPuzzle); err != nil {
				return err
			}
		}
		if generateShowSolution {
			if generateOut == "" {
				fmt.Fprintln(out)
			}
			if err := ctrl.Render(out, app.KindSolution); err != nil {
				return err
			}
		}

		if generateOut != "" || generateSolutionOut != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Generated %dx%d word search from %d words\n", res.Rows, res.Cols, len(res.Words))
		}

		saves := []app.SaveParams{
			{Kind: app.KindPuzzle, Path: generateOut},
			{Kind: app.KindSolution, Path: generateSolutionOut},
		}
		for _, params := range saves {
			if params.Path == "" {
				continue
			}
			saved, err := saveWithSpinner(ctrl, params)
			if err != nil {
				return fmt.Errorf("save %s: %w", params.Kind, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s (%dx%d) to %s\n", params.Kind, saved.Rows, saved.Cols, saved.Path)
		}
		return nil
	},
}

func saveWithSpinner(ctrl controllerAPI, params app.SaveParams) (app.SaveResult, error) {
	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	spin.Suffix = fmt.Sprintf(" Saving %s...", params.Kind)
	spin.Start()
	defer spin.Stop()
	return ctrl.Save(params)
}
