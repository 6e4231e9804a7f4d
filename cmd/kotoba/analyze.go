package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kotoba/analyze"
	"kotoba/tagger"
	"kotoba/textio"
	"kotoba/tokenize"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze Japanese text from a file or stdin",
	Long: `Analyze tokenizes the input, segments it into sentences and renders the
result. Formats: ` + strings.Join(analyze.Formats(), ", ") + `.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		name, _ := cmd.Flags().GetString("name")
		output, _ := cmd.Flags().GetString("output")
		noSplit, _ := cmd.Flags().GetBool("no-split")

		tg, err := tagger.New(engineSetting(cmd))
		if err != nil {
			return err
		}
		parser := tokenize.NewParser(tg)
		parser.SplitLines = !noSplit

		out, err := analyze.Analyze(cmd.Context(), parser, name, text, format)
		if err != nil {
			return err
		}
		if output != "" {
			return textio.WriteFile(output, out)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringP("format", "f", analyze.FormatTxt, "output format")
	analyzeCmd.Flags().StringP("engine", "e", tagger.EngineKagome, "tagger engine")
	analyzeCmd.Flags().StringP("output", "o", "", "write to file instead of stdout (.gz compresses)")
	analyzeCmd.Flags().String("name", "doc", "document name for JSON output")
	analyzeCmd.Flags().Bool("no-split", false, "feed the whole input to the tagger in one pass")
	rootCmd.AddCommand(analyzeCmd)
}
