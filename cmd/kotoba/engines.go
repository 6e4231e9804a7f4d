package main

import (
	"github.com/spf13/cobra"

	"kotoba/report"
	"kotoba/tagger"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List tagger engines and their availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := report.NewTable("Engine", "Available")
		for _, engine := range tagger.Engines() {
			table.AddRow(engine, tagger.Available(engine))
		}
		table.Render(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}
