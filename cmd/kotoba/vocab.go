package main

import (
	"github.com/spf13/cobra"

	"kotoba/report"
	"kotoba/tagger"
	"kotoba/tokenize"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab [file]",
	Short: "Build a vocabulary frequency report",
	Long: `Vocab tokenizes the input and tallies lemma frequencies, skipping
punctuation, then prints a frequency table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		top, _ := cmd.Flags().GetInt("top")
		surface, _ := cmd.Flags().GetBool("surface")

		tg, err := tagger.New(engineSetting(cmd))
		if err != nil {
			return err
		}
		doc, err := tokenize.NewParser(tg).ParseDoc(cmd.Context(), "vocab", text)
		if err != nil {
			return err
		}

		words := report.NewCounter()
		pos := report.NewCounter()
		for _, sent := range doc.Sents {
			for _, tk := range sent.Tokens {
				if tk.POS == "記号" {
					continue
				}
				if surface {
					words.Count(tk.Surface)
				} else {
					words.Count(tk.Lemma())
				}
				pos.Count(tk.POS)
			}
		}

		r := report.NewTextReport(cmd.OutOrStdout())
		r.Header("Vocabulary", report.H0)
		r.Printf("Sentences: %d\n", len(doc.Sents))
		r.Printf("Tokens: %d\n", words.Total())
		r.Printf("Distinct words: %d\n", words.Len())

		r.Header("Words by frequency", report.H1)
		table := report.NewTable("Word", "Count")
		for _, kc := range words.MostCommon(top) {
			table.AddRow(kc.Key, kc.Count)
		}
		table.WriteReport(r)

		r.Header("Parts of speech", report.H1)
		pos.Summarise(r, 0)
		return nil
	},
}

func init() {
	vocabCmd.Flags().StringP("engine", "e", tagger.EngineKagome, "tagger engine")
	vocabCmd.Flags().IntP("top", "n", 0, "limit the table to the n most frequent words (0 = all)")
	vocabCmd.Flags().Bool("surface", false, "count surface forms instead of lemmas")
	rootCmd.AddCommand(vocabCmd)
}
