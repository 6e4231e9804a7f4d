package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"kotoba/config"
	"kotoba/logger"
	"kotoba/textio"
)

var (
	flagVerbose int
	flagQuiet   bool
	flagConfig  string

	appCfg *config.App
)

var rootCmd = &cobra.Command{
	Use:           "kotoba",
	Short:         "Japanese text processing toolkit",
	Long:          "kotoba analyzes Japanese text: tokenization, sentence segmentation,\nfurigana rendering and vocabulary reports.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Setup(os.Stderr, true)
		logger.SetVerbosity(flagVerbose, flagQuiet)
		appCfg = config.New("kotoba")
		if flagConfig != "" {
			return appCfg.LoadFile(flagConfig)
		}
		return appCfg.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (-v debug, -vv trace)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "log errors only")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: search conventional locations)")
}

// engineSetting resolves the tagger engine: explicit flag first, then the
// config file, then the flag's default.
func engineSetting(cmd *cobra.Command) string {
	engine, _ := cmd.Flags().GetString("engine")
	if !cmd.Flags().Changed("engine") && appCfg != nil {
		return appCfg.GetString("engine", engine)
	}
	return engine
}

// readInput returns the contents of the file argument (gzip transparent), or
// stdin when no argument is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return textio.ReadFile(args[0])
}
