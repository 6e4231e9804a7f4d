package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kotoba/metrics"
	"kotoba/server"
	"kotoba/tagger"
	"kotoba/tokenize"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over HTTP",
	Long:  "Serve starts an HTTP server with /api/analyze, /health and /metrics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if !cmd.Flags().Changed("addr") && appCfg != nil {
			addr = appCfg.GetString("addr", addr)
		}
		engine := engineSetting(cmd)

		tg, err := tagger.New(engine)
		if err != nil {
			return err
		}
		srv := server.New(tokenize.NewParser(tg), engine, metrics.New())

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8420", "listen address")
	serveCmd.Flags().StringP("engine", "e", tagger.EngineKagome, "tagger engine")
	rootCmd.AddCommand(serveCmd)
}
