package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/CleverFlare/cql-lsp/internal/config"
	"github.com/CleverFlare/cql-lsp/internal/server"
)

// Version is set during the build via ldflags.
var Version = "(dev) v0.0.0"

func main() {
	var (
		configPath string
		logFile    string
		verbosity  int
	)

	rootCmd := &cobra.Command{
		Use:   "cql-lsp",
		Short: "A language server for CQL",
		Long:  "cql-lsp serves completion for Cassandra Query Language files over the Language Server Protocol on stdin/stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}
			if cmd.Flags().Changed("verbosity") {
				cfg.LogVerbosity = verbosity
			}

			// Logs must never reach stdout; it carries the protocol stream.
			if cfg.LogFile != "" {
				commonlog.Configure(cfg.LogVerbosity, &cfg.LogFile)
			} else {
				commonlog.Configure(cfg.LogVerbosity, nil)
			}

			return server.New(cfg, Version).RunStdio()
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a config file")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.Flags().IntVar(&verbosity, "verbosity", 2, "log verbosity, higher is chattier")

	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cql-lsp %s\n", Version)
		},
	}
}
