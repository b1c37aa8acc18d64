// writermem is the command-line caller for the writer-memory store. It is a
// thin shell: argument parsing and rendering live here, every rule lives in
// the internal packages.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vampirenirmal/writermem/internal/config"
	"github.com/vampirenirmal/writermem/internal/service"
	"github.com/vampirenirmal/writermem/internal/store"
)

var (
	logger *zap.Logger
	svc    *service.Service
)

var rootCmd = &cobra.Command{
	Use:          "writermem",
	Short:        "Persistent structured memory for narrative writing",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		if level, parseErr := zapcore.ParseLevel(cfg.LogLevel); parseErr == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(level)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return err
		}

		st := store.New(cfg.ProjectRoot, cfg.BackupRetention, logger)
		svc = service.New(st, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the memory store for this project",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		genre, _ := cmd.Flags().GetString("genre")
		doc, err := svc.Init(name, genre)
		if err != nil {
			return err
		}
		fmt.Printf("memory ready for %q\n", doc.Project.Name)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the document for structural and referential defects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(svc.Validate())
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search across all entities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(svc.Search(args[0]))
	},
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func main() {
	initCmd.Flags().String("name", "untitled", "project name")
	initCmd.Flags().String("genre", "", "project genre")

	rootCmd.AddCommand(initCmd, validateCmd, searchCmd,
		characterCmd(), relationshipCmd(), sceneCmd(),
		worldCmd(), themeCmd(), synopsisCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
