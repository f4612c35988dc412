package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/vecmath/engine"
	"github.com/viant/vecmath/internal/config"
	"github.com/viant/vecmath/internal/logger"
	"github.com/viant/vecmath/vector"
)

// app holds the state shared by every subcommand.
type app struct {
	cfgFile  string
	database string
	format   string
	kind     string
	verbose  bool

	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "vecmath",
		Short: "Vector arithmetic from the command line",
		Long: `vecmath evaluates vector operations (add, dot, cross, angle, ...) on
vectors given as text such as 1,2,3 or "Vector(1, 2, 3)", and keeps named
vectors in a SQLite database for nearest-neighbour lookups and SQL queries.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&a.database, "database", "", "SQLite database path (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "vector text form: debug or simplified (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&a.kind, "kind", "k", "", "element kind: int32, int64, int, float32, float64 (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(a.calcCmd())
	rootCmd.AddCommand(a.storeCmd())
	rootCmd.AddCommand(a.nearestCmd())
	rootCmd.AddCommand(a.sqlCmd())
	rootCmd.AddCommand(a.configCmd())
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.database != "" {
		cfg.Database = a.database
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if a.kind != "" {
		cfg.Kind = a.kind
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Log.JSON {
		a.log = logger.NewJSON(cmd.ErrOrStderr(), cfg.Level())
	} else {
		a.log = logger.NewText(cmd.ErrOrStderr(), cfg.Level())
	}
	return nil
}

// open opens the configured database with the vec_* SQL functions available.
func (a *app) open() (*sql.DB, error) {
	db, err := engine.Open(a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", a.cfg.Database, err)
	}
	a.log.Debug("database opened", "path", a.cfg.Database)
	return db, nil
}

func unsupportedKind(k vector.Kind) error {
	return fmt.Errorf("unsupported kind %s", k)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
