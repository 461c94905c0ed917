package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/heterolab/bandstruct/bands"
	"github.com/heterolab/bandstruct/matdb"
)

// envPrefix namespaces the environment variables picked up by viper,
// e.g. BANDSTRUCT_TEMPERATURE, BANDSTRUCT_DB.
const envPrefix = "BANDSTRUCT"

var (
	logger *zap.SugaredLogger

	rootCmd = &cobra.Command{
		Use:   "bandstruct",
		Short: "Semiconductor band-structure parameters from the material database",
		Long: `bandstruct resolves temperature- and composition-dependent band
parameters (band gaps, band-edge energies, effective masses) for pure and
binary-alloy semiconductors, using the builtin material database or a
caller-supplied YAML database.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "path to a YAML material database (default: builtin seed)")
	flags.Float64("temperature", bands.DefaultTemperature, "temperature in kelvin for gap-dependent queries")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	for _, name := range []string{"db", "temperature", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// setup builds the logger once for every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	cfg := zap.NewDevelopmentConfig()
	if !viper.GetBool("verbose") {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	base, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = base.Sugar()

	return nil
}

// openDB returns the active material database: the --db file when given,
// the builtin seed otherwise.
func openDB() (*matdb.DB, error) {
	path := viper.GetString("db")
	if path == "" {
		logger.Debugw("using builtin material database")
		return matdb.Builtin(), nil
	}

	db, err := matdb.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debugw("loaded material database",
		"path", path,
		"pure", len(db.PureNames()),
		"alloys", len(db.AlloyNames()))

	return db, nil
}

// parseValley maps a CLI label to a Valley.
func parseValley(label string) (bands.Valley, error) {
	switch strings.ToLower(label) {
	case "gamma", "g":
		return bands.Gamma, nil
	case "l":
		return bands.L, nil
	case "x":
		return bands.X, nil
	default:
		return 0, fmt.Errorf("unknown valley %q (want gamma, l or x)", label)
	}
}
