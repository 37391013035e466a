// Command ringcheck validates a text-drawn circle from a file or stdin and
// prints the verdict record as JSON. Exit code 0 means the drawing passed,
// 1 means it was rejected (the record's reason says why).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ringcheck"
)

const version = "0.1.0"

var (
	// Global flags
	configPath    string
	connectivity  int
	markRunes     string
	blankRunes    string
	skipEnclosure bool
	verbose       bool

	// Logger
	logger *zap.Logger

	// exitCode reflects the verdict: 0 valid, 1 invalid.
	exitCode int
)

// rootCmd reads one drawing and prints one verdict.
var rootCmd = &cobra.Command{
	Use:   "ringcheck [file]",
	Short: "Validate a text-drawn circle",
	Long: `ringcheck decides whether a block of text characters forms a
recognizable circle outline.

It reads the drawing from the given file (or stdin when no file is given),
applies the challenge's acceptance checks, and prints the verdict record as
JSON. Thresholds can be tuned with a YAML config file; flags override the
file's values.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ringcheck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "ringcheck", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file with acceptance thresholds")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().IntVar(&connectivity, "connectivity", 8, "mark adjacency rule: 4 or 8")
	rootCmd.Flags().StringVar(&markRunes, "mark-runes", "", "exhaustive set of pen characters (default: any non-whitespace)")
	rootCmd.Flags().StringVar(&blankRunes, "blank-runes", "", "background glyphs beyond whitespace")
	rootCmd.Flags().BoolVar(&skipEnclosure, "skip-enclosure", false, "disable the leak-path probe")
	rootCmd.AddCommand(versionCmd)
}

// loadOptions layers defaults, the config file, and changed flags.
func loadOptions(cmd *cobra.Command) (*ringcheck.Options, error) {
	opts := ringcheck.DefaultOptions()

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &opts); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", configPath, err)
		}
		logger.Debug("loaded config file", zap.String("path", configPath))
	}

	if cmd.Flags().Changed("connectivity") {
		opts.Connectivity = connectivity
	}
	if cmd.Flags().Changed("mark-runes") {
		opts.MarkRunes = markRunes
	}
	if cmd.Flags().Changed("blank-runes") {
		opts.BlankRunes = blankRunes
	}
	if cmd.Flags().Changed("skip-enclosure") {
		opts.SkipEnclosure = skipEnclosure
	}

	return &opts, nil
}

// readDrawing returns the submission text from the file argument or stdin.
func readDrawing(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read drawing: %w", err)
		}
		return string(raw), nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(raw), nil
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	text, err := readDrawing(cmd, args)
	if err != nil {
		return err
	}

	rec := ringcheck.Validate(text, opts)
	logger.Debug("validated drawing",
		zap.String("status", string(rec.Status)),
		zap.String("reason", string(rec.Reason)),
	)

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode verdict: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if !rec.Valid() {
		exitCode = 1
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
