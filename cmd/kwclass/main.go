// Command kwclass converts a literal keyword into a case-insensitive
// character-class pattern fragment and prints it to standard output.
package main

import (
	"fmt"
	"os"

	"github.com/kwclass/kwclass"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kwclass <keyword>",
	Short: "Convert a keyword into a case-insensitive character-class pattern",
	Long: `kwclass converts a literal keyword into a case-insensitive
character-class pattern fragment, one bracket group per character:

  $ kwclass ab
  [aA][bB]

Characters without case occupy both slots of their group unchanged:

  $ kwclass 1a
  [11][aA]

The fragment is meant for embedding literal keywords into regular
expressions without enabling a global case-insensitive flag. Regular
expression metacharacters are not escaped.`,
	Version: "1.0.0",
	Args:    cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
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
	RunE: runPattern,
}

func runPattern(cmd *cobra.Command, args []string) error {
	keyword := args[0]
	pattern := kwclass.Pattern(keyword)
	if logger != nil {
		logger.Debug("transformed keyword",
			zap.Int("keyword_runes", len([]rune(keyword))),
			zap.Int("pattern_len", len(pattern)))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), pattern)
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
