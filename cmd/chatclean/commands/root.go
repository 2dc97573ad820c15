// Package commands implements the CLI commands for chatclean.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyunjae-lee/chatclean/internal/logger"
	"github.com/hyunjae-lee/chatclean/internal/store"
	"github.com/hyunjae-lee/chatclean/pkg/guideline"
)

var rootCmd = &cobra.Command{
	Use:   "chatclean",
	Short: "Normalize pasted chat logs into clean, consistent text",
	Long: `Chatclean cleans up chat logs pasted from messaging apps:
it unifies Korean date and time formats, reorders weekday-time
expressions, strips brackets and YouTube links, and rewrites messenger
boilerplate. Named guideline presets gate additional filtering.

Examples:
  # Clean a saved chat log
  chatclean clean kakao-export.txt

  # Clean whatever is on the clipboard and put the result back
  chatclean clean --clipboard --copy

  # Clean with a specific guideline preset, JSON output
  chatclean clean -g 기본 --format json chat.txt

  # Extract text from a screenshot, then clean it
  chatclean ocr --clean screenshot.png`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.chatclean.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().String("guidelines-file", "", "guidelines file (default: user config dir)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("guidelines_file", rootCmd.PersistentFlags().Lookup("guidelines-file"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".chatclean")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CHATCLEAN")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// guidelinesPath resolves the guidelines file location: flag/config first,
// then the platform user config directory.
func guidelinesPath() (string, error) {
	if path := viper.GetString("guidelines_file"); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "chatclean", "guidelines.json"), nil
}

// openRegistry loads the guidelines file into a registry. A missing or
// empty file seeds the default preset, which is persisted best-effort so
// the next run sees it on disk.
func openRegistry() (*guideline.Registry, *store.Store, error) {
	path, err := guidelinesPath()
	if err != nil {
		return nil, nil, err
	}
	st := store.New(path)
	guidelines, err := st.Load()
	if err != nil {
		return nil, nil, err
	}
	reg := guideline.NewRegistry(guidelines...)
	if len(guidelines) == 0 {
		if err := st.Save(reg.Snapshot()); err != nil {
			logger.Warn("could not persist default guideline", "error", err)
		}
	}
	return reg, st, nil
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
