package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "markupgui",
	Short: "Style and lay out markup documents",
	Long: `markupgui parses a markup document and its stylesheets, resolves the
CSS cascade, computes box-model layout, and hands the positioned tree to a
consumer: a PNG debug painter (render) or a text dump (inspect).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./markupgui.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Float64("width", 800, "viewport width in pixels")
	rootCmd.PersistentFlags().Float64("height", 600, "viewport height in pixels")
	rootCmd.PersistentFlags().StringSlice("css", nil, "extra stylesheet files applied after document styles")

	viper.SetDefault("viewport.width", 800.0)
	viper.SetDefault("viewport.height", 600.0)
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("markupgui")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; only a malformed one is an error.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := viper.BindPFlag("viewport.width", rootCmd.PersistentFlags().Lookup("width")); err != nil {
		return err
	}
	if err := viper.BindPFlag("viewport.height", rootCmd.PersistentFlags().Lookup("height")); err != nil {
		return err
	}
	return viper.BindPFlag("stylesheets", rootCmd.PersistentFlags().Lookup("css"))
}

// newLogger builds a console logger; warnings from the cascade and layout
// surface here.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
