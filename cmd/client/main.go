// Package main provides the dungeon-map command-line client
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
)

var (
	serverAddr string
	timeout    time.Duration
	redisAddr  string
	logLevel   string
)

var logLevels = []string{"debug", "info", "warn", "error"}

var rootCmd = &cobra.Command{
	Use:   "dungeon-map",
	Short: "Accumulate and query hex dungeon maps",
	Long: `dungeon-map merges the rooms an rpg-api encounter reveals into one
persistent hex map and answers movement range and path queries against it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogging(logLevel)
	},
}

func setupLogging(level string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log-level", strings.ToLower(level), logLevels, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return errors.InvalidArgumentf("invalid log level %q", level)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "rpg-api gRPC server address")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "",
		"redis address or redis:// URL for persisted sessions (in-memory when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(pathCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
