package main

import (
	"fmt"
	"os"

	"github.com/nvr-ai/appicon/config"
	"github.com/nvr-ai/appicon/flatten"
	"github.com/nvr-ai/appicon/logger"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewConsole(os.Stdout, cfg.Debug, !colorEnabled(cfg.Color, os.Stdout))
	if !run(cfg, log) {
		os.Exit(1)
	}
}

// run flattens the configured icon and prints status lines. It reports
// whether the icon was fixed.
func run(cfg config.Config, log *logger.Logger) bool {
	log.Info().Msg("🔧 Fixing App Icon...")
	log.Info().Str("input", cfg.Input).Msg("   Input")

	res, err := flatten.Flatten(cfg.Input, cfg.Output,
		flatten.WithCompression(cfg.CompressionLevel()),
		flatten.WithSize(cfg.Size),
		flatten.WithLogger(log),
	)
	if err != nil {
		log.Error().Err(err).Msg("❌ Error")
		log.Error().Msg("❌ Failed to fix app icon")
		return false
	}

	log.Info().Str("output", cfg.Output).Msg("✅ Icon fixed")
	log.Info().Str("mode", res.Mode.String()).Str("size", res.Size()).Msg("   Result")
	log.Info().Msg("✅ App icon is now ready for App Store!")
	return true
}

// colorEnabled resolves the color setting against whether f is a terminal.
func colorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(f.Fd()))
	}
}
