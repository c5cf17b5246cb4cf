package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/madhoundes/pixelmuse/internal/debug"
	"github.com/madhoundes/pixelmuse/internal/version"
	"github.com/madhoundes/pixelmuse/pkg/app"
	"github.com/madhoundes/pixelmuse/pkg/config"
	"github.com/madhoundes/pixelmuse/pkg/gui/panes"
	"github.com/madhoundes/pixelmuse/pkg/motion"
	"github.com/madhoundes/pixelmuse/pkg/typewriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// loadConfig reads settings and persisted state. Failures are logged and
// defaults are used so the UI can still start.
func loadConfig(flag *bool) appConfig {
	settings, err := config.LoadSettings()
	if err != nil {
		debug.DebugLog("Failed to load settings, using defaults: %v", err)
	}

	cfg := appConfig{
		suggestions: settings.SuggestionsOr(typewriter.DefaultSuggestions),
		quality:     app.DefaultQuality,
		motion:      motion.Resolve(flag, settings.ReducedMotion),
	}

	if last, err := config.GetLastQuality(); err != nil {
		debug.DebugLog("Failed to load last quality: %v", err)
	} else if last != "" {
		cfg.quality = app.GetQualityConfig(last)
	}

	if history, err := app.LoadRequests(); err != nil {
		debug.DebugLog("Failed to restore history on startup: %v", err)
	} else {
		cfg.history = history
	}

	return cfg
}

// reducedMotionFlag returns nil unless --reduced-motion was given explicitly
func reducedMotionFlag(cmd *cobra.Command, value bool) *bool {
	if !cmd.Flags().Changed("reduced-motion") {
		return nil
	}
	return &value
}

func runUI(cfg appConfig) error {
	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}
	return nil
}

func main() {
	var (
		showVersion   bool
		reducedMotion bool
	)

	var rootCmd = &cobra.Command{
		Use:   "pixelmuse",
		Short: "Write YouTube thumbnail prompts with rotating suggestions",
		Long: `PixelMuse is a terminal form for writing thumbnail prompts.

While the prompt is empty and not focused, example prompts are typed out one
character at a time, held for a moment, then replaced by the next one.

Press i to write a prompt, tab to pick the quality, enter to queue it.
Press ? for help once running.

Reduced motion (no typing animation) is enabled by --reduced-motion,
PIXELMUSE_REDUCED_MOTION=1, REDUCE_MOTION=1 or reduced_motion = true in
~/.pixelmuse/settings.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Println(version.Short())
				return nil
			}

			logger := debug.InitDebugLogger()
			defer logger.Close()
			debug.DebugLog("pixelmuse %s starting", version.Short())

			return runUI(loadConfig(reducedMotionFlag(cmd, reducedMotion)))
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.PersistentFlags().BoolVar(&reducedMotion, "reduced-motion", false, "Disable the typing animation")

	rootCmd.AddCommand(newSuggestionsCmd(&reducedMotion), newHistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSuggestionsCmd(reducedMotion *bool) *cobra.Command {
	var (
		duration time.Duration
		count    int
	)

	cmd := &cobra.Command{
		Use:   "suggestions",
		Short: "Stream the animated prompt suggestions to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := debug.InitDebugLogger()
			defer logger.Close()

			settings, err := config.LoadSettings()
			if err != nil {
				debug.DebugLog("Failed to load settings, using defaults: %v", err)
			}
			pref := motion.Resolve(reducedMotionFlag(cmd, *reducedMotion), settings.ReducedMotion)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return streamSuggestions(ctx, cmd.OutOrStdout(), streamOptions{
				suggestions:   settings.SuggestionsOr(typewriter.DefaultSuggestions),
				reducedMotion: pref.Reduced,
				tty:           stdoutIsTerminal(),
				duration:      duration,
				count:         count,
			})
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "Stop after this long (0 runs until interrupted)")
	cmd.Flags().IntVar(&count, "count", 0, "Stop after this many completed suggestions (0 for no limit)")
	return cmd
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List queued thumbnail requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requests, err := app.LoadRequests()
			if err != nil {
				return fmt.Errorf("load history: %w", err)
			}
			if len(requests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No thumbnails requested yet")
				return nil
			}

			width := terminalWidth()
			for _, req := range requests {
				fmt.Fprintln(cmd.OutOrStdout(), panes.FormatRequestLine(req, width))
			}
			return nil
		},
	}
}
