package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/folio/config"
	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

var (
	cfgFile     string
	debug       bool
	baseMonitor bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio page with an animated particle background",
	Long: `folio opens the portfolio in a window: a drifting particle field
behind the page sections, a light/dark theme and project detail panels.
Subcommands run the same pieces headless.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runWindow(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yaml", "config file path")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "show frame and loop diagnostics")
	rootCmd.Flags().BoolVarP(&baseMonitor, "monitor", "m", false, "use the first monitor instead of the primary one")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWindow(cfg *config.Config) error {
	if baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	// Run while unfocused so focus changes reach the visibility handler.
	ebiten.SetRunnableOnUnfocused(true)

	game, err := NewGame(cfg, cfgFile)
	if err != nil {
		return fmt.Errorf("folio: %w", err)
	}
	defer game.Close()

	return ebiten.RunGame(game)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
