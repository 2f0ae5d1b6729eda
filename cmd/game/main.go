// cmd/game/main.go
//
// game is a top-down space shooter: steer with A/D, the guns fire on their
// own when an enemy is ahead. Esc pauses, F3 toggles debug, F11 fullscreen.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"space-game/internal/app"
	"space-game/internal/assets"
	"space-game/internal/defs"
	"space-game/internal/platform"
	"space-game/internal/platform/ebitenhost"
	"space-game/internal/platform/rlhost"
	"space-game/internal/state"
	"space-game/internal/utils"
)

var (
	flagRenderer string
	flagWindowed bool
	flagDebug    bool
	flagSeed     int64
	flagAssets   string
	flagDefs     string
)

// host is what main needs from a renderer backend.
type host interface {
	platform.Host
	platform.TextureLoader
	Open() error
	Run(loop platform.Loop) error
	Close()
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Top-down space shooter",
	Long: `Survive as long as you can against waves of enemy ships.

Controls:
  A/D   - Steer
  Esc   - Pause / resume
  F3    - Debug overlay
  F11   - Toggle fullscreen`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagRenderer, "renderer", "raylib", "Renderer backend: raylib or ebiten")
	rootCmd.Flags().BoolVar(&flagWindowed, "windowed", false, "Start in a window instead of fullscreen")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay and debug logging")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "Assets", "Directory containing Images/")
	rootCmd.Flags().StringVar(&flagDefs, "defs", "", "Path to custom game definitions YAML")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newHost(name string, logger *log.Logger) (host, error) {
	switch name {
	case "raylib", "rl":
		return rlhost.New(flagWindowed, logger), nil
	case "ebiten":
		return ebitenhost.New(flagWindowed, logger), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "space-game",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	lib, err := defs.Load(flagDefs)
	if err != nil {
		logger.Fatal("failed to load definitions", "err", err)
	}
	logger.Info("definitions loaded", "source", lib.Source, "enemies", len(lib.Enemies), "waves", len(lib.Waves))

	game, err := app.NewGame(lib, utils.NewPRNGService(flagSeed), logger)
	if err != nil {
		logger.Fatal("failed to create game", "err", err)
	}
	game.SetDebug(flagDebug)

	h, err := newHost(flagRenderer, logger)
	if err != nil {
		return err
	}
	if err := h.Open(); err != nil {
		logger.Fatal("failed to open window", "err", err)
	}
	defer h.Close()

	textures := assets.NewTextureManager(h, flagAssets, logger)
	if err := textures.Load(lib.TextureNames()...); err != nil {
		return fmt.Errorf("load textures: %w", err)
	}
	defer textures.Unload()
	game.Textures = textures

	sm := state.NewStateMachine(h, logger)
	sm.SetState(state.NewPlayState(sm, game))

	if err := h.Run(sm); err != nil {
		return err
	}
	logger.Info("session ended", "survived", game.ElapsedTime(), "kills", game.Kills())
	return nil
}
