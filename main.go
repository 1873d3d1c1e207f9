// starcatch is a single-screen platformer: catch the falling stars, dodge the bombs.
//
// Usage:
//
//	starcatch [--seed N] [--config path.yaml] [--debug] [--scale F]
//
// Controls: arrow keys run and jump, Enter starts a new match after game over.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/automoto/starcatch/assets"
	"github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/fonts"
	"github.com/automoto/starcatch/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	flagSeed   int64
	flagConfig string
	flagDebug  bool
	flagScale  float64
)

type Game struct {
	host  *scenes.Host
	scene *scenes.PlatformerScene
	once  sync.Once
}

func NewGame(opts scenes.HostOptions) (*Game, error) {
	host := scenes.NewHost(opts)
	scene, err := host.Start()
	if err != nil {
		return nil, err
	}
	return &Game{host: host, scene: scene}, nil
}

func (g *Game) Update() error {
	// Draw generated textures before the first frame needs them
	g.once.Do(assets.PreloadAll)

	g.scene.Update()

	if g.scene.RestartRequested() {
		scene, err := g.host.Restart()
		if err != nil {
			return fmt.Errorf("failed to restart match: %w", err)
		}
		g.scene = scene
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("starcatch failed", "err", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatch",
	Short: "Catch the falling stars, dodge the bombs",
	Long: `starcatch is a single-screen platformer.

Run and jump across the platforms to collect all twelve stars. Every cleared
batch drops the stars again and adds a bomb on the far side of the arena.
Touch a bomb and the match is over.

Controls:
  Left/Right - Run
  Up         - Jump
  Enter      - Play again (after game over)

Examples:
  starcatch
  starcatch --seed 42
  starcatch --config ./configs/starcatch.yaml --scale 1.5`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config override YAML")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging and collision body outlines")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starcatch",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	overrides, path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	overrides.Apply()
	if path != "" {
		log.Info("config loaded", "path", path)
	}

	// Flags win over the config file
	if cmd.Flags().Changed("seed") {
		config.Debug.Seed = flagSeed
	}
	if cmd.Flags().Changed("scale") {
		if flagScale <= 0 {
			return fmt.Errorf("invalid --scale %v: must be positive", flagScale)
		}
		config.C.Scale = flagScale
	}
	if flagDebug {
		config.Debug.ShowBodies = true
	}

	if err := loadFonts(); err != nil {
		return err
	}

	game, err := NewGame(scenes.HostOptions{Seed: config.Debug.Seed})
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(config.World.Title)
	ebiten.SetWindowSize(
		int(float64(config.C.Width)*config.C.Scale),
		int(float64(config.C.Height)*config.C.Scale),
	)
	ebiten.SetTPS(config.World.TPS)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func loadFonts() error {
	faces := []struct {
		name fonts.FontName
		size float64
	}{
		{fonts.Score, config.Score.FontSize},
		{fonts.Title, 48},
		{fonts.Hint, 20},
	}
	for _, f := range faces {
		if err := fonts.LoadFontWithSize(f.name, goregular.TTF, f.size); err != nil {
			return err
		}
	}
	return nil
}
