package main

import (
	"flag"
	"image"
	"os"
	"time"

	"github.com/automoto/kokaton/assets"
	"github.com/automoto/kokaton/config"
	"github.com/automoto/kokaton/fonts"
	"github.com/automoto/kokaton/scenes"
	"github.com/automoto/kokaton/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	phase  config.Phase
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)

	if p, ok := scene.(scenes.Phased); ok && p.Phase() != g.phase {
		log.Debug().Stringer("from", g.phase).Stringer("to", p.Phase()).Msg("phase")
		g.phase = p.Phase()
	}
}

// Quit ends the game loop after the current tick
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipTitle {
		g.ChangeScene(scenes.NewBattleScene(g, scenes.NewSeed()))
	} else {
		g.ChangeScene(scenes.NewTitleScene(g))
	}

	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.quit = true
	}
	if g.quit {
		log.Info().Str("outcome", config.OutcomeQuit.String()).Stringer("phase", g.phase).Msg("session ended")
		return ebiten.Termination
	}

	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipTitle, "skip-title", false, "start a battle immediately")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "random seed (0 = from the clock)")
	flag.BoolVar(&config.Debug.DrawBoxes, "debug", false, "draw collision boxes")
	flag.BoolVar(&config.Debug.Fullscreen, "fullscreen", false, "start in fullscreen")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -log-level")
	}
	zerolog.SetGlobalLevel(level)

	if err := fonts.LoadAll(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}
	if err := assets.LoadShaders(); err != nil {
		log.Fatal().Err(err).Msg("failed to load shaders")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(assets.Village().Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TicksPerSecond)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err == nil {
		saved, err := systems.LoadSettings()
		if err == nil && saved != nil {
			systems.ApplySavedSettings(saved)
		}
	}
	if config.Debug.Fullscreen {
		config.Settings.Fullscreen = true
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal().Err(err).Msg("game exited with error")
	}
}
