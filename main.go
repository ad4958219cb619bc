package main

import (
	"flag"
	"log"

	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() (*Game, error) {
	scene, err := scenes.NewArenaScene(config.C)
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	width := flag.Int("width", config.C.Width, "Arena width")
	height := flag.Int("height", config.C.Height, "Arena height")
	tickRate := flag.Int("tickrate", config.C.TickRate, "Simulation steps per second")
	debug := flag.Bool("debug", false, "Draw collision bodies (toggle in game with F1)")
	flag.Parse()

	config.C.Width = *width
	config.C.Height = *height
	config.C.TickRate = *tickRate
	config.C.Debug = *debug

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Message.Title)
	ebiten.SetTPS(config.C.TickRate)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
