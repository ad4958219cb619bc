package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/merlinio-playground/config"
	"github.com/automoto/merlinio-playground/core"
	"github.com/automoto/merlinio-playground/term"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	tickRate := flag.Int("tickrate", config.C.TickRate, "Simulation steps per second")
	mute := flag.Bool("mute", false, "Disable sound")
	logPath := flag.String("log", "", "Write logs to this file (the terminal is taken by the game)")
	flag.Parse()

	config.C.TickRate = *tickRate

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "playground-term: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, mute bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	var sound term.Sound
	if !mute {
		if blip, err := term.NewBlip(); err != nil {
			log.Printf("Audio unavailable: %v", err)
		} else {
			sound = blip
		}
	}

	session := core.NewSession(config.C, term.NewRenderer(screen, sound))
	loop := core.NewGameLoop(session, config.C.TickRate)
	input := term.NewInput(term.DefaultHold)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		return term.Poll(gctx, screen, loop, input)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, term.ErrQuit) {
		return err
	}
	return nil
}
