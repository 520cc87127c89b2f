package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ping/audio"
	"github.com/lixenwraith/ping/engine"
	"github.com/lixenwraith/ping/physics"
	"github.com/lixenwraith/ping/terminal"
)

// display is a backend the process owns from Begin to End
type display interface {
	engine.Display
	Begin() error
	End() error
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(flagExitCode(err))
	}

	logFile := setupLogging(opts.debug)
	code := run(opts)
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

// flagExitCode maps a parse failure to an exit status: -h is a clean exit
func flagExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)
	return 2
}

// run owns every resource so deferred cleanup completes before os.Exit
func run(opts options) (code int) {
	prof, err := startProfile(opts.profile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if prof != nil {
		defer prof.Stop()
	}

	d, err := newDisplay(opts.backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := d.Begin(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Panic recovery: runs after the terminal is restored below
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\x1b[31mPING CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()
	defer func() {
		if err := endDisplay(d); err != nil && code == 0 {
			code = 1
		}
	}()

	if g, ok := d.(interface{ StartGraphics() }); ok {
		g.StartGraphics()
	}

	// Raw mode disables ^C, but external signals still end the run cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP, syscall.SIGINT)
	defer stop()

	loopOpts := []engine.Option{engine.WithFrameDelay(opts.frame)}
	if opts.sound {
		if ae := startAudio(opts.volume); ae != nil {
			defer ae.Stop()
			loopOpts = append(loopOpts, engine.WithBounceHandler(func(b physics.Bounce) {
				ae.Play(soundFor(b))
			}))
		}
	}

	loop := engine.NewLoop(d, loopOpts...)
	frames := loop.Run(ctx)
	log.Printf("main: exiting after %d frames in %s mode", frames, loop.Mode())
	return 0
}

// newDisplay builds the requested backend; nothing touches the terminal yet
func newDisplay(backend string) (display, error) {
	switch backend {
	case backendANSI:
		return terminal.NewSession(os.Stdin, os.Stdout), nil
	case backendTcell:
		if err := terminal.CheckTTY(os.Stdin, os.Stdout); err != nil {
			return nil, err
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell screen: %w", err)
		}
		return terminal.NewTcellSession(screen), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// endDisplay restores the terminal, falling back to an emergency reset
func endDisplay(d display) error {
	if err := d.End(); err != nil {
		terminal.EmergencyReset(os.Stdout)
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// startAudio returns a running engine, or nil when audio cannot be used
func startAudio(volume float64) *audio.AudioEngine {
	ae, err := audio.NewAudioEngine(volume)
	if err != nil {
		log.Printf("main: audio disabled: %v", err)
		return nil
	}
	if err := ae.Start(); err != nil {
		log.Printf("main: audio disabled: %v", err)
		return nil
	}
	return ae
}

func soundFor(b physics.Bounce) audio.SoundType {
	if b.Axis == physics.AxisY {
		return audio.SoundBounceY
	}
	return audio.SoundBounceX
}
