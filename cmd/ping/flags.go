package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"
)

const (
	backendANSI  = "ansi"
	backendTcell = "tcell"
)

// options holds the command-line configuration; nothing is persisted
type options struct {
	backend string
	frame   time.Duration
	sound   bool
	volume  float64
	debug   bool
	profile string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	fs.StringVar(&o.backend, "backend", backendANSI, "Terminal backend: ansi, tcell")
	fs.DurationVar(&o.frame, "frame", 0, "Delay after each frame (0 redraws as fast as the terminal allows)")
	fs.BoolVar(&o.sound, "sound", false, "Click on every bounce")
	fs.Float64Var(&o.volume, "volume", 0.5, "Bounce volume: 0.0-1.0")
	fs.BoolVar(&o.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.StringVar(&o.profile, "profile", "", "Write a pprof profile to the working directory: cpu, mem")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch {
	case o.backend != backendANSI && o.backend != backendTcell:
		return options{}, fmt.Errorf("unknown backend %q", o.backend)
	case o.frame < 0:
		return options{}, fmt.Errorf("negative frame delay %s", o.frame)
	case o.volume < 0 || o.volume > 1:
		return options{}, fmt.Errorf("volume %v out of range 0.0-1.0", o.volume)
	}
	return o, nil
}

// startProfile starts a pprof profile of the given kind; empty kind disables profiling
func startProfile(kind string) (interface{ Stop() }, error) {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return nil, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfileAllocs
	default:
		return nil, fmt.Errorf("unknown profile %q", kind)
	}
	return profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet), nil
}
