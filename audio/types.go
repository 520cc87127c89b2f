package audio

import (
	"errors"
	"time"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounceX SoundType = iota // Left or right wall
	SoundBounceY                  // Top or bottom wall
	soundTypeCount
)

// PCM format handed to every player: interleaved stereo s16le
const (
	SampleRate = 44100
	Channels   = 2
)

// playerLatencyMs is requested from players that accept a latency hint
const playerLatencyMs = 50

// Bounce click shape
const (
	BounceDuration = 40 * time.Millisecond
	BounceAttack   = 2 * time.Millisecond
	BounceRelease  = 30 * time.Millisecond
	BounceFreqX    = 440.0
	BounceFreqY    = 660.0
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
)
