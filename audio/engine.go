package audio

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"sync"
	"sync/atomic"
)

// AudioEngine plays pre-rendered effects through a system PCM player
// Without a player it runs in silent mode and Play is a no-op
type AudioEngine struct {
	sounds [soundTypeCount][]byte

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser

	queue  chan SoundType
	stopCh chan struct{}

	running    atomic.Bool
	silentMode atomic.Bool

	dropped atomic.Uint64
	wg      sync.WaitGroup
}

// NewAudioEngine renders every effect at the given volume (0.0-1.0)
func NewAudioEngine(volume float64) (*AudioEngine, error) {
	ae := &AudioEngine{
		queue:  make(chan SoundType, 8),
		stopCh: make(chan struct{}),
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		s, err := CreateBounceSound(st, volume)
		if err != nil {
			return nil, fmt.Errorf("render sound %d: %w", st, err)
		}
		ae.sounds[st] = renderPCM(s)
	}
	return ae, nil
}

// Start launches the first installed player that starts; missing players are not an error
func (ae *AudioEngine) Start() error {
	return ae.startWith(DetectBackends())
}

// startWith tries each candidate in order and falls back to silent mode when none launches
func (ae *AudioEngine) startWith(candidates []BackendConfig) error {
	if ae.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	for i := range candidates {
		backend := &candidates[i]
		cmd, stdin, err := launch(backend)
		if err != nil {
			log.Printf("audio: %s failed to start: %v", backend.Name, err)
			continue
		}
		ae.backend = backend
		ae.cmd = cmd
		ae.stdin = stdin

		log.Printf("audio: playing through %s", backend.Name)
		ae.startWriter(stdin)
		ae.running.Store(true)
		return nil
	}

	log.Printf("audio: %v, running silent", ErrNoAudioBackend)
	ae.silentMode.Store(true)
	ae.running.Store(true)
	return nil
}

// launch starts a player process fed through its stdin
func launch(b *BackendConfig) (*exec.Cmd, io.WriteCloser, error) {
	cmd := exec.Command(b.Path, b.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, nil, err
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, nil, err
	}
	return cmd, stdin, nil
}

// Backend returns the player in use, or nil when silent
func (ae *AudioEngine) Backend() *BackendConfig {
	return ae.backend
}

// startWriter copies queued sounds to w until Stop or a write error
func (ae *AudioEngine) startWriter(w io.Writer) {
	ae.wg.Add(1)
	go func() {
		defer ae.wg.Done()
		for {
			select {
			case <-ae.stopCh:
				return
			case st := <-ae.queue:
				if _, err := w.Write(ae.sounds[st]); err != nil {
					log.Printf("audio: pipe closed: %v", err)
					ae.silentMode.Store(true)
					return
				}
			}
		}
	}()
}

// Play queues a sound without blocking; returns false if it was not queued
func (ae *AudioEngine) Play(st SoundType) bool {
	if !ae.running.Load() || ae.silentMode.Load() || st < 0 || st >= soundTypeCount {
		return false
	}

	select {
	case ae.queue <- st:
		return true
	default:
		ae.dropped.Add(1)
		return false
	}
}

// IsSilent reports whether sounds are being discarded
func (ae *AudioEngine) IsSilent() bool {
	return ae.silentMode.Load()
}

// Dropped returns the number of sounds discarded because the queue was full
func (ae *AudioEngine) Dropped() uint64 {
	return ae.dropped.Load()
}

// Stop terminates the writer and the backend player
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}

	close(ae.stopCh)

	if ae.stdin != nil {
		ae.stdin.Close()
	}
	if ae.cmd != nil && ae.cmd.Process != nil {
		ae.cmd.Process.Kill()
		ae.cmd.Wait()
	}

	ae.wg.Wait()
}
