package audio

import (
	"os/exec"
	"strconv"
)

// player is a raw PCM sink known to accept s16le on stdin
type player struct {
	name string
	bin  string
	args func(rate, channels string) []string
}

// players in preference order: PulseAudio, PipeWire, ALSA, SoX
var players = []player{
	{"pulse", "pacat", func(rate, ch string) []string {
		return []string{"--raw", "--playback", "--format=s16le", "--rate=" + rate, "--channels=" + ch, "--latency-msec=" + strconv.Itoa(playerLatencyMs)}
	}},
	{"pipewire", "pw-cat", func(rate, ch string) []string {
		return []string{"--playback", "--format=s16", "--rate=" + rate, "--channels=" + ch, "--latency=" + strconv.Itoa(playerLatencyMs) + "ms", "-"}
	}},
	{"alsa", "aplay", func(rate, ch string) []string {
		return []string{"-q", "-t", "raw", "-f", "S16_LE", "-r", rate, "-c", ch}
	}},
	{"sox", "play", func(rate, ch string) []string {
		return []string{"-q", "-t", "raw", "-e", "signed", "-b", "16", "-r", rate, "-c", ch, "-", "-d"}
	}},
}

// DetectBackends lists every installed player, most preferred first
func DetectBackends() []BackendConfig {
	return detectBackends(exec.LookPath)
}

func detectBackends(lookPath func(string) (string, error)) []BackendConfig {
	rate := strconv.Itoa(SampleRate)
	ch := strconv.Itoa(Channels)

	var found []BackendConfig
	for _, p := range players {
		path, err := lookPath(p.bin)
		if err != nil {
			continue
		}
		found = append(found, BackendConfig{Name: p.name, Path: path, Args: p.args(rate, ch)})
	}
	return found
}
