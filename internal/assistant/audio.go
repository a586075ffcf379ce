package assistant

import (
	"os"

	"github.com/go-audio/wav"
)

// audioDuration measures the audio length in seconds from the WAV container
// (frames divided by sample rate). Measurement is best-effort: any open or
// decode failure yields 0 so pricing degrades instead of failing the request.
func audioDuration(path string) float64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer func() { _ = f.Close() }()

	dur, err := wav.NewDecoder(f).Duration()
	if err != nil {
		return 0
	}
	return dur.Seconds()
}
