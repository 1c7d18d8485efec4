package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/simon/constants"
)

// TimeSource supplies the timeline tones are recorded against
type TimeSource interface {
	Now() time.Time
}

// Recorder captures every tone of a session into a mono PCM WAV file.
// Audio is buffered in memory and written on Close.
type Recorder struct {
	mu      sync.Mutex
	path    string
	clock   TimeSource
	rate    beep.SampleRate
	wave    WaveType
	volume  float64
	data    []int
	osc     beep.Streamer
	origin  time.Time
	started bool
	closed  bool
	scratch [][2]float64
}

// NewRecorder creates a recorder writing to path on Close
func NewRecorder(path string, clock TimeSource, cfg *AudioConfig) *Recorder {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Recorder{
		path:    path,
		clock:   clock,
		rate:    beep.SampleRate(constants.RecorderSampleRate),
		wave:    cfg.Wave,
		volume:  cfg.MasterVolume,
		scratch: make([][2]float64, 512),
	}
}

// Start records freq from now until the next Start or Stop
func (r *Recorder) Start(freq float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.advance(r.clock.Now())
	r.osc = NewOscillator(freq, 0, r.wave, r.rate)
}

// Stop records silence from now
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.advance(r.clock.Now())
	r.osc = nil
}

// Samples returns the number of samples captured so far
func (r *Recorder) Samples() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}

// advance fills samples up to now with the current tone or silence.
// Sample counts are measured from the first event so rounding never drifts.
func (r *Recorder) advance(now time.Time) {
	if !r.started {
		r.origin = now
		r.started = true
		return
	}

	target := int(math.Round(now.Sub(r.origin).Seconds() * float64(r.rate)))
	peak := float64(int(1)<<(constants.RecorderBitDepth-1)-1) * r.volume

	for len(r.data) < target {
		n := min(target-len(r.data), len(r.scratch))
		if r.osc == nil {
			for i := 0; i < n; i++ {
				r.data = append(r.data, 0)
			}
			continue
		}
		got, _ := r.osc.Stream(r.scratch[:n])
		for i := 0; i < got; i++ {
			r.data = append(r.data, int(r.scratch[i][0]*peak))
		}
		if got < n {
			r.osc = nil
		}
	}
}

// Close flushes the timeline and writes the WAV file
func (r *Recorder) Close() (rerr error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRecorderDone
	}
	r.advance(r.clock.Now())
	r.closed = true

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("recorder: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, int(r.rate), constants.RecorderBitDepth, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: int(r.rate)},
		Data:           r.data,
		SourceBitDepth: constants.RecorderBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("recorder: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("recorder: finalize: %w", err)
	}
	return nil
}
