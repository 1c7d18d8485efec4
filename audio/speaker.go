package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays tones on the default sound device through beep
type Speaker struct {
	mu          sync.Mutex
	config      *AudioConfig
	ctrl        *beep.Ctrl
	freq        float64
	initialized bool
}

// NewSpeaker creates a speaker; nothing is opened until Initialize
func NewSpeaker(cfg *AudioConfig) *Speaker {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Speaker{config: cfg}
}

// Initialize opens the sound device and starts a paused tone channel
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if !s.config.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(s.config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	s.ctrl = &beep.Ctrl{Streamer: beep.Silence(-1), Paused: true}
	speaker.Play(s.ctrl)
	s.initialized = true
	return nil
}

// Start replaces the current tone with freq and unpauses output
func (s *Speaker) Start(freq float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	tone := CreateTone(freq, s.config)
	speaker.Lock()
	s.ctrl.Streamer = tone
	s.ctrl.Paused = false
	speaker.Unlock()
	s.freq = freq
}

// Stop silences the tone channel
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
	s.freq = 0
}

// Frequency returns the tone currently sounding, 0 when silent
func (s *Speaker) Frequency() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.freq
}

// Close stops output and releases the sound device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	s.ctrl = nil
	s.freq = 0
	s.initialized = false
}
