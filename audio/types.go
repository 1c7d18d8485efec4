package audio

import (
	"errors"
	"fmt"
	"strings"
)

// ToneOutput drives a single tone generator: one frequency at a time, or silence
type ToneOutput interface {
	Start(freq float64)
	Stop()
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WavePulse
	WaveSaw
	WaveNoise
)

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrUnknownWave   = errors.New("unknown wave type")
	ErrRecorderDone  = errors.New("recorder already closed")
)

// ParseWave resolves a waveform name
func ParseWave(name string) (WaveType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "pulse", "piezo":
		return WavePulse, nil
	case "saw":
		return WaveSaw, nil
	case "noise":
		return WaveNoise, nil
	}
	return WaveSine, fmt.Errorf("%w: %q", ErrUnknownWave, name)
}

// Silent discards every tone request
type Silent struct{}

func (Silent) Start(float64) {}
func (Silent) Stop()         {}

// multiOutput fans tone requests out to several outputs in order
type multiOutput []ToneOutput

// Multi returns a ToneOutput forwarding to every non-nil output
func Multi(outputs ...ToneOutput) ToneOutput {
	var m multiOutput
	for _, o := range outputs {
		if o != nil {
			m = append(m, o)
		}
	}
	if len(m) == 0 {
		return Silent{}
	}
	if len(m) == 1 {
		return m[0]
	}
	return m
}

func (m multiOutput) Start(freq float64) {
	for _, o := range m {
		o.Start(freq)
	}
}

func (m multiOutput) Stop() {
	for _, o := range m {
		o.Stop()
	}
}
