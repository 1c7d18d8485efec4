package constants

// Failure Pattern (Hz)
const (
	FailureToneHigh = 400
	FailureToneLow  = 233
)

// Audio Output
const (
	// DefaultSampleRate is the speaker sample rate
	DefaultSampleRate = 44100

	// RecorderSampleRate is the WAV recorder sample rate
	RecorderSampleRate = 22050

	// RecorderBitDepth is the PCM bit depth written by the recorder
	RecorderBitDepth = 16

	// PulseDuty is the duty cycle of the piezo emulation waveform (1000/65535)
	PulseDuty = 1000.0 / 65535.0

	// DefaultMasterVolume is the initial output volume in [0,1]
	DefaultMasterVolume = 0.5
)
