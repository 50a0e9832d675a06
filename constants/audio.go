package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultAudioVolume is the beep effects.Volume level (base 2, 0 = unity)
	DefaultAudioVolume = -1.0
)

// Paddle Hit Sound
const (
	PaddleHitFrequency = 880.0
	PaddleHitDuration  = 50 * time.Millisecond
	PaddleHitAttack    = 2 * time.Millisecond
	PaddleHitRelease   = 30 * time.Millisecond
)

// Wall Bounce Sound
const (
	WallBounceFrequency = 440.0
	WallBounceDuration  = 40 * time.Millisecond
	WallBounceAttack    = 2 * time.Millisecond
	WallBounceRelease   = 25 * time.Millisecond
)

// Point Sound (falling two-note square)
const (
	PointNote1Frequency = 330.0
	PointNote2Frequency = 220.0
	PointNoteDuration   = 120 * time.Millisecond
	PointAttack         = 5 * time.Millisecond
	PointRelease        = 60 * time.Millisecond
)

// Match Won Sound (rising arpeggio)
var MatchWonFrequencies = []float64{523.25, 659.25, 783.99, 1046.50}

const (
	MatchWonNoteDuration = 150 * time.Millisecond
	MatchWonAttack       = 5 * time.Millisecond
	MatchWonRelease      = 80 * time.Millisecond
)
