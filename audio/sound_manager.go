package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/constants"
)

// SoundType identifies a sound effect
type SoundType int

const (
	SoundPaddleHit SoundType = iota
	SoundWallBounce
	SoundPoint
	SoundMatchWon
)

var soundNames = map[SoundType]string{
	SoundPaddleHit:  "paddle_hit",
	SoundWallBounce: "wall_bounce",
	SoundPoint:      "point",
	SoundMatchWon:   "match_won",
}

func (s SoundType) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "unknown"
}

// silentVolume and below mutes output
const silentVolume = -10.0

// SoundManager manages all game audio.
// Every call is a no-op until Initialize succeeds, so the game runs without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager at the given base-2 master volume
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		rate:   beep.SampleRate(constants.AudioSampleRate),
		mixer:  mixer,
		master: newVolume(mixer, volume),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences or restores output without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Silent = muted || sm.master.Volume <= silentVolume
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a sound on the mixer; returns false when nothing was queued
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	s, err := GetSoundEffect(st, sm.rate)
	if err != nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}
