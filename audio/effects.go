package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-pong/constants"
)

// WaveType selects the tone generator
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// NewTone returns a tone of the given wave and frequency, cut to duration
func NewTone(wave WaveType, freq float64, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	var (
		tone beep.Streamer
		err  error
	)
	switch wave {
	case WaveSine:
		tone, err = generators.SineTone(rate, freq)
	case WaveSquare:
		tone, err = generators.SquareTone(rate, freq)
	default:
		return nil, fmt.Errorf("unknown wave type %d", wave)
	}
	if err != nil {
		return nil, fmt.Errorf("tone %.2fHz: %w", freq, err)
	}
	return beep.Take(rate.N(duration), tone), nil
}

// envelope applies linear attack/release shaping to a finite stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// NewEnvelope shapes s over duration with a linear fade in and fade out
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: total - rel,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		} else if e.position >= e.releaseStart && e.release > 0 {
			gain = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// blip builds one shaped note
func blip(wave WaveType, freq float64, duration, attack, release time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	tone, err := NewTone(wave, freq, duration, rate)
	if err != nil {
		return nil, err
	}
	return NewEnvelope(tone, duration, attack, release, rate), nil
}

// newVolume wraps s in a base-2 volume control; at or below silentVolume the stream is muted
func newVolume(s beep.Streamer, volume float64) *effects.Volume {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume, Silent: volume <= silentVolume}
}

// Sound effect builders

// CreatePaddleHitSound is a short high sine blip
func CreatePaddleHitSound(rate beep.SampleRate) (beep.Streamer, error) {
	return blip(WaveSine, constants.PaddleHitFrequency, constants.PaddleHitDuration,
		constants.PaddleHitAttack, constants.PaddleHitRelease, rate)
}

// CreateWallBounceSound is a short low sine blip
func CreateWallBounceSound(rate beep.SampleRate) (beep.Streamer, error) {
	return blip(WaveSine, constants.WallBounceFrequency, constants.WallBounceDuration,
		constants.WallBounceAttack, constants.WallBounceRelease, rate)
}

// CreatePointSound is a falling two-note square
func CreatePointSound(rate beep.SampleRate) (beep.Streamer, error) {
	n1, err := blip(WaveSquare, constants.PointNote1Frequency, constants.PointNoteDuration,
		constants.PointAttack, constants.PointRelease, rate)
	if err != nil {
		return nil, err
	}
	n2, err := blip(WaveSquare, constants.PointNote2Frequency, constants.PointNoteDuration,
		constants.PointAttack, constants.PointRelease, rate)
	if err != nil {
		return nil, err
	}
	// Square tones are harsh at full scale
	return newVolume(beep.Seq(n1, n2), -1), nil
}

// CreateMatchWonSound is a rising major arpeggio
func CreateMatchWonSound(rate beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(constants.MatchWonFrequencies))
	for _, freq := range constants.MatchWonFrequencies {
		n, err := blip(WaveSine, freq, constants.MatchWonNoteDuration,
			constants.MatchWonAttack, constants.MatchWonRelease, rate)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return beep.Seq(notes...), nil
}

// GetSoundEffect returns the streamer for the given sound
func GetSoundEffect(st SoundType, rate beep.SampleRate) (beep.Streamer, error) {
	switch st {
	case SoundPaddleHit:
		return CreatePaddleHitSound(rate)
	case SoundWallBounce:
		return CreateWallBounceSound(rate)
	case SoundPoint:
		return CreatePointSound(rate)
	case SoundMatchWon:
		return CreateMatchWonSound(rate)
	default:
		return nil, fmt.Errorf("unknown sound type %d", st)
	}
}
