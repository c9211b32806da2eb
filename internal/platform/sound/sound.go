// Package sound plays short synthesized audio cues for game events.
// Audio is strictly best-effort: when the host has no usable audio device the
// player degrades to a no-op and the game runs silent.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vradchenko/puff-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// cueSpec describes the blip synthesized for one cue.
type cueSpec struct {
	wave     waveType
	freq     float64
	endFreq  float64
	duration time.Duration
	volume   float64
}

var cueTable = map[core.Cue]cueSpec{
	core.CueJump:     {waveSquare, 300, 600, 90 * time.Millisecond, 0.25},
	core.CueHit:      {waveSaw, 200, 80, 150 * time.Millisecond, 0.35},
	core.CueInhale:   {waveSine, 150, 400, 200 * time.Millisecond, 0.2},
	core.CueSwallow:  {waveSine, 500, 250, 120 * time.Millisecond, 0.3},
	core.CueFire:     {waveSaw, 400, 150, 180 * time.Millisecond, 0.3},
	core.CueIce:      {waveSine, 800, 1200, 120 * time.Millisecond, 0.25},
	core.CueSpark:    {waveSquare, 900, 1400, 100 * time.Millisecond, 0.2},
	core.CueStone:    {waveSaw, 120, 60, 200 * time.Millisecond, 0.4},
	core.CueSword:    {waveSquare, 700, 300, 90 * time.Millisecond, 0.25},
	core.CueBeam:     {waveSine, 600, 1000, 150 * time.Millisecond, 0.25},
	core.CueTornado:  {waveSaw, 250, 500, 250 * time.Millisecond, 0.25},
	core.CueBossHurt: {waveSquare, 180, 90, 200 * time.Millisecond, 0.4},
	core.CuePlant:    {waveSine, 440, 660, 100 * time.Millisecond, 0.25},
	core.CueShoot:    {waveSquare, 880, 880, 40 * time.Millisecond, 0.15},
	core.CueBoom:     {waveSaw, 100, 40, 350 * time.Millisecond, 0.45},
	core.CueWin:      {waveSine, 440, 880, 500 * time.Millisecond, 0.3},
	core.CueLose:     {waveSaw, 300, 60, 600 * time.Millisecond, 0.35},
}

// Player mixes cue blips into the speaker. The zero value is unusable; use
// NewPlayer and call Init before Play.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// NewPlayer creates a silent player. Init enables output.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. A failure leaves the player silent and is returned
// for logging only; callers should not treat it as fatal.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

// Play mixes the blip for a cue. Unknown cues and uninitialized players are
// silent no-ops.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	spec, ok := cueTable[cue]
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(newTone(sampleRate, spec.wave, spec.freq, spec.endFreq, spec.duration, spec.volume))
	speaker.Unlock()
}

// Close silences the player. The speaker stays open; beep has no close.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
