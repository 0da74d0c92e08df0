// Package audio plays short synthesized effects for game events through the
// system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-diver/internal/games/diver/sim"
)

const sampleRate = beep.SampleRate(48000)

const (
	pearlPitch    = 880
	treasurePitch = 1320
)

// SoundManager mixes event sounds into a single speaker stream. Until
// Initialize succeeds every Play call is a no-op, so the game runs
// unchanged without an audio device.
type SoundManager struct {
	mu          sync.Mutex // the speaker goroutine reads the mixer
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a manager with volume in [0, 1].
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Handle plays the sound of each event.
func (sm *SoundManager) Handle(events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventCollected:
			sm.PlayCollect(e.Collectible)
		case sim.EventDamaged:
			sm.PlayDamage()
		case sim.EventGameOver:
			sm.PlayGameOver()
		}
	}
}

// PlayCollect rings the pickup chime.
func (sm *SoundManager) PlayCollect(k sim.CollectibleKind) {
	pitch := float64(pearlPitch)
	if k == sim.Treasure {
		pitch = treasurePitch
	}
	sm.play(chime(sampleRate, pitch))
}

// PlayDamage plays the hit buzz.
func (sm *SoundManager) PlayDamage() {
	sm.play(damageBuzz(sampleRate))
}

// PlayGameOver plays the falling tone.
func (sm *SoundManager) PlayGameOver() {
	sm.play(gameOverTone(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	voices := sm.enqueue(s)
	if sm.logger != nil {
		sm.logger.Debug("sound queued", "voices", voices)
	}
}

// enqueue adds s to the mixer and returns the number of playing voices.
// The mixer is only touched under the speaker lock.
func (sm *SoundManager) enqueue(s beep.Streamer) int {
	speaker.Lock()
	defer speaker.Unlock()
	sm.mixer.Add(newVolume(s, sm.volume))
	return sm.mixer.Len()
}
