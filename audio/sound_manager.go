package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hindsight/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays input feedback sounds through a single mixer
// All methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool

	now      func() time.Time
	lastStep time.Time
}

// NewSoundManager creates a sound manager with volume clamped to [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
		now:    time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferLength)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Drain waits until the mixer has no pending sounds or timeout passes
// Call before Cleanup so sounds queued at exit are heard
func (sm *SoundManager) Drain(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for sm.pending() > 0 {
		if !time.Now().Before(deadline) {
			return
		}
		time.Sleep(min(constants.AudioDrainPoll, time.Until(deadline)))
	}
}

// pending returns the number of streamers still in the mixer
func (sm *SoundManager) pending() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

// Volume returns the effective volume
func (sm *SoundManager) Volume() float64 {
	return sm.volume
}

// PlayStep plays the move tick, at most once per MinSoundGap
func (sm *SoundManager) PlayStep() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.allowStep() {
		return
	}
	sm.add(CreateStepSound(sampleRate, sm.volume))
}

// PlayQuit plays the quit chime
func (sm *SoundManager) PlayQuit() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(CreateQuitSound(sampleRate, sm.volume))
}

// allowStep reports whether enough time passed since the last step sound
// Caller holds mu
func (sm *SoundManager) allowStep() bool {
	now := sm.now()
	if !sm.lastStep.IsZero() && now.Sub(sm.lastStep) < constants.MinSoundGap {
		return false
	}
	sm.lastStep = now
	return true
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
