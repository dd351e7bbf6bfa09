package constants

import "time"

// Audio output
const (
	AudioSampleRate   = 48000
	AudioBufferLength = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between consecutive step sounds
	MinSoundGap = 50 * time.Millisecond

	// AudioDrainPoll is how often Drain checks the mixer for pending sounds
	AudioDrainPoll = 10 * time.Millisecond
)

// Step Sound Timing
const (
	StepSoundFrequency = 660.0
	StepSoundDuration  = 40 * time.Millisecond
	StepSoundAttack    = 2 * time.Millisecond
	StepSoundRelease   = 25 * time.Millisecond
)

// Quit Sound Timing
const (
	QuitSoundNote1Duration = 90 * time.Millisecond
	QuitSoundNote2Duration = 220 * time.Millisecond
	QuitSoundAttack        = 5 * time.Millisecond
	QuitSoundNote1Release  = 40 * time.Millisecond
	QuitSoundNote2Release  = 180 * time.Millisecond

	// QuitSoundDrainTimeout bounds the wait for the quit chime at exit
	QuitSoundDrainTimeout = QuitSoundNote1Duration + QuitSoundNote2Duration + AudioBufferLength
)
