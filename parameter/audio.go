package parameter

import "time"

// Audio output settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinCueGap suppresses repeats of the same cue inside this window
	MinCueGap = 60 * time.Millisecond

	// AudioMasterGain scales every cue; synthesized tones are unity gain
	AudioMasterGain = 0.35
)

// Cue envelopes
const (
	CueAttack       = 4 * time.Millisecond
	CueShortRelease = 25 * time.Millisecond
	CueLongRelease  = 180 * time.Millisecond

	KillCueDuration  = 45 * time.Millisecond
	HitCueDuration   = 120 * time.Millisecond
	SwingCueDuration = 70 * time.Millisecond
	PickupCueNote    = 40 * time.Millisecond
	LevelCueNote     = 90 * time.Millisecond
	BossCueDuration  = 700 * time.Millisecond
	SkillCueDuration = 220 * time.Millisecond
	GameOverCueNote  = 260 * time.Millisecond
)
