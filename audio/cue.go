package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/slime-survivor/event"
	"github.com/lixenwraith/slime-survivor/parameter"
)

// cues maps gameplay events to synthesized tones; events without an entry are silent
var cues = map[event.EventType][]note{
	event.EventEnemyKilled: {
		{wave: waveSquare, freq: 660, sweep: 440, length: parameter.KillCueDuration, release: parameter.CueShortRelease},
	},
	event.EventPlayerHit: {
		{wave: waveSaw, freq: 140, sweep: 90, length: parameter.HitCueDuration, release: parameter.CueShortRelease},
	},
	event.EventSwingStarted: {
		{wave: waveNoise, length: parameter.SwingCueDuration, release: parameter.CueShortRelease},
	},
	event.EventPickupCollected: {
		{wave: waveSquare, freq: 987.77, length: parameter.PickupCueNote, release: parameter.CueShortRelease},
		{wave: waveSquare, freq: 1318.51, length: parameter.PickupCueNote, release: parameter.CueShortRelease},
	},
	event.EventPlayerLevelUp: {
		{wave: waveSine, freq: 523.25, length: parameter.LevelCueNote, release: parameter.CueShortRelease},
		{wave: waveSine, freq: 659.25, length: parameter.LevelCueNote, release: parameter.CueShortRelease},
		{wave: waveSine, freq: 783.99, length: parameter.LevelCueNote, release: parameter.CueLongRelease},
	},
	event.EventSelectionApplied: {
		{wave: waveSine, freq: 880, length: parameter.LevelCueNote, release: parameter.CueShortRelease},
	},
	event.EventSkillCast: {
		{wave: waveSine, freq: 300, sweep: 1200, length: parameter.SkillCueDuration, release: parameter.CueLongRelease},
	},
	event.EventBossSpawned: {
		{wave: waveSaw, freq: 70, sweep: 55, length: parameter.BossCueDuration, release: parameter.CueLongRelease},
	},
	event.EventBossKilled: {
		{wave: waveSquare, freq: 784, length: parameter.LevelCueNote, release: parameter.CueShortRelease},
		{wave: waveSquare, freq: 1047, length: parameter.LevelCueNote, release: parameter.CueShortRelease},
		{wave: waveNoise, length: parameter.SkillCueDuration, release: parameter.CueLongRelease},
	},
	event.EventGameOver: {
		{wave: waveSine, freq: 392, length: parameter.GameOverCueNote, release: parameter.CueShortRelease},
		{wave: waveSine, freq: 329.63, length: parameter.GameOverCueNote, release: parameter.CueShortRelease},
		{wave: waveSine, freq: 261.63, length: parameter.GameOverCueNote, release: parameter.CueLongRelease},
	},
}

// renderCue concatenates the notes of one cue; the boss cue is layered with a fifth above
func renderCue(t event.EventType) floatBuffer {
	notes, ok := cues[t]
	if !ok {
		return nil
	}
	var buf floatBuffer
	for _, n := range notes {
		buf = concatFloatBuffers(buf, n.render())
	}
	if t == event.EventBossSpawned {
		fifth := note{wave: waveSine, freq: 105, sweep: 82.5, length: parameter.BossCueDuration, release: parameter.CueLongRelease}
		buf = mixFloatBuffers(buf, fifth.render(), 0.5)
	}
	return buf
}

// cueCache stores rendered cues, generated on first use
type cueCache struct {
	mu    sync.RWMutex
	store map[event.EventType]floatBuffer
}

func newCueCache() *cueCache {
	return &cueCache{store: make(map[event.EventType]floatBuffer)}
}

func (c *cueCache) get(t event.EventType) floatBuffer {
	c.mu.RLock()
	buf, ok := c.store[t]
	c.mu.RUnlock()
	if ok {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if buf, ok = c.store[t]; ok {
		return buf
	}
	buf = renderCue(t)
	c.store[t] = buf
	return buf
}

// CuePlayer turns drained gameplay events into short tones on the speaker
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	cache       *cueCache
	last        map[event.EventType]time.Time
	initialized bool

	now func() time.Time
}

// NewCuePlayer creates a player; it stays silent until Initialize succeeds
func NewCuePlayer(muted bool) *CuePlayer {
	mixer := &beep.Mixer{}
	return &CuePlayer{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2, Silent: muted},
		cache:  newCueCache(),
		last:   make(map[event.EventType]time.Time),
		now:    time.Now,
	}
}

// Initialize sets up the speaker and starts the mixer
func (cp *CuePlayer) Initialize() error {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if cp.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(cp.volume)
	cp.initialized = true

	// Warm the most frequent cues off the tick path
	cp.cache.get(event.EventEnemyKilled)
	cp.cache.get(event.EventPickupCollected)
	return nil
}

// Cleanup silences and detaches every playing cue
func (cp *CuePlayer) Cleanup() {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return
	}
	speaker.Clear()
	cp.mixer.Clear()
	cp.initialized = false
}

// ToggleMute flips the master mute and returns the new state
func (cp *CuePlayer) ToggleMute() bool {
	speaker.Lock()
	defer speaker.Unlock()
	cp.volume.Silent = !cp.volume.Silent
	return cp.volume.Silent
}

// Muted reports the master mute
func (cp *CuePlayer) Muted() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return cp.volume.Silent
}

// Handle plays the cue of every event in the batch, at most once per type
func (cp *CuePlayer) Handle(events []event.GameEvent) {
	seen := make(map[event.EventType]struct{}, len(events))
	for _, ev := range events {
		if _, dup := seen[ev.Type]; dup {
			continue
		}
		seen[ev.Type] = struct{}{}
		cp.Play(ev.Type)
	}
}

// Play queues the cue for t; false when uninitialized, silent for t or inside the repeat gap
func (cp *CuePlayer) Play(t event.EventType) bool {
	cp.mu.Lock()
	defer cp.mu.Unlock()

	if !cp.initialized {
		return false
	}
	now := cp.now()
	if prev, ok := cp.last[t]; ok && now.Sub(prev) < parameter.MinCueGap {
		return false
	}
	buf := cp.cache.get(t)
	if len(buf) == 0 {
		return false
	}
	cp.last[t] = now

	speaker.Lock()
	cp.mixer.Add(&bufferStreamer{buf: buf, gain: parameter.AudioMasterGain})
	speaker.Unlock()
	return true
}
