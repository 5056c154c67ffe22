package event

import "github.com/lixenwraith/slime-survivor/core"

// EventType represents the type of game event
type EventType int

const (
	// EventEnemyKilled fires once per enemy whose hp reached zero this tick
	// Trigger: CullSystem | Consumer: audio, HUD | Payload: *KillPayload
	EventEnemyKilled EventType = iota

	// EventPlayerHit fires when damage got through invincibility
	// Trigger: CombatSystem | Consumer: audio, renderer shake | Payload: *HitPayload
	EventPlayerHit

	// EventPlayerLevelUp fires when exp crossed the threshold and a selection opened
	// Trigger: LevelSystem | Consumer: audio | Payload: *LevelPayload
	EventPlayerLevelUp

	// EventBossSpawned fires on Spawning -> BossEncounter
	// Trigger: ProgressionSystem | Consumer: audio, HUD notice | Payload: *KillPayload
	EventBossSpawned

	// EventBossKilled fires on BossEncounter -> Spawning
	// Trigger: CullSystem | Consumer: audio, HUD notice | Payload: *KillPayload
	EventBossKilled

	// EventSwingStarted fires when a melee swing begins
	// Trigger: WeaponSystem | Consumer: audio | Payload: nil
	EventSwingStarted

	// EventSkillCast fires when the special skill was activated
	// Trigger: World intent handling | Consumer: audio | Payload: nil
	EventSkillCast

	// EventPickupCollected fires per orb consumed
	// Trigger: CombatSystem | Consumer: audio | Payload: nil
	EventPickupCollected

	// EventSelectionApplied fires when an upgrade or boss reward was chosen
	// Trigger: World intent handling | Consumer: audio | Payload: *LevelPayload
	EventSelectionApplied

	// EventGameOver fires once when player hp reached zero
	// Trigger: World | Consumer: frontend | Payload: nil
	EventGameOver

	// EventLeaderboardResult carries the outcome of a background submission
	// Trigger: network.AsyncSubmitter | Consumer: HUD notice | Payload: *LeaderboardPayload
	EventLeaderboardResult
)

var eventNames = map[EventType]string{
	EventEnemyKilled:       "EnemyKilled",
	EventPlayerHit:         "PlayerHit",
	EventPlayerLevelUp:     "PlayerLevelUp",
	EventBossSpawned:       "BossSpawned",
	EventBossKilled:        "BossKilled",
	EventSwingStarted:      "SwingStarted",
	EventSkillCast:         "SkillCast",
	EventPickupCollected:   "PickupCollected",
	EventSelectionApplied:  "SelectionApplied",
	EventGameOver:          "GameOver",
	EventLeaderboardResult: "LeaderboardResult",
}

func (t EventType) String() string {
	if n, ok := eventNames[t]; ok {
		return n
	}
	return "Unknown"
}

// GameEvent is one queued notification from the simulation to presentation
type GameEvent struct {
	Type    EventType
	Tick    uint64
	Payload any
}

// KillPayload describes a dead or spawned enemy
type KillPayload struct {
	Entity core.Entity
	X, Y   float64
	Boss   bool
	Minion bool
}

// HitPayload describes damage taken by the player
type HitPayload struct {
	Damage float64
	HP     float64
}

// LevelPayload carries the player level after the change
type LevelPayload struct {
	Level int
}

// LeaderboardPayload carries the rank assigned by the board, or the failure
type LeaderboardPayload struct {
	Rank int
	Err  error
}
