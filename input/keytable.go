package input

import "github.com/gdamore/tcell/v2"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone KeyBehavior = iota
	BehaviorMove
	BehaviorSelect
	BehaviorSkill
	BehaviorSystem
)

// Direction is one of the four movement axes held by the mapper
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown

	dirCount
)

// Action is a frontend request outside the simulation intent
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleMute
	ActionRestart
	ActionResize
	ActionToggleDebug
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior  KeyBehavior
	Direction Direction
	Option    int
	Action    Action
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Plain rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings: wasd, hjkl and arrows move, 1-3 pick, space casts
func DefaultKeyTable() *KeyTable {
	move := func(d Direction) KeyEntry { return KeyEntry{Behavior: BehaviorMove, Direction: d} }
	pick := func(i int) KeyEntry { return KeyEntry{Behavior: BehaviorSelect, Option: i} }
	system := func(a Action) KeyEntry { return KeyEntry{Behavior: BehaviorSystem, Action: a} }
	skill := KeyEntry{Behavior: BehaviorSkill}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  system(ActionQuit),
			tcell.KeyCtrlC:  system(ActionQuit),
			tcell.KeyEscape: system(ActionQuit),
			tcell.KeyCtrlS:  system(ActionToggleMute),
			tcell.KeyF3:     system(ActionToggleDebug),
			tcell.KeyLeft:   move(DirLeft),
			tcell.KeyRight:  move(DirRight),
			tcell.KeyUp:     move(DirUp),
			tcell.KeyDown:   move(DirDown),
			tcell.KeyEnter:  skill,
		},
		Runes: map[rune]KeyEntry{
			'a': move(DirLeft),
			'd': move(DirRight),
			'w': move(DirUp),
			's': move(DirDown),
			'h': move(DirLeft),
			'l': move(DirRight),
			'k': move(DirUp),
			'j': move(DirDown),
			'1': pick(0),
			'2': pick(1),
			'3': pick(2),
			' ': skill,
			'm': system(ActionToggleMute),
			'r': system(ActionRestart),
			'`': system(ActionToggleDebug),
			'q': system(ActionQuit),
		},
	}
}
