package parameter

const (
	// KeyHoldTicks keeps a movement key active after its press; terminals report no key release,
	// so this must outlast the auto-repeat gap
	KeyHoldTicks = 9

	// SkillAimDistance places the keyboard skill target ahead of the player's facing
	SkillAimDistance = 200.0
)
