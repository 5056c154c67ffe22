package parameter

import "time"

// Layout
const (
	// HUDRows are reserved at the top of the screen for status lines
	HUDRows = 2

	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	// MenuWidth is the inner width of the selection box
	MenuWidth = 46
)

// Glyphs
const (
	GlyphPlayer  = '@'
	GlyphDagger  = '+'
	GlyphStorm   = '*'
	GlyphBullet  = '•'
	GlyphOrb     = '·'
	GlyphBat     = 'w'
	GlyphFlail   = 'O'
	GlyphBlade   = '≈'
	GlyphBoss    = 'B'
	GlyphMinion  = 'm'
	GlyphSlime   = 'o'
	GlyphMint    = 'e'
	GlyphShooter = 'x'
)

const (
	// NoticeDuration keeps a passive HUD notice on screen
	NoticeDuration = 4 * time.Second

	// BarWidth is the width of the hp and exp bars
	BarWidth = 20
)
