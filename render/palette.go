package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/slime-survivor/component"
)

// Palette resolves entity colours; hp tints are blended in Lab space between full and empty
type Palette struct {
	Background tcell.Color
	Text       tcell.Color
	Dim        tcell.Color
	Player     tcell.Color
	Hurt       tcell.Color
	Dagger     tcell.Color
	Storm      tcell.Color
	Bullet     tcell.Color
	BossBullet tcell.Color
	Orb        tcell.Color
	Bat        tcell.Color
	Blade      tcell.Color
	Flail      tcell.Color
	MenuBg     tcell.Color
	Exp        tcell.Color

	full  map[component.VisualTag]colorful.Color
	empty colorful.Color
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// DefaultPalette is a dark theme
func DefaultPalette() *Palette {
	return &Palette{
		Background: toTcell(hex("#1a1b26")),
		Text:       toTcell(hex("#c0caf5")),
		Dim:        toTcell(hex("#565f89")),
		Player:     toTcell(hex("#ffffff")),
		Hurt:       toTcell(hex("#ff5555")),
		Dagger:     toTcell(hex("#e0e0e0")),
		Storm:      toTcell(hex("#7dcfff")),
		Bullet:     toTcell(hex("#ff9e64")),
		BossBullet: toTcell(hex("#f7768e")),
		Orb:        toTcell(hex("#9ece6a")),
		Bat:        toTcell(hex("#bb9af7")),
		Blade:      toTcell(hex("#e0af68")),
		Flail:      toTcell(hex("#a9b1d6")),
		MenuBg:     toTcell(hex("#24283b")),
		Exp:        toTcell(hex("#7aa2f7")),

		full: map[component.VisualTag]colorful.Color{
			component.VisualSlime:   hex("#3ddc84"),
			component.VisualMint:    hex("#7fffd4"),
			component.VisualShooter: hex("#ffd166"),
			component.VisualMinion:  hex("#c77dff"),
			component.VisualBoss:    hex("#ff3860"),
		},
		empty: hex("#5a1e1e"),
	}
}

// Enemy blends the archetype colour toward the empty tint as hp drops
func (p *Palette) Enemy(v component.VisualTag, hpRatio float64) tcell.Color {
	full, ok := p.full[v]
	if !ok {
		full = p.full[component.VisualSlime]
	}
	hpRatio = min(1, max(0, hpRatio))
	return toTcell(p.empty.BlendLab(full, hpRatio))
}

// Gauge colours a player bar: green when full through amber to red when empty
func (p *Palette) Gauge(ratio float64) tcell.Color {
	ratio = min(1, max(0, ratio))
	red, amber, green := hex("#f7768e"), hex("#e0af68"), hex("#9ece6a")
	if ratio < 0.5 {
		return toTcell(red.BlendHcl(amber, ratio*2))
	}
	return toTcell(amber.BlendHcl(green, (ratio-0.5)*2))
}
