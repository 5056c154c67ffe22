package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/config"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/parameter"
)

func testCamera() Camera {
	c := Camera{WorldW: 1000, WorldH: 1000, CenterX: 500, CenterY: 500}
	c.Fit(800, 0, parameter.HUDRows, 80, 22)
	return c
}

func TestCamera_CentresOnPlayer(t *testing.T) {
	c := testCamera()
	assert.Equal(t, 10.0, c.ScaleX)
	assert.Equal(t, 20.0, c.ScaleY)

	col, row, ok := c.WorldToScreen(500, 500)
	assert.True(t, ok)
	assert.Equal(t, 40, col)
	assert.Equal(t, 13, row)

	col, row, ok = c.WorldToScreen(600, 540)
	assert.True(t, ok)
	assert.Equal(t, 50, col)
	assert.Equal(t, 15, row)

	_, _, ok = c.WorldToScreen(1000, 500)
	assert.False(t, ok)
}

func TestCamera_WrapsAcrossSeam(t *testing.T) {
	c := testCamera()
	c.CenterX, c.CenterY = 990, 10

	col, row, ok := c.WorldToScreen(10, 990)
	require.True(t, ok)
	assert.Equal(t, 42, col)
	assert.Equal(t, 12, row)

	x, y := c.ScreenToWorld(col, row)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 990, y, 1e-9)
}

func TestPalette_Gradients(t *testing.T) {
	p := DefaultPalette()
	fr, fg, _ := p.Gauge(1).RGB()
	er, eg, _ := p.Gauge(0).RGB()
	assert.Greater(t, fg, eg)
	assert.Greater(t, er, fr)

	assert.NotEqual(t, p.Enemy(component.VisualSlime, 1), p.Enemy(component.VisualSlime, 0.1))
	assert.Equal(t, p.Enemy(component.VisualSlime, 1), p.Enemy(component.VisualSlime, 3), "ratio is clamped")
}

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.World.Width, cfg.World.Height = 1000, 1000
	cfg.World.ViewportWidth = 800
	return NewRenderer(screen, cfg), screen
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func screenText(screen tcell.Screen) string {
	_, h := screen.Size()
	lines := make([]string, h)
	for y := range lines {
		lines[y] = row(screen, y)
	}
	return strings.Join(lines, "\n")
}

func baseSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		PlayerX: 500, PlayerY: 500, PlayerSize: 30,
		Entities: []engine.EntityView{
			{Category: engine.CategoryEnemy, X: 600, Y: 500, Radius: 5, HPRatio: 1, Visual: component.VisualSlime},
			{Category: engine.CategoryOrb, X: 500, Y: 600, Radius: 4},
			{Category: engine.CategoryEnemy, X: 300, Y: 500, Radius: 5, HPRatio: 1, Boss: true, Visual: component.VisualBoss},
		},
		HUD: engine.HUD{
			Level: 3, HP: 50, MaxHP: 100, Exp: 5, ExpToNext: 10,
			Weapons: []engine.WeaponView{{Name: "dagger", Level: 2, Stats: []engine.StatView{{Name: "damage", Value: 12}}}},
			Phase:   "Spawning",
		},
	}
}

func TestRenderer_DrawsWorldAndHUD(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.Draw(baseSnapshot())

	ch, _, _, _ := screen.GetContent(40, 13)
	assert.Equal(t, parameter.GlyphPlayer, ch)
	ch, _, _, _ = screen.GetContent(50, 13)
	assert.Equal(t, parameter.GlyphSlime, ch)
	ch, _, _, _ = screen.GetContent(40, 18)
	assert.Equal(t, parameter.GlyphOrb, ch)
	ch, _, _, _ = screen.GetContent(20, 13)
	assert.Equal(t, parameter.GlyphBoss, ch)

	assert.True(t, strings.HasPrefix(row(screen, 0), "LV 3 HP ["))
	assert.Contains(t, row(screen, 0), "50/100")
	assert.Contains(t, row(screen, 1), "dagger L2 damage 12")
}

func TestRenderer_ProjectsClicksThroughLastCamera(t *testing.T) {
	r, _ := newTestRenderer(t)
	r.Draw(baseSnapshot())
	x, y := r.ScreenToWorld(50, 13)
	assert.InDelta(t, 600, x, 1e-9)
	assert.InDelta(t, 500, y, 1e-9)
}

func TestRenderer_SelectionMenu(t *testing.T) {
	r, screen := newTestRenderer(t)
	s := baseSnapshot()
	s.HUD.Selecting = component.SelectBossReward
	s.HUD.Options = []component.UpgradeOption{{Label: "storm +1 projectile"}, {Label: "storm damage +10"}}
	r.Draw(s)

	text := screenText(screen)
	assert.Contains(t, text, "BOSS REWARD")
	assert.Contains(t, text, "1) storm +1 projectile")
	assert.Contains(t, text, "2) storm damage +10")
}

func TestRenderer_GameOverListsScores(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.SetScores([]engine.RunSummary{{Name: "ada", Difficulty: 2.5, SurvivalSeconds: 300}})
	s := baseSnapshot()
	s.Session = engine.SessionOver
	r.Draw(s)

	text := screenText(screen)
	assert.Contains(t, text, "GAME OVER")
	assert.Contains(t, text, "1. ada")
	assert.Contains(t, text, "r restart")
}

func TestRenderer_NoticeExpires(t *testing.T) {
	r, screen := newTestRenderer(t)
	now := time.Unix(0, 0)
	r.now = func() time.Time { return now }

	r.SetNotice("rank #3")
	r.Draw(baseSnapshot())
	assert.Contains(t, row(screen, 1), "rank #3")

	now = now.Add(parameter.NoticeDuration)
	r.Draw(baseSnapshot())
	assert.NotContains(t, row(screen, 1), "rank #3")
}

func TestRenderer_MetricOverlay(t *testing.T) {
	r, screen := newTestRenderer(t)
	s := baseSnapshot()
	s.HUD.Metrics = []string{"combat.hits=4", "pool.enemies=2"}

	r.Draw(s)
	assert.NotContains(t, screenText(screen), "combat.hits")

	require.True(t, r.ToggleDebug())
	r.Draw(s)
	assert.True(t, strings.HasPrefix(row(screen, 22), "combat.hits=4"))
	assert.True(t, strings.HasPrefix(row(screen, 23), "pool.enemies=2"))
}
