package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slime-survivor/component"
	"github.com/lixenwraith/slime-survivor/config"
	"github.com/lixenwraith/slime-survivor/engine"
	"github.com/lixenwraith/slime-survivor/parameter"
)

// Renderer draws snapshots onto a tcell screen
type Renderer struct {
	screen  tcell.Screen
	palette *Palette
	camera  Camera

	viewportW float64

	notice      string
	noticeUntil time.Time
	scores      []engine.RunSummary
	muted       bool
	debug       bool

	now func() time.Time
}

func NewRenderer(screen tcell.Screen, cfg *config.Config) *Renderer {
	return &Renderer{
		screen:    screen,
		palette:   DefaultPalette(),
		camera:    Camera{WorldW: cfg.World.Width, WorldH: cfg.World.Height},
		viewportW: cfg.World.ViewportWidth,
		now:       time.Now,
	}
}

// ScreenToWorld maps a clicked cell through the last drawn camera
func (r *Renderer) ScreenToWorld(col, row int) (float64, float64) {
	return r.camera.ScreenToWorld(col, row)
}

// SetNotice shows a passive message on the HUD for a while
func (r *Renderer) SetNotice(msg string) {
	r.notice = msg
	r.noticeUntil = r.now().Add(parameter.NoticeDuration)
}

// SetScores sets the rows listed on the game over screen
func (r *Renderer) SetScores(scores []engine.RunSummary) {
	r.scores = scores
}

func (r *Renderer) SetMuted(muted bool) { r.muted = muted }

// ToggleDebug switches the metric overlay and reports the new state
func (r *Renderer) ToggleDebug() bool {
	r.debug = !r.debug
	return r.debug
}

// Draw renders one frame
func (r *Renderer) Draw(s *engine.Snapshot) {
	base := tcell.StyleDefault.Background(r.palette.Background).Foreground(r.palette.Text)
	r.screen.Fill(' ', base)

	w, h := r.screen.Size()
	r.camera.Fit(r.viewportW, 0, parameter.HUDRows, w, h-parameter.HUDRows)
	r.camera.CenterX, r.camera.CenterY = s.PlayerX, s.PlayerY

	for i := range s.Entities {
		r.drawEntity(&s.Entities[i], base)
	}

	playerColor := r.palette.Player
	if s.Invincible {
		playerColor = r.palette.Hurt
	}
	if col, row, ok := r.camera.WorldToScreen(s.PlayerX, s.PlayerY); ok {
		r.screen.SetContent(col, row, parameter.GlyphPlayer, nil, base.Foreground(playerColor).Bold(true))
	}

	r.drawHUD(s, base, w)
	if r.debug {
		r.drawMetrics(s.HUD.Metrics, base, h)
	}
	switch {
	case s.Session == engine.SessionOver:
		r.drawGameOver(s, base, w, h)
	case s.HUD.Selecting != component.SelectNone:
		r.drawSelection(s, base, w, h)
	}
	r.screen.Show()
}

func (r *Renderer) drawEntity(e *engine.EntityView, base tcell.Style) {
	p := r.palette
	switch e.Category {
	case engine.CategoryEnemy:
		r.drawBlob(e.X, e.Y, e.Radius, enemyGlyph(e), base.Foreground(p.Enemy(e.Visual, e.HPRatio)))
	case engine.CategoryDagger:
		r.plot(e.X, e.Y, parameter.GlyphDagger, base.Foreground(p.Dagger))
	case engine.CategoryStorm:
		r.drawBlob(e.X, e.Y, e.Radius, parameter.GlyphStorm, base.Foreground(p.Storm).Bold(true))
	case engine.CategoryBullet:
		c := p.Bullet
		if e.Boss {
			c = p.BossBullet
		}
		r.plot(e.X, e.Y, parameter.GlyphBullet, base.Foreground(c))
	case engine.CategoryOrb:
		r.plot(e.X, e.Y, parameter.GlyphOrb, base.Foreground(p.Orb))
	case engine.CategoryBat:
		r.plot(e.X, e.Y, parameter.GlyphBat, base.Foreground(p.Bat))
	case engine.CategoryFlail:
		r.plot(e.X, e.Y, parameter.GlyphFlail, base.Foreground(p.Flail).Bold(true))
	case engine.CategorySwing:
		r.drawBlade(e.X, e.Y, e.Angle, e.Radius, base.Foreground(p.Blade))
	}
}

func enemyGlyph(e *engine.EntityView) rune {
	if e.Boss {
		return parameter.GlyphBoss
	}
	switch e.Visual {
	case component.VisualMint:
		return parameter.GlyphMint
	case component.VisualShooter:
		return parameter.GlyphShooter
	case component.VisualMinion:
		return parameter.GlyphMinion
	}
	return parameter.GlyphSlime
}

func (r *Renderer) plot(x, y float64, ch rune, st tcell.Style) {
	if col, row, ok := r.camera.WorldToScreen(x, y); ok {
		r.screen.SetContent(col, row, ch, nil, st)
	}
}

// drawBlob fills the cells of an ellipse covering radius; small bodies collapse to one glyph
func (r *Renderer) drawBlob(x, y, radius float64, ch rune, st tcell.Style) {
	col, row, _ := r.camera.WorldToScreen(x, y)
	rx := int(radius / r.camera.ScaleX)
	ry := int(radius / r.camera.ScaleY)
	c := &r.camera
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if rx > 0 && ry > 0 && sq(float64(dx)/float64(rx))+sq(float64(dy)/float64(ry)) > 1 {
				continue
			}
			cc, rr := col+dx, row+dy
			if cc >= c.Left && cc < c.Left+c.Cols && rr >= c.Top && rr < c.Top+c.Rows {
				r.screen.SetContent(cc, rr, ch, nil, st)
			}
		}
	}
}

// drawBlade samples the current blade line from the player out to reach
func (r *Renderer) drawBlade(x, y, angle, reach float64, st tcell.Style) {
	step := r.camera.ScaleX / 2
	cx, cy := math.Cos(angle), math.Sin(angle)
	for d := step; d <= reach; d += step {
		r.plot(x+cx*d, y+cy*d, parameter.GlyphBlade, st)
	}
}

func sq(v float64) float64 { return v * v }

func (r *Renderer) text(col, row int, s string, st tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if col >= w {
			break
		}
		r.screen.SetContent(col, row, ch, nil, st)
		col++
	}
	return col
}

func (r *Renderer) bar(col, row int, ratio float64, color tcell.Color, base tcell.Style) int {
	ratio = min(1, max(0, ratio))
	filled := int(math.Round(ratio * parameter.BarWidth))
	col = r.text(col, row, "[", base)
	for i := 0; i < parameter.BarWidth; i++ {
		if i < filled {
			r.screen.SetContent(col, row, '=', nil, base.Foreground(color))
		} else {
			r.screen.SetContent(col, row, ' ', nil, base)
		}
		col++
	}
	return r.text(col, row, "]", base)
}

// drawMetrics lists telemetry counters bottom up in the left column
func (r *Renderer) drawMetrics(lines []string, base tcell.Style, height int) {
	dim := base.Foreground(r.palette.Dim)
	row := height - 1
	for i := len(lines) - 1; i >= 0 && row >= parameter.HUDRows; i-- {
		r.text(0, row, lines[i], dim)
		row--
	}
}

func (r *Renderer) drawHUD(s *engine.Snapshot, base tcell.Style, width int) {
	hud := &s.HUD
	p := r.palette
	dim := base.Foreground(p.Dim)

	col := r.text(0, 0, fmt.Sprintf("LV %d ", hud.Level), base.Bold(true))
	col = r.text(col, 0, "HP ", dim)
	hpRatio := 0.0
	if hud.MaxHP > 0 {
		hpRatio = hud.HP / hud.MaxHP
	}
	col = r.bar(col, 0, hpRatio, p.Gauge(hpRatio), base)
	col = r.text(col, 0, fmt.Sprintf(" %.0f/%.0f  ", hud.HP, hud.MaxHP), base)
	col = r.text(col, 0, "EXP ", dim)
	expRatio := 0.0
	if hud.ExpToNext > 0 {
		expRatio = hud.Exp / hud.ExpToNext
	}
	col = r.bar(col, 0, expRatio, p.Exp, base)
	secs := int(hud.SurvivalSeconds)
	r.text(col, 0, fmt.Sprintf("  kills %d  bosses %d  diff %.2f  %02d:%02d  %s",
		hud.Kills, hud.BossKills, hud.Difficulty, secs/60, secs%60, hud.Phase), base)

	col = 0
	for i, wv := range hud.Weapons {
		if i > 0 {
			col = r.text(col, 1, " | ", dim)
		}
		col = r.text(col, 1, fmt.Sprintf("%s L%d", wv.Name, wv.Level), base)
		for _, st := range wv.Stats {
			col = r.text(col, 1, fmt.Sprintf(" %s %s", st.Name, formatStat(st.Value)), dim)
		}
	}
	if hud.HasSkill {
		label := fmt.Sprintf(" | storm L%d %3.0f%%", hud.SkillLevel, hud.SkillCharge*100)
		st := dim
		if hud.SkillCharge >= 1 {
			st = base.Foreground(p.Storm).Bold(true)
		}
		col = r.text(col, 1, label, st)
	}
	if r.muted {
		col = r.text(col, 1, "  [muted]", dim)
	}
	if r.notice != "" && r.now().Before(r.noticeUntil) {
		msg := "  " + r.notice
		r.text(max(col, width-len([]rune(msg))), 1, msg, base.Foreground(p.Exp))
	}
}

func formatStat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// box draws a filled, framed rectangle and returns the first inner row
func (r *Renderer) box(title string, width, height, screenW, screenH int, base tcell.Style) (left, top int) {
	st := base.Background(r.palette.MenuBg)
	left = max(0, (screenW-width)/2)
	top = max(0, (screenH-height)/2)
	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			ch := ' '
			switch {
			case (y == top || y == top+height-1) && (x == left || x == left+width-1):
				ch = '+'
			case y == top || y == top+height-1:
				ch = '-'
			case x == left || x == left+width-1:
				ch = '|'
			}
			r.screen.SetContent(x, y, ch, nil, st)
		}
	}
	r.text(left+2, top, " "+title+" ", st.Bold(true))
	return left + 2, top + 1
}

func (r *Renderer) drawSelection(s *engine.Snapshot, base tcell.Style, w, h int) {
	title := "LEVEL UP"
	if s.HUD.Selecting == component.SelectBossReward {
		title = "BOSS REWARD"
	}
	opts := s.HUD.Options
	left, row := r.box(title, parameter.MenuWidth, len(opts)+4, w, h, base)
	st := base.Background(r.palette.MenuBg)
	for i, o := range opts {
		r.text(left, row+1+i, fmt.Sprintf("%d) %s", i+1, o.Label), st)
	}
	r.text(left, row+len(opts)+1, "press a number to choose", st.Foreground(r.palette.Dim))
}

func (r *Renderer) drawGameOver(s *engine.Snapshot, base tcell.Style, w, h int) {
	hud := &s.HUD
	lines := []string{
		fmt.Sprintf("level %d  kills %d  bosses %d", hud.Level, hud.Kills, hud.BossKills),
		fmt.Sprintf("difficulty %.2f  survived %.0fs", hud.Difficulty, hud.SurvivalSeconds),
		"",
	}
	if len(r.scores) > 0 {
		lines = append(lines, "best runs")
		for i, sc := range r.scores {
			lines = append(lines, fmt.Sprintf("%d. %-12s diff %.2f  %.0fs", i+1, sc.Name, sc.Difficulty, sc.SurvivalSeconds))
		}
		lines = append(lines, "")
	}
	lines = append(lines, "r restart   q quit")

	left, row := r.box("GAME OVER", parameter.MenuWidth, len(lines)+3, w, h, base)
	st := base.Background(r.palette.MenuBg)
	for i, l := range lines {
		r.text(left, row+1+i, l, st)
	}
}
