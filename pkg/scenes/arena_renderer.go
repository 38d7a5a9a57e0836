package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/session"
	"github.com/decker502/gyruss/pkg/utils"
)

const (
	// FacingLineLength 朝向指示线长度（像素）
	FacingLineLength = 14.0

	shipDrawRadius       = 9.0
	projectileDrawRadius = 3.0
	statusLineHeight     = 16.0
)

var (
	backgroundColor = color.RGBA{R: 6, G: 6, B: 20, A: 255}
	orbitGuideColor = color.RGBA{R: 40, G: 40, B: 90, A: 255}
	ringColor       = color.RGBA{R: 30, G: 60, B: 30, A: 255}
	shipColor       = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	projectileColor = color.RGBA{R: 255, G: 255, B: 160, A: 255}
	facingColor     = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	statusColor     = color.RGBA{R: 160, G: 160, B: 180, A: 255}

	// tierColors 敌人按计分档位着色
	tierColors = map[components.ScoreTier]color.RGBA{
		components.ScoreTierHigh: {R: 255, G: 80, B: 80, A: 255},
		components.ScoreTierMid:  {R: 255, G: 170, B: 60, A: 255},
		components.ScoreTierLow:  {R: 120, G: 120, B: 255, A: 255},
	}
)

// ArenaRenderer 把会话快照绘制到屏幕
// 只读快照，不访问 ECS
type ArenaRenderer struct {
	cfg     *config.GameConfig
	originX float64
	originY float64
	face    *text.GoXFace
}

// NewArenaRenderer 创建渲染器
func NewArenaRenderer(cfg *config.GameConfig) *ArenaRenderer {
	originX, originY := cfg.ScreenCenter()
	return &ArenaRenderer{
		cfg:     cfg,
		originX: originX,
		originY: originY,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// ToScreen 世界坐标转换为屏幕坐标
func (r *ArenaRenderer) ToScreen(x, y float64) (float32, float32) {
	sx, sy := utils.WorldToScreen(x, y, r.originX, r.originY, r.cfg.World.PixelsPerUnit)
	return float32(sx), float32(sy)
}

// scale 世界长度转换为像素
func (r *ArenaRenderer) scale(length float64) float32 {
	return float32(length * r.cfg.World.PixelsPerUnit)
}

// Draw 绘制轨道、计分环与全部实体
func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap *session.Snapshot) {
	screen.Fill(backgroundColor)

	cx, cy := r.ToScreen(r.cfg.World.CenterX, r.cfg.World.CenterY)
	vector.StrokeCircle(screen, cx, cy, r.scale(r.cfg.Ship.Radius), 1, orbitGuideColor, true)
	vector.StrokeCircle(screen, cx, cy, r.scale(r.cfg.Score.NearRadius), 1, ringColor, true)
	vector.StrokeCircle(screen, cx, cy, r.scale(r.cfg.Score.FarRadius), 1, ringColor, true)

	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		size := math.Max(r.cfg.Enemy.CollisionSize/2, 0.05)
		r.drawActor(screen, e.ActorView, r.scale(size), tierColors[e.Tier])
	}
	for _, p := range snap.Projectiles {
		x, y := r.ToScreen(p.X, p.Y)
		vector.FillCircle(screen, x, y, projectileDrawRadius, projectileColor, true)
	}
	r.drawActor(screen, snap.Ship, shipDrawRadius, shipColor)
}

// drawActor 绘制实体本体及朝向线
func (r *ArenaRenderer) drawActor(screen *ebiten.Image, actor session.ActorView, radius float32, clr color.Color) {
	x, y := r.ToScreen(actor.X, actor.Y)
	vector.FillCircle(screen, x, y, radius, clr, true)

	// 屏幕 Y 轴向下，世界朝向角需取反
	rad := utils.ScreenAngle(actor.Facing)
	length := float64(radius) + FacingLineLength
	ex := x + float32(math.Cos(rad)*length)
	ey := y + float32(math.Sin(rad)*length)
	vector.StrokeLine(screen, x, y, ex, ey, 1.5, facingColor, true)
}

// StatusLines 返回状态栏文本
func StatusLines(snap *session.Snapshot, paused bool) []string {
	lines := []string{
		fmt.Sprintf("WAVES LEFT %d  %s", snap.WavesRemaining, snap.WaveState),
		fmt.Sprintf("ENEMIES %d  SHOTS %d", len(snap.Enemies), len(snap.Projectiles)),
	}
	switch {
	case paused:
		lines = append(lines, "PAUSED  (P to resume)")
	case snap.Cleared:
		lines = append(lines, fmt.Sprintf("CLEARED in %.1fs  (R to restart)", snap.Elapsed))
	}
	return lines
}

// DrawStatus 在右上角绘制波次与状态信息
func (r *ArenaRenderer) DrawStatus(screen *ebiten.Image, snap *session.Snapshot, paused bool) {
	width := float64(r.cfg.Window.Width)
	for i, line := range StatusLines(snap, paused) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(width-text.Advance(line, r.face)-10, 10+float64(i)*statusLineHeight)
		op.ColorScale.ScaleWithColor(statusColor)
		text.Draw(screen, line, r.face, op)
	}
}
