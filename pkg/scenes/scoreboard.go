package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/gyruss/pkg/game"
)

const (
	// ScoreFlashDuration 得分后分数高亮的持续时间（秒）
	ScoreFlashDuration = 0.3

	scoreboardMarginX = 10
	scoreboardMarginY = 10
)

var (
	scoreColor      = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	scoreFlashColor = color.RGBA{R: 255, G: 220, B: 60, A: 255}
)

// Scoreboard 分数显示
// 订阅 ScoreLedger，只在收到通知时更新显示值，不主动轮询账本
type Scoreboard struct {
	mu          sync.Mutex
	shown       int
	flash       float64
	unsubscribe func()

	face *text.GoXFace
}

// NewScoreboard 创建分数显示并订阅账本
// 初始显示值取账本当前总分
func NewScoreboard(ledger *game.ScoreLedger) *Scoreboard {
	sb := &Scoreboard{
		shown: ledger.Total(),
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
	sb.unsubscribe = ledger.Subscribe(sb.onScore)
	return sb
}

func (sb *Scoreboard) onScore(total int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.shown = total
	sb.flash = ScoreFlashDuration
}

// Update 推进高亮计时
func (sb *Scoreboard) Update(deltaTime float64) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if sb.flash > 0 {
		sb.flash -= deltaTime
		if sb.flash < 0 {
			sb.flash = 0
		}
	}
}

// Shown 返回当前显示的总分
func (sb *Scoreboard) Shown() int {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.shown
}

// Flashing 返回分数是否处于高亮中
func (sb *Scoreboard) Flashing() bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.flash > 0
}

// Text 返回显示文本
func (sb *Scoreboard) Text() string {
	return fmt.Sprintf("Score: %d", sb.Shown())
}

// Close 取消订阅（可重复调用）
func (sb *Scoreboard) Close() {
	if sb.unsubscribe != nil {
		sb.unsubscribe()
		sb.unsubscribe = nil
	}
}

// Draw 在左上角绘制分数
func (sb *Scoreboard) Draw(screen *ebiten.Image) {
	clr := scoreColor
	if sb.Flashing() {
		clr = scoreFlashColor
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(scoreboardMarginX, scoreboardMarginY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, sb.Text(), sb.face, op)
}
