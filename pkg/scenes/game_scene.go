package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/game"
	"github.com/decker502/gyruss/pkg/session"
	"github.com/decker502/gyruss/pkg/systems"
)

// GameScene 主游戏场景
// 持有一局 Session，负责把帧时间交给会话并渲染会话快照
type GameScene struct {
	session    *session.Session
	scoreboard *Scoreboard
	renderer   *ArenaRenderer

	// pauseKey 切换暂停的按键
	pauseKey ebiten.Key
}

// NewGameScene 创建主游戏场景并开始新的一局
//
// 参数：
//   - cfg: 游戏配置
//   - input: 输入服务（通常为 KeyboardInput）
//   - ledger: 记分账本（跨局复用，每局开始时由会话清零）
func NewGameScene(cfg *config.GameConfig, input systems.InputSource, ledger *game.ScoreLedger) (*GameScene, error) {
	sess, err := session.New(cfg, input, ledger)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	log.Printf("[GameScene] Created")
	return &GameScene{
		session:    sess,
		scoreboard: NewScoreboard(ledger),
		renderer:   NewArenaRenderer(cfg),
		pauseKey:   ebiten.KeyP,
	}, nil
}

// Session 返回当前会话
func (s *GameScene) Session() *session.Session {
	return s.session
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(s.pauseKey) {
		s.togglePause()
	}

	s.session.Frame(deltaTime)
	s.scoreboard.Update(deltaTime)
}

func (s *GameScene) togglePause() {
	if s.session.IsPaused() {
		s.session.Resume()
		log.Printf("[GameScene] Resumed")
		return
	}
	s.session.Pause()
	log.Printf("[GameScene] Paused")
}

// Draw 渲染当前快照
func (s *GameScene) Draw(screen *ebiten.Image) {
	snap := s.session.Snapshot()
	s.renderer.Draw(screen, &snap)
	s.scoreboard.Draw(screen)
	s.renderer.DrawStatus(screen, &snap, s.session.IsPaused())
}

// Close 结束本局并取消计分板订阅
func (s *GameScene) Close() {
	s.scoreboard.Close()
	s.session.Close()
}
