// Package session 组装一局游戏的无头模拟
//
// Session 持有实体管理器、实体工厂与全部系统，对外提供两个互不依赖的驱动入口：
//   - Update(dt)：可变步长的逻辑帧（输入、波次计时、到达子弹清理、状态检查）
//   - FixedUpdate()：固定步长的物理帧（轨道运动、子弹移动、碰撞检测）
//
// Frame(dt) 按宿主循环的习惯把二者组合起来：先执行一次逻辑帧，再用累加器执行若干物理帧，
// 最后统一清理本帧销毁的实体。两个阶段都只读取对方上一帧写入的状态，调换顺序不影响结果的正确性。
package session

import (
	"fmt"
	"log"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/entities"
	"github.com/decker502/gyruss/pkg/game"
	"github.com/decker502/gyruss/pkg/systems"
	"github.com/decker502/gyruss/pkg/utils"
)

// Session 一局游戏
type Session struct {
	cfg     *config.GameConfig
	em      *ecs.EntityManager
	factory *entities.EntityFactory
	ledger  *game.ScoreLedger
	state   *game.GameState

	ship        *systems.ShipSystem
	enemies     *systems.EnemySystem
	projectiles *systems.ProjectileSystem
	collisions  *systems.CollisionSystem
	waves       *systems.WaveTimingSystem

	accumulator float64
	paused      bool
	closed      bool
}

// New 创建一局游戏
//
// 所有依赖在构造阶段校验；记分账本在此清零（每局开始时清零一次）。
//
// 参数：
//   - cfg: 游戏配置（会先经过校验）
//   - input: 输入服务
//   - ledger: 记分账本（由调用方持有，便于计分板订阅）
func New(cfg *config.GameConfig, input systems.InputSource, ledger *game.ScoreLedger) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: game config", systems.ErrMissingCollaborator)
	}
	if input == nil {
		return nil, fmt.Errorf("%w: input source", systems.ErrMissingCollaborator)
	}
	if ledger == nil {
		return nil, fmt.Errorf("%w: score ledger", systems.ErrMissingCollaborator)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		em:     ecs.NewEntityManager(),
		ledger: ledger,
		state:  game.NewGameState(),
	}

	factory, err := entities.NewEntityFactory(s.em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity factory: %w", err)
	}
	s.factory = factory

	cx, cy := cfg.World.CenterX, cfg.World.CenterY
	shipX, shipY := utils.OrbitPosition(cx, cy, cfg.Ship.Radius, cfg.Ship.StartPhase)
	facing, _ := utils.DirectionAngle(cx-shipX, cy-shipY)
	shipID, err := factory.Create(entities.KindShip, shipX, shipY, facing)
	if err != nil {
		return nil, fmt.Errorf("failed to create ship: %w", err)
	}

	if s.ship, err = systems.NewShipSystem(s.em, factory, input, shipID); err != nil {
		return nil, err
	}
	if s.enemies, err = systems.NewEnemySystem(s.em, factory, ledger, cfg.Score); err != nil {
		return nil, err
	}
	if s.projectiles, err = systems.NewProjectileSystem(s.em, factory); err != nil {
		return nil, err
	}
	if s.collisions, err = systems.NewCollisionSystem(s.em, cfg, s.onTrigger); err != nil {
		return nil, err
	}
	if s.waves, err = systems.NewWaveTimingSystem(s.em, systems.EnemySpawnerFunc(s.spawnEnemy), cfg.Waves); err != nil {
		return nil, err
	}

	ledger.Reset()

	log.Printf("[Session] Started: ship %d at phase %.3f, %d waves x %d enemies",
		shipID, cfg.Ship.StartPhase, cfg.Waves.Count, cfg.Waves.EnemiesPerWave)
	return s, nil
}

// spawnEnemy 波次调度器的生成回调：敌人从轨道中心附近出现
func (s *Session) spawnEnemy(waveIndex, index int) (ecs.EntityID, error) {
	id, err := s.factory.Create(entities.KindEnemy, s.cfg.World.CenterX, s.cfg.World.CenterY, 0)
	if err != nil {
		return 0, err
	}
	s.state.EnemiesSpawned++
	return id, nil
}

// onTrigger 碰撞回调
func (s *Session) onTrigger(enemyID, projectileID ecs.EntityID) {
	s.enemies.OnProjectileHit(enemyID, projectileID)
}

// Update 逻辑帧
func (s *Session) Update(deltaTime float64) {
	if s.paused || s.closed {
		return
	}
	s.state.ElapsedTime += deltaTime

	s.ship.Update(deltaTime)
	s.waves.Update(deltaTime)
	s.projectiles.Update(deltaTime)

	s.refreshState()
}

// FixedUpdate 物理帧（固定步长 cfg.Physics.FixedDelta）
func (s *Session) FixedUpdate() {
	if s.paused || s.closed {
		return
	}
	dt := s.cfg.Physics.FixedDelta

	s.ship.FixedUpdate(dt)
	s.enemies.FixedUpdate(dt)
	s.projectiles.FixedUpdate(dt)
	s.collisions.FixedUpdate(dt)

	s.state.PhysicsSteps++
}

// Frame 执行一帧：一次逻辑帧 + 若干物理帧，然后清理已销毁的实体
//
// 单帧最多执行 MaxStepsPerFrame 个物理步长，超出的积压时间被丢弃，
// 防止长时间卡顿后一次性追帧。
//
// 返回本帧执行的物理步数
func (s *Session) Frame(deltaTime float64) int {
	if s.paused || s.closed {
		return 0
	}

	s.Update(deltaTime)

	fixed := s.cfg.Physics.FixedDelta
	s.accumulator += deltaTime
	steps := 0
	for s.accumulator >= fixed && steps < s.cfg.Physics.MaxStepsPerFrame {
		s.FixedUpdate()
		s.accumulator -= fixed
		steps++
	}
	if s.accumulator >= fixed {
		log.Printf("[Session] Dropping %.3fs of physics backlog", s.accumulator)
		s.accumulator = 0
	}

	s.em.RemoveMarkedEntities()
	s.refreshState()
	return steps
}

// refreshState 汇总各系统的统计数据
func (s *Session) refreshState() {
	s.state.ShotsFired = s.ship.ShotsFired()
	s.state.EnemiesDestroyed = s.enemies.DefeatedCount()
	s.state.ProjectilesExpired = s.projectiles.ExpiredCount()

	cleared := s.waves.IsDone() && s.factory.AliveCount(entities.KindEnemy) == 0
	if cleared && !s.state.Cleared {
		log.Printf("[Session] All waves cleared at %.2fs, score %d", s.state.ElapsedTime, s.ledger.Total())
	}
	s.state.Cleared = cleared
}

// Pause 暂停（波次计时同时暂停）
func (s *Session) Pause() {
	if s.paused {
		return
	}
	s.paused = true
	s.waves.Pause()
}

// Resume 恢复
func (s *Session) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.waves.Resume()
}

// IsPaused 是否暂停
func (s *Session) IsPaused() bool {
	return s.paused
}

// Close 结束本局：丢弃尚未发出的敌人生成请求，释放碰撞形状
// 重复调用是安全的
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.waves.Cancel()
	s.collisions.Reset()
	log.Printf("[Session] Closed after %.2fs, score %d", s.state.ElapsedTime, s.ledger.Total())
}

// SetVerbose 设置各系统是否输出详细日志
func (s *Session) SetVerbose(verbose bool) {
	s.ship.SetVerbose(verbose)
	s.enemies.SetVerbose(verbose)
	s.waves.SetVerbose(verbose)
}

// Config 返回本局配置
func (s *Session) Config() *config.GameConfig { return s.cfg }

// Ledger 返回记分账本
func (s *Session) Ledger() *game.ScoreLedger { return s.ledger }

// State 返回本局状态
func (s *Session) State() *game.GameState { return s.state }

// EntityManager 返回实体管理器
func (s *Session) EntityManager() *ecs.EntityManager { return s.em }

// Factory 返回实体工厂
func (s *Session) Factory() *entities.EntityFactory { return s.factory }

// Ship 返回飞船系统
func (s *Session) Ship() *systems.ShipSystem { return s.ship }

// Enemies 返回敌人系统
func (s *Session) Enemies() *systems.EnemySystem { return s.enemies }

// Projectiles 返回子弹系统
func (s *Session) Projectiles() *systems.ProjectileSystem { return s.projectiles }

// Waves 返回波次系统
func (s *Session) Waves() *systems.WaveTimingSystem { return s.waves }

// shipView 读取飞船的渲染数据
func (s *Session) shipView() (ActorView, components.DirectionMode, int) {
	id := s.ship.ShipID()
	view := actorView(s.em, id)
	state := s.ship.State()
	return view, state.Mode, state.Direction
}
