package systems

import (
	"fmt"
	"log"

	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
	"github.com/decker502/gyruss/pkg/ecs"
	"github.com/decker502/gyruss/pkg/utils"
)

// EnemySpawner 敌人生成服务
// 波次调度器只发出生成请求，不持有生成出的敌人
type EnemySpawner interface {
	SpawnEnemy(waveIndex, index int) (ecs.EntityID, error)
}

// EnemySpawnerFunc 函数适配器
type EnemySpawnerFunc func(waveIndex, index int) (ecs.EntityID, error)

// SpawnEnemy 实现 EnemySpawner
func (f EnemySpawnerFunc) SpawnEnemy(waveIndex, index int) (ecs.EntityID, error) {
	return f(waveIndex, index)
}

// WaveTimingSystem 波次计时系统
//
// 职责：
//   - 管理波次倒计时（首波延迟、波间冷却）
//   - 每开始一波，创建一个生成序列实体，按子间隔逐个发出生成请求
//   - 支持暂停/恢复与取消
//
// 状态机：Waiting → Cooldown → ... → Exhausted（终态）
// 生成序列独立于调度器自身的倒计时推进：开始一波不会阻塞下一波的计时，
// 调度器进入 Exhausted 后，最后一波的序列仍会继续发完。
type WaveTimingSystem struct {
	entityManager *ecs.EntityManager
	spawner       EnemySpawner

	// timerEntityID 计时器组件所在的实体ID
	timerEntityID ecs.EntityID

	requested int
	spawned   int

	// verbose 是否输出详细日志
	verbose bool
}

// NewWaveTimingSystem 创建波次计时系统
//
// 参数：
//   - em: 实体管理器
//   - spawner: 敌人生成服务
//   - waves: 波次配置；Count 为 0 时直接进入 Exhausted
//
// 返回：
//   - error: 缺少依赖时返回 ErrMissingCollaborator
func NewWaveTimingSystem(em *ecs.EntityManager, spawner EnemySpawner, waves config.WavesConfig) (*WaveTimingSystem, error) {
	if em == nil {
		return nil, fmt.Errorf("%w: entity manager", ErrMissingCollaborator)
	}
	if spawner == nil {
		return nil, fmt.Errorf("%w: enemy spawner", ErrMissingCollaborator)
	}

	system := &WaveTimingSystem{
		entityManager: em,
		spawner:       spawner,
	}
	system.createTimerEntity(waves)
	return system, nil
}

// createTimerEntity 创建计时器组件实体
func (s *WaveTimingSystem) createTimerEntity(waves config.WavesConfig) {
	entityID := s.entityManager.CreateEntity()
	s.timerEntityID = entityID

	timer := &components.WaveTimerComponent{
		State:          components.WaveStateWaiting,
		Countdown:      waves.InitialDelay,
		WavesRemaining: waves.Count,
		EnemiesPerWave: waves.EnemiesPerWave,
		WaveInterval:   waves.Interval,
		SpawnInterval:  waves.SpawnInterval,
	}
	if !utils.Invariant(timer.WavesRemaining >= 0, "waves remaining %d < 0", timer.WavesRemaining) {
		timer.WavesRemaining = 0
	}
	if timer.WavesRemaining == 0 {
		timer.State = components.WaveStateExhausted
	}

	ecs.AddComponent(s.entityManager, entityID, timer)

	log.Printf("[WaveTimingSystem] Created timer entity (ID: %d), waves: %d x %d, first wave in %.2fs",
		entityID, waves.Count, waves.EnemiesPerWave, waves.InitialDelay)
}

// Update 逻辑帧：推进生成序列与波次倒计时
//
// 执行流程：
//  1. 暂停时直接返回
//  2. 推进已有的生成序列（到点的发出生成请求）
//  3. 倒计时 <= 0 且仍有剩余波次则开始新的一波，否则倒计时递减
//
// 新一波的第一个敌人在开始的同一帧立即生成。
func (s *WaveTimingSystem) Update(deltaTime float64) {
	timer := s.getTimerComponent()
	if timer == nil || timer.IsPaused {
		return
	}

	s.advanceSequences(deltaTime)

	if timer.State == components.WaveStateExhausted {
		return
	}

	if timer.WavesRemaining > 0 {
		if timer.Countdown <= 0 {
			s.triggerNextWave(timer)
		} else {
			timer.Countdown -= deltaTime
			if s.verbose {
				log.Printf("[WaveTimingSystem] Countdown: %.3fs", timer.Countdown)
			}
		}
	}

	if !utils.Invariant(timer.WavesRemaining >= 0, "waves remaining %d < 0", timer.WavesRemaining) {
		timer.WavesRemaining = 0
	}
	if timer.WavesRemaining == 0 {
		timer.State = components.WaveStateExhausted
		log.Printf("[WaveTimingSystem] All %d waves started, scheduler exhausted", timer.WavesStarted)
	}
}

// triggerNextWave 开始下一波
func (s *WaveTimingSystem) triggerNextWave(timer *components.WaveTimerComponent) {
	waveIndex := timer.WavesStarted
	timer.WavesStarted++
	timer.WavesRemaining--
	timer.Countdown = timer.WaveInterval
	timer.State = components.WaveStateCooldown

	log.Printf("[WaveTimingSystem] Wave %d triggered (%d enemies), %d waves remaining",
		waveIndex+1, timer.EnemiesPerWave, timer.WavesRemaining)

	if timer.EnemiesPerWave <= 0 {
		return
	}

	seqID := s.entityManager.CreateEntity()
	seq := &components.SpawnSequenceComponent{
		WaveIndex: waveIndex,
		Remaining: timer.EnemiesPerWave,
		Interval:  timer.SpawnInterval,
		Timer:     0,
	}
	ecs.AddComponent(s.entityManager, seqID, seq)

	// 第一个敌人立即生成
	s.emitDue(seqID, seq)
}

// advanceSequences 推进所有生成序列
func (s *WaveTimingSystem) advanceSequences(deltaTime float64) {
	ids := ecs.GetEntitiesWith1[*components.SpawnSequenceComponent](s.entityManager)
	for _, id := range ids {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		seq, _ := ecs.GetComponent[*components.SpawnSequenceComponent](s.entityManager, id)
		seq.Timer -= deltaTime
		s.emitDue(id, seq)
	}
}

// emitDue 发出所有到期的生成请求；序列发完后销毁序列实体
// 一帧跨过多个子间隔时会连续补发
func (s *WaveTimingSystem) emitDue(id ecs.EntityID, seq *components.SpawnSequenceComponent) {
	for seq.Remaining > 0 && seq.Timer <= 0 {
		index := seq.Emitted
		seq.Remaining--
		seq.Emitted++
		seq.Timer += seq.Interval
		s.requested++

		enemyID, err := s.spawner.SpawnEnemy(seq.WaveIndex, index)
		if err != nil {
			log.Printf("[WaveTimingSystem] Wave %d spawn %d failed: %v", seq.WaveIndex+1, index+1, err)
			continue
		}
		s.spawned++
		if s.verbose {
			log.Printf("[WaveTimingSystem] Wave %d spawned enemy %d (%d/%d)", seq.WaveIndex+1, enemyID, seq.Emitted, seq.Emitted+seq.Remaining)
		}
	}

	if seq.Remaining == 0 {
		s.entityManager.DestroyEntity(id)
	}
}

// Cancel 取消调度：丢弃所有尚未发出的生成请求，不再开始新的波次
// 已生成的敌人不受影响；重复调用是安全的
func (s *WaveTimingSystem) Cancel() {
	dropped := 0
	for _, id := range ecs.GetEntitiesWith1[*components.SpawnSequenceComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		seq, _ := ecs.GetComponent[*components.SpawnSequenceComponent](s.entityManager, id)
		dropped += seq.Remaining
		seq.Remaining = 0
		s.entityManager.DestroyEntity(id)
	}

	if timer := s.getTimerComponent(); timer != nil {
		timer.WavesRemaining = 0
		timer.State = components.WaveStateExhausted
	}

	log.Printf("[WaveTimingSystem] Cancelled, dropped %d pending spawns", dropped)
}

// Pause 暂停计时器（倒计时与生成序列都停止推进）
func (s *WaveTimingSystem) Pause() {
	timer := s.getTimerComponent()
	if timer == nil {
		return
	}

	timer.IsPaused = true
	log.Printf("[WaveTimingSystem] Timer paused at %.2fs", timer.Countdown)
}

// Resume 恢复计时器
func (s *WaveTimingSystem) Resume() {
	timer := s.getTimerComponent()
	if timer == nil {
		return
	}

	timer.IsPaused = false
	log.Printf("[WaveTimingSystem] Timer resumed at %.2fs", timer.Countdown)
}

// State 返回调度器当前状态
func (s *WaveTimingSystem) State() components.WaveState {
	timer := s.getTimerComponent()
	if timer == nil {
		return components.WaveStateExhausted
	}
	return timer.State
}

// WavesRemaining 返回尚未开始的波数
func (s *WaveTimingSystem) WavesRemaining() int {
	timer := s.getTimerComponent()
	if timer == nil {
		return 0
	}
	return timer.WavesRemaining
}

// WavesStarted 返回已开始的波数
func (s *WaveTimingSystem) WavesStarted() int {
	timer := s.getTimerComponent()
	if timer == nil {
		return 0
	}
	return timer.WavesStarted
}

// GetCountdownSeconds 获取距离下一波的倒计时（秒）
func (s *WaveTimingSystem) GetCountdownSeconds() float64 {
	timer := s.getTimerComponent()
	if timer == nil {
		return 0
	}
	return timer.Countdown
}

// PendingSpawns 返回已排队但尚未发出的生成请求数
func (s *WaveTimingSystem) PendingSpawns() int {
	pending := 0
	for _, id := range ecs.GetEntitiesWith1[*components.SpawnSequenceComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestruction(id) {
			continue
		}
		seq, _ := ecs.GetComponent[*components.SpawnSequenceComponent](s.entityManager, id)
		pending += seq.Remaining
	}
	return pending
}

// RequestedTotal 返回累计发出的生成请求数
func (s *WaveTimingSystem) RequestedTotal() int {
	return s.requested
}

// SpawnedTotal 返回累计成功生成的敌人数
func (s *WaveTimingSystem) SpawnedTotal() int {
	return s.spawned
}

// IsDone 调度器已耗尽且没有待发出的生成请求
func (s *WaveTimingSystem) IsDone() bool {
	return s.State() == components.WaveStateExhausted && s.PendingSpawns() == 0
}

// SetVerbose 设置是否输出详细日志
func (s *WaveTimingSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// getTimerComponent 获取计时器组件
func (s *WaveTimingSystem) getTimerComponent() *components.WaveTimerComponent {
	timer, ok := ecs.GetComponent[*components.WaveTimerComponent](s.entityManager, s.timerEntityID)
	if !ok {
		return nil
	}
	return timer
}

// GetTimerEntityID 获取计时器实体ID（用于测试）
func (s *WaveTimingSystem) GetTimerEntityID() ecs.EntityID {
	return s.timerEntityID
}
