package game

// GameState 存储一个游戏会话的全局状态
//
// 与记分账本一样，每个会话创建一个实例并显式传递，不使用全局单例，
// 以保证生命周期清晰、测试之间互不干扰。
type GameState struct {
	// ElapsedTime 会话已运行时间（秒，逻辑帧累计）
	ElapsedTime float64

	// PhysicsSteps 已执行的固定物理步数
	PhysicsSteps int

	// EnemiesSpawned 已生成的敌人数
	EnemiesSpawned int

	// EnemiesDestroyed 被击毁的敌人数
	EnemiesDestroyed int

	// ShotsFired 已发射的子弹数
	ShotsFired int

	// ProjectilesExpired 未命中、飞抵中心后消失的子弹数
	ProjectilesExpired int

	// Cleared 所有波次已发完且场上没有存活敌人
	Cleared bool
}

// NewGameState 创建新的会话状态
func NewGameState() *GameState {
	return &GameState{}
}

// Accuracy 返回命中率（0~1），未开火时返回 0
func (gs *GameState) Accuracy() float64 {
	if gs.ShotsFired == 0 {
		return 0
	}
	return float64(gs.EnemiesDestroyed) / float64(gs.ShotsFired)
}
