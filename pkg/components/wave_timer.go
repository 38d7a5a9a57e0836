package components

// WaveState 波次调度器状态
type WaveState int

const (
	// WaveStateWaiting 等待首波（初始延迟）
	WaveStateWaiting WaveState = iota
	// WaveStateCooldown 已发出至少一波，等待下一波
	WaveStateCooldown
	// WaveStateExhausted 波次预算耗尽，不再开始新的波次（终态）
	WaveStateExhausted
)

// String 返回状态名称
func (s WaveState) String() string {
	switch s {
	case WaveStateWaiting:
		return "waiting"
	case WaveStateCooldown:
		return "cooldown"
	case WaveStateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// WaveTimerComponent 波次计时器组件
// 存储波次刷新计时状态，供 WaveTimingSystem 使用
// 注意：遵循 ECS 原则，组件仅存储数据，不包含方法
type WaveTimerComponent struct {
	// State 当前状态
	State WaveState

	// Countdown 距离下一波的倒计时（秒）
	// 每帧递减，<= 0 时触发下一波
	Countdown float64

	// WavesRemaining 剩余波数（>= 0）
	WavesRemaining int

	// WavesStarted 已开始的波数
	WavesStarted int

	// EnemiesPerWave 每波敌人数
	EnemiesPerWave int

	// WaveInterval 波间冷却（秒）
	WaveInterval float64

	// SpawnInterval 波内生成间隔（秒）
	SpawnInterval float64

	// IsPaused 是否暂停
	// 暂停时倒计时与生成序列都不推进
	IsPaused bool
}
