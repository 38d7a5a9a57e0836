package components

// SpawnSequenceComponent 单个波次的生成序列
//
// 每一波对应一个序列实体，独立于调度器自身的冷却计时推进；
// 序列实体被删除即视为取消（只停止后续生成，不撤销已生成的敌人）。
type SpawnSequenceComponent struct {
	WaveIndex int     // 所属波次（0-based）
	Remaining int     // 尚未发出的生成请求数
	Emitted   int     // 已发出的生成请求数
	Interval  float64 // 相邻两次生成的间隔（秒）
	Timer     float64 // 距下一次生成的剩余时间（秒），<= 0 立即生成
}
