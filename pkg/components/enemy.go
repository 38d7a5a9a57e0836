package components

// ScoreTier 敌人当前的计分档位
type ScoreTier int

const (
	// ScoreTierHigh 近距离（r <= nearRadius）
	ScoreTierHigh ScoreTier = iota
	// ScoreTierMid 中距离（nearRadius < r <= farRadius）
	ScoreTierMid
	// ScoreTierLow 远距离（r > farRadius）
	ScoreTierLow
)

// String 返回档位名称
func (t ScoreTier) String() string {
	switch t {
	case ScoreTierHigh:
		return "high"
	case ScoreTierMid:
		return "mid"
	case ScoreTierLow:
		return "low"
	default:
		return "unknown"
	}
}

// EnemyComponent 敌人数据
// 半径只增不减，上限 MaxRadius；档位每个物理步长按当前半径重新计算
//
// 当前半径 = min(SpawnRadius + GrowthSteps × GrowthPerStep, MaxRadius)，
// 按步数相乘而不是逐步累加，避免浮点误差在档位边界处累积。
type EnemyComponent struct {
	SpawnRadius   float64   // 生成时的半径
	GrowthSteps   int       // 已经历的物理步数
	MaxRadius     float64   // 最大半径
	GrowthPerStep float64   // 每个物理步长的半径增量
	Tier          ScoreTier // 当前档位
	ScoreValue    int       // 当前档位对应分值（被击中时的得分）
	Defeated      bool      // 已被击中（等待帧末移除），防止重复计分
}
