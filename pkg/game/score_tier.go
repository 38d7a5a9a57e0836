package game

import (
	"github.com/decker502/gyruss/pkg/components"
	"github.com/decker502/gyruss/pkg/config"
)

// ScoreTierFor 根据当前轨道半径计算计分档位与分值
//
// 边界归属（阈值处取闭区间的较近一档）：
//
//	r <= near        → 高分档
//	near < r <= far  → 中分档
//	r > far          → 低分档
func ScoreTierFor(radius float64, score config.ScoreConfig) (components.ScoreTier, int) {
	switch {
	case radius <= score.NearRadius:
		return components.ScoreTierHigh, score.HighPoints
	case radius <= score.FarRadius:
		return components.ScoreTierMid, score.MidPoints
	default:
		return components.ScoreTierLow, score.LowPoints
	}
}
