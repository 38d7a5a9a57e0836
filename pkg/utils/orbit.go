package utils

import "math"

// 圆周运动工具函数
//
// 所有函数都是纯计算，不持有状态；相位单位为弧度，角度单位为度。
// 位置公式：
//
//	x = cx + r·cos(phase)
//	y = cy + r·sin(phase)

// AdvancePhase 按方向积分相位
//
// direction 只取符号：>0 逆时针，<0 顺时针，0 不动。
// 相位是无界的，换向只改变增量符号，不会重置，保证位置连续。
func AdvancePhase(phase, angularSpeed float64, direction int, dt float64) float64 {
	return phase + float64(sign(direction))*angularSpeed*dt
}

// OrbitPosition 计算给定相位在圆周上的位置
// radius 为 0 时退化为中心点
func OrbitPosition(cx, cy, radius, phase float64) (float64, float64) {
	return cx + radius*math.Cos(phase), cy + radius*math.Sin(phase)
}

// OrbitVelocity 计算圆周运动的瞬时速度（切向）
func OrbitVelocity(radius, angularSpeed float64, direction int, phase float64) (float64, float64) {
	w := float64(sign(direction)) * angularSpeed
	return -radius * w * math.Sin(phase), radius * w * math.Cos(phase)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
