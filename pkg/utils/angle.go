package utils

import "math"

// DirectionAngle 返回向量 (x, y) 相对 +X 轴的角度（度，范围 (-180, 180]）
// 零向量返回 ok=false
func DirectionAngle(x, y float64) (float64, bool) {
	if x == 0 && y == 0 {
		return 0, false
	}
	return math.Atan2(y, x) * 180 / math.Pi, true
}

// SignedAngle 返回从向量 from 转到向量 to 的有符号角度（度，逆时针为正）
func SignedAngle(fromX, fromY, toX, toY float64) float64 {
	from := math.Atan2(fromY, fromX)
	to := math.Atan2(toY, toX)
	return NormalizeAngle((to - from) * 180 / math.Pi)
}

// NormalizeAngle 把角度规整到 (-180, 180]
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// RotateTowards 把 current 沿最短弧转向 target，单次转动不超过 maxDelta（度）
//
// 剩余角度小于 maxDelta 时直接到达 target；maxDelta <= 0 时不转动。
func RotateTowards(current, target, maxDelta float64) float64 {
	if maxDelta <= 0 {
		return current
	}
	delta := NormalizeAngle(target - current)
	if math.Abs(delta) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, delta)
}

// MoveTowards 从 (x, y) 向 (tx, ty) 直线移动最多 maxDistance，永不越过目标
func MoveTowards(x, y, tx, ty, maxDistance float64) (float64, float64) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist <= maxDistance || dist == 0 {
		return tx, ty
	}
	if maxDistance <= 0 {
		return x, y
	}
	return x + dx/dist*maxDistance, y + dy/dist*maxDistance
}
