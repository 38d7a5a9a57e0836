package components

// OrbitComponent 圆周运动状态
//
// 位置 = 中心 + 半径 × (cos(Phase), sin(Phase))
// Phase 连续积分：改变 Direction 只会翻转相位增量的符号，从不重置 Phase，
// 因此换向时不会产生位置跳变。
type OrbitComponent struct {
	CenterX      float64 // 轨道中心X
	CenterY      float64 // 轨道中心Y
	Radius       float64 // 当前半径（>= 0）
	AngularSpeed float64 // 角速度（弧度/秒，>= 0）
	Phase        float64 // 累计相位（弧度，无界）
	Direction    int     // +1 逆时针，-1 顺时针，0 静止
}
